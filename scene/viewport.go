package scene

import "math"

// Scaling selects how a viewport maps its world onto the screen.
type Scaling uint8

const (
	// ScalingExtend keeps the world's aspect ratio and grows the world along
	// the short axis so the screen is filled without black bars.
	ScalingExtend Scaling = iota
	// ScalingStretch maps the world onto the whole screen, distorting it.
	ScalingStretch
	// ScalingFit keeps the world size and aspect ratio, letterboxing the rest.
	ScalingFit
)

func (s Scaling) String() string {
	switch s {
	case ScalingExtend:
		return "extend"
	case ScalingStretch:
		return "stretch"
	case ScalingFit:
		return "fit"
	default:
		return "unknown"
	}
}

// Viewport tracks the visible world size and where it lands on screen.
type Viewport struct {
	scaling Scaling

	minWorldWidth, minWorldHeight float32
	worldWidth, worldHeight       float32

	screenX, screenY          int
	screenWidth, screenHeight int
}

// NewViewport creates a viewport showing at least worldWidth × worldHeight
// world units.
func NewViewport(scaling Scaling, worldWidth, worldHeight float32) *Viewport {
	return &Viewport{
		scaling:        scaling,
		minWorldWidth:  worldWidth,
		minWorldHeight: worldHeight,
		worldWidth:     worldWidth,
		worldHeight:    worldHeight,
	}
}

func (v *Viewport) Scaling() Scaling { return v.scaling }

// WorldWidth is the visible world width after the last Update.
func (v *Viewport) WorldWidth() float32 { return v.worldWidth }

// WorldHeight is the visible world height after the last Update.
func (v *Viewport) WorldHeight() float32 { return v.worldHeight }

// ScreenRect returns the pixel rectangle the world is drawn into.
func (v *Viewport) ScreenRect() (x, y, width, height int) {
	return v.screenX, v.screenY, v.screenWidth, v.screenHeight
}

// SetWorldSize changes the configured world size. It takes effect on the next
// Update.
func (v *Viewport) SetWorldSize(width, height float32) {
	v.minWorldWidth, v.minWorldHeight = width, height
	v.worldWidth, v.worldHeight = width, height
}

// Update recomputes the world size and screen rectangle for a screen of
// screenWidth × screenHeight pixels.
func (v *Viewport) Update(screenWidth, screenHeight int) {
	if screenWidth <= 0 || screenHeight <= 0 || v.minWorldWidth <= 0 || v.minWorldHeight <= 0 {
		return
	}
	sw, sh := float32(screenWidth), float32(screenHeight)

	switch v.scaling {
	case ScalingStretch:
		v.worldWidth, v.worldHeight = v.minWorldWidth, v.minWorldHeight
		v.setScreen(0, 0, screenWidth, screenHeight)

	case ScalingFit:
		v.worldWidth, v.worldHeight = v.minWorldWidth, v.minWorldHeight
		scale := min(sw/v.minWorldWidth, sh/v.minWorldHeight)
		w, h := round(v.minWorldWidth*scale), round(v.minWorldHeight*scale)
		v.setScreen((screenWidth-w)/2, (screenHeight-h)/2, w, h)

	default:
		worldWidth, worldHeight := v.minWorldWidth, v.minWorldHeight
		scale := min(sw/worldWidth, sh/worldHeight)
		w, h := round(worldWidth*scale), round(worldHeight*scale)

		if w < screenWidth {
			toViewport := float32(h) / worldHeight
			lengthen := float32(screenWidth-w) / toViewport
			worldWidth += lengthen
			w += round(lengthen * toViewport)
		} else if h < screenHeight {
			toViewport := float32(w) / worldWidth
			lengthen := float32(screenHeight-h) / toViewport
			worldHeight += lengthen
			h += round(lengthen * toViewport)
		}

		v.worldWidth, v.worldHeight = worldWidth, worldHeight
		v.setScreen((screenWidth-w)/2, (screenHeight-h)/2, w, h)
	}
}

func (v *Viewport) setScreen(x, y, width, height int) {
	v.screenX, v.screenY = x, y
	v.screenWidth, v.screenHeight = width, height
}

func round(f float32) int {
	return int(math.Round(float64(f)))
}
