package scene

import "github.com/plus3/scenekit/render"

// WorldUnits converts between pixels and world units. Scenes are laid out in
// world units so that the same content fits any screen density.
type WorldUnits struct {
	WorldWidth    float32
	WorldHeight   float32
	PixelsPerUnit float32
}

func NewWorldUnits(worldWidth, worldHeight, pixelsPerUnit float32) WorldUnits {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	return WorldUnits{
		WorldWidth:    worldWidth,
		WorldHeight:   worldHeight,
		PixelsPerUnit: pixelsPerUnit,
	}
}

// ToWorld converts a length in pixels to world units.
func (w WorldUnits) ToWorld(pixels float32) float32 {
	return pixels / w.PixelsPerUnit
}

// ToPixels converts a length in world units to pixels.
func (w WorldUnits) ToPixels(units float32) float32 {
	return units * w.PixelsPerUnit
}

// RegionSize returns the world size of a texture region drawn at its native
// resolution.
func (w WorldUnits) RegionSize(r render.Region) (width, height float32) {
	return w.ToWorld(float32(r.Width())), w.ToWorld(float32(r.Height()))
}
