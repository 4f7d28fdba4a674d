package ebitenrender

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/scenekit/render"
)

type spriteBatch struct {
	backend *Backend
	dst     *ebiten.Image
	screen  ebiten.GeoM
	drawing bool
}

func (b *spriteBatch) Begin(projection mgl32.Mat4) {
	dst, r := b.backend.screen()
	b.dst = dst
	b.screen = geoM(screenMatrix(projection, r))
	b.drawing = true
}

// Draw skips regions that were not created by this package.
func (b *spriteBatch) Draw(region render.Region, opts render.DrawOptions) {
	if !b.drawing || b.dst == nil {
		return
	}
	r, ok := region.(*Region)
	if !ok || r.Image == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(r.Width(), r.Height(), opts)
	op.GeoM.Concat(b.screen)
	op.Filter = ebiten.FilterLinear
	if opts.Color != nil {
		op.ColorScale.ScaleWithColor(opts.Color)
	}
	b.dst.DrawImage(r.Image, op)
}

func (b *spriteBatch) End()          { b.drawing, b.dst = false, nil }
func (b *spriteBatch) Drawing() bool { return b.drawing }
func (b *spriteBatch) Dispose()      { b.drawing, b.dst = false, nil }

// spriteGeoM maps image pixels of a w by h region into world space. (X, Y)
// is the bottom-left corner and the origin is relative to it.
func spriteGeoM(w, h int, opts render.DrawOptions) ebiten.GeoM {
	var g ebiten.GeoM
	iw, ih := float64(w), float64(h)
	if iw == 0 || ih == 0 {
		return g
	}
	if opts.FlipX {
		g.Scale(-1, 1)
		g.Translate(iw, 0)
	}
	if opts.FlipY {
		g.Scale(1, -1)
		g.Translate(0, ih)
	}

	// Pixels to world units, y up.
	g.Scale(float64(opts.Width)/iw, -float64(opts.Height)/ih)
	g.Translate(0, float64(opts.Height))

	sx, sy := float64(opts.ScaleX), float64(opts.ScaleY)
	// Zero scale means unscaled.
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	ox, oy := float64(opts.OriginX), float64(opts.OriginY)
	g.Translate(-ox, -oy)
	g.Scale(sx, sy)
	g.Rotate(float64(mgl32.DegToRad(opts.Rotation)))
	g.Translate(float64(opts.X)+ox, float64(opts.Y)+oy)
	return g
}
