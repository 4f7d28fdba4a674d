package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// DirectionalLight is a light with a color and a direction.
type DirectionalLight struct {
	Color     color.RGBA
	Direction mgl32.Vec3
}

// Environment holds the lighting used when rendering 3D models.
type Environment struct {
	Ambient     color.RGBA
	Directional []DirectionalLight
}

// DefaultEnvironment returns a dim ambient light plus one white-ish
// directional light shining down and away from the viewer.
func DefaultEnvironment() *Environment {
	return &Environment{
		Ambient: gray(0.4),
		Directional: []DirectionalLight{
			{Color: gray(0.8), Direction: mgl32.Vec3{-1, -0.8, -0.2}},
		},
	}
}

func gray(v float32) color.RGBA {
	c := uint8(v * 255)
	return color.RGBA{R: c, G: c, B: c, A: 255}
}
