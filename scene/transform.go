package scene

import "github.com/go-gl/mathgl/mgl32"

// Spatial is the unit every entity carries at index 0. Rotation is in degrees;
// the 2D angle is the Z component.
type Spatial interface {
	Unit

	Position() mgl32.Vec3
	SetPosition(x, y float32)
	SetPosition3(p mgl32.Vec3)
	X() float32
	Y() float32
	SetX(x float32)
	SetY(y float32)
	Translate(dx, dy float32)

	Rotation() mgl32.Vec3
	Angle() float32
	SetRotation(degrees float32)
	SetRotation3(r mgl32.Vec3)

	Scale() mgl32.Vec3
	SetScale(x, y float32)
	SetScale3(s mgl32.Vec3)

	Size() mgl32.Vec3
	SetSize(width, height float32)
	SetSize3(s mgl32.Vec3)
	Width() float32
	Height() float32

	Origin() mgl32.Vec3
	SetOrigin(x, y float32)
	SetOrigin3(o mgl32.Vec3)

	// Matrix returns the model matrix: scale and rotation about the origin,
	// then translation to the position.
	Matrix() mgl32.Mat4
}

// Transform is the default Spatial.
type Transform struct {
	BaseUnit

	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3
	size     mgl32.Vec3
	origin   mgl32.Vec3
}

// NewTransform returns a transform at the world origin with unit scale.
func NewTransform() *Transform {
	return &Transform{scale: mgl32.Vec3{1, 1, 1}}
}

func (t *Transform) Position() mgl32.Vec3      { return t.position }
func (t *Transform) SetPosition(x, y float32)  { t.position[0], t.position[1] = x, y }
func (t *Transform) SetPosition3(p mgl32.Vec3) { t.position = p }
func (t *Transform) X() float32                { return t.position[0] }
func (t *Transform) Y() float32                { return t.position[1] }
func (t *Transform) SetX(x float32)            { t.position[0] = x }
func (t *Transform) SetY(y float32)            { t.position[1] = y }
func (t *Transform) Translate(dx, dy float32) {
	t.position[0] += dx
	t.position[1] += dy
}
func (t *Transform) Rotation() mgl32.Vec3        { return t.rotation }
func (t *Transform) Angle() float32              { return t.rotation[2] }
func (t *Transform) SetRotation(degrees float32) { t.rotation[2] = degrees }
func (t *Transform) SetRotation3(r mgl32.Vec3)   { t.rotation = r }
func (t *Transform) Scale() mgl32.Vec3           { return t.scale }
func (t *Transform) SetScale(x, y float32)       { t.scale[0], t.scale[1] = x, y }
func (t *Transform) SetScale3(s mgl32.Vec3)      { t.scale = s }
func (t *Transform) Size() mgl32.Vec3            { return t.size }
func (t *Transform) SetSize(w, h float32)        { t.size[0], t.size[1] = w, h }
func (t *Transform) SetSize3(s mgl32.Vec3)       { t.size = s }
func (t *Transform) Width() float32              { return t.size[0] }
func (t *Transform) Height() float32             { return t.size[1] }
func (t *Transform) Origin() mgl32.Vec3          { return t.origin }
func (t *Transform) SetOrigin(x, y float32)      { t.origin[0], t.origin[1] = x, y }
func (t *Transform) SetOrigin3(o mgl32.Vec3)     { t.origin = o }

func (t *Transform) Matrix() mgl32.Mat4 {
	return modelMatrix(t.position, t.rotation, t.scale, t.origin)
}

func modelMatrix(position, rotation, scale, origin mgl32.Vec3) mgl32.Mat4 {
	rot := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation[2])).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotation[1]))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotation[0])))

	return mgl32.Translate3D(position[0]+origin[0], position[1]+origin[1], position[2]+origin[2]).
		Mul4(rot).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2])).
		Mul4(mgl32.Translate3D(-origin[0], -origin[1], -origin[2]))
}
