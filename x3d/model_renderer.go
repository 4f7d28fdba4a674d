package x3d

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
)

// ModelRenderer draws a model at its entity's transform using the scene's
// Camera3D.
type ModelRenderer struct {
	scene.BaseUnit

	model  render.Model
	matrix mgl32.Mat4

	// Environment overrides the camera's lighting when set.
	Environment *render.Environment
	Visible     bool

	camera *Camera3D
}

func NewModelRenderer(model render.Model) *ModelRenderer {
	return &ModelRenderer{model: model, matrix: mgl32.Ident4(), Visible: true}
}

func (r *ModelRenderer) Model() render.Model { return r.model }

// Matrix returns the model matrix computed in the last post-update.
func (r *ModelRenderer) Matrix() mgl32.Mat4 { return r.matrix }

func (r *ModelRenderer) PostUpdate(*scene.Frame) {
	if t := r.Transform(); t != nil {
		r.matrix = t.Matrix()
	}
}

func (r *ModelRenderer) MainCameraChanged(scene.Camera) {
	r.camera = nil
}

func (r *ModelRenderer) Detach() {
	r.camera = nil
}

func (r *ModelRenderer) Render(*scene.Frame) {
	if !r.Visible || r.model == nil {
		return
	}
	if r.camera == nil || r.camera.Scene() != r.Scene() {
		s := r.Scene()
		if s == nil {
			return
		}
		r.camera, _ = s.MainCamera().(*Camera3D)
		if r.camera == nil {
			return
		}
	}
	batch := r.camera.ModelBatch()
	if batch == nil {
		return
	}

	env := r.Environment
	if env == nil {
		env = r.camera.Environment()
	}
	batch.Render(r.model, r.matrix, env)
}
