// Package scene is the entity/unit runtime: scenes hold layers of entities,
// entities hold units, and the scene drives every unit through its lifecycle
// and through batched per-frame passes.
//
// A frame driver owns the loop and calls the phase methods of the current
// scene: Resize, Resume, Pause, Update, Render and Destroy. Every pass visits
// the camera entity first and then each layer's entities in order, and every
// entity finishes a phase before any entity begins the next.
package scene

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"

	"github.com/plus3/scenekit/render"
)

// DefaultLayerName is the reserved name of every scene's default layer.
const DefaultLayerName = "SCENEKIT_DEFAULT_LAYER"

// TransitionHooks are called by the scene manager when it moves between
// scenes. Any hook may be nil.
type TransitionHooks struct {
	// From is called on the outgoing scene with the incoming one.
	From func(next *Scene)
	// To is called on the incoming scene with the outgoing one.
	To func(prev *Scene)
	// PauseForTransition is called before the scene is paused for a switch.
	PauseForTransition func()
}

// Option configures a Scene.
type Option func(*Scene)

func WithName(name string) Option {
	return func(s *Scene) { s.name = name }
}

// WithCamera replaces the default Camera2D.
func WithCamera(c Camera) Option {
	return func(s *Scene) { s.camera = c }
}

// WithStackable sets whether a scene manager keeps this scene alive when
// another scene is pushed over it.
func WithStackable(stackable bool) Option {
	return func(s *Scene) { s.stackable = stackable }
}

// WithDebugRender overrides Settings.DebugRender.
func WithDebugRender(enabled bool) Option {
	return func(s *Scene) { s.debugRender = enabled }
}

func WithTransitionHooks(hooks TransitionHooks) Option {
	return func(s *Scene) { s.hooks = hooks }
}

// Scene is a collection of layers driven through the frame phases. Scenes
// are created inactive; the frame driver resumes them.
type Scene struct {
	id     uuid.UUID
	name   string
	ctx    *Context
	logger *slog.Logger

	layers       []*Layer
	defaultLayer *Layer
	cameraEntity *Entity
	camera       Camera
	index        *intmap.Map[EntityID, *Entity]
	actors       []*Entity

	active      bool
	stackable   bool
	destroyed   bool
	debugRender bool
	hooks       TransitionHooks

	width, height int

	frame    *Frame
	shapes   render.ShapeRenderer
	stats    phaseRecorder
	dispatch []*Entity
}

// New creates a scene with a default layer and a camera entity. The camera is
// a Camera2D sized from ctx.Settings unless WithCamera is given.
func New(ctx *Context, opts ...Option) *Scene {
	if ctx == nil {
		panic("scene: cannot create a scene without a context")
	}
	s := &Scene{
		id:          uuid.New(),
		name:        "Untitled",
		ctx:         ctx,
		stackable:   true,
		debugRender: ctx.Settings.DebugRender,
		index:       intmap.New[EntityID, *Entity](256),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = ctx.Logger.With("scene", s.id.String(), "name", s.name)
	s.frame = newFrame(s)

	s.defaultLayer = NewLayer(DefaultLayerName)
	s.defaultLayer.scene = s
	s.layers = []*Layer{s.defaultLayer}

	s.cameraEntity = NewEntity(MainCameraTag)
	s.cameraEntity.setScene(s)
	s.index.Put(s.cameraEntity.id, s.cameraEntity)

	cam := s.camera
	if cam == nil {
		c := NewCamera2D(NewViewport(ScalingExtend, ctx.Settings.ViewportWidth, ctx.Settings.ViewportHeight))
		c.SetBackground(ctx.Settings.Background())
		cam = c
	}
	if err := s.cameraEntity.AddUnit(cam); err != nil {
		panic(fmt.Sprintf("scene: cannot attach camera: %v", err))
	}
	s.camera = cam

	s.logger.Debug("scene created")
	return s
}

func (s *Scene) ID() uuid.UUID { return s.id }

func (s *Scene) Name() string { return s.name }

func (s *Scene) Context() *Context { return s.ctx }

func (s *Scene) Logger() *slog.Logger { return s.logger }

// Active reports whether the scene has been resumed and not paused since.
func (s *Scene) Active() bool { return s.active }

func (s *Scene) Destroyed() bool { return s.destroyed }

func (s *Scene) Stackable() bool { return s.stackable }

func (s *Scene) SetStackable(stackable bool) { s.stackable = stackable }

func (s *Scene) DebugRender() bool { return s.debugRender }

func (s *Scene) SetDebugRender(enabled bool) { s.debugRender = enabled }

// Size returns the last screen size passed to Resize.
func (s *Scene) Size() (width, height int) { return s.width, s.height }

// Stats returns timing statistics for every phase.
func (s *Scene) Stats() PhaseStats { return s.stats.snapshot() }

// WorldUnits returns the pixel/world conversion of the scene's context.
func (s *Scene) WorldUnits() WorldUnits { return s.ctx.WorldUnits() }

// Layers

// DefaultLayer returns the layer that cannot be removed.
func (s *Scene) DefaultLayer() *Layer { return s.defaultLayer }

// Layers returns the scene's layers in processing order.
func (s *Scene) Layers() []*Layer { return slices.Clone(s.layers) }

func (s *Scene) FindLayer(name string) *Layer {
	for _, l := range s.layers {
		if l.name == name {
			return l
		}
	}
	return nil
}

func (s *Scene) HasLayer(l *Layer) bool {
	return l != nil && l.scene == s
}

func (s *Scene) HasLayerNamed(name string) bool {
	return s.FindLayer(name) != nil
}

// AddLayer appends l after the existing layers. Its entities join the scene.
func (s *Scene) AddLayer(l *Layer) error {
	switch {
	case l == nil:
		return fmt.Errorf("scene: nil layer")
	case l.scene == s:
		return nil
	case l.scene != nil:
		return ErrLayerOwned
	case s.destroyed:
		return ErrSceneDestroyed
	case s.HasLayerNamed(l.name):
		return fmt.Errorf("%w: %s", ErrDuplicateLayer, l.name)
	}

	n := len(s.layers)
	s.layers = append(s.layers[:n:n], l)
	l.scene = s
	for _, e := range l.entities {
		s.attachEntity(e)
	}
	return nil
}

// RemoveLayer detaches l and stops its entities. The entities stay in l.
// Removing a layer that is not in the scene does nothing.
func (s *Scene) RemoveLayer(l *Layer) error {
	if l == s.defaultLayer {
		return ErrDefaultLayer
	}
	if l == nil || l.scene != s {
		return nil
	}
	idx := slices.Index(s.layers, l)
	s.layers = slices.Delete(slices.Clone(s.layers), idx, idx+1)
	for _, e := range l.entities {
		s.detachEntity(e)
	}
	l.scene = nil
	return nil
}

// RemoveLayerNamed removes the layer called name, if any.
func (s *Scene) RemoveLayerNamed(name string) error {
	if name == DefaultLayerName {
		return ErrDefaultLayer
	}
	return s.RemoveLayer(s.FindLayer(name))
}

// Entities

// AddEntity adds e to the default layer.
func (s *Scene) AddEntity(e *Entity) error {
	return s.AddEntityTo(e, s.defaultLayer)
}

// AddEntityTo adds e to l, which must belong to the scene.
func (s *Scene) AddEntityTo(e *Entity, l *Layer) error {
	if s.destroyed {
		return ErrSceneDestroyed
	}
	if !s.HasLayer(l) {
		return ErrLayerNotInScene
	}
	return l.Add(e)
}

// AddEntityToLayer adds e to the layer called name.
func (s *Scene) AddEntityToLayer(e *Entity, name string) error {
	l := s.FindLayer(name)
	if l == nil {
		return fmt.Errorf("%w: %s", ErrLayerNotInScene, name)
	}
	return s.AddEntityTo(e, l)
}

// RemoveEntity removes e from whichever layer of the scene holds it.
func (s *Scene) RemoveEntity(e *Entity) bool {
	if e == nil || e.scene != s || e.layer == nil {
		return false
	}
	return e.layer.Remove(e)
}

// RemoveEntityFrom removes e from l, which must belong to the scene.
func (s *Scene) RemoveEntityFrom(e *Entity, l *Layer) (bool, error) {
	if !s.HasLayer(l) {
		return false, ErrLayerNotInScene
	}
	return l.Remove(e), nil
}

// RemoveEntityFromLayer removes e from the layer called name.
func (s *Scene) RemoveEntityFromLayer(e *Entity, name string) (bool, error) {
	l := s.FindLayer(name)
	if l == nil {
		return false, fmt.Errorf("%w: %s", ErrLayerNotInScene, name)
	}
	return l.Remove(e), nil
}

// AllEntities returns every entity in layer order, then insertion order. The
// camera entity is not included.
func (s *Scene) AllEntities() []*Entity {
	return s.appendEntities(make([]*Entity, 0, s.EntityCount()))
}

func (s *Scene) appendEntities(dst []*Entity) []*Entity {
	for _, l := range s.layers {
		dst = append(dst, l.entities...)
	}
	return dst
}

// EntityCount returns the number of entities across all layers.
func (s *Scene) EntityCount() int {
	n := 0
	for _, l := range s.layers {
		n += len(l.entities)
	}
	return n
}

// EntityByID returns the live entity with id, including the camera entity.
func (s *Scene) EntityByID(id EntityID) *Entity {
	e, _ := s.index.Get(id)
	return e
}

// FindByTag returns the first entity tagged tag across all layers.
func (s *Scene) FindByTag(tag string) *Entity {
	for _, l := range s.layers {
		if e := l.FindByTag(tag); e != nil {
			return e
		}
	}
	return nil
}

// FindAllByTag returns every entity tagged tag across all layers.
func (s *Scene) FindAllByTag(tag string) []*Entity {
	var out []*Entity
	for _, l := range s.layers {
		out = append(out, l.FindAllByTag(tag)...)
	}
	return out
}

// FindByTagIn searches only the layer called layerName.
func (s *Scene) FindByTagIn(tag, layerName string) *Entity {
	if l := s.FindLayer(layerName); l != nil {
		return l.FindByTag(tag)
	}
	return nil
}

// FindAllByTagIn searches only the layer called layerName.
func (s *Scene) FindAllByTagIn(tag, layerName string) []*Entity {
	if l := s.FindLayer(layerName); l != nil {
		return l.FindAllByTag(tag)
	}
	return nil
}

func (s *Scene) attachEntity(e *Entity) {
	e.setScene(s)
	s.index.Put(e.id, e)
	if e.actor != nil {
		n := len(s.actors)
		s.actors = append(s.actors[:n:n], e)
	}
	if s.active {
		for _, u := range e.units {
			if u.base().entity == e {
				startUnit(u)
			}
		}
	}
}

func (s *Scene) detachEntity(e *Entity) {
	for _, u := range e.units {
		if u.base().entity == e {
			stopUnit(u)
		}
	}
	e.setScene(nil)
	s.index.Del(e.id)
	if e.actor != nil {
		if idx := slices.Index(s.actors, e); idx >= 0 {
			s.actors = slices.Delete(slices.Clone(s.actors), idx, idx+1)
		}
	}
}

// Camera

// CameraEntity returns the entity holding the main camera. It is not part of
// any layer.
func (s *Scene) CameraEntity() *Entity { return s.cameraEntity }

// MainCamera returns the camera attached to the camera entity, or nil if it
// was removed.
func (s *Scene) MainCamera() Camera {
	if s.camera == nil || s.camera.Entity() != s.cameraEntity {
		s.camera = Get[Camera](s.cameraEntity)
	}
	return s.camera
}

// SetMainCamera replaces the main camera and notifies every CameraListener.
func (s *Scene) SetMainCamera(c Camera) error {
	if c == nil {
		return ErrNilUnit
	}
	if c.Entity() == s.cameraEntity {
		s.camera = c
		return nil
	}
	if c.Entity() != nil {
		return ErrUnitOwned
	}

	if old := s.MainCamera(); old != nil {
		s.cameraEntity.RemoveUnit(old)
	}
	if err := s.cameraEntity.AddUnit(c); err != nil {
		return err
	}
	s.camera = c
	if s.width > 0 && s.height > 0 {
		c.UpdateViewport(s.width, s.height)
	}

	s.visit(cameraFirst, func(u Unit) {
		if h, ok := u.(CameraListener); ok {
			h.MainCameraChanged(c)
		}
	})
	return nil
}

// SetBackgroundColor sets the clear color when the main camera supports one.
func (s *Scene) SetBackgroundColor(c color.Color) {
	if bs, ok := s.MainCamera().(BackgroundSetter); ok {
		bs.SetBackground(c)
	}
}

// Transitions

// TransitionedFromThisScene is called on the outgoing scene of a transition.
func (s *Scene) TransitionedFromThisScene(next *Scene) {
	if s.hooks.From != nil {
		s.hooks.From(next)
	}
}

// TransitionedToThisScene is called on the incoming scene of a transition.
func (s *Scene) TransitionedToThisScene(prev *Scene) {
	if s.hooks.To != nil {
		s.hooks.To(prev)
	}
}

// PauseForTransition is called on the outgoing scene before it is paused.
func (s *Scene) PauseForTransition() {
	if s.hooks.PauseForTransition != nil {
		s.hooks.PauseForTransition()
	}
}

func (s *Scene) String() string {
	return fmt.Sprintf("Scene(%s %s)", s.name, s.id)
}
