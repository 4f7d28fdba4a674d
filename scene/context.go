package scene

import (
	"io"
	"log/slog"
	"reflect"

	"github.com/plus3/scenekit/config"
	"github.com/plus3/scenekit/render"
)

// Context is the engine state shared by every scene of a game: settings, the
// rendering backend, the logger and any typed resources the game provides.
type Context struct {
	Settings config.Settings
	Backend  render.Backend
	Logger   *slog.Logger

	resources map[reflect.Type]any
}

// NewContext builds a context. A nil backend discards all drawing and a nil
// logger falls back to slog.Default.
func NewContext(settings config.Settings, backend render.Backend, logger *slog.Logger) *Context {
	if backend == nil {
		backend = render.Discard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Context{
		Settings:  settings,
		Backend:   backend,
		Logger:    logger,
		resources: make(map[reflect.Type]any),
	}
}

// NewTestContext returns a context with default settings, the given backend
// and a logger that writes nowhere.
func NewTestContext(backend render.Backend) *Context {
	return NewContext(config.Default(), backend, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// WorldUnits returns the pixel/world conversion configured in Settings.
func (c *Context) WorldUnits() WorldUnits {
	return NewWorldUnits(c.Settings.ViewportWidth, c.Settings.ViewportHeight, c.Settings.PixelsPerUnit)
}

// Provide stores value as the context's resource of type T, replacing any
// previous one.
func Provide[T any](c *Context, value T) {
	c.resources[reflect.TypeFor[T]()] = value
}

// Resource returns the context's resource of type T.
func Resource[T any](c *Context) (T, bool) {
	v, ok := c.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustResource is like Resource but panics when T was never provided.
func MustResource[T any](c *Context) T {
	v, ok := Resource[T](c)
	if !ok {
		panic("scene: resource not provided: " + reflect.TypeFor[T]().String())
	}
	return v
}
