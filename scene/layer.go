package scene

import "slices"

// Layer is a named, ordered group of entities. Layers added to a scene first
// are processed first.
type Layer struct {
	name     string
	entities []*Entity
	scene    *Scene
}

// NewLayer creates an empty layer.
func NewLayer(name string) *Layer {
	return &Layer{name: name}
}

func (l *Layer) Name() string { return l.name }

// Scene returns the scene the layer belongs to, or nil.
func (l *Layer) Scene() *Scene { return l.scene }

// Add appends e. If the layer belongs to a scene, e joins that scene and is
// started when the scene is active.
func (l *Layer) Add(e *Entity) error {
	if e == nil {
		return ErrNilEntity
	}
	if e.layer == l {
		return nil
	}
	if e.layer != nil || e.scene != nil {
		return ErrEntityInOtherScene
	}
	if l.scene != nil && l.scene.destroyed {
		return ErrSceneDestroyed
	}

	n := len(l.entities)
	l.entities = append(l.entities[:n:n], e)
	e.layer = l
	if l.scene != nil {
		l.scene.attachEntity(e)
	}
	return nil
}

// Remove drops e from the layer, stopping its units if it was live.
func (l *Layer) Remove(e *Entity) bool {
	if e == nil || e.layer != l {
		return false
	}
	idx := slices.Index(l.entities, e)
	if idx < 0 {
		return false
	}
	l.entities = slices.Delete(slices.Clone(l.entities), idx, idx+1)
	e.layer = nil
	if l.scene != nil {
		l.scene.detachEntity(e)
	}
	return true
}

func (l *Layer) Contains(e *Entity) bool {
	return e != nil && e.layer == l
}

// Entities returns a snapshot of the layer's entities in insertion order.
func (l *Layer) Entities() []*Entity {
	return slices.Clone(l.entities)
}

func (l *Layer) Len() int { return len(l.entities) }

// FindByTag returns the first entity tagged tag, or nil.
func (l *Layer) FindByTag(tag string) *Entity {
	for _, e := range l.entities {
		if e.tag == tag {
			return e
		}
	}
	return nil
}

// FindAllByTag returns every entity tagged tag.
func (l *Layer) FindAllByTag(tag string) []*Entity {
	var out []*Entity
	for _, e := range l.entities {
		if e.tag == tag {
			out = append(out, e)
		}
	}
	return out
}
