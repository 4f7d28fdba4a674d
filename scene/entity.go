package scene

import (
	"slices"
	"sync/atomic"
)

// EntityID identifies an entity for the lifetime of the process.
type EntityID uint64

// UntaggedTag is the tag of entities created without one.
const UntaggedTag = "Untagged"

var nextEntityID atomic.Uint64

// Entity is a tagged container of units. Index 0 of its unit list is always
// its Spatial, which cannot be removed.
type Entity struct {
	id    EntityID
	tag   string
	units []Unit

	scene *Scene
	layer *Layer
	actor Actor
}

// NewEntity creates an entity with a fresh Transform.
func NewEntity(tag string) *Entity {
	return newEntity(tag, NewTransform(), nil)
}

// NewUntaggedEntity creates an entity tagged UntaggedTag.
func NewUntaggedEntity() *Entity {
	return NewEntity(UntaggedTag)
}

// NewActorEntity creates an entity whose transform mirrors actor. When actor
// implements Acter, scenes advance it once per frame.
func NewActorEntity(tag string, actor Actor) *Entity {
	return newEntity(tag, NewActorTransform(actor), actor)
}

func newEntity(tag string, t Spatial, actor Actor) *Entity {
	if tag == "" {
		tag = UntaggedTag
	}
	e := &Entity{
		id:    EntityID(nextEntityID.Add(1)),
		tag:   tag,
		actor: actor,
	}
	b := t.base()
	b.entity = e
	b.state = StateAttached
	e.units = []Unit{t}
	return e
}

func (e *Entity) ID() EntityID { return e.id }

func (e *Entity) Tag() string { return e.tag }

func (e *Entity) SetTag(tag string) { e.tag = tag }

// SameTag reports whether both entities carry the same tag.
func (e *Entity) SameTag(other *Entity) bool {
	return other != nil && e.tag == other.tag
}

// Transform returns the entity's spatial unit.
func (e *Entity) Transform() Spatial {
	return e.units[0].(Spatial)
}

// Actor returns the actor behind an actor entity, or nil.
func (e *Entity) Actor() Actor { return e.actor }

// Scene returns the scene the entity is live in, or nil.
func (e *Entity) Scene() *Scene { return e.scene }

// Layer returns the layer holding the entity, or nil.
func (e *Entity) Layer() *Layer { return e.layer }

// Units returns a snapshot of the entity's units in insertion order.
func (e *Entity) Units() []Unit {
	return slices.Clone(e.units)
}

func (e *Entity) UnitCount() int { return len(e.units) }

// HasUnit reports whether u is attached to e.
func (e *Entity) HasUnit(u Unit) bool {
	return u != nil && u.base().entity == e
}

// ForEachUnit calls fn for each unit present when the call began. Units may be
// added or removed from fn: removed units that have not been visited yet are
// skipped, and added units are not visited.
func (e *Entity) ForEachUnit(fn func(Unit)) {
	for _, u := range e.units {
		if u.base().entity != e {
			continue
		}
		fn(u)
	}
}

// AddUnit attaches u. Adding a unit that is already attached to e does
// nothing. When e is live in an active scene, u is started before AddUnit
// returns.
func (e *Entity) AddUnit(u Unit) error {
	if u == nil {
		return ErrNilUnit
	}
	b := u.base()
	switch {
	case b.entity == e:
		return nil
	case b.entity != nil:
		return ErrUnitOwned
	case b.state == StateDestroyed:
		return ErrUnitDestroyed
	}

	b.entity = e
	b.scene = e.scene
	b.state = StateAttached
	// u is listed only after Attach, so it cannot remove itself there.
	if h, ok := u.(Attacher); ok {
		h.Attach()
	}

	for _, sibling := range e.units {
		if h, ok := sibling.(UnitAddedListener); ok && sibling.base().entity == e {
			h.UnitAdded(u)
		}
	}

	n := len(e.units)
	e.units = append(e.units[:n:n], u)

	if e.scene != nil && e.scene.active {
		startUnit(u)
	}
	return nil
}

// RemoveUnit detaches u, stopping it first if it is running. The Spatial
// unit cannot be removed.
func (e *Entity) RemoveUnit(u Unit) bool {
	if u == nil || u.base().entity != e {
		return false
	}
	idx := slices.Index(e.units, u)
	if idx <= 0 {
		return false
	}
	e.units = slices.Delete(slices.Clone(e.units), idx, idx+1)

	b := u.base()
	stopUnit(u)
	if b.state != StateDestroyed {
		b.state = StateStopped
	}

	for _, sibling := range e.units {
		if h, ok := sibling.(UnitRemovedListener); ok {
			h.UnitRemoved(u)
		}
	}
	if h, ok := u.(Detacher); ok {
		h.Detach()
	}

	b.entity = nil
	b.scene = nil
	return true
}

// setScene propagates scene membership to every unit.
func (e *Entity) setScene(s *Scene) {
	e.scene = s
	for _, u := range e.units {
		u.base().scene = s
	}
}
