package x2d

import (
	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
)

// NewSpriteEntity creates an entity that renders region, sized in the
// scene's world units. The entity is not added to the scene.
func NewSpriteEntity(s *scene.Scene, tag string, region render.Region) *scene.Entity {
	e := scene.NewEntity(tag)
	attachSprite(s, e, region)
	return e
}

// NewActorSpriteEntity is NewSpriteEntity for an entity whose transform
// mirrors actor.
func NewActorSpriteEntity(s *scene.Scene, tag string, region render.Region, actor scene.Actor) *scene.Entity {
	e := scene.NewActorEntity(tag, actor)
	attachSprite(s, e, region)
	return e
}

// NewSpriteEntityAt is NewSpriteEntity positioned at (x, y) in world units.
func NewSpriteEntityAt(s *scene.Scene, tag string, region render.Region, x, y float32) *scene.Entity {
	e := NewSpriteEntity(s, tag, region)
	e.Transform().SetPosition(x, y)
	return e
}

func attachSprite(s *scene.Scene, e *scene.Entity, region render.Region) {
	// A fresh entity cannot reject a fresh unit.
	if err := e.AddUnit(NewSpriteRenderer(region, s.WorldUnits())); err != nil {
		panic(err)
	}
}
