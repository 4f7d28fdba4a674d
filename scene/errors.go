package scene

import "errors"

var (
	ErrLayerNotInScene    = errors.New("scene: layer is not part of this scene")
	ErrDefaultLayer       = errors.New("scene: the default layer cannot be removed")
	ErrDuplicateLayer     = errors.New("scene: a layer with this name already exists")
	ErrLayerOwned         = errors.New("scene: layer belongs to another scene")
	ErrEntityInOtherScene = errors.New("scene: entity already belongs to a scene or layer")
	ErrUnitOwned          = errors.New("scene: unit belongs to another entity")
	ErrUnitDestroyed      = errors.New("scene: unit has been destroyed")
	ErrNilUnit            = errors.New("scene: nil unit")
	ErrNilEntity          = errors.New("scene: nil entity")
	ErrSceneDestroyed     = errors.New("scene: scene has been destroyed")
)
