package scene

// Commands buffers scene mutations requested during a frame. They are applied
// after the post-update pass, so no pass ever observes a half-applied change.
type Commands struct {
	spawns  []spawnCommand
	deletes []*Entity
	adds    []unitCommand
	removes []unitCommand
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	entity *Entity
	layer  string
}

type unitCommand struct {
	entity *Entity
	unit   Unit
}

// Spawn queues adding e to the named layer. An empty name means the default
// layer.
func (c *Commands) Spawn(e *Entity, layer string) {
	c.spawns = append(c.spawns, spawnCommand{entity: e, layer: layer})
}

// Delete queues removing e from the scene.
func (c *Commands) Delete(e *Entity) {
	c.deletes = append(c.deletes, e)
}

// AddUnit queues attaching u to e.
func (c *Commands) AddUnit(e *Entity, u Unit) {
	c.adds = append(c.adds, unitCommand{entity: e, unit: u})
}

// RemoveUnit queues detaching u from e.
func (c *Commands) RemoveUnit(e *Entity, u Unit) {
	c.removes = append(c.removes, unitCommand{entity: e, unit: u})
}

// Defer queues fn to run after every other command.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies the queued commands to s in order: deletes, unit removals,
// unit additions, spawns, then deferred functions. Commands queued while
// flushing run on the next flush.
func (c *Commands) Flush(s *Scene) {
	if c.Len() == 0 {
		return
	}
	spawns, deletes, adds, removes, defers := c.spawns, c.deletes, c.adds, c.removes, c.defers
	c.spawns, c.deletes, c.adds, c.removes, c.defers = nil, nil, nil, nil, nil

	deleted := make(map[*Entity]bool, len(deletes))
	for _, e := range deletes {
		s.RemoveEntity(e)
		deleted[e] = true
	}

	for _, cmd := range removes {
		if !deleted[cmd.entity] {
			cmd.entity.RemoveUnit(cmd.unit)
		}
	}

	for _, cmd := range adds {
		if deleted[cmd.entity] {
			continue
		}
		if err := cmd.entity.AddUnit(cmd.unit); err != nil {
			s.logger.Warn("deferred unit add failed", "entity", cmd.entity.ID(), "error", err)
		}
	}

	for _, cmd := range spawns {
		var err error
		if cmd.layer == "" {
			err = s.AddEntity(cmd.entity)
		} else {
			err = s.AddEntityToLayer(cmd.entity, cmd.layer)
		}
		if err != nil {
			s.logger.Warn("deferred spawn failed", "entity", cmd.entity.ID(), "layer", cmd.layer, "error", err)
		}
	}

	for _, fn := range defers {
		fn()
	}
}
