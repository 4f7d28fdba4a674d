package scene

// State is the lifecycle state of a unit.
type State uint8

const (
	// StateCreated is a unit that has never been added to an entity.
	StateCreated State = iota
	// StateAttached is a unit owned by an entity that has not started yet.
	StateAttached
	StateStarted
	StatePaused
	// StateStopped is a unit that was removed from its entity, or whose entity
	// left the scene. It can be started again.
	StateStopped
	StateDestroyed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateAttached:
		return "Attached"
	case StateStarted:
		return "Started"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	case StateDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// Running reports whether the unit is started or paused.
func (s State) Running() bool {
	return s == StateStarted || s == StatePaused
}

// startUnit moves an attached or stopped unit to Started.
func startUnit(u Unit) {
	b := u.base()
	if b.state != StateAttached && b.state != StateStopped {
		return
	}
	b.state = StateStarted
	if h, ok := u.(Starter); ok {
		h.Start()
	}
}

func stopUnit(u Unit) {
	b := u.base()
	if !b.state.Running() {
		return
	}
	b.state = StateStopped
	if h, ok := u.(Stopper); ok {
		h.Stop()
	}
}

func pauseUnit(u Unit) {
	b := u.base()
	if b.state != StateStarted {
		return
	}
	b.state = StatePaused
	if h, ok := u.(Pauser); ok {
		h.Pause()
	}
}

// resumeUnit resumes a paused unit and starts one that joined while the
// scene was inactive.
func resumeUnit(u Unit) {
	b := u.base()
	switch b.state {
	case StatePaused:
		b.state = StateStarted
		if h, ok := u.(Resumer); ok {
			h.Resume()
		}
	case StateAttached, StateStopped:
		startUnit(u)
	}
}

func destroyUnit(u Unit) {
	b := u.base()
	if b.state == StateDestroyed {
		return
	}
	b.state = StateDestroyed
	if h, ok := u.(Destroyer); ok {
		h.Destroy()
	}
}
