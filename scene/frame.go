package scene

// Frame is passed to every per-frame callback.
type Frame struct {
	// DeltaTime is the time since the previous update, in seconds. Render
	// callbacks see the value of the last update.
	DeltaTime float64
	// Commands buffers structural changes until the end of the update.
	Commands *Commands
	Scene    *Scene
}

func newFrame(s *Scene) *Frame {
	return &Frame{
		Commands: newCommands(),
		Scene:    s,
	}
}
