package state

// LifecycleState is where the game is in its platform lifecycle
type LifecycleState int

const (
	StateCreated LifecycleState = iota
	StateRunning
	StatePaused
	StateDisposed
)

// String returns the string representation of the lifecycle state
func (s LifecycleState) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateDisposed:
		return "Disposed"
	default:
		return "Unknown"
	}
}

// Active reports whether frames should still be delivered in this state
func (s LifecycleState) Active() bool {
	return s == StateCreated || s == StateRunning || s == StatePaused
}
