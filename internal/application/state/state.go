package state

// SandboxState represents the current state of the sandbox
type SandboxState int

const (
	StateRunning SandboxState = iota
	StatePaused
	StateReplaying
	StateFinished
)

// String returns the string representation of the sandbox state
func (s SandboxState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateReplaying:
		return "Replaying"
	case StateFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Stepping reports whether the simulation advances in this state
func (s SandboxState) Stepping() bool {
	return s == StateRunning || s == StateReplaying
}
