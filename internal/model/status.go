package model

// LoadStatus represents the lifecycle status of a laundry load
type LoadStatus string

const (
	// StatusRunning means the load's cycle is counting down
	StatusRunning LoadStatus = "running"

	// StatusPaused means the countdown is suspended by the user
	StatusPaused LoadStatus = "paused"

	// StatusCompleted means the cycle finished (by hand or on expiry)
	StatusCompleted LoadStatus = "completed"

	// StatusCancelled means the load was abandoned by the user
	StatusCancelled LoadStatus = "cancelled"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsActive returns true if the load still needs a countdown
func (ls LoadStatus) IsActive() bool {
	return ls == StatusRunning || ls == StatusPaused
}

// IsTerminal returns true if the load reached a final state. Terminal loads
// never transition again.
func (ls LoadStatus) IsTerminal() bool {
	return ls == StatusCompleted || ls == StatusCancelled
}
