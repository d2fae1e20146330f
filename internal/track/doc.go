package track

// Package track implements the core load-tracking pipeline: the ordered
// collection of laundry loads, their lifecycle state machine, per-load
// countdown timers plus a global expiry sweep, and persistence after every
// mutation. Progress is propagated to the UI through callbacks.
