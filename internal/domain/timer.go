package domain

import "time"

// TimerState is a snapshot of the brew timer.
type TimerState struct {
	Status           TimerStatus
	ElapsedSeconds   int
	CurrentStepIndex int // -1 until the timer is started
}

// Running reports whether the timer is counting.
func (t TimerState) Running() bool { return t.Status == TimerRunning }

// Elapsed returns the elapsed time as a duration.
func (t TimerState) Elapsed() time.Duration {
	return time.Duration(t.ElapsedSeconds) * time.Second
}

// IdleTimerState is the state of a timer that has never been started or was
// just reset.
func IdleTimerState() TimerState {
	return TimerState{Status: TimerIdle, CurrentStepIndex: -1}
}

// TimerStatus represents the state of the brew timer.
type TimerStatus int

const (
	TimerIdle TimerStatus = iota
	TimerRunning
)

// String returns a human-readable timer status.
func (t TimerStatus) String() string {
	switch t {
	case TimerIdle:
		return "idle"
	case TimerRunning:
		return "running"
	default:
		return "unknown"
	}
}
