package domain

import (
	"context"
	"time"
)

// PresetSource provides named brew presets. Implementations can be in-memory
// (built-in) or loaded from the config file.
type PresetSource interface {
	List(ctx context.Context) ([]PresetSummary, error)
	Get(ctx context.Context, id string) (*Preset, error)
}

// IntentParser converts raw user input into structured intents.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers feedback messages to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// Clock is the time source of the brew timer. Swapped out in tests.
type Clock interface {
	Now() time.Time
}
