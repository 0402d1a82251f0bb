package conversation

import (
	"context"
	"testing"

	"github.com/hammamikhairi/ottobrew/internal/domain"
	"github.com/hammamikhairi/ottobrew/internal/logger"
)

func TestKeywordParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewKeywordParser(log)
	ctx := context.Background()

	tests := []struct {
		input       string
		wantType    domain.IntentType
		wantPayload string
	}{
		// Timer
		{"start", domain.IntentStart, ""},
		{"Go", domain.IntentStart, ""},
		{"reset", domain.IntentReset, ""},
		{"stop", domain.IntentReset, ""},

		// Coffee
		{"coffee 18", domain.IntentSetCoffee, "18"},
		{"coffee 18.5g", domain.IntentSetCoffee, "18.5"},
		{"dose 22", domain.IntentSetCoffee, "22"},
		{"15g", domain.IntentSetCoffee, "15"},

		// Ratio
		{"ratio 16", domain.IntentSetRatio, "16"},
		{"ratio 1:17", domain.IntentSetRatio, "17"},
		{"1:14", domain.IntentSetRatio, "14"},

		// Taste
		{"taste sweet", domain.IntentSetTaste, "sweet"},
		{"profile BRIGHT", domain.IntentSetTaste, "bright"},
		{"sweeter", domain.IntentSetTaste, "sweeter"},

		// Strength
		{"strength light", domain.IntentSetStrength, "light"},
		{"stronger", domain.IntentSetStrength, "stronger"},

		// Presets
		{"preset classic", domain.IntentApplyPreset, "classic"},
		{"use big-batch", domain.IntentApplyPreset, "big-batch"},
		{"presets", domain.IntentListPresets, ""},

		// Info
		{"schedule", domain.IntentSchedule, ""},
		{"status", domain.IntentStatus, ""},
		{"method", domain.IntentMethod, ""},
		{"help", domain.IntentHelp, ""},
		{"?", domain.IntentHelp, ""},
		{"quit", domain.IntentQuit, ""},
		{"q", domain.IntentQuit, ""},

		// Unknown
		{"make it a latte", domain.IntentUnknown, "make it a latte"},
		{"", domain.IntentUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := parser.Parse(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if intent.Type != tt.wantType {
				t.Errorf("input=%q: got type %s, want %s", tt.input, intent.Type, tt.wantType)
			}
			if intent.Payload != tt.wantPayload {
				t.Errorf("input=%q: got payload %q, want %q", tt.input, intent.Payload, tt.wantPayload)
			}
		})
	}
}
