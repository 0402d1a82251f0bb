package domain

// IntentType classifies what the user wants to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentStart
	IntentReset
	IntentSetCoffee
	IntentSetRatio
	IntentSetTaste
	IntentSetStrength
	IntentApplyPreset
	IntentListPresets
	IntentSchedule
	IntentStatus
	IntentMethod
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentStart:
		return "start"
	case IntentReset:
		return "reset"
	case IntentSetCoffee:
		return "set_coffee"
	case IntentSetRatio:
		return "set_ratio"
	case IntentSetTaste:
		return "set_taste"
	case IntentSetStrength:
		return "set_strength"
	case IntentApplyPreset:
		return "apply_preset"
	case IntentListPresets:
		return "list_presets"
	case IntentSchedule:
		return "schedule"
	case IntentStatus:
		return "status"
	case IntentMethod:
		return "method"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string // argument, e.g. "18" for set_coffee or "sweet" for set_taste
}
