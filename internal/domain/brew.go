// Package domain defines the core types and interfaces for the brew companion.
// All other packages depend on domain; domain depends on nothing.
package domain

import (
	"strings"
	"time"
)

// StepWindow is how long each pour step lasts on the brew clock.
const StepWindow = 45 * time.Second

// Input limits enforced by the engine before a schedule is computed.
const (
	MinCoffeeGrams = 0
	MaxCoffeeGrams = 1000
	MinRatio       = 13
	MaxRatio       = 19
)

// RecommendedMinCoffeeGrams is the smallest dose that brews well, at the
// finest grind.
const RecommendedMinCoffeeGrams = 6

// BrewParameters are the user-facing inputs of a brew. Treat as a value:
// every change produces a new BrewParameters and a new schedule.
type BrewParameters struct {
	CoffeeGrams float64
	Ratio       int // water grams per coffee gram, e.g. 15 for 1:15
	Taste       TasteProfile
	Strength    Strength
}

// TasteProfile controls how the first 40% of the water is split.
type TasteProfile int

const (
	TasteStandard TasteProfile = iota
	TasteSweet
	TasteBright
)

// String returns the canonical name of the taste profile.
func (t TasteProfile) String() string {
	switch t {
	case TasteStandard:
		return "standard"
	case TasteSweet:
		return "sweet"
	case TasteBright:
		return "bright"
	default:
		return "unknown"
	}
}

// tasteNames maps accepted spellings to taste profiles.
var tasteNames = map[string]TasteProfile{
	"standard": TasteStandard,
	"balanced": TasteStandard,
	"sweet":    TasteSweet,
	"sweeter":  TasteSweet,
	"bright":   TasteBright,
	"brighter": TasteBright,
}

// TasteFromString converts a name to a TasteProfile.
// Returns ErrUnknownTaste for unrecognized names.
func TasteFromString(name string) (TasteProfile, error) {
	if t, ok := tasteNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return TasteStandard, ErrUnknownTaste
}

// Strength controls how many pours the remaining 60% of the water is split into.
type Strength int

const (
	StrengthLight Strength = iota
	StrengthStrong
	StrengthStronger
)

// String returns the canonical name of the strength.
func (s Strength) String() string {
	switch s {
	case StrengthLight:
		return "light"
	case StrengthStrong:
		return "strong"
	case StrengthStronger:
		return "stronger"
	default:
		return "unknown"
	}
}

var strengthNames = map[string]Strength{
	"light":    StrengthLight,
	"strong":   StrengthStrong,
	"stronger": StrengthStronger,
}

// StrengthFromString converts a name to a Strength.
// Returns ErrUnknownStrength for unrecognized names.
func StrengthFromString(name string) (Strength, error) {
	if s, ok := strengthNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return StrengthStrong, ErrUnknownStrength
}

// PourSchedule is the ordered list of pours derived from BrewParameters.
type PourSchedule struct {
	TotalWaterGrams float64
	Pours           []PourStep
}

// Len returns the number of pours in the schedule.
func (s PourSchedule) Len() int { return len(s.Pours) }

// FinalGrams returns the cumulative water after the last pour, or 0 for an
// empty schedule.
func (s PourSchedule) FinalGrams() int {
	if len(s.Pours) == 0 {
		return 0
	}
	return s.Pours[len(s.Pours)-1].CumulativeGrams
}

// PourStep is a single pour. Index 0 is the bloom pour.
type PourStep struct {
	Index           int
	Phase           Phase
	AmountGrams     int
	CumulativeGrams int
	Offset          time.Duration // when the pour starts on the brew clock
}

// Phase tells which half of the 4:6 split a pour belongs to.
type Phase int

const (
	PhaseFirst  Phase = iota // 40%, taste
	PhaseSecond              // 60%, strength
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseFirst:
		return "first"
	case PhaseSecond:
		return "second"
	default:
		return "unknown"
	}
}
