// Package schedule computes 4:6 method pour schedules.
//
// The total water is split 40/60. The first 40% is poured in two pours whose
// split follows the taste profile; the remaining 60% is divided into one to
// three equal pours according to strength.
package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/hammamikhairi/ottobrew/internal/domain"
)

// Phase shares of the total water.
const (
	firstPhaseShare  = 0.4
	secondPhaseShare = 0.6
)

// FirstPhaseSplit returns the fractions of the first phase used by the two
// taste pours. A smaller first pour gives a sweeter cup, a larger one a
// brighter cup.
func FirstPhaseSplit(taste domain.TasteProfile) [2]float64 {
	switch taste {
	case domain.TasteSweet:
		return [2]float64{0.42, 0.58}
	case domain.TasteBright:
		return [2]float64{0.58, 0.42}
	default:
		return [2]float64{0.5, 0.5}
	}
}

// PourCount returns how many equal pours the second phase is divided into.
func PourCount(strength domain.Strength) int {
	switch strength {
	case domain.StrengthLight:
		return 1
	case domain.StrengthStronger:
		return 3
	default:
		return 2
	}
}

// Compute derives the pour schedule for p. It is pure and total: inputs are
// expected to be clamped by the caller. Each amount is rounded on its own and
// cumulative totals are running sums of the rounded amounts, so the final
// total may drift from the exact water weight by up to one gram per pour.
func Compute(p domain.BrewParameters) domain.PourSchedule {
	totalWater := p.CoffeeGrams * float64(p.Ratio)
	firstPhase := totalWater * firstPhaseShare
	secondPhase := totalWater * secondPhaseShare

	split := FirstPhaseSplit(p.Taste)
	n := PourCount(p.Strength)

	raw := make([]float64, 0, 2+n)
	raw = append(raw, firstPhase*split[0], firstPhase*split[1])
	for i := 0; i < n; i++ {
		raw = append(raw, secondPhase/float64(n))
	}

	pours := make([]domain.PourStep, len(raw))
	cumulative := 0
	for i, amount := range raw {
		grams := int(math.Round(amount))
		cumulative += grams

		phase := domain.PhaseSecond
		if i < 2 {
			phase = domain.PhaseFirst
		}

		pours[i] = domain.PourStep{
			Index:           i,
			Phase:           phase,
			AmountGrams:     grams,
			CumulativeGrams: cumulative,
			Offset:          StepStart(i),
		}
	}

	return domain.PourSchedule{
		TotalWaterGrams: totalWater,
		Pours:           pours,
	}
}

// StepStart returns when step i begins on the brew clock.
func StepStart(i int) time.Duration {
	return time.Duration(i) * domain.StepWindow
}

// Describe returns the instruction shown for a pour: the bloom amount for the
// first pour, the cumulative target for the rest.
func Describe(step domain.PourStep) string {
	if step.Index == 0 {
		return fmt.Sprintf("Bloom with %dg", step.AmountGrams)
	}
	return fmt.Sprintf("Add up to %dg water", step.CumulativeGrams)
}
