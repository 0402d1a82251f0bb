package schedule

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottobrew/internal/domain"
)

var (
	allTastes    = []domain.TasteProfile{domain.TasteStandard, domain.TasteSweet, domain.TasteBright}
	allStrengths = []domain.Strength{domain.StrengthLight, domain.StrengthStrong, domain.StrengthStronger}
)

func amounts(s domain.PourSchedule) []int {
	out := make([]int, len(s.Pours))
	for i, p := range s.Pours {
		out[i] = p.AmountGrams
	}
	return out
}

func cumulatives(s domain.PourSchedule) []int {
	out := make([]int, len(s.Pours))
	for i, p := range s.Pours {
		out[i] = p.CumulativeGrams
	}
	return out
}

func TestComputeClassic(t *testing.T) {
	s := Compute(domain.BrewParameters{
		CoffeeGrams: 20,
		Ratio:       15,
		Taste:       domain.TasteStandard,
		Strength:    domain.StrengthStrong,
	})

	require.InDelta(t, 300.0, s.TotalWaterGrams, 1e-9)
	require.Equal(t, []int{60, 60, 90, 90}, amounts(s))
	require.Equal(t, []int{60, 120, 210, 300}, cumulatives(s))
	require.Equal(t, 300, s.FinalGrams())
}

func TestComputeSplits(t *testing.T) {
	tests := []struct {
		name     string
		taste    domain.TasteProfile
		strength domain.Strength
		want     []int
	}{
		{"sweet light", domain.TasteSweet, domain.StrengthLight, []int{50, 70, 180}},
		{"bright strong", domain.TasteBright, domain.StrengthStrong, []int{70, 50, 90, 90}},
		{"standard stronger", domain.TasteStandard, domain.StrengthStronger, []int{60, 60, 60, 60, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Compute(domain.BrewParameters{CoffeeGrams: 20, Ratio: 15, Taste: tt.taste, Strength: tt.strength})
			require.Equal(t, tt.want, amounts(s))
		})
	}
}

func TestComputeInvariants(t *testing.T) {
	for coffee := 0.0; coffee <= 60; coffee += 0.5 {
		for ratio := domain.MinRatio; ratio <= domain.MaxRatio; ratio++ {
			for _, taste := range allTastes {
				for _, strength := range allStrengths {
					p := domain.BrewParameters{CoffeeGrams: coffee, Ratio: ratio, Taste: taste, Strength: strength}
					s := Compute(p)

					require.Len(t, s.Pours, 2+PourCount(strength), "params %+v", p)

					sum, prev := 0, 0
					for i, pour := range s.Pours {
						require.Equal(t, i, pour.Index)
						require.Equal(t, StepStart(i), pour.Offset)
						sum += pour.AmountGrams
						require.Equal(t, sum, pour.CumulativeGrams)
						require.GreaterOrEqual(t, pour.CumulativeGrams, prev)
						prev = pour.CumulativeGrams
						if i < 2 {
							require.Equal(t, domain.PhaseFirst, pour.Phase)
						} else {
							require.Equal(t, domain.PhaseSecond, pour.Phase)
						}
					}

					drift := math.Abs(float64(sum) - math.Round(s.TotalWaterGrams))
					require.LessOrEqual(t, drift, float64(len(s.Pours)), "params %+v", p)
				}
			}
		}
	}
}

func TestComputeIsPure(t *testing.T) {
	p := domain.BrewParameters{CoffeeGrams: 17.5, Ratio: 16, Taste: domain.TasteSweet, Strength: domain.StrengthStronger}
	require.Equal(t, Compute(p), Compute(p))
}

func TestTasteMonotonicity(t *testing.T) {
	for _, coffee := range []float64{10, 15, 20, 30, 50} {
		base := domain.BrewParameters{CoffeeGrams: coffee, Ratio: 15, Strength: domain.StrengthStrong}

		base.Taste = domain.TasteSweet
		sweet := Compute(base).Pours[0].AmountGrams
		base.Taste = domain.TasteStandard
		standard := Compute(base).Pours[0].AmountGrams
		base.Taste = domain.TasteBright
		bright := Compute(base).Pours[0].AmountGrams

		require.Less(t, sweet, standard, "coffee=%v", coffee)
		require.Less(t, standard, bright, "coffee=%v", coffee)
	}
}

func TestComputeZeroCoffee(t *testing.T) {
	s := Compute(domain.BrewParameters{Ratio: 15, Strength: domain.StrengthLight})
	require.Equal(t, []int{0, 0, 0}, amounts(s))
	require.Zero(t, s.FinalGrams())
}

func TestDescribe(t *testing.T) {
	s := Compute(domain.BrewParameters{CoffeeGrams: 20, Ratio: 15, Strength: domain.StrengthStrong})
	require.Equal(t, "Bloom with 60g", Describe(s.Pours[0]))
	require.Equal(t, "Add up to 210g water", Describe(s.Pours[2]))
	require.Equal(t, 90*time.Second, s.Pours[2].Offset)
}
