package preset

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/ottobrew/internal/domain"
	"github.com/hammamikhairi/ottobrew/internal/logger"
)

func TestMemorySourceList(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	presets, err := src.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(presets) != 4 {
		t.Fatalf("expected 4 built-in presets, got %d", len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1].ID > presets[i].ID {
			t.Fatalf("presets not sorted: %s before %s", presets[i-1].ID, presets[i].ID)
		}
	}
}

func TestMemorySourceGet(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	tests := []struct {
		id      string
		wantErr error
	}{
		{"classic", nil},
		{"  Sweet-Light ", nil},
		{"bright-strong", nil},
		{"nonexistent", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, err := src.Get(ctx, tt.id)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Params.Ratio < domain.MinRatio || p.Params.Ratio > domain.MaxRatio {
				t.Fatalf("preset %s has ratio %d out of range", p.ID, p.Params.Ratio)
			}
		})
	}
}

func TestMemorySourceGetReturnsCopy(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	p, err := src.Get(ctx, "classic")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	p.Params.CoffeeGrams = 999

	again, _ := src.Get(ctx, "classic")
	if again.Params.CoffeeGrams != 20 {
		t.Fatalf("stored preset was mutated: %v", again.Params.CoffeeGrams)
	}
}

func TestMemorySourceAdd(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := NewMemorySource(log)
	ctx := context.Background()

	custom := domain.Preset{
		ID:     "Iced",
		Params: domain.BrewParameters{CoffeeGrams: 25, Ratio: 13, Taste: domain.TasteBright, Strength: domain.StrengthLight},
	}
	if err := src.Add(ctx, custom); err != nil {
		t.Fatalf("add: %v", err)
	}

	p, err := src.Get(ctx, "iced")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Name != "iced" {
		t.Fatalf("expected name to default to id, got %q", p.Name)
	}

	if err := src.Add(ctx, custom); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if err := src.Add(ctx, domain.Preset{}); err == nil {
		t.Fatal("expected error for preset without id")
	}
}
