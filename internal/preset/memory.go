// Package preset provides named brew parameter sets.
package preset

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/ottobrew/internal/domain"
	"github.com/hammamikhairi/ottobrew/internal/logger"
)

// Compile-time interface check.
var _ domain.PresetSource = (*MemorySource)(nil)

// MemorySource holds presets in memory. Safe for concurrent use.
type MemorySource struct {
	mu      sync.RWMutex
	presets map[string]*domain.Preset
	log     *logger.Logger
}

// NewMemorySource creates a preset source preloaded with the built-in presets.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{
		presets: make(map[string]*domain.Preset),
		log:     log,
	}
	src.seed()
	return src
}

// List returns summaries of all presets sorted by ID.
func (s *MemorySource) List(ctx context.Context) ([]domain.PresetSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PresetSummary, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, domain.PresetSummary{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Get returns a preset by ID. IDs are case-insensitive.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.presets[normalizeID(id)]
	if !ok {
		s.log.Debug("preset not found: %s", id)
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// Add registers a preset. Adding an ID that already exists returns
// ErrAlreadyExists.
func (s *MemorySource) Add(ctx context.Context, p domain.Preset) error {
	id := normalizeID(p.ID)
	if id == "" {
		return fmt.Errorf("preset id is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.presets[id]; ok {
		return fmt.Errorf("preset %q: %w", id, domain.ErrAlreadyExists)
	}
	p.ID = id
	if p.Name == "" {
		p.Name = id
	}
	s.presets[id] = &p
	s.log.Debug("added preset %s", id)
	return nil
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// seed populates the source with built-in presets.
func (s *MemorySource) seed() {
	presets := []*domain.Preset{
		{
			ID:          "classic",
			Name:        "Classic 4:6",
			Description: "20g at 1:15, even first pours, two finishing pours.",
			Params:      domain.BrewParameters{CoffeeGrams: 20, Ratio: 15, Taste: domain.TasteStandard, Strength: domain.StrengthStrong},
		},
		{
			ID:          "sweet-light",
			Name:        "Sweet & Light",
			Description: "Small bloom for sweetness, one long finishing pour for a lighter body.",
			Params:      domain.BrewParameters{CoffeeGrams: 20, Ratio: 16, Taste: domain.TasteSweet, Strength: domain.StrengthLight},
		},
		{
			ID:          "bright-strong",
			Name:        "Bright & Strong",
			Description: "Large bloom for acidity, three finishing pours for intensity.",
			Params:      domain.BrewParameters{CoffeeGrams: 20, Ratio: 14, Taste: domain.TasteBright, Strength: domain.StrengthStronger},
		},
		{
			ID:          "big-batch",
			Name:        "Big Batch",
			Description: "30g at 1:15 for two cups.",
			Params:      domain.BrewParameters{CoffeeGrams: 30, Ratio: 15, Taste: domain.TasteStandard, Strength: domain.StrengthStrong},
		},
	}
	for _, p := range presets {
		s.presets[p.ID] = p
	}
	s.log.Debug("seeded %d presets", len(presets))
}
