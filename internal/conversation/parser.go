// Package conversation turns typed commands into intents and prints feedback.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/ottobrew/internal/domain"
	"github.com/hammamikhairi/ottobrew/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches user input to intents using keywords and simple patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

// patternRule maps a regex to an intent. When the regex has a capture group,
// the first group becomes the payload.
type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(start|go|brew|begin|s)$`), domain.IntentStart},
		{regexp.MustCompile(`(?i)^(reset|stop|restart|r)$`), domain.IntentReset},
		{regexp.MustCompile(`(?i)^(?:coffee|dose|c)\s+(\S+?)\s*g?$`), domain.IntentSetCoffee},
		{regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*g$`), domain.IntentSetCoffee},
		{regexp.MustCompile(`(?i)^(?:ratio)\s+(?:1\s*:\s*)?(\S+)$`), domain.IntentSetRatio},
		{regexp.MustCompile(`(?i)^1\s*:\s*(\d+)$`), domain.IntentSetRatio},
		{regexp.MustCompile(`(?i)^(?:taste|profile|t)\s+(\S+)$`), domain.IntentSetTaste},
		{regexp.MustCompile(`(?i)^(standard|balanced|sweet|sweeter|bright|brighter)$`), domain.IntentSetTaste},
		{regexp.MustCompile(`(?i)^(?:strength|body)\s+(\S+)$`), domain.IntentSetStrength},
		{regexp.MustCompile(`(?i)^(light|strong|stronger)$`), domain.IntentSetStrength},
		{regexp.MustCompile(`(?i)^(?:preset|use|p)\s+(\S+)$`), domain.IntentApplyPreset},
		{regexp.MustCompile(`(?i)^(presets|list)$`), domain.IntentListPresets},
		{regexp.MustCompile(`(?i)^(schedule|pours|plan)$`), domain.IntentSchedule},
		{regexp.MustCompile(`(?i)^(status|where|time)$`), domain.IntentStatus},
		{regexp.MustCompile(`(?i)^(method|info|about|i)$`), domain.IntentMethod},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.IntentQuit},
	}
	return p
}

// Parse converts user input into an intent.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		intent := &domain.Intent{Type: rule.intent}
		if takesPayload(rule.intent) && len(m) > 1 {
			intent.Payload = strings.ToLower(m[1])
		}
		return intent, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func takesPayload(t domain.IntentType) bool {
	switch t {
	case domain.IntentSetCoffee, domain.IntentSetRatio, domain.IntentSetTaste,
		domain.IntentSetStrength, domain.IntentApplyPreset:
		return true
	}
	return false
}
