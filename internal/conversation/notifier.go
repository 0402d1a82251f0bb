package conversation

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/ottobrew/internal/domain"
	"github.com/hammamikhairi/ottobrew/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*CLINotifier)(nil)

// ANSI escape codes used when no styled printer is supplied.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	red   = "\033[31m"
	cyan  = "\033[36m"
)

// LineFunc prints one line of feedback. display.UI.PrintInfo and
// display.UI.PrintUrgent both match it.
type LineFunc func(text string)

// CLINotifier prints command feedback, one line per message.
type CLINotifier struct {
	log    *logger.Logger
	info   LineFunc
	urgent LineFunc
}

// NewCLINotifier creates a notifier. Nil printers fall back to stdout with
// ANSI colours.
func NewCLINotifier(log *logger.Logger, info, urgent LineFunc) *CLINotifier {
	if info == nil {
		info = func(text string) { fmt.Println(cyan + text + reset) }
	}
	if urgent == nil {
		urgent = func(text string) { fmt.Println(red + bold + text + reset) }
	}
	return &CLINotifier{log: log, info: info, urgent: urgent}
}

// Notify prints a normal feedback line.
func (n *CLINotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	n.info(message)
	return nil
}

// NotifyUrgent prints an error line.
func (n *CLINotifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	n.urgent(message)
	return nil
}
