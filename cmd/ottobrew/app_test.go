package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottobrew/internal/conversation"
	"github.com/hammamikhairi/ottobrew/internal/engine"
	"github.com/hammamikhairi/ottobrew/internal/logger"
	"github.com/hammamikhairi/ottobrew/internal/preset"
)

// recordingScreen captures everything the app prints.
type recordingScreen struct {
	in     chan string
	info   []string
	hints  []string
	urgent []string
	blocks []string
	quit   bool
}

func (s *recordingScreen) InputChan() <-chan string { return s.in }
func (s *recordingScreen) Println(a ...interface{}) { s.info = append(s.info, fmt.Sprint(a...)) }
func (s *recordingScreen) PrintInfo(text string) { s.info = append(s.info, text) }
func (s *recordingScreen) PrintHint(text string) { s.hints = append(s.hints, text) }
func (s *recordingScreen) PrintUrgent(text string) { s.urgent = append(s.urgent, text) }
func (s *recordingScreen) PrintBlock(text string) { s.blocks = append(s.blocks, text) }
func (s *recordingScreen) Quit() { s.quit = true }
func (s *recordingScreen) last(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

func setupApp(t *testing.T) (*cliApp, *recordingScreen) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	eng := engine.New(preset.NewMemorySource(log), log)
	t.Cleanup(eng.Close)

	scr := &recordingScreen{in: make(chan string, 16)}
	return &cliApp{
		engine:   eng,
		parser:   conversation.NewKeywordParser(log),
		notifier: conversation.NewCLINotifier(log, scr.PrintInfo, scr.PrintUrgent),
		ui:       scr,
		log:      log,
	}, scr
}

// send parses and handles each line in order.
func send(t *testing.T, app *cliApp, lines ...string) {
	t.Helper()
	ctx := context.Background()
	for _, l := range lines {
		intent, err := app.parser.Parse(ctx, l)
		require.NoError(t, err)
		app.handleIntent(ctx, intent)
	}
}

func TestAppSetsParameters(t *testing.T) {
	app, scr := setupApp(t)

	send(t, app, "coffee 30")
	require.Equal(t, "Coffee set to 30g: 450g water.", scr.last(scr.info))

	send(t, app, "1:16")
	require.Equal(t, "Ratio set to 1:16: 480g water.", scr.last(scr.info))

	send(t, app, "taste sweet")
	require.Contains(t, scr.last(scr.info), "Taste set to sweet")

	send(t, app, "strength stronger")
	require.Equal(t, "Strength set to stronger: 5 pours.", scr.last(scr.info))

	p := app.engine.Params()
	require.Equal(t, 30.0, p.CoffeeGrams)
	require.Equal(t, 16, p.Ratio)
}

func TestAppReportsBadInput(t *testing.T) {
	app, scr := setupApp(t)

	send(t, app, "coffee lots", "ratio x", "taste smoky", "strength decaf", "preset nope")
	require.Len(t, scr.urgent, 5)
	require.Contains(t, scr.urgent[2], "Unknown taste")
	require.Contains(t, scr.urgent[4], "No preset")
	require.Equal(t, engine.DefaultParams, app.engine.Params())

	send(t, app, "ratio 40")
	require.Contains(t, scr.last(scr.hints), "between 1:13 and 1:19")
	require.Equal(t, 19, app.engine.Params().Ratio)

	send(t, app, "coffee 4")
	require.Contains(t, scr.last(scr.hints), "Recommended minimum is 6g")

	send(t, app, "espresso please")
	require.Contains(t, scr.last(scr.hints), "Didn't catch")
}

func TestAppStartStatusReset(t *testing.T) {
	app, scr := setupApp(t)

	send(t, app, "status")
	require.Equal(t, "Idle. Type 'start' to begin.", scr.last(scr.info))

	send(t, app, "start")
	require.Equal(t, "Brewing. Bloom with 60g now.", scr.last(scr.info))
	require.True(t, app.engine.Snapshot().Timer.Running())

	send(t, app, "go")
	require.Contains(t, scr.last(scr.hints), "Already brewing")

	send(t, app, "status")
	require.Contains(t, scr.last(scr.info), "pour 1/4: Bloom with 60g")

	send(t, app, "reset")
	require.Equal(t, "Timer reset.", scr.last(scr.info))
	require.False(t, app.engine.Snapshot().Timer.Running())
}

func TestAppPresetsAndInfo(t *testing.T) {
	app, scr := setupApp(t)

	send(t, app, "preset sweet-light")
	require.Contains(t, scr.last(scr.info), "Using")
	require.Equal(t, 3, app.engine.Schedule().Len())

	send(t, app, "presets")
	var listed []string
	for _, l := range scr.info {
		listed = append(listed, strings.Fields(l)...)
	}
	require.Contains(t, listed, "classic")
	require.Contains(t, listed, "big-batch")

	send(t, app, "schedule", "method")
	require.Len(t, scr.blocks, 2)
	require.Contains(t, scr.blocks[0], "Bloom with")
	require.Contains(t, scr.blocks[1], "4:6")
}

func TestAppQuit(t *testing.T) {
	app, scr := setupApp(t)
	send(t, app, "start")

	intent, err := app.parser.Parse(context.Background(), "quit")
	require.NoError(t, err)
	require.True(t, app.handleIntent(context.Background(), intent))
	require.True(t, scr.quit)
	require.False(t, app.engine.Snapshot().Timer.Running())
}

func TestAppRunStopsOnQuit(t *testing.T) {
	app, scr := setupApp(t)
	scr.in <- "coffee 18"
	scr.in <- "quit"

	done := make(chan struct{})
	go func() {
		app.run(context.Background())
		close(done)
	}()
	<-done

	require.Equal(t, 18.0, app.engine.Params().CoffeeGrams)
	require.True(t, scr.quit)
}
