package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/ottobrew/internal/conversation"
	"github.com/hammamikhairi/ottobrew/internal/display"
	"github.com/hammamikhairi/ottobrew/internal/domain"
	"github.com/hammamikhairi/ottobrew/internal/engine"
	"github.com/hammamikhairi/ottobrew/internal/logger"
	"github.com/hammamikhairi/ottobrew/internal/schedule"
)

// screen is the part of display.UI the app writes to.
type screen interface {
	InputChan() <-chan string
	Println(a ...interface{})
	PrintInfo(text string)
	PrintHint(text string)
	PrintUrgent(text string)
	PrintBlock(text string)
	Quit()
}

type cliApp struct {
	engine   *engine.Engine
	parser   domain.IntentParser
	notifier domain.Notifier
	ui       screen
	log      *logger.Logger
}

// runInteractive runs the brew screen until the user quits.
func runInteractive(ctx context.Context, rt *runtime) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui := display.NewUI(rt.engine)
	app := &cliApp{
		engine:   rt.engine,
		parser:   conversation.NewKeywordParser(rt.log.Named("parser")),
		notifier: conversation.NewCLINotifier(rt.log.Named("notify"), ui.PrintInfo, ui.PrintUrgent),
		ui:       ui,
		log:      rt.log,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal until quit.
	if err := ui.Run(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

func (a *cliApp) run(ctx context.Context) {
	in := a.ui.InputChan()
	for {
		var input string
		select {
		case <-ctx.Done():
			return
		case v, ok := <-in:
			if !ok {
				return
			}
			input = strings.TrimSpace(v)
		}
		if input == "" {
			continue
		}

		intent, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("intent: %s (payload=%q)", intent.Type, intent.Payload)
		if quit := a.handleIntent(ctx, intent); quit {
			return
		}
	}
}

// handleIntent runs one command. It reports whether the app should exit.
func (a *cliApp) handleIntent(ctx context.Context, intent *domain.Intent) bool {
	switch intent.Type {
	case domain.IntentStart:
		a.start(ctx)
	case domain.IntentReset:
		a.engine.Reset()
		a.say(ctx, "Timer reset.")
	case domain.IntentSetCoffee:
		a.setCoffee(ctx, intent.Payload)
	case domain.IntentSetRatio:
		a.setRatio(ctx, intent.Payload)
	case domain.IntentSetTaste:
		p, err := a.engine.SetTaste(intent.Payload)
		if err != nil {
			a.sayUrgent(ctx, fmt.Sprintf("Unknown taste %q. Try standard, sweet or bright.", intent.Payload))
			return false
		}
		a.say(ctx, fmt.Sprintf("Taste set to %s. Bloom is now %dg.", p.Taste, a.engine.Schedule().Pours[0].AmountGrams))
	case domain.IntentSetStrength:
		p, err := a.engine.SetStrength(intent.Payload)
		if err != nil {
			a.sayUrgent(ctx, fmt.Sprintf("Unknown strength %q. Try light, strong or stronger.", intent.Payload))
			return false
		}
		a.say(ctx, fmt.Sprintf("Strength set to %s: %d pours.", p.Strength, a.engine.Schedule().Len()))
	case domain.IntentApplyPreset:
		a.applyPreset(ctx, intent.Payload)
	case domain.IntentListPresets:
		a.showPresets(ctx)
	case domain.IntentSchedule:
		snap := a.engine.Snapshot()
		a.ui.PrintBlock(display.RenderSchedule(snap.Schedule, snap.Timer.CurrentStepIndex))
	case domain.IntentStatus:
		a.status(ctx)
	case domain.IntentMethod:
		a.ui.PrintBlock(display.MethodText(methodWidth))
	case domain.IntentHelp:
		a.showHelp()
	case domain.IntentQuit:
		a.engine.Reset()
		a.say(ctx, "Enjoy your coffee.")
		a.ui.Quit()
		return true
	default:
		a.ui.PrintHint(fmt.Sprintf("Didn't catch %q. Type 'help' for commands.", intent.Payload))
	}
	return false
}

func (a *cliApp) say(ctx context.Context, msg string) {
	if err := a.notifier.Notify(ctx, msg); err != nil {
		a.log.Error("notify: %v", err)
	}
}

func (a *cliApp) sayUrgent(ctx context.Context, msg string) {
	if err := a.notifier.NotifyUrgent(ctx, msg); err != nil {
		a.log.Error("notify: %v", err)
	}
}

func (a *cliApp) start(ctx context.Context) {
	if a.engine.Snapshot().Timer.Running() {
		a.ui.PrintHint("Already brewing. Type 'reset' to start over.")
		return
	}
	st := a.engine.Start()
	sched := a.engine.Schedule()
	if sched.Len() == 0 || st.CurrentStepIndex < 0 {
		a.say(ctx, "Timer started.")
		return
	}
	a.say(ctx, fmt.Sprintf("Brewing. %s now.", schedule.Describe(sched.Pours[st.CurrentStepIndex])))
}

func (a *cliApp) setCoffee(ctx context.Context, payload string) {
	grams, err := strconv.ParseFloat(payload, 64)
	if err != nil {
		a.sayUrgent(ctx, fmt.Sprintf("%q is not a dose in grams.", payload))
		return
	}
	p := a.engine.SetCoffee(grams)
	if p.CoffeeGrams != grams {
		a.ui.PrintHint(fmt.Sprintf("Dose must be between %dg and %dg.", domain.MinCoffeeGrams, domain.MaxCoffeeGrams))
	}
	a.say(ctx, fmt.Sprintf("Coffee set to %gg: %dg water.", p.CoffeeGrams, a.engine.Schedule().FinalGrams()))
	if p.CoffeeGrams > 0 && p.CoffeeGrams < domain.RecommendedMinCoffeeGrams {
		a.ui.PrintHint(fmt.Sprintf("Recommended minimum is %dg, with the finest grind.", domain.RecommendedMinCoffeeGrams))
	}
}

func (a *cliApp) setRatio(ctx context.Context, payload string) {
	ratio, err := strconv.Atoi(payload)
	if err != nil {
		a.sayUrgent(ctx, fmt.Sprintf("%q is not a ratio. Try 'ratio 16' or '1:16'.", payload))
		return
	}
	p := a.engine.SetRatio(ratio)
	if p.Ratio != ratio {
		a.ui.PrintHint(fmt.Sprintf("Ratio must be between 1:%d and 1:%d.", domain.MinRatio, domain.MaxRatio))
	}
	a.say(ctx, fmt.Sprintf("Ratio set to 1:%d: %dg water.", p.Ratio, a.engine.Schedule().FinalGrams()))
}

func (a *cliApp) applyPreset(ctx context.Context, id string) {
	p, err := a.engine.ApplyPreset(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.sayUrgent(ctx, fmt.Sprintf("No preset %q. Type 'presets' to list them.", id))
			return
		}
		a.log.Error("applying preset %q: %v", id, err)
		a.sayUrgent(ctx, fmt.Sprintf("Error: %v", err))
		return
	}
	a.say(ctx, fmt.Sprintf("Using %s: %gg at 1:%d, %s, %s.",
		p.Name, p.Params.CoffeeGrams, p.Params.Ratio, p.Params.Taste, p.Params.Strength))
}

func (a *cliApp) showPresets(ctx context.Context) {
	presets, err := a.engine.ListPresets(ctx)
	if err != nil {
		a.sayUrgent(ctx, fmt.Sprintf("Error loading presets: %v", err))
		return
	}
	for _, p := range presets {
		a.ui.PrintInfo(fmt.Sprintf("%-14s %s", p.ID, p.Name))
		if p.Description != "" {
			a.ui.PrintHint(fmt.Sprintf("%-14s %s", "", p.Description))
		}
	}
	a.ui.PrintHint("Type 'preset <id>' to use one.")
}

func (a *cliApp) status(ctx context.Context) {
	snap := a.engine.Snapshot()
	if !snap.Timer.Running() {
		a.say(ctx, "Idle. Type 'start' to begin.")
		return
	}
	msg := fmt.Sprintf("%s elapsed, pour %d/%d",
		display.FormatClock(snap.Timer.ElapsedSeconds),
		snap.Timer.CurrentStepIndex+1, snap.Schedule.Len())
	if i := snap.Timer.CurrentStepIndex; i >= 0 && i < snap.Schedule.Len() {
		msg += ": " + schedule.Describe(snap.Schedule.Pours[i])
	}
	a.say(ctx, msg+".")
}

func (a *cliApp) showHelp() {
	a.ui.PrintInfo("Commands:")
	a.ui.PrintBlock(strings.Join([]string{
		"  start / go          Start the brew timer",
		"  reset / stop        Stop and clear the timer",
		"  coffee 18           Set the coffee dose in grams",
		"  ratio 16 / 1:16     Set the water ratio (1:13 to 1:19)",
		"  taste sweet         Taste profile: standard, sweet, bright",
		"  strength stronger   Strength: light, strong, stronger",
		"  preset classic      Load a preset",
		"  presets             List presets",
		"  schedule            Show the pour schedule",
		"  status              Show elapsed time and the current pour",
		"  method / info       Explain the 4:6 method",
		"  help                Show this message",
		"  quit / exit         Exit",
	}, "\n"))
}
