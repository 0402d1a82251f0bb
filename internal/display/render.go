package display

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/ottobrew/internal/domain"
	"github.com/hammamikhairi/ottobrew/internal/schedule"
)

// Step markers.
const (
	markDone    = "✓"
	markCurrent = "▸"
	markPending = " "
)

// FormatClock formats whole seconds as m:ss. Negative values read 0:00.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// RenderParams returns a one-line summary of the brew parameters.
func RenderParams(p domain.BrewParameters, s domain.PourSchedule) string {
	return labelStyle.Render("coffee ") + valueStyle.Render(fmt.Sprintf("%gg", p.CoffeeGrams)) +
		sepStyle.Render("  │  ") +
		labelStyle.Render("ratio ") + valueStyle.Render(fmt.Sprintf("1:%d", p.Ratio)) +
		sepStyle.Render("  │  ") +
		labelStyle.Render("taste ") + valueStyle.Render(p.Taste.String()) +
		sepStyle.Render("  │  ") +
		labelStyle.Render("strength ") + valueStyle.Render(p.Strength.String()) +
		sepStyle.Render("  │  ") +
		labelStyle.Render("water ") + valueStyle.Render(fmt.Sprintf("%dg", s.FinalGrams()))
}

// RenderSchedule renders one row per pour: its start time, instruction and
// amount. Steps before current are marked done and the current step is
// highlighted. Pass -1 when no brew is running.
func RenderSchedule(s domain.PourSchedule, current int) string {
	if s.Len() == 0 {
		return secondaryStyle.Render("  no pours")
	}

	var b strings.Builder
	for i, step := range s.Pours {
		mark, style := markPending, pendingRowStyle
		switch {
		case current >= 0 && i < current:
			mark, style = markDone, doneRowStyle
		case i == current:
			mark, style = markCurrent, currentRowStyle
		}
		row := fmt.Sprintf("%s %5s  %-26s +%dg",
			mark,
			FormatClock(int(step.Offset.Seconds())),
			schedule.Describe(step),
			step.AmountGrams,
		)
		b.WriteString("  ")
		b.WriteString(style.Render(row))
		if i < s.Len()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderStatus renders the timer state, e.g. "Running 1:32  pour 3/4".
func RenderStatus(st domain.TimerState, total int) string {
	if !st.Running() {
		return statusIdleStyle.Render("Idle") + " " +
			clockStyle.Render(FormatClock(st.ElapsedSeconds))
	}
	return statusRunStyle.Render("Running") + " " +
		clockStyle.Render(FormatClock(st.ElapsedSeconds)) +
		labelStyle.Render(fmt.Sprintf("  pour %d/%d", st.CurrentStepIndex+1, total))
}
