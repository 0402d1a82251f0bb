package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottobrew/internal/display"
	"github.com/hammamikhairi/ottobrew/internal/engine"
)

const methodWidth = 76

type scheduleFlags struct {
	coffee   float64
	ratio    int
	taste    string
	strength string
	preset   string
}

func newScheduleCmd(global *globalFlags) *cobra.Command {
	sf := &scheduleFlags{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the pour schedule and exit",
		Long: `Print the pour schedule for the configured defaults. A preset is ` +
			`applied first, then any parameter flags given on the command line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context(), global)
			if err != nil {
				return err
			}
			if err := applyScheduleFlags(cmd, rt.engine, sf); err != nil {
				return err
			}
			snap := rt.engine.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, display.RenderParams(snap.Params, snap.Schedule))
			fmt.Fprintln(out)
			fmt.Fprintln(out, display.RenderSchedule(snap.Schedule, -1))
			return nil
		},
	}

	f := cmd.Flags()
	f.Float64Var(&sf.coffee, "coffee", engine.DefaultParams.CoffeeGrams, "coffee dose in grams")
	f.IntVar(&sf.ratio, "ratio", engine.DefaultParams.Ratio, "water ratio, 1:N (13-19)")
	f.StringVar(&sf.taste, "taste", engine.DefaultParams.Taste.String(), "taste profile: standard, sweet or bright")
	f.StringVar(&sf.strength, "strength", engine.DefaultParams.Strength.String(), "strength: light, strong or stronger")
	f.StringVar(&sf.preset, "preset", "", "preset to start from (see 'ottobrew presets')")
	return cmd
}

// applyScheduleFlags applies the preset and then only the flags the user set,
// so unset flags keep the configured defaults.
func applyScheduleFlags(cmd *cobra.Command, eng *engine.Engine, sf *scheduleFlags) error {
	if sf.preset != "" {
		if _, err := eng.ApplyPreset(cmd.Context(), sf.preset); err != nil {
			return err
		}
	}
	changed := cmd.Flags().Changed
	if changed("coffee") {
		eng.SetCoffee(sf.coffee)
	}
	if changed("ratio") {
		eng.SetRatio(sf.ratio)
	}
	if changed("taste") {
		if _, err := eng.SetTaste(sf.taste); err != nil {
			return err
		}
	}
	if changed("strength") {
		if _, err := eng.SetStrength(sf.strength); err != nil {
			return err
		}
	}
	return nil
}

func newMethodCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "method",
		Aliases: []string{"info"},
		Short:   "Explain the 4:6 method",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), display.MethodText(methodWidth))
		},
	}
}

func newPresetsCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List brew presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context(), global)
			if err != nil {
				return err
			}
			presets, err := rt.engine.ListPresets(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range presets {
				fmt.Fprintf(out, "%-16s %s\n", p.ID, p.Name)
				if p.Description != "" {
					fmt.Fprintf(out, "%-16s %s\n", "", p.Description)
				}
			}
			return nil
		},
	}
}
