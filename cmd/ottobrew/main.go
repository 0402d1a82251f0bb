// OttoBrew: a 4:6 pour-over brew calculator and timer.
//
// Usage:
//
//	ottobrew [--config file] [--verbose] [--quiet] [--log-file path]
//	ottobrew schedule [--coffee 20] [--ratio 15] [--taste standard] [--strength strong] [--preset id]
//	ottobrew method
//	ottobrew presets
package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/hammamikhairi/ottobrew/internal/config"
	"github.com/hammamikhairi/ottobrew/internal/engine"
	"github.com/hammamikhairi/ottobrew/internal/logger"
	"github.com/hammamikhairi/ottobrew/internal/preset"
	"github.com/hammamikhairi/ottobrew/internal/timer"
)

const appVersion = "0.1.0"

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
	quiet      bool
	logFile    string
}

// runtime is what every command needs once flags and config are resolved.
type runtime struct {
	cfg    config.Config
	log    *logger.Logger
	engine *engine.Engine
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "ottobrew",
		Short: "4:6 pour-over brew calculator and timer",
		Long: `OttoBrew computes a 4:6 method pour schedule from a coffee dose, ` +
			`a water ratio, a taste profile and a strength, then times the brew ` +
			`pour by pour in an interactive terminal screen.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), rt)
		},
	}
	cmd.Version = appVersion
	cmd.SetVersionTemplate("ottobrew v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $"+config.EnvConfig+" or "+config.DefaultPath+")")
	pf.BoolVar(&flags.verbose, "verbose", false, "enable verbose/debug logging")
	pf.BoolVar(&flags.quiet, "quiet", false, "disable all logging")
	pf.StringVar(&flags.logFile, "log-file", "", "file to write logs to (use \"stderr\" to log to console)")

	cmd.AddCommand(
		newScheduleCmd(flags),
		newMethodCmd(),
		newPresetsCmd(flags),
	)
	return cmd
}

// setup loads the config, opens the log and builds the engine. The engine's
// timer is disposed on exit.
func setup(ctx context.Context, flags *globalFlags) (*runtime, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(flags.configPath, logger.New(logger.LevelOff, nil))
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if flags.verbose {
		level = logger.LevelVerbose
	}
	if flags.quiet {
		level = logger.LevelOff
	}

	logPath := cfg.Log.File
	if flags.logFile != "" {
		logPath = flags.logFile
	}
	logOut := openLog(logPath)

	// Route the standard logger to the same place so nothing lands on the
	// brew screen.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(level, logOut)
	log.Info("ottobrew v%s starting", appVersion)

	presets := preset.NewMemorySource(log.Named("preset"))
	for _, p := range cfg.DomainPresets() {
		if err := presets.Add(ctx, p); err != nil {
			log.Warn("skipping configured preset %q: %v", p.ID, err)
		}
	}

	defaults, err := cfg.Defaults.Params()
	if err != nil {
		return nil, err
	}

	eng := engine.New(presets, log.Named("engine"),
		engine.WithDefaults(defaults),
		engine.WithTimerOptions(timer.WithTickInterval(cfg.Timer.TickInterval)),
	)
	atexit.Register(eng.Close)

	return &runtime{cfg: cfg, log: log, engine: eng}, nil
}

// openLog opens path for appending, creating its directory. "stderr" or an
// empty path logs to the console, as does a file that cannot be opened.
func openLog(path string) io.Writer {
	if path == "" || path == "stderr" {
		return os.Stderr
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr
	}
	// Exit handlers run in no fixed order and may still log, so the file
	// stays open until the process ends.
	return f
}
