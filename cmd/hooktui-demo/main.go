// Command hooktui-demo runs small programs built on hooktui.
//
// Usage:
//
//	hooktui-demo counter      Inline counter with a focusable name input
//	hooktui-demo chat         Scrollback chat fed by a background goroutine
//	hooktui-demo dashboard    Fullscreen dashboard redrawn on a timer
//	hooktui-demo pick [item]  Fuzzy picker over the arguments or stdin lines
//
// Settings are read from ~/.config/hooktui/config.yaml and the file named by
// --config. Flags override both.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	tui "github.com/grindlemire/hooktui"
	"github.com/grindlemire/hooktui/internal/config"
	"github.com/grindlemire/hooktui/internal/debug"
)

const version = "0.1.0"

var (
	configPath string
	flagFull   bool
	flagMouse  bool
	flagTick   time.Duration
	flagDebug  string

	// cfg is loaded once by the root command's PersistentPreRunE.
	cfg config.Config

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "hooktui-demo"})
)

var rootCmd = &cobra.Command{
	Use:     "hooktui-demo",
	Short:   "hooktui-demo - example programs for the hooktui runtime",
	Long:    "hooktui-demo runs small terminal programs that exercise hooks, focus, inline and fullscreen rendering.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("fullscreen") {
			loaded.Fullscreen = flagFull
		}
		if flags.Changed("mouse") {
			loaded.Mouse = flagMouse
		}
		if flags.Changed("tick") {
			loaded.Tick = config.Duration(flagTick)
		}
		if flags.Changed("debug-log") {
			loaded.DebugLog = flagDebug
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		if cfg.DebugLog != "" {
			if err := debug.Init(cfg.DebugLog); err != nil {
				return fmt.Errorf("open debug log: %w", err)
			}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	pf.BoolVar(&flagFull, "fullscreen", false, "draw on the alternate screen")
	pf.BoolVar(&flagMouse, "mouse", false, "enable mouse reporting")
	pf.DurationVar(&flagTick, "tick", 0, "render at a fixed interval (e.g. 250ms)")
	pf.StringVar(&flagDebug, "debug-log", "", "write debug logs to this file")
}

// newApp builds an app from the loaded config plus extra.
func newApp(render tui.RenderFunc, extra ...tui.AppOption) (*tui.App, error) {
	opts := append(cfg.Options(), tui.WithLogger(debug.Logger()))
	opts = append(opts, extra...)

	app, err := tui.NewApp(render, opts...)
	if err != nil {
		return nil, fmt.Errorf("create app: %w", err)
	}
	return app, nil
}

// runApp builds an app and runs it until it exits.
func runApp(ctx context.Context, render tui.RenderFunc, extra ...tui.AppOption) error {
	app, err := newApp(render, extra...)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

// Execute runs the CLI.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	_ = debug.Close()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
