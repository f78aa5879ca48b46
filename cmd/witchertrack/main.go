// witchertrack tracks Geralt's alchemy, trophies and bestiary one sentence
// at a time.
// Usage: witchertrack [--lore <path>] [--plain] [--script <file>] [--trace]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nathoo/witchertrack/cli"
	"github.com/nathoo/witchertrack/engine"
	"github.com/nathoo/witchertrack/engine/snapshot"
	"github.com/nathoo/witchertrack/internal/config"
	"github.com/nathoo/witchertrack/internal/logger"
	"github.com/nathoo/witchertrack/loader"
	"github.com/nathoo/witchertrack/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	// Global flags
	lorePath   string
	plain      bool
	scriptFile string
	trace      bool
	verbose    bool
	logFile    string
	noPrompt   bool
	dumpState  bool

	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "witchertrack",
	Short: "Track Geralt's alchemy, trophies and bestiary",
	Long: `witchertrack reads one sentence per line and keeps Geralt's inventory,
potion formulas and bestiary up to date.

  Geralt loots 2 Rebis, 1 Vitriol
  Geralt learns Swallow potion consists of 2 Rebis, 1 Vitriol
  Geralt brews Swallow
  Total potion ?

Type Exit to leave. On a terminal the full-screen interface starts unless
--plain or --script is given.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if verbose {
			cfg.LogLevel = zapcore.DebugLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("lore") {
			cfg.Lore = lorePath
		}
		if noPrompt {
			cfg.Prompt = ""
		}

		var err error
		log, err = logger.New(cfg)
		if err != nil {
			return err
		}
		log.Debug("logger ready",
			zap.Stringer("level", logger.Level(log)),
			zap.String("env", cfg.Environment),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: runTracker,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "witchertrack %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&lorePath, "lore", "", "Lua lore file or directory to seed the world (env WITCHER_LORE)")
	f.BoolVar(&plain, "plain", false, "Use the line-oriented interface even on a terminal")
	f.StringVar(&scriptFile, "script", "", "Read commands from a file, echoing each one")
	f.BoolVar(&trace, "trace", false, "Print world events after each line")
	f.BoolVar(&noPrompt, "no-prompt", false, "Do not print a prompt before each line")
	f.BoolVar(&dumpState, "dump-state", false, "Write the final world as JSON to stderr")

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr (env WITCHER_LOG_FILE)")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runTracker seeds the engine and hands it to the CLI or TUI.
func runTracker(cmd *cobra.Command, args []string) error {
	eng := engine.New(log)

	banner, err := seed(eng, cfg.Lore)
	if err != nil {
		return err
	}

	if dumpState {
		defer writeState(cmd.ErrOrStderr(), eng)
	}

	// Script mode: read from the file and echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()

		c := newCLI(eng)
		c.In = f
		c.EchoInput = true
		return c.Run()
	}

	// Use the plain CLI if asked to or if either end is not a terminal.
	if plain || !isTerminal() {
		return newCLI(eng).Run()
	}

	return tui.Run(eng, banner...)
}

// seed loads lore into eng when a path is configured. It returns banner
// lines describing what was loaded.
func seed(eng *engine.Engine, path string) ([]string, error) {
	banner := []string{fmt.Sprintf("witchertrack %s", version)}
	if path == "" {
		return banner, nil
	}

	lore, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading lore: %w", err)
	}
	for _, w := range lore.Warnings {
		log.Warn("lore warning", zap.String("path", path), zap.String("warning", w))
	}

	eng.Seed(lore.Effects())
	log.Info("lore loaded",
		zap.String("path", path),
		zap.Int("formulas", len(lore.Formulas)),
		zap.Int("beasts", len(lore.Beasts)),
	)

	banner = append(banner, fmt.Sprintf("Lore loaded from %s: %d formulas, %d beasts.",
		path, len(lore.Formulas), len(lore.Beasts)))
	return banner, nil
}

func newCLI(eng *engine.Engine) *cli.CLI {
	c := cli.New(eng)
	c.Prompt = cfg.Prompt
	c.Trace = trace
	c.Log = log
	return c
}

func writeState(w io.Writer, eng *engine.Engine) {
	data, err := snapshot.Marshal(eng.World)
	if err != nil {
		log.Error("state dump failed", zap.Error(err))
		return
	}
	fmt.Fprintln(w, string(data))
}

// isTerminal reports whether both stdin and stdout are attached to a
// terminal.
func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
