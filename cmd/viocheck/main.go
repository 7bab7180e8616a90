package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/viocheck/internal/adapters/fs"
	"github.com/bft-labs/viocheck/internal/app"
	"github.com/bft-labs/viocheck/internal/cliconfig"
	"github.com/bft-labs/viocheck/internal/domain"
	"github.com/bft-labs/viocheck/internal/report"
	"github.com/bft-labs/viocheck/pkg/log"
)

const longHelp = `Check whether a camera delivers frames fast enough for VIO to initialize.

viocheck reads a log written by the visual-inertial odometry subsystem, picks
up every "timestamp: <N> ns" frame line, and reports the average delay between
frames and the resulting camera rate. Rates under --min-fps are flagged.

Configuration is read from $HOME/.viocheck/config.toml (if present), then
VIOCHECK_* environment variables, then flags.`

var exampleUsage = strings.TrimSpace(`
  viocheck ./log.txt
  viocheck --log /sdcard/vio/log.txt --detail
  VIOCHECK_MIN_FPS=25 viocheck ./log.txt --strict
`)

// errVerdict marks a non-OK outcome under --strict. The message has already
// been printed, so main only sets the exit code.
var errVerdict = errors.New("check failed")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd(stdout, stderr io.Writer, logger zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "viocheck [log-file]",
		Short:         "Measure camera frame rate from a VIO log",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// A positional path counts as an explicit --log.
			if len(args) == 1 {
				if changed["log"] {
					return fmt.Errorf("%w: log path given both as argument and --log", domain.ErrInvalidConfig)
				}
				cfg.LogPath = args[0]
				changed["log"] = true
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && (changed["config"] || cliconfig.FileExists(cfgFile)) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			level, _ := log.ParseLevel(cfg.LogLevel)
			logger = logger.Level(level)
			logger.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, stdout, log.NewZerologAdapterWithLogger(logger))
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.viocheck/config.toml)")
	root.Flags().StringVar(&cfg.LogPath, "log", cfg.LogPath, "VIO log file to analyze (or pass it as the argument)")
	root.Flags().Float64Var(&cfg.MinFPS, "min-fps", cfg.MinFPS, "frame rate below which the camera is reported too slow")
	root.Flags().Float64Var(&cfg.RequiredFPS, "required-fps", cfg.RequiredFPS, "frame rate quoted as the VIO requirement in the warning")
	root.Flags().BoolVar(&cfg.Detail, "detail", cfg.Detail, "include interval spread and line counters")
	root.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero on missing file, insufficient data, or a slow camera")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level on stderr (debug, info, warn, error)")

	return root
}

// run performs one analysis and prints the result to stdout.
func run(ctx context.Context, cfg cliconfig.Config, stdout io.Writer, logger log.Logger) error {
	analyzer := app.NewAnalyzer(
		app.AnalyzerConfig{Thresholds: cfg.Thresholds()},
		fs.NewLogFileOpener(logger),
		logger,
	)

	if err := report.Header(stdout, cfg.LogPath); err != nil {
		return err
	}

	r, err := analyzer.Analyze(ctx, cfg.LogPath)
	if err != nil {
		handled, werr := report.WriteError(stdout, err)
		if werr != nil {
			return werr
		}
		if !handled {
			return err
		}
		logger.Debug("analysis stopped", log.Err(err))
		if cfg.Strict {
			return errVerdict
		}
		return nil
	}

	if err := report.Write(stdout, r, report.Options{Detail: cfg.Detail}); err != nil {
		return err
	}
	if cfg.Strict && r.Verdict != domain.VerdictOK {
		return errVerdict
	}
	return nil
}

func main() {
	logger := cliconfig.Logger()

	root := newRootCmd(os.Stdout, os.Stderr, logger)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errVerdict) {
			logger.Error().Err(err).Msg("viocheck")
		}
		os.Exit(1)
	}
}
