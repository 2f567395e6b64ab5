// Package commands implements the CLI commands for nsvalidate.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/nsvalidate/cmd"
	"github.com/thoreinstein/nsvalidate/internal/config"
	"github.com/thoreinstein/nsvalidate/internal/errors"
	"github.com/thoreinstein/nsvalidate/internal/logging"
	"github.com/thoreinstein/nsvalidate/internal/paths"
)

// debugEnv raises the log level when no -v flag is given.
const debugEnv = "NSVALIDATE_DEBUG"

var (
	// projectDirFlag holds the value of the -C/--dir flag.
	projectDirFlag string

	// configFlag holds the value of the --config flag.
	configFlag string

	// jsonOutput holds the value of the --json flag.
	jsonOutput bool

	// quiet holds the value of the -q/--quiet flag.
	quiet bool

	// noColor holds the value of the --no-color flag.
	noColor bool

	// verbosity holds the count of -v flags.
	verbosity int

	// logFormat holds the value of the --log-format flag.
	logFormat string

	// logFile holds the path to the log file.
	logFile string
)

// Resolved during cobra initialization, after flags are parsed.
var (
	projectDir    string
	projectDirErr error
	loadedConfig  *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&projectDirFlag, "dir", "C", ".",
		"project directory to validate")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"config file (default: .nsvalidate.yaml in the project, then the user config dir)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress output, exit code only")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase log verbosity (e.g., -v, -vv)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("nsvalidate version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	loadedConfig, configLoadErr = nil, nil

	projectDir, projectDirErr = paths.ProjectDir(projectDirFlag)
	if projectDirErr != nil {
		return
	}

	config.Init()
	loadedConfig, configLoadErr = config.Load(projectDir, configFlag)
}

var rootCmd = &cobra.Command{
	Use:   "nsvalidate",
	Short: "Validate a Nightscout API backend project",
	Long: `nsvalidate checks that a Nightscout-compatible API backend checkout is
complete before it is installed or deployed.

It reports every expected project file as present or missing, checks that
package.json is valid JSON, lists which required npm dependencies are
declared, and prints a summary of the API endpoints the backend serves.

The file list, manifest path and required dependencies can be overridden
with a .nsvalidate.yaml file in the project directory or a config file in
the user config directory.

Exit codes:
  0 - All files present and package.json valid (or absent)
  1 - Files missing, invalid JSON, or a usage/config error
  2 - package.json could not be read for the dependency check`,
	Example: `  # Validate the current directory
  nsvalidate

  # Validate another checkout and emit JSON
  nsvalidate -C ../nightscout-api --json

  # Use in CI, exit code only
  nsvalidate --quiet

  See Also: nsvalidate checklist, nsvalidate endpoints`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if err := validateOutputFlags(); err != nil {
			return err
		}
		return checkProjectConfig(cmd)
	},
	RunE: runValidate,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	format, ok := logging.ParseFormat(logFormat)
	if !ok {
		return errors.NewUserError(errors.Newf("invalid log format %q", logFormat), "Valid formats: text, json")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{Level: level}

	var primaryHandler slog.Handler
	switch format {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	if noColor {
		color.NoColor = true
	}

	return nil
}

// validateOutputFlags ensures output flags are mutually exclusive.
func validateOutputFlags() error {
	if jsonOutput && quiet {
		return errors.NewUserError(errors.New("flags --json and --quiet are mutually exclusive"), "")
	}
	return nil
}

// checkProjectConfig surfaces errors captured by initConfig. Commands that
// do not read the project skip it.
func checkProjectConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "gen-doc", "endpoints":
		return nil
	}

	if projectDirErr != nil {
		return errors.NewUserError(projectDirErr, "Check the --dir flag")
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// useColor reports whether text reports should be colored.
func useColor(cmd *cobra.Command) bool {
	return !noColor && logging.SupportsColor(cmd.OutOrStdout())
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
