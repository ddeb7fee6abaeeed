package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/eectag/internal/app"
	"github.com/specialistvlad/eectag/internal/settings"
	"github.com/specialistvlad/eectag/internal/tag"
	"github.com/specialistvlad/eectag/internal/tagstore"
	"github.com/spf13/cobra"
)

const (
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// options are the raw flag values before they are merged with the settings
// file.
type options struct {
	tagName      string
	configFile   string
	program      string
	logLevel     string
	logFormat    string
	settingsPath string
	atomic       bool
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly (help was printed),
// or an ExitError. environ is the process environment in os.Environ form and
// is only used to evaluate the settings file.
func Parse(args []string, output io.Writer, environ []string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		opts   options
		config *app.Config
	)

	cmd := &cobra.Command{
		Use:   "eectag --tag-name NAME --config-file PATH --program PATH [--] [PROGRAM_ARGS...]",
		Short: "Record a named tag for a program invocation",
		Long: `eectag stores a named tag that associates a configuration file, a program
and the arguments to run it with. The tag is written to <home>/.eec/NAME.tag,
replacing any previous tag of the same name.

Program arguments that start with '-' must follow '--'.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			cfg, err := buildConfig(cmd, opts, positional, environ)
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVarP(&opts.tagName, "tag-name", "t", "", "Tag identifier, used as the file name stem.")
	flags.StringVar(&opts.configFile, "config-file", "", "Path to the configuration file.")
	flags.StringVar(&opts.program, "program", "", "Path to the program.")
	flags.StringVar(&opts.logLevel, "log-level", defaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", defaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&opts.settingsPath, "settings", "", "Optional HCL settings file.")
	flags.BoolVar(&opts.atomic, "atomic", false, "Replace the tag file atomically (write to a temp file, then rename).")
	for _, name := range []string{"tag-name", "config-file", "program"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !isClassified(err) {
			err = fmt.Errorf("%w: %w", tag.ErrArgument, err)
		}
		return nil, false, NewExitError(err)
	}

	if config == nil {
		slog.Debug("No run requested, exiting.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// buildConfig merges defaults, the settings file and explicitly set flags, in
// increasing order of precedence.
func buildConfig(cmd *cobra.Command, opts options, positional []string, environ []string) (*app.Config, error) {
	flags := cmd.Flags()

	cfg := app.Config{
		TagName:    opts.tagName,
		ConfigFile: opts.configFile,
		Program:    opts.program,
		Args:       append([]string{}, positional...),
		LogLevel:   defaultLogLevel,
		LogFormat:  defaultLogFormat,
		WriteMode:  tagstore.WriteTruncate,
	}

	if opts.settingsPath != "" {
		s, err := settings.Load(cmd.Context(), opts.settingsPath, settings.EnvMap(environ))
		if err != nil {
			return nil, err
		}
		if s.LogLevel != "" {
			cfg.LogLevel = s.LogLevel
		}
		if s.LogFormat != "" {
			cfg.LogFormat = s.LogFormat
		}
		if s.WriteMode != "" {
			cfg.WriteMode = tagstore.WriteMode(s.WriteMode)
		}
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("atomic") {
		cfg.WriteMode = tagstore.WriteTruncate
		if opts.atomic {
			cfg.WriteMode = tagstore.WriteAtomic
		}
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	slog.Debug("CLI parameter merge complete.", "settings", opts.settingsPath)

	return app.NewConfig(cfg)
}

func isClassified(err error) bool {
	return errors.Is(err, tag.ErrArgument) ||
		errors.Is(err, tag.ErrConfiguration) ||
		errors.Is(err, tag.ErrStorage) ||
		errors.Is(err, tag.ErrSerialization)
}
