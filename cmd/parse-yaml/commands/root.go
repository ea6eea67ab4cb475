// Package commands implements the parse-yaml command line.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OleBialas/quarto-docker-render/cmd"
	"github.com/OleBialas/quarto-docker-render/internal/config"
	"github.com/OleBialas/quarto-docker-render/internal/errors"
	"github.com/OleBialas/quarto-docker-render/internal/extract"
	"github.com/OleBialas/quarto-docker-render/internal/logging"
)

// debugEnv enables debug logging when no -v flag is given.
const debugEnv = "QDR_DEBUG"

// rootOptions holds flag values and state shared by the root command's hooks.
type rootOptions struct {
	verbosity  int
	quiet      bool
	logFormat  string
	logFile    string
	configPath string

	cfg       *config.Config
	configErr error
	closers   []io.Closer
}

// newRootCmd builds the parse-yaml command around opts.
func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "parse-yaml <file>",
		Short: "Print the docker settings from a document's YAML front matter",
		Long: `parse-yaml reads the YAML front matter of a document (usually a Quarto
.qmd file) and prints its docker settings for a calling shell script:

  IMAGE=<image>     at most once, when docker.image is a non-empty string
  OPTION=<option>   once per string in docker.options, in order

A document without front matter or without a docker block prints nothing
and succeeds. Diagnostics and logs go to stderr only.

Exit codes:
  0 - document processed (with or without docker settings)
  1 - missing argument, unreadable file, or invalid YAML`,
		Example: `  # Read settings into the calling script
  while IFS= read -r line; do
    case "$line" in
      IMAGE=*)  image="${line#IMAGE=}" ;;
      OPTION=*) opts+=("${line#OPTION=}") ;;
    esac
  done < <(parse-yaml report.qmd)

  # Show why nothing was printed
  parse-yaml -vv report.qmd`,
		Args: requireDocument,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.loadConfig(); err != nil {
				return err
			}
			return opts.setupLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
		Version:       cmd.VersionString(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("parse-yaml version {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.CountVarP(&opts.verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false,
		"only log errors")
	flags.StringVar(&opts.logFormat, "log-format", "",
		"log format: text, json (default from config, else text)")
	flags.StringVar(&opts.logFile, "log-file", "",
		"also write logs to file in JSON format")
	flags.StringVar(&opts.configPath, "config", "",
		"config file (default $XDG_CONFIG_HOME/quarto-docker-render/config.yaml)")

	return rootCmd
}

// requireDocument rejects invocations without a document path.
// Extra arguments are ignored.
func requireDocument(_ *cobra.Command, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return errors.NewUsageError(errors.ErrMissingPath, "Usage: parse-yaml <file>")
	}
	return nil
}

// loadConfig reads the tool configuration. A broken --config file is an
// error; a broken implicit config falls back to defaults so that rendering
// keeps working, and is reported once logging is set up.
func (o *rootOptions) loadConfig() error {
	config.Init()
	cfg, err := config.Load(o.configPath)
	if err != nil {
		if o.configPath != "" {
			return errors.NewConfigError(err)
		}
		o.configErr = err
		cfg = config.Default()
	}
	o.cfg = cfg
	return nil
}

// setupLogging configures the default logger from flags, QDR_DEBUG and config.
func (o *rootOptions) setupLogging(cmd *cobra.Command) error {
	if o.quiet && o.verbosity > 0 {
		return errors.NewUsageError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if o.quiet {
		level = slog.LevelError
	} else {
		v := o.verbosity
		// CLI flags take precedence over the env var
		if v == 0 {
			switch os.Getenv(debugEnv) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	formatName := o.logFormat
	if formatName == "" && o.cfg != nil {
		formatName = o.cfg.LogFormat
	}
	format, ok := logging.ParseFormat(formatName)
	if !ok && formatName != "" {
		return errors.NewUsageError(errors.Newf("invalid log format %q", formatName), "Valid formats: text, json")
	}

	handlers := []slog.Handler{logging.NewFormatHandler(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})}

	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUsageError(errors.Wrap(err, "opening log file"), "")
		}
		o.closers = append(o.closers, f)
		handlers = append(handlers, logging.NewFormatHandler(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}))
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

	if o.configErr != nil {
		logger.Warn("ignoring invalid config, using defaults", "error", o.configErr)
	}
	if used := config.FileUsed(); used != "" {
		logger.Debug("loaded config", "file", used)
	}
	return nil
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)
	if len(args) > 1 && logger != nil {
		logger.Warn("ignoring extra arguments", "args", args[1:])
	}

	var maxFileSize int64
	if o.cfg != nil {
		maxFileSize = o.cfg.MaxFileSize
	}
	ex := extract.New(
		extract.WithMaxFileSize(maxFileSize),
		extract.WithLogger(logger),
	)

	result, err := ex.Run(ctx, args[0])
	if err != nil {
		return err
	}

	if _, err := result.Lines().WriteTo(cmd.OutOrStdout()); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

func (o *rootOptions) close() {
	for _, c := range o.closers {
		_ = c.Close()
	}
	o.closers = nil
}

// Execute runs parse-yaml with os.Args and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

// run executes the command with args and reports any error on stderr.
func run(args []string, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	defer opts.close()

	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		return errors.ExitSuccess
	}

	reportError(stderr, err)
	return errors.ExitCode(err)
}

// reportError prints err for a human reader. Processing errors already
// name the document and are printed as-is.
func reportError(w io.Writer, err error) {
	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	if exitErr.Kind == errors.KindProcessing {
		fmt.Fprintln(w, exitErr.Error())
	} else {
		fmt.Fprintf(w, "Error: %v\n", exitErr)
	}
	if exitErr.Suggestion != "" {
		fmt.Fprintln(w, exitErr.Suggestion)
	}
}
