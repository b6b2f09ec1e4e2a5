package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput    = errors.New("no input file: use -i resume.yaml")
	ErrBadFormat  = errors.New("invalid format: use pdf or html")
	ErrBadTimeout = errors.New("invalid timeout: must not be negative")
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout   io.Writer
	Stderr   io.Writer
	LookPath func(string) (string, error)
}

func defaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		LookPath: exec.LookPath,
	}
}

// cliFlags holds parsed command-line options.
type cliFlags struct {
	input       string
	output      string
	format      string
	engines     []string
	tools       []string
	staticDir   string
	template    string
	timeout     time.Duration
	verbose     bool
	quiet       bool
	showVersion bool
	jsonOutput  bool
}

// parseFlags parses args (without the program name).
func parseFlags(args []string) (*cliFlags, *flag.FlagSet, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("resume2pdf", flag.ContinueOnError)

	fs.StringVarP(&f.input, "input", "i", "", "resume YAML file (required)")
	fs.StringVarP(&f.output, "output", "o", "", "output path (default: input name with artifact extension)")
	fs.StringVarP(&f.format, "format", "f", "pdf", "output format: pdf or html")
	fs.StringSliceVar(&f.engines, "engines", nil, "PDF engine priority order (default: xelatex,pdflatex)")
	fs.StringSliceVar(&f.tools, "tools", nil, "HTML tool priority order (default: pandoc,htlatex)")
	fs.StringVar(&f.staticDir, "static-dir", "", "static asset directory probed for fonts/fontawesome")
	fs.StringVar(&f.template, "template", "", "LaTeX template file overriding the embedded default")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-invocation compile timeout (0 = none)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVar(&f.showVersion, "version", false, "print version and exit")
	fs.BoolVar(&f.jsonOutput, "json", false, "doctor: emit JSON")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	return f, fs, nil
}

// newLogger builds the CLI logger honoring --verbose and --quiet.
func newLogger(env *Environment, flags *cliFlags) zerolog.Logger {
	level := zerolog.InfoLevel
	if flags.verbose {
		level = zerolog.DebugLevel
	}
	if flags.quiet {
		level = zerolog.ErrorLevel
	}
	writer := zerolog.ConsoleWriter{Out: env.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// run executes the CLI and returns an exit code plus a user-facing error.
func run(args []string, env *Environment) (int, error) {
	flags, fs, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess, nil
		}
		return ExitUsage, err
	}

	if flags.showVersion {
		fmt.Fprintln(env.Stdout, "resume2pdf", Version)
		return ExitSuccess, nil
	}

	if fs.NArg() > 0 && fs.Arg(0) == "doctor" {
		return runDoctorCmd(env, flags), nil
	}

	if err := runConvert(env, flags); err != nil {
		return exitCodeFor(err), err
	}
	return ExitSuccess, nil
}

// runConvert loads the résumé and generates the requested artifact.
func runConvert(env *Environment, flags *cliFlags) error {
	if flags.input == "" {
		return ErrNoInput
	}
	if flags.format != "pdf" && flags.format != "html" {
		return fmt.Errorf("%w: got %q", ErrBadFormat, flags.format)
	}
	// Checked here because the library option panics on negative durations.
	if flags.timeout < 0 {
		return fmt.Errorf("%w: got %s", ErrBadTimeout, flags.timeout)
	}

	logger := newLogger(env, flags)

	data, err := resume2pdf.LoadResume(flags.input)
	if err != nil {
		return err
	}
	logger.Debug().Str("input", flags.input).Str("name", data.FullName).Msg("resume loaded")

	output := flags.output
	if output == "" {
		output = fileutil.ReplaceExt(flags.input, "."+flags.format)
	}

	svc := resume2pdf.New(
		resume2pdf.WithEngines(flags.engines...),
		resume2pdf.WithHTMLTools(flags.tools...),
		resume2pdf.WithStaticDir(flags.staticDir),
		resume2pdf.WithTemplate(flags.template),
		resume2pdf.WithCompileTimeout(flags.timeout),
	)

	logger.Info().Str("format", flags.format).Str("output", output).Msg("generating")

	var artifact string
	switch flags.format {
	case "pdf":
		artifact, err = svc.GeneratePDF(data, output)
	case "html":
		artifact, err = svc.GenerateHTML(data, output)
	}
	if err != nil {
		var compErr *resume2pdf.CompilationError
		if errors.As(err, &compErr) {
			logger.Error().
				Str("tool", compErr.Tool).
				Int("exit_code", compErr.ExitCode).
				Msg("compilation failed, see the .log file next to the source")
		}
		return err
	}

	logger.Info().Str("artifact", artifact).Msg("done")
	return nil
}
