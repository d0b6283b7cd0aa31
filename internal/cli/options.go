// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"fqfilter/internal/cmdutil"
)

// Options holds all CLI flags.
type Options struct {
	// Input
	FastqPath  string
	IDListPath string

	// Filtering
	Inverse bool

	// Diagnostics
	LogLevel  string
	LogFormat string
	Quiet     bool

	NoMatchExitCode int

	Version bool
}

// NewFlagSet returns a FlagSet that reports errors instead of exiting.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.FastqPath, "in-fastq", "", "compressed FASTQ input [*]")
	fs.StringVar(&opt.IDListPath, "in-id-list", "", "identifier list, one per line [*]")

	fs.BoolVar(&opt.Inverse, "inverse", false, "keep records whose id is NOT in the list [false]")

	fs.StringVar(&opt.LogLevel, "log-level", "info", "diagnostics level: debug | info | warn | error [info]")
	fs.StringVar(&opt.LogFormat, "log-format", cmdutil.FormatText, "diagnostics format: text | json [text]")
	fs.BoolVar(&opt.Quiet, "q", false, "only warnings and errors on stderr (shorthand) [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only warnings and errors on stderr [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no record is written [0]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if opt.Quiet {
		opt.LogLevel = "warn"
	}
	return opt, Validate(&opt)
}

// Validate checks the flag combination.
func Validate(o *Options) error {
	if o.FastqPath == "" {
		return errors.New("--in-fastq is required")
	}
	if o.IDListPath == "" {
		return errors.New("--in-id-list is required")
	}
	if _, err := cmdutil.ParseLevel(o.LogLevel); err != nil {
		return err
	}
	switch o.LogFormat {
	case cmdutil.FormatText, cmdutil.FormatJSON:
	default:
		return fmt.Errorf("invalid --log-format %q", o.LogFormat)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
