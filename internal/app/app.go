// internal/app/app.go
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"fqfilter/internal/cli"
	"fqfilter/internal/cmdutil"
	"fqfilter/internal/filter"
	"fqfilter/internal/fqerr"
	"fqfilter/internal/idset"
	"fqfilter/internal/pipeline"
	"fqfilter/internal/version"
	"fqfilter/internal/writers"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 2
	ExitRuntime = 3
)

// Run is the whole tool: parse argv, load the id list, filter the FASTQ
// into stdout, report on stderr. It returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("fqfilter")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return ExitOK
		}
		cmdutil.Errorf(stderr, "%v", err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	if opts.Version {
		if _, err := fmt.Fprintf(stdout, "fqfilter version %s\n", version.Version); err != nil && !writers.IsBrokenPipe(err) {
			cmdutil.Errorf(stderr, "%v", err)
			return ExitRuntime
		}
		return ExitOK
	}

	logger, err := cmdutil.NewLogger(stderr, opts.LogLevel, opts.LogFormat)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}

	ids, err := idset.Load(opts.IDListPath, logger)
	if err != nil {
		return fail(stderr, err)
	}
	logger.Info("collected ids", "count", ids.Len())
	logger.Info("filter mode", "mode", filter.Mode(opts.Inverse))

	out := writers.NewOutput(stdout)
	counts, runErr := pipeline.Run(pipeline.Config{
		InputPath: opts.FastqPath,
		IDs:       ids,
		Inverse:   opts.Inverse,
		Out:       out,
		Logger:    logger,
	})
	// records written before a failure were already emitted; let them out
	gone, flushErr := out.Finish()

	if runErr != nil {
		if writers.IsBrokenPipe(runErr) {
			return ExitOK
		}
		return fail(stderr, runErr)
	}
	if gone {
		return ExitOK
	}
	if flushErr != nil {
		return fail(stderr, fqerr.New(fqerr.ErrIO, "write", "stdout", flushErr))
	}

	logger.Info("filter complete", "observed", counts.Observed, "emitted", counts.Emitted)
	if counts.Emitted == 0 {
		return opts.NoMatchExitCode
	}
	return ExitOK
}

func fail(stderr io.Writer, err error) int {
	cmdutil.Errorf(stderr, "%v", err)
	if errors.Is(err, fqerr.ErrInputContract) {
		return ExitUsage
	}
	return ExitRuntime
}
