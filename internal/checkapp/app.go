// internal/checkapp/app.go
package checkapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pepkit-core/pathutil"

	"pepkit/internal/checkcli"
	"pepkit/internal/clibase"
	"pepkit/internal/cmdcheck"
	"pepkit/internal/logutil"
	"pepkit/internal/version"
	"pepkit/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := checkcli.NewFlagSet("pepcheck")
	fs.SetOutput(io.Discard) // silence default flag pkg

	printUsage := func(code int) int {
		fs.SetOutput(outw)
		fs.Usage()
		flushErr := outw.Flush()
		if writers.IsBrokenPipe(flushErr) {
			return 0
		} else if flushErr != nil {
			fmt.Fprintln(stderr, flushErr)
			return 3
		}
		return code
	}

	// No args => register flags then print usage
	if len(argv) == 0 {
		_, _ = checkcli.ParseArgs(fs, []string{"-h"})
		return printUsage(0)
	}

	opts, err := checkcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			checkcli.PrintExamples(outw)
			_ = outw.Flush()
			return 0
		}
		if errors.Is(err, flag.ErrHelp) {
			return printUsage(0)
		}
		fmt.Fprintln(stderr, err)
		return printUsage(2)
	}
	if opts.Version {
		fmt.Fprintf(outw, "pepcheck version %s\n", version.Version)
		flushErr := outw.Flush()
		if writers.IsBrokenPipe(flushErr) {
			return 0
		} else if flushErr != nil {
			fmt.Fprintln(stderr, flushErr)
			return 3
		}
		return 0
	}

	log := logutil.New(opts.Quiet, stderr)

	checker, err := cmdcheck.New(parent, pathutil.Expand(opts.Config),
		cmdcheck.WithSections(opts.Sections...),
		cmdcheck.SkipSections(opts.Skip...),
		cmdcheck.WithLogger(log),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	rep := checker.Report()
	if err := writers.WriteCheck(opts.Output, outw, rep); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	flushErr := outw.Flush()
	if writers.IsBrokenPipe(flushErr) {
		return 0
	} else if flushErr != nil {
		fmt.Fprintln(stderr, flushErr)
		return 3
	}

	if opts.Strict && !rep.OK {
		return 1
	}
	return 0
}
