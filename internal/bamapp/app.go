// internal/bamapp/app.go
package bamapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"pepkit-core/pathutil"
	"pepkit-core/seqfile"

	"pepkit/internal/bamcli"
	"pepkit/internal/bamprobe"
	"pepkit/internal/clibase"
	"pepkit/internal/logutil"
	"pepkit/internal/version"
	"pepkit/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	fs := bamcli.NewFlagSet("bamprobe")
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
		_, _ = bamcli.ParseArgs(fs, []string{"-h"})
		return printUsage(0)
	}

	opts, err := bamcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			bamcli.PrintExamples(outw)
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
		fmt.Fprintf(outw, "bamprobe version %s\n", version.Version)
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

	path := pathutil.Expand(opts.BAM)
	ft, err := seqfile.Parse(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	log.WithFields(logrus.Fields{
		"path":  path,
		"type":  ft.String(),
		"reads": opts.Reads,
	}).Debug("probing")

	var stats bamprobe.Stats
	if ft == seqfile.Fastq {
		stats, err = bamprobe.ProbeFastq(parent, path, opts.Reads)
	} else {
		stats, err = bamprobe.Probe(parent, path, opts.Reads)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := writers.WriteStats(opts.Output, outw, stats.Report(path)); err != nil {
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
	return 0
}
