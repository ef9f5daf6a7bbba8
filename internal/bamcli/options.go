// internal/bamcli/options.go
package bamcli

import (
	"flag"
	"fmt"
	"io"

	"pepkit/internal/clibase"
	"pepkit/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Probe-specific
	BAM   string
	Reads int
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "BAM read length and pairedness probe", "text | json", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] reads.bam\n", name)

		_, _ = fmt.Fprintln(out, "\nProbe:")
		_, _ = fmt.Fprintln(out, "  -b, --bam string            Aligned BAM file [required]")
		_, _ = fmt.Fprintf(out, "  -n, --reads int             Number of records to sample [%s]\n", def("reads"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("bamprobe"), nil) }

// PrintExamples prints a tiny, focused quickstart for bamprobe.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "bamprobe", func(w io.Writer) {
		_, _ = fmt.Fprintln(out, "Sample the head of a BAM to report read length and type.")
		_, _ = fmt.Fprintln(out, "Requires samtools on PATH.")
		_, _ = fmt.Fprintln(out, "\nExample:")
		_, _ = fmt.Fprintln(out, "  bamprobe \\")
		_, _ = fmt.Fprintln(out, "    --reads 5000 \\")
		_, _ = fmt.Fprintln(out, "    --output json \\")
		_, _ = fmt.Fprintln(out, "    sample1.bam")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	// Probe flags
	fs.StringVar(&o.BAM, "bam", "", "aligned BAM file [required]")
	fs.StringVar(&o.BAM, "b", "", "alias of --bam")
	fs.IntVar(&o.Reads, "reads", 1000, "number of records to sample [1000]")
	fs.IntVar(&o.Reads, "n", 1000, "alias of --reads")

	// Help / examples
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if c.Version {
		o.Common = c
		return o, nil
	}

	// The BAM may also arrive as the sole positional.
	switch {
	case len(posArgs) > 1:
		return o, fmt.Errorf("expected a single BAM path, got %d", len(posArgs))
	case len(posArgs) == 1 && o.BAM != "":
		return o, fmt.Errorf("--bam conflicts with positional BAM path")
	case len(posArgs) == 1:
		o.BAM = posArgs[0]
	}

	if err := clibase.Validate(&c, "text", "json"); err != nil {
		return o, err
	}
	if o.BAM == "" {
		return o, fmt.Errorf("--bam is required")
	}
	if o.Reads <= 0 {
		return o, fmt.Errorf("--reads must be > 0")
	}

	o.Common = c
	return o, nil
}
