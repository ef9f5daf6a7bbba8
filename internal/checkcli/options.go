// internal/checkcli/options.go
package checkcli

import (
	"flag"
	"fmt"
	"io"

	"pepkit/internal/clibase"
	"pepkit/internal/cliutil"
)

type Options struct {
	clibase.Common

	// Check-specific
	Config   string
	Sections []string
	Skip     []string
	Strict   bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "pipeline tool availability checker", "text | json | jsonl", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] tools.yaml\n", name)

		_, _ = fmt.Fprintln(out, "\nCheck:")
		_, _ = fmt.Fprintln(out, "  -c, --config string         Tool config (YAML or TOML) [required]")
		_, _ = fmt.Fprintln(out, "  -s, --sections string       Only check this section (repeatable)")
		_, _ = fmt.Fprintln(out, "      --skip string           Skip this section (repeatable)")
		_, _ = fmt.Fprintf(out, "      --strict                Exit non-zero when any command is missing [%s]\n", def("strict"))
	})
	return fs
}

func Parse() (Options, error) { return ParseArgs(NewFlagSet("pepcheck"), nil) }

// PrintExamples prints a tiny, focused quickstart for pepcheck.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "pepcheck", func(w io.Writer) {
		_, _ = fmt.Fprintln(out, "Verify the external tools a pipeline config names are on PATH.")
		_, _ = fmt.Fprintln(out, "\nExample:")
		_, _ = fmt.Fprintln(out, "  pepcheck \\")
		_, _ = fmt.Fprintln(out, "    --sections aligners \\")
		_, _ = fmt.Fprintln(out, "    --output json \\")
		_, _ = fmt.Fprintln(out, "    pipeline_config.yaml")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var showExamples bool

	var c clibase.Common
	clibase.Register(fs, &c)

	// Check flags
	fs.StringVar(&o.Config, "config", "", "tool config (YAML or TOML) [required]")
	fs.StringVar(&o.Config, "c", "", "alias of --config")
	clibase.StringSlice(fs, &o.Sections, "sections", "s")
	clibase.StringSlice(fs, &o.Skip, "skip")
	fs.BoolVar(&o.Strict, "strict", true, "exit non-zero when any command is missing [true]")

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

	// The config may also arrive as the sole positional.
	switch {
	case len(posArgs) > 1:
		return o, fmt.Errorf("expected a single config path, got %d", len(posArgs))
	case len(posArgs) == 1 && o.Config != "":
		return o, fmt.Errorf("--config conflicts with positional config path")
	case len(posArgs) == 1:
		o.Config = posArgs[0]
	}

	if err := clibase.Validate(&c, "text", "json", "jsonl"); err != nil {
		return o, err
	}
	if o.Config == "" {
		return o, fmt.Errorf("--config is required")
	}

	o.Common = c
	return o, nil
}
