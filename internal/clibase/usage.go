// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"pepkit/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// formats names the output formats the tool supports, pipe-separated.
// extra prints tool-specific sections (usage line, tool flags, etc.).
func UsageCommon(fs *flag.FlagSet, name, summary, formats string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n", name, summary)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: %s [%s]\n", formats, def("output"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential logging [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
