// internal/clibase/common.go
package clibase

import (
	"flag"
	"fmt"
)

// Common holds CLI fields shared by pepcheck and bamprobe.
type Common struct {
	// Output
	Output string // text|json

	// Misc
	Quiet   bool
	Version bool
}

// sliceValue appends each value to a *[]string (for repeatable flags).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// StringSlice registers a repeatable string flag under the given names.
func StringSlice(fs *flag.FlagSet, dst *[]string, names ...string) {
	v := &sliceValue{dst: dst}
	for _, n := range names {
		fs.Var(v, n, "repeatable")
	}
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Output, "output", "text", "output: text | json [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential logging [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// Validate applies shared CLI invariants. formats lists the output
// formats the calling tool supports.
func Validate(c *Common, formats ...string) error {
	for _, f := range formats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q", c.Output)
}
