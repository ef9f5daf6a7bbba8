// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"pepkit/pkg/api"
)

// Writer registries (format -> handler). Writer files register themselves
// in init() blocks; registration is idempotent, last wins.
var (
	checkWriters = map[string]func(io.Writer, api.CheckReportV1) error{}
	statsWriters = map[string]func(io.Writer, api.BAMStatsV1) error{}
)

func RegisterCheck(format string, fn func(io.Writer, api.CheckReportV1) error) {
	checkWriters[format] = fn
}

func RegisterStats(format string, fn func(io.Writer, api.BAMStatsV1) error) {
	statsWriters[format] = fn
}

// WriteCheck renders a check report in the named format.
func WriteCheck(format string, w io.Writer, rep api.CheckReportV1) error {
	fn, ok := checkWriters[format]
	if !ok {
		return fmt.Errorf("unknown check report format %q (no writer registered)", format)
	}
	return fn(w, rep)
}

// WriteStats renders BAM stats in the named format.
func WriteStats(format string, w io.Writer, rep api.BAMStatsV1) error {
	fn, ok := statsWriters[format]
	if !ok {
		return fmt.Errorf("unknown stats format %q (no writer registered)", format)
	}
	return fn(w, rep)
}

// Formats lists the formats with a registered check writer.
func Formats() []string {
	out := make([]string, 0, len(checkWriters))
	for f := range checkWriters {
		out = append(out, f)
	}
	return out
}
