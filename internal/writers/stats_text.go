// internal/writers/stats_text.go
package writers

import (
	"fmt"
	"io"

	"pepkit/pkg/api"
)

func init() {
	RegisterStats("text", writeStatsText)
}

func writeStatsText(w io.Writer, st api.BAMStatsV1) error {
	if _, err := fmt.Fprintf(w, "file: %s\n", st.Path); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "reads sampled: %d\n", st.ReadsSampled); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "read type: %s\n", st.ReadType); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "read length: %d\n", st.ReadLength); err != nil {
		return err
	}
	for _, lc := range st.Lengths {
		if _, err := fmt.Fprintf(w, "  length %d: %d\n", lc.Length, lc.Count); err != nil {
			return err
		}
	}
	return nil
}
