// internal/writers/stats_json.go
package writers

import (
	"encoding/json"
	"io"

	"pepkit/pkg/api"
)

func init() {
	RegisterStats("json", writeStatsJSON)
}

func writeStatsJSON(w io.Writer, st api.BAMStatsV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}
