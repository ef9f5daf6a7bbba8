// internal/writers/check_json.go
package writers

import (
	"encoding/json"
	"io"

	"pepkit/pkg/api"
)

func init() {
	RegisterCheck("json", writeCheckJSON)
}

func writeCheckJSON(w io.Writer, rep api.CheckReportV1) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
