// internal/writers/check_jsonl.go
package writers

import (
	"io"

	"pepkit/internal/jsonlutil"
	"pepkit/pkg/api"
)

func init() {
	RegisterCheck("jsonl", writeCheckJSONL)
}

// writeCheckJSONL emits one line per probed command, for piping into
// jq or line-oriented log collectors.
func writeCheckJSONL(w io.Writer, rep api.CheckReportV1) error {
	var rows []api.CheckRowV1
	for _, sec := range rep.Sections {
		for _, cmd := range sec.Commands {
			rows = append(rows, api.CheckRowV1{
				Section: sec.Name,
				Name:    cmd.Name,
				Command: cmd.Command,
				OK:      cmd.OK,
			})
		}
	}
	return jsonlutil.WriteAll(w, rows, IsBrokenPipe)
}
