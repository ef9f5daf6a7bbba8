// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"encoding/json"
	"io"
)

// WriteAll encodes each row as one JSON line. Broken-pipe errors from a
// closed downstream consumer are suppressed via isBroken.
func WriteAll[T any](out io.Writer, rows []T, isBroken func(error) bool) error {
	enc := json.NewEncoder(out)
	for _, v := range rows {
		if err := enc.Encode(v); err != nil {
			if isBroken != nil && isBroken(err) {
				return nil
			}
			return err
		}
	}
	return nil
}
