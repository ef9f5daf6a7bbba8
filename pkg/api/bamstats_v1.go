// pkg/api/bamstats_v1.go
package api

// BAMStatsV1 is the stable JSON schema for bamprobe output.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type BAMStatsV1 struct {
	Path         string          `json:"path"`
	ReadsSampled int             `json:"reads_sampled"`
	Paired       int             `json:"paired"`
	ReadType     string          `json:"read_type"`
	ReadLength   int             `json:"read_length"`
	Lengths      []LengthCountV1 `json:"lengths,omitempty"`
}

// LengthCountV1 is one bucket of the read-length histogram.
type LengthCountV1 struct {
	Length int `json:"length"`
	Count  int `json:"count"`
}
