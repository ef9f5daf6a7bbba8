// pkg/api/check_v1.go
package api

// CheckReportV1 is the stable JSON schema for pepcheck reports.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type CheckReportV1 struct {
	Config   string            `json:"config"`
	Sections []SectionReportV1 `json:"sections"`
	Failures []string          `json:"failures,omitempty"`
	OK       bool              `json:"ok"`
}

// SectionReportV1 holds per-command results for one config section.
type SectionReportV1 struct {
	Name     string            `json:"name"`
	Commands []CommandStatusV1 `json:"commands"`
}

// CommandStatusV1 is the outcome of a single PATH probe.
type CommandStatusV1 struct {
	Name    string `json:"name,omitempty"`
	Command string `json:"command"`
	OK      bool   `json:"ok"`
}

// CheckRowV1 is one JSONL line: a probe outcome tagged with its section.
type CheckRowV1 struct {
	Section string `json:"section"`
	Name    string `json:"name,omitempty"`
	Command string `json:"command"`
	OK      bool   `json:"ok"`
}
