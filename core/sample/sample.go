// core/sample/sample.go
package sample

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"pepkit-core/attrdict"
)

// Well-known sample entry names.
const (
	NameKey     = "sample_name"
	ProtocolKey = "protocol"
)

// Sample is one sequencing sample's metadata record: an attribute dict with
// accessors for the entries every pipeline relies on.
type Sample struct {
	*attrdict.Dict
}

// New wraps an existing attribute dict as a Sample.
func New(d *attrdict.Dict) *Sample {
	if d == nil {
		d = attrdict.New()
	}
	return &Sample{Dict: d}
}

// FromMap builds a Sample from plain metadata entries.
func FromMap(m map[string]any) (*Sample, error) {
	d, err := attrdict.FromMap(m)
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// Name returns the sample_name entry, or "" when unset.
func (s *Sample) Name() string {
	if v, ok := s.Attr(NameKey); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

// Protocol returns the protocol entry and whether it is set to a
// non-null value.
func (s *Sample) Protocol() (string, bool) {
	v, ok := s.Attr(ProtocolKey)
	if !ok || attrdict.IsNullLike(v) {
		return "", false
	}
	return fmt.Sprint(v), true
}

// Canon homogenizes a selector attribute value for comparison: letters
// only, uppercased. "ATAC-Seq", "atacseq" and "ATACSEQ" all canonicalize
// identically.
func Canon(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// Folder returns the project's results folder for the given sample.
func Folder(p Project, s *Sample) string {
	return filepath.Join(p.ResultsDir(), s.Name())
}
