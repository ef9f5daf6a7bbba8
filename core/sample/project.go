// core/sample/project.go
package sample

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/containerd/errdefs"
)

// Project is the sample-bearing side of a PEP-style project config. Samples
// are mutually independent; what each one should know about its project is
// narrowed to the sample-independent sections below.
type Project interface {
	Samples() []*Sample
	Constants() map[string]any
	Section(name string) (any, bool)
	ResultsDir() string
}

// IndependentSections are the project sections that make sense on a sample
// for post-hoc analysis, independent of any other sample.
var IndependentSections = []string{
	"metadata",
	"derived_attributes",
	"implied_attributes",
	"constants",
}

// GrabData collects the sample-independent sections of a project into one
// plain map, skipping sections the project does not declare.
func GrabData(p Project) (map[string]any, error) {
	data := map[string]any{}
	if p == nil {
		return data, nil
	}
	for _, name := range IndependentSections {
		v, ok := p.Section(name)
		if !ok {
			continue
		}
		if err := mergo.Merge(&data, map[string]any{name: v}); err != nil {
			return nil, fmt.Errorf("merge section %q: %w", name, err)
		}
	}
	return data, nil
}

// AddConstants updates a sample with the constants its project declares.
// A project without constants leaves the sample untouched.
func AddConstants(s *Sample, p Project) error {
	constants := p.Constants()
	if len(constants) == 0 {
		return nil
	}
	return s.Update(constants)
}

// Filter collects a project's samples by a selector attribute (protocol,
// assay type, and the like). Inclusion and exclusion are mutually
// exclusive; with neither, every sample is returned. Inclusion keeps only
// samples whose canonicalized attribute value is in the include set, and
// drops samples lacking the attribute. Exclusion keeps samples lacking the
// attribute or carrying a value outside the exclude set.
func Filter(p Project, selector string, include, exclude []string) ([]*Sample, error) {
	samples := p.Samples()
	if selector == "" || (len(include) == 0 && len(exclude) == 0) {
		out := make([]*Sample, len(samples))
		copy(out, samples)
		return out, nil
	}

	if len(samples) > 0 {
		found := false
		for _, s := range samples {
			if s.Has(selector) {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("no sample has attribute %q: %w", selector, errdefs.ErrNotFound)
		}
	}

	if len(include) > 0 && len(exclude) > 0 {
		return nil, fmt.Errorf("specify only an include or an exclude set, not both: %w", errdefs.ErrInvalidArgument)
	}

	keep := excludeTest(selector, exclude)
	if len(include) > 0 {
		keep = includeTest(selector, include)
	}

	var out []*Sample
	for _, s := range samples {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out, nil
}

// FilterByProtocol is Filter over the conventional protocol attribute.
func FilterByProtocol(p Project, include, exclude []string) ([]*Sample, error) {
	return Filter(p, ProtocolKey, include, exclude)
}

func canonSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[Canon(v)] = struct{}{}
	}
	return set
}

func attrValue(s *Sample, selector string) (string, bool) {
	v, ok := s.Attr(selector)
	if !ok || v == nil {
		return "", false
	}
	return Canon(fmt.Sprint(v)), true
}

func includeTest(selector string, include []string) func(*Sample) bool {
	set := canonSet(include)
	return func(s *Sample) bool {
		v, ok := attrValue(s, selector)
		if !ok {
			return false
		}
		_, hit := set[v]
		return hit
	}
}

func excludeTest(selector string, exclude []string) func(*Sample) bool {
	set := canonSet(exclude)
	return func(s *Sample) bool {
		v, ok := attrValue(s, selector)
		if !ok {
			return true
		}
		_, hit := set[v]
		return !hit
	}
}
