package sample

import (
	"strings"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var protocolBySample = map[string]string{
	"atac_A": "ATAC-Seq",
	"atac_B": "ATAC-Seq",
	"chip1":  "ChIP-Seq",
	"WGBS-1": "WGBS",
	"RRBS-1": "RRBS",
	"rna_SE": "RNA-seq",
	"rna_PE": "RNA-seq",
}

// fakeProject is the minimal Project used across these tests.
type fakeProject struct {
	samples   []*Sample
	constants map[string]any
	sections  map[string]any
	results   string
}

func (p *fakeProject) Samples() []*Sample        { return p.samples }
func (p *fakeProject) Constants() map[string]any { return p.constants }
func (p *fakeProject) ResultsDir() string        { return p.results }
func (p *fakeProject) Section(n string) (any, bool) {
	v, ok := p.sections[n]
	return v, ok
}

func makeSamples(t *testing.T, vary func(string) string) []*Sample {
	t.Helper()
	if vary == nil {
		vary = func(s string) string { return s }
	}
	var out []*Sample
	for name, proto := range protocolBySample {
		s, err := FromMap(map[string]any{
			NameKey:     name,
			ProtocolKey: vary(proto),
		})
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func names(samples []*Sample) map[string]struct{} {
	out := map[string]struct{}{}
	for _, s := range samples {
		out[s.Name()] = struct{}{}
	}
	return out
}

func expectedNames(protocols ...string) map[string]struct{} {
	want := map[string]struct{}{}
	set := canonSet(protocols)
	for name, proto := range protocolBySample {
		if _, ok := set[Canon(proto)]; ok {
			want[name] = struct{}{}
		}
	}
	return want
}

func TestOnlyIncludeOrExclude(t *testing.T) {
	prj := &fakeProject{samples: makeSamples(t, nil)}
	_, err := FilterByProtocol(prj, []string{"ATAC-Seq"}, []string{"WGBS"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrInvalidArgument)
}

func TestNoSamplesMeansEmptyResult(t *testing.T) {
	prj := &fakeProject{}
	for _, tc := range []struct{ include, exclude []string }{
		{include: []string{"ATAC-Seq"}},
		{include: []string{"ChIPmentation", "RNA-Seq"}},
		{exclude: []string{"ChIP-Seq"}},
	} {
		got, err := FilterByProtocol(prj, tc.include, tc.exclude)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestNoFilterKeepsAll(t *testing.T) {
	samples := makeSamples(t, nil)
	prj := &fakeProject{samples: samples}
	got, err := FilterByProtocol(prj, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, names(samples), names(got))

	got, err = Filter(prj, "", []string{"ATAC-Seq"}, nil)
	require.NoError(t, err)
	assert.Len(t, got, len(samples))
}

func TestMissingSelectorAttribute(t *testing.T) {
	samples := makeSamples(t, nil)
	prj := &fakeProject{samples: samples}
	_, err := Filter(prj, "assay_depth", []string{"deep"}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

// Protocol-name variants must not defeat selection.
var protocolVariants = map[string]func(string) string{
	"upper":  strings.ToUpper,
	"lower":  strings.ToLower,
	"nodash": func(p string) string { return strings.ReplaceAll(p, "-", "") },
}

func TestInclusion(t *testing.T) {
	for variant, vary := range protocolVariants {
		t.Run(variant, func(t *testing.T) {
			prj := &fakeProject{samples: makeSamples(t, vary)}

			// Empty intersection keeps nothing.
			got, err := FilterByProtocol(prj, []string{"totally-radical-protocol"}, nil)
			require.NoError(t, err)
			assert.Empty(t, got)

			// Partial intersection keeps exactly the matching samples.
			got, err = FilterByProtocol(prj, []string{"ChIP-Seq", "atacseq"}, nil)
			require.NoError(t, err)
			assert.Equal(t, expectedNames("ChIP-Seq", "ATAC-Seq"), names(got))

			// Complete intersection keeps everything.
			all := []string{"ATAC-Seq", "ChIP-Seq", "WGBS", "RRBS", "RNA-seq"}
			for i, p := range all {
				all[i] = vary(p)
			}
			got, err = FilterByProtocol(prj, all, nil)
			require.NoError(t, err)
			assert.Len(t, got, len(protocolBySample))
		})
	}
}

func TestExclusion(t *testing.T) {
	for variant, vary := range protocolVariants {
		t.Run(variant, func(t *testing.T) {
			prj := &fakeProject{samples: makeSamples(t, vary)}

			// Empty intersection with the exclude set keeps everything.
			got, err := FilterByProtocol(prj, nil, []string{"mystery_protocol"})
			require.NoError(t, err)
			assert.Len(t, got, len(protocolBySample))

			// Partial intersection drops exactly the matching samples.
			got, err = FilterByProtocol(prj, nil, []string{"RNA-Seq", "RRBS"})
			require.NoError(t, err)
			assert.Equal(t, expectedNames("ATAC-Seq", "ChIP-Seq", "WGBS"), names(got))

			// Comprehensive exclusion can leave nothing.
			got, err = FilterByProtocol(prj, nil,
				[]string{"ATAC-Seq", "ChIP-Seq", "WGBS", "RRBS", "RNA-seq"})
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestProtocolLessSamples(t *testing.T) {
	samples := makeSamples(t, nil)
	for _, s := range samples {
		if p, _ := s.Protocol(); Canon(p) == Canon("ATAC-Seq") {
			require.NoError(t, s.Delete(ProtocolKey))
		}
	}
	prj := &fakeProject{samples: samples}

	// Inclusion does not grab samples lacking the attribute.
	got, err := FilterByProtocol(prj, []string{"ChIP-Seq", "ATAC-Seq", "RNA-Seq"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"chip1": {}, "rna_SE": {}, "rna_PE": {},
	}, names(got))

	// Exclusion leaves samples lacking the attribute alone.
	got, err = FilterByProtocol(prj, nil, []string{"ChIP-Seq", "WGBS", "RRBS", "RNA-Seq"})
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"atac_A": {}, "atac_B": {},
	}, names(got))
}

func TestCanon(t *testing.T) {
	assert.Equal(t, "ATACSEQ", Canon("ATAC-Seq"))
	assert.Equal(t, "ATACSEQ", Canon("atacseq"))
	assert.Equal(t, "RRBS", Canon("RRBS-1"))
	assert.Equal(t, "", Canon("123-456"))
}

func TestGrabData(t *testing.T) {
	prj := &fakeProject{sections: map[string]any{
		"metadata":  map[string]any{"output_dir": "/data/out"},
		"constants": map[string]any{"organism": "human"},
		"ignored":   "not an independent section",
	}}
	data, err := GrabData(prj)
	require.NoError(t, err)
	assert.Len(t, data, 2)
	assert.Contains(t, data, "metadata")
	assert.Contains(t, data, "constants")
	assert.NotContains(t, data, "ignored")

	empty, err := GrabData(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAddConstants(t *testing.T) {
	s, err := FromMap(map[string]any{NameKey: "atac_A"})
	require.NoError(t, err)
	prj := &fakeProject{constants: map[string]any{"organism": "human"}}
	require.NoError(t, AddConstants(s, prj))
	v, ok := s.Attr("organism")
	require.True(t, ok)
	assert.Equal(t, "human", v)

	// No constants, no change.
	require.NoError(t, AddConstants(s, &fakeProject{}))
	assert.Equal(t, 2, s.Len())
}

func TestFolder(t *testing.T) {
	s, err := FromMap(map[string]any{NameKey: "atac_A"})
	require.NoError(t, err)
	prj := &fakeProject{results: "/data/out/results"}
	assert.Equal(t, "/data/out/results/atac_A", Folder(prj, s))
}
