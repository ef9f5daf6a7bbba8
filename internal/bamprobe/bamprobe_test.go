package bamprobe

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samRecord builds a minimal 11-field SAM line.
func samRecord(flag int, seq string) string {
	return strings.Join([]string{
		"read1", strconv.Itoa(flag), "chr1", "100", "60", "10M", "*", "0", "0", seq, "IIIIIIIIII",
	}, "\t")
}

func TestParseSAMCountsLengthsAndPairing(t *testing.T) {
	input := strings.Join([]string{
		"@HD\tVN:1.6",
		samRecord(99, strings.Repeat("A", 75)),
		samRecord(147, strings.Repeat("C", 75)),
		samRecord(0, strings.Repeat("G", 50)),
	}, "\n") + "\n"

	stats, err := parseSAM(strings.NewReader(input), 100)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Paired)
	assert.Equal(t, map[int]int{75: 2, 50: 1}, stats.Lengths)
	assert.Equal(t, "paired", stats.ReadType())
	assert.Equal(t, 75, stats.ModalLength())
}

func TestParseSAMHonorsSampleCap(t *testing.T) {
	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, samRecord(0, "ACGTACGT"))
	}
	stats, err := parseSAM(strings.NewReader(strings.Join(lines, "\n")), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, "single", stats.ReadType())
}

func TestParseSAMMalformed(t *testing.T) {
	_, err := parseSAM(strings.NewReader("too\tfew\tfields\n"), 10)
	require.Error(t, err)

	badFlag := strings.Join([]string{
		"r", "NaN", "chr1", "1", "0", "*", "*", "0", "0", "ACGT", "IIII",
	}, "\t")
	_, err = parseSAM(strings.NewReader(badFlag+"\n"), 10)
	require.Error(t, err)
}

func TestStatsEmpty(t *testing.T) {
	var s Stats
	assert.Equal(t, "", s.ReadType())
	assert.Equal(t, 0, s.ModalLength())
}

func TestModalLengthTieBreaksLow(t *testing.T) {
	s := Stats{Lengths: map[int]int{50: 3, 75: 3}, Total: 6}
	assert.Equal(t, 50, s.ModalLength())
}

func TestReport(t *testing.T) {
	s := Stats{Lengths: map[int]int{75: 2, 50: 1}, Paired: 2, Total: 3}
	rep := s.Report("x.bam")
	assert.Equal(t, "x.bam", rep.Path)
	assert.Equal(t, 3, rep.ReadsSampled)
	assert.Equal(t, "paired", rep.ReadType)
	assert.Equal(t, 75, rep.ReadLength)
	require.Len(t, rep.Lengths, 2)
	assert.Equal(t, 50, rep.Lengths[0].Length)
}

func TestProbeFastqNotImplemented(t *testing.T) {
	_, err := ProbeFastq(context.Background(), "x.fastq", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrNotImplemented)
}
