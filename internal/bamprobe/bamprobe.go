// internal/bamprobe/bamprobe.go
package bamprobe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/containerd/errdefs"

	"pepkit/pkg/api"
)

// SAM flag bit marking a read as paired in sequencing.
const flagPaired = 0x1

// Stats summarizes the reads sampled from an alignment file.
type Stats struct {
	// Lengths is the read-length histogram (length -> count).
	Lengths map[int]int
	// Paired counts reads whose FLAG has the paired bit set.
	Paired int
	// Total is the number of records inspected.
	Total int
}

// ReadType reports "paired" when the majority of sampled reads carry the
// paired flag, else "single". Empty when nothing was sampled.
func (s Stats) ReadType() string {
	if s.Total == 0 {
		return ""
	}
	if 2*s.Paired >= s.Total {
		return "paired"
	}
	return "single"
}

// ModalLength returns the most common read length (smallest wins ties),
// or 0 when nothing was sampled.
func (s Stats) ModalLength() int {
	best, bestCount := 0, 0
	lengths := make([]int, 0, len(s.Lengths))
	for l := range s.Lengths {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	for _, l := range lengths {
		if c := s.Lengths[l]; c > bestCount {
			best, bestCount = l, c
		}
	}
	return best
}

// Report flattens the stats into the stable schema.
func (s Stats) Report(path string) api.BAMStatsV1 {
	rep := api.BAMStatsV1{
		Path:         path,
		ReadsSampled: s.Total,
		Paired:       s.Paired,
		ReadType:     s.ReadType(),
		ReadLength:   s.ModalLength(),
	}
	lengths := make([]int, 0, len(s.Lengths))
	for l := range s.Lengths {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	for _, l := range lengths {
		rep.Lengths = append(rep.Lengths, api.LengthCountV1{Length: l, Count: s.Lengths[l]})
	}
	return rep
}

// Probe estimates read length and pairedness of a BAM by inspecting up to
// n records of `samtools view` output. samtools must be on PATH; without
// it, read_length and read_type cannot be auto-populated for NGS inputs.
func Probe(ctx context.Context, bam string, n int) (Stats, error) {
	cmd := exec.CommandContext(ctx, "samtools", "view", bam)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Stats{}, err
	}
	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return Stats{}, fmt.Errorf(
				"samtools not on PATH, cannot auto-populate read_length/read_type for NGS inputs: %w", err)
		}
		return Stats{}, err
	}

	stats, parseErr := parseSAM(stdout, n)

	// Enough records seen; the subprocess may still be streaming.
	_ = cmd.Process.Kill()
	_ = cmd.Wait()

	if parseErr != nil {
		return Stats{}, parseErr
	}
	if stats.Total == 0 {
		return stats, fmt.Errorf("no alignment records in %q", bam)
	}
	return stats, nil
}

// ProbeFastq would estimate read type/length for fastq input.
func ProbeFastq(ctx context.Context, fastq string, n int) (Stats, error) {
	return Stats{}, fmt.Errorf("read type/length detection for fastq input: %w", errdefs.ErrNotImplemented)
}

// parseSAM folds up to n SAM text records into Stats. Header lines are
// skipped; truncated input is not an error, the sample is just smaller.
func parseSAM(r io.Reader, n int) (Stats, error) {
	stats := Stats{Lengths: map[int]int{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 8<<20)
	for stats.Total < n && sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "@") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 10 {
			return stats, fmt.Errorf("malformed SAM record (%d fields)", len(fields))
		}
		flag, err := strconv.Atoi(fields[1])
		if err != nil {
			return stats, fmt.Errorf("bad FLAG field %q: %w", fields[1], err)
		}
		stats.Lengths[len(fields[9])]++
		if flag&flagPaired != 0 {
			stats.Paired++
		}
		stats.Total++
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.ErrClosedPipe) {
		return stats, err
	}
	return stats, nil
}
