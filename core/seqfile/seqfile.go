// core/seqfile/seqfile.go
package seqfile

import (
	"fmt"
	"strings"
)

// Filetype classifies sequencing input files by extension.
type Filetype int

const (
	Unknown Filetype = iota
	BAM
	Fastq
)

func (t Filetype) String() string {
	switch t {
	case BAM:
		return "bam"
	case Fastq:
		return "fastq"
	default:
		return "unknown"
	}
}

// UnsupportedTypeError reports an input file of no recognized sequencing type.
type UnsupportedTypeError struct {
	Path string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("input file ends in neither '.bam' nor '.fastq' [file: %q]", e.Path)
}

// Parse determines the sequencing file type from the file extension.
func Parse(path string) (Filetype, error) {
	switch {
	case strings.HasSuffix(path, ".bam"):
		return BAM, nil
	case strings.HasSuffix(path, ".fastq"),
		strings.HasSuffix(path, ".fq"),
		strings.HasSuffix(path, ".fastq.gz"),
		strings.HasSuffix(path, ".fq.gz"):
		return Fastq, nil
	default:
		return Unknown, &UnsupportedTypeError{Path: path}
	}
}
