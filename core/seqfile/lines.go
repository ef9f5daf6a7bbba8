// core/seqfile/lines.go
package seqfile

import (
	"bufio"
	"os"
	"strings"
)

// Lines interprets its argument as lines of text data. If the argument
// names an extant regular file, that file is read (gzip-aware); otherwise
// the string itself is treated as newline-delimited data. This lets model
// constructors accept either a path or raw content.
func Lines(linesOrPath string) ([]string, error) {
	if info, err := os.Stat(linesOrPath); err == nil && info.Mode().IsRegular() {
		return fileLines(linesOrPath)
	}
	raw := strings.ReplaceAll(linesOrPath, "\r\n", "\n")
	lines := strings.Split(raw, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func fileLines(path string) ([]string, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var lines []string
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64<<10), 8<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
