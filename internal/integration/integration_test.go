// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pepkit/internal/checkapp"
	"pepkit/pkg/api"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "tools.yaml")
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestEndToEndAllCallable(t *testing.T) {
	cfg := writeConfig(t, "shells:\n  - sh\n")

	var out, errBuf bytes.Buffer
	code := checkapp.Run([]string{"--config", cfg}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "all commands callable") {
		t.Fatalf("unexpected text output:\n%s", out.String())
	}
}

func TestEndToEndMissingToolExit1(t *testing.T) {
	cfg := writeConfig(t, "tools:\n  - sh\n  - definitely-not-a-real-tool-xyz\n")

	var out, errBuf bytes.Buffer
	code := checkapp.Run([]string{cfg, "--output", "json"}, &out, &errBuf)

	if code != 1 {
		t.Fatalf("expected exit 1, got %d, err=%s", code, errBuf.String())
	}
	var rep api.CheckReportV1
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("json output: %v\n%s", err, out.String())
	}
	if rep.OK || len(rep.Failures) != 1 || rep.Failures[0] != "definitely-not-a-real-tool-xyz" {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestEndToEndStrictOff(t *testing.T) {
	cfg := writeConfig(t, "tools:\n  - definitely-not-a-real-tool-xyz\n")

	var out, errBuf bytes.Buffer
	code := checkapp.Run([]string{cfg, "--strict=false"}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("expected exit 0 with --strict=false, got %d", code)
	}
	if !strings.Contains(out.String(), "MISSING") {
		t.Fatalf("expected MISSING marker in output:\n%s", out.String())
	}
}

func TestEndToEndSectionSelection(t *testing.T) {
	cfg := writeConfig(t, "present:\n  - sh\nabsent:\n  - definitely-not-a-real-tool-xyz\n")

	var out, errBuf bytes.Buffer
	code := checkapp.Run([]string{cfg, "--sections", "present"}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("expected exit 0 checking only present section, got %d, err=%s", code, errBuf.String())
	}
	if strings.Contains(out.String(), "absent") {
		t.Fatalf("skipped section leaked into output:\n%s", out.String())
	}
}

func TestEndToEndMissingConfigExit3(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := checkapp.Run([]string{"--config", "no-such-config.yaml"}, &out, &errBuf)

	if code != 3 {
		t.Fatalf("expected exit 3 for unreadable config, got %d", code)
	}
	if errBuf.Len() == 0 {
		t.Fatal("expected error message on stderr")
	}
}

func TestEndToEndUsageOnBadFlags(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := checkapp.Run([]string{"--output", "xml", "tools.yaml"}, &out, &errBuf)

	if code != 2 {
		t.Fatalf("expected exit 2 on bad flags, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage text:\n%s", out.String())
	}
}

func TestEndToEndVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := checkapp.Run([]string{"--version"}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "pepcheck version") {
		t.Fatalf("unexpected version output: %s", out.String())
	}
}

func TestEndToEndNoArgsPrintsUsage(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := checkapp.Run(nil, &out, &errBuf)

	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage text:\n%s", out.String())
	}
}
