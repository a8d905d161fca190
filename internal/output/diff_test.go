package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUnifiedDiff_ShowsInsertion(t *testing.T) {
	before := "const (\n\tSYS_EPOLL_CTL     = 233\n)\n"
	after := "const (\n\tSYS_EPOLL_WAIT    = 232\n\tSYS_EPOLL_CTL     = 233\n)\n"

	var buf bytes.Buffer
	if err := UnifiedDiff(&buf, "defs.go", before, after); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	if !strings.Contains(got, "--- defs.go") || !strings.Contains(got, "+++ defs.go (patched)") {
		t.Fatalf("missing file headers: %q", got)
	}
	if !strings.Contains(got, "+\tSYS_EPOLL_WAIT    = 232\n") {
		t.Fatalf("insertion not shown: %q", got)
	}
	if strings.Contains(got, "-\tSYS_EPOLL_CTL") {
		t.Fatalf("unchanged line shown as removed: %q", got)
	}
}

func TestUnifiedDiff_EmptyWhenIdentical(t *testing.T) {
	var buf bytes.Buffer
	if err := UnifiedDiff(&buf, "same.go", "package x\n", "package x\n"); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for identical content: %q", buf.String())
	}
}

func TestWriteReport_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.json")

	if err := WriteReport(path, map[string]string{"goroot": "/usr/local/go"}); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "\"goroot\": \"/usr/local/go\"") {
		t.Fatalf("unexpected report content: %s", b)
	}
}
