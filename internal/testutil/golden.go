package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// goldenDir holds expected screens, relative to the package under test.
const goldenDir = "testdata"

// GoldenString compares terminal output against testdata/<name>.golden.
// Line endings are normalized on both sides so a checkout with CRLF
// endings still matches. Setting GOLDEN_UPDATE rewrites the file instead.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()

	path := filepath.Join(goldenDir, name+".golden")
	got = normalizeNewlines(got)

	if os.Getenv("GOLDEN_UPDATE") != "" {
		if err := os.MkdirAll(goldenDir, 0o755); err != nil {
			t.Fatalf("create %s: %v", goldenDir, err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("update %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v (run with GOLDEN_UPDATE=1 to create it)", path, err)
	}
	if diff := cmp.Diff(normalizeNewlines(string(want)), got); diff != "" {
		t.Errorf("screen mismatch for %s (-want +got):\n%s", name, diff)
	}
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
