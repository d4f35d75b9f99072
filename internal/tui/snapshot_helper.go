package tui

import (
	"os"
	"path/filepath"
	"testing"
)

// SnapshotHelper compares rendered screens against golden files
type SnapshotHelper struct {
	t           *testing.T
	updateMode  bool
	snapshotDir string
}

// NewSnapshotHelper creates a helper rooted at testdata/snapshots.
// UPDATE_SNAPSHOTS=1 rewrites the golden files instead of comparing.
func NewSnapshotHelper(t *testing.T) *SnapshotHelper {
	return &SnapshotHelper{
		t:           t,
		updateMode:  os.Getenv("UPDATE_SNAPSHOTS") == "1",
		snapshotDir: "testdata/snapshots",
	}
}

// Compare checks output against <name>.golden. A missing golden file is
// written on the first run.
func (sh *SnapshotHelper) Compare(name, output string) {
	sh.t.Helper()

	if err := os.MkdirAll(sh.snapshotDir, 0o755); err != nil {
		sh.t.Fatalf("Failed to create snapshot directory: %v", err)
	}
	path := filepath.Join(sh.snapshotDir, name+".golden")

	if sh.updateMode {
		sh.write(path, output)
		sh.t.Logf("Updated snapshot: %s", path)
		return
	}

	golden, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		sh.t.Logf("Snapshot %s missing, writing it. Run UPDATE_SNAPSHOTS=1 to refresh", path)
		sh.write(path, output)
		return
	}
	if err != nil {
		sh.t.Fatalf("Failed to read snapshot file: %v", err)
	}

	if string(golden) != output {
		sh.t.Errorf("Snapshot mismatch for %s\n\nExpected:\n%s\n\nGot:\n%s\n\nRun UPDATE_SNAPSHOTS=1 to update",
			name, string(golden), output)
	}
}

func (sh *SnapshotHelper) write(path, content string) {
	sh.t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		sh.t.Fatalf("Failed to write snapshot file: %v", err)
	}
}
