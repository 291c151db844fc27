package prune

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sdejongh/bulkmv/pkg/models"
)

func TestEmptyAncestors(t *testing.T) {
	t.Run("RemovesChainUpToBoundary", func(t *testing.T) {
		root := t.TempDir()
		stop := filepath.Join(root, "a")
		start := filepath.Join(root, "a", "b", "c")
		if err := os.MkdirAll(start, 0755); err != nil {
			t.Fatalf("failed to create dirs: %v", err)
		}

		removed, err := EmptyAncestors(start, stop)
		if err != nil {
			t.Fatalf("EmptyAncestors() error = %v", err)
		}
		if removed != 2 {
			t.Errorf("removed = %d, want 2 (c and b)", removed)
		}
		if _, err := os.Stat(filepath.Join(root, "a", "b")); !os.IsNotExist(err) {
			t.Error("b should have been removed")
		}
		// The boundary survives even though it is empty
		if _, err := os.Stat(stop); err != nil {
			t.Errorf("boundary dir was removed: %v", err)
		}
	})

	t.Run("StopsAtNonEmptyDirectory", func(t *testing.T) {
		root := t.TempDir()
		start := filepath.Join(root, "a", "b", "c")
		if err := os.MkdirAll(start, 0755); err != nil {
			t.Fatalf("failed to create dirs: %v", err)
		}
		keeper := filepath.Join(root, "a", "b", "keep.txt")
		if err := os.WriteFile(keeper, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}

		removed, err := EmptyAncestors(start, root)
		if err != nil {
			t.Fatalf("EmptyAncestors() error = %v", err)
		}
		if removed != 1 {
			t.Errorf("removed = %d, want 1 (only c)", removed)
		}
		if _, err := os.Stat(keeper); err != nil {
			t.Errorf("non-empty dir contents disturbed: %v", err)
		}
	})

	t.Run("StartEqualsBoundary", func(t *testing.T) {
		root := t.TempDir()
		removed, err := EmptyAncestors(root, root)
		if err != nil {
			t.Fatalf("EmptyAncestors() error = %v", err)
		}
		if removed != 0 {
			t.Errorf("removed = %d, want 0", removed)
		}
		if _, err := os.Stat(root); err != nil {
			t.Errorf("boundary dir was removed: %v", err)
		}
	})

	t.Run("StartOutsideBoundaryRemovesNothing", func(t *testing.T) {
		root := t.TempDir()
		stop := filepath.Join(root, "project")
		outside := filepath.Join(root, "elsewhere", "a", "b")
		if err := os.MkdirAll(stop, 0755); err != nil {
			t.Fatalf("failed to create dirs: %v", err)
		}
		if err := os.MkdirAll(outside, 0755); err != nil {
			t.Fatalf("failed to create dirs: %v", err)
		}

		removed, err := EmptyAncestors(outside, stop)
		if err != nil {
			t.Fatalf("EmptyAncestors() error = %v", err)
		}
		if removed != 0 {
			t.Errorf("removed = %d, want 0 for a start outside the boundary", removed)
		}
		// The whole out-of-boundary chain survives, empty or not
		if _, err := os.Stat(outside); err != nil {
			t.Errorf("out-of-boundary dir was removed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(root, "elsewhere")); err != nil {
			t.Errorf("out-of-boundary dir was removed: %v", err)
		}
	})

	t.Run("MissingStartClimbs", func(t *testing.T) {
		root := t.TempDir()
		empty := filepath.Join(root, "a", "b")
		if err := os.MkdirAll(empty, 0755); err != nil {
			t.Fatalf("failed to create dirs: %v", err)
		}

		// Start below a dir that no longer exists
		removed, err := EmptyAncestors(filepath.Join(empty, "gone"), root)
		if err != nil {
			t.Fatalf("EmptyAncestors() error = %v", err)
		}
		if removed != 2 {
			t.Errorf("removed = %d, want 2 (b and a)", removed)
		}
	})
}

func TestMovedSources(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "x", "y")
	if err := os.MkdirAll(deep, 0755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}

	// Two applied pairs sharing the same vacated parent
	applied := []models.RenamePair{
		{From: filepath.Join(deep, "a.txt"), To: filepath.Join(root, "a.txt")},
		{From: filepath.Join(deep, "b.txt"), To: filepath.Join(root, "b.txt")},
	}

	removed := MovedSources(applied, root)
	if removed != 2 {
		t.Errorf("removed = %d, want 2 (y and x)", removed)
	}
	if _, err := os.Stat(filepath.Join(root, "x")); !os.IsNotExist(err) {
		t.Error("vacated chain should be gone")
	}
	if _, err := os.Stat(root); err != nil {
		t.Errorf("boundary dir was removed: %v", err)
	}
}

func TestMovedSources_OutsideBoundary(t *testing.T) {
	root := t.TempDir()
	stop := filepath.Join(root, "project")
	vacated := filepath.Join(root, "elsewhere", "x")
	if err := os.MkdirAll(stop, 0755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	if err := os.MkdirAll(vacated, 0755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}

	applied := []models.RenamePair{
		{From: filepath.Join(vacated, "a.txt"), To: filepath.Join(stop, "a.txt")},
	}

	if removed := MovedSources(applied, stop); removed != 0 {
		t.Errorf("removed = %d, want 0 for sources outside the boundary", removed)
	}
	if _, err := os.Stat(vacated); err != nil {
		t.Errorf("out-of-boundary dir was removed: %v", err)
	}
}
