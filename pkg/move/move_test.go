package move

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/sdejongh/bulkmv/pkg/models"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

func TestMove(t *testing.T) {
	t.Run("SameDirectory", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "a.txt")
		dst := filepath.Join(dir, "b.txt")
		writeFile(t, src, "hello")

		if err := Move(src, dst); err != nil {
			t.Fatalf("Move() error = %v", err)
		}

		if _, err := os.Stat(src); !os.IsNotExist(err) {
			t.Error("source still exists after move")
		}
		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatalf("failed to read destination: %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("destination content = %q, want %q", data, "hello")
		}
	})

	t.Run("IntoExistingSubdirectory", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "a.txt")
		dst := filepath.Join(dir, "sub", "a.txt")
		writeFile(t, src, "content")
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			t.Fatalf("failed to create destination dir: %v", err)
		}

		if err := Move(src, dst); err != nil {
			t.Fatalf("Move() error = %v", err)
		}
		if _, err := os.Stat(dst); err != nil {
			t.Errorf("destination missing: %v", err)
		}
	})

	t.Run("MissingSource", func(t *testing.T) {
		dir := t.TempDir()
		err := Move(filepath.Join(dir, "nope.txt"), filepath.Join(dir, "dst.txt"))
		if err == nil {
			t.Fatal("Move() should fail for missing source")
		}
		var moveErr *models.MoveError
		if !errors.As(err, &moveErr) {
			t.Fatalf("error = %T, want *models.MoveError", err)
		}
		if moveErr.Reason == "" {
			t.Error("MoveError.Reason is empty")
		}
	})
}

func TestCopyStreamed(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	writeFile(t, src, "streamed data")

	if err := copyStreamed(src, dst); err != nil {
		t.Fatalf("copyStreamed() error = %v", err)
	}

	// Source must survive a copy; only Move removes it
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source missing after copy: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read destination: %v", err)
	}
	if string(data) != "streamed data" {
		t.Errorf("destination content = %q, want %q", data, "streamed data")
	}

	srcInfo, _ := os.Stat(src)
	dstInfo, _ := os.Stat(dst)
	if srcInfo.Mode().Perm() != dstInfo.Mode().Perm() {
		t.Errorf("permissions not preserved: src %v, dst %v", srcInfo.Mode(), dstInfo.Mode())
	}
	if !srcInfo.ModTime().Equal(dstInfo.ModTime()) {
		t.Errorf("modification time not preserved: src %v, dst %v", srcInfo.ModTime(), dstInfo.ModTime())
	}
}

func TestCopyChunked(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	// Larger than one chunk so the loop runs more than once
	content := make([]byte, copyBufferSize*2+1234)
	for i := range content {
		content[i] = byte(i % 251)
	}
	if err := os.WriteFile(src, content, 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	if err := copyChunked(src, dst); err != nil {
		t.Fatalf("copyChunked() error = %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read destination: %v", err)
	}
	if len(data) != len(content) {
		t.Fatalf("destination size = %d, want %d", len(data), len(content))
	}
	for i := range data {
		if data[i] != content[i] {
			t.Fatalf("destination differs from source at byte %d", i)
		}
	}
}

func TestIsCrossDevice(t *testing.T) {
	err := &os.LinkError{
		Op:  "rename",
		Old: "/a",
		New: "/b",
		Err: syscall.EXDEV,
	}
	if !isCrossDevice(err) {
		t.Error("isCrossDevice() = false for EXDEV link error")
	}

	if isCrossDevice(errors.New("permission denied")) {
		t.Error("isCrossDevice() = true for an unrelated error")
	}
}

func TestReason(t *testing.T) {
	linkErr := &os.LinkError{
		Op:  "rename",
		Old: "/a",
		New: "/b",
		Err: syscall.EXDEV,
	}
	got := reason(linkErr)
	if got != syscall.EXDEV.Error() {
		t.Errorf("reason() = %q, want %q", got, syscall.EXDEV.Error())
	}
}
