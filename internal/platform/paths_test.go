package platform

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a//b/./c", "a/b/c"},
		{"a/b/../c", "a/c"},
		{"a/b/", "a/b"},
		{".", "."},
	}

	for _, tt := range tests {
		got := NormalizePath(filepath.FromSlash(tt.in))
		if got != filepath.FromSlash(tt.want) {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidatePath(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		err := ValidatePath("")
		if err == nil {
			t.Fatal("ValidatePath(\"\") should fail")
		}
		var pathErr *PathError
		if !errors.As(err, &pathErr) {
			t.Fatalf("error = %T, want *PathError", err)
		}
	})

	t.Run("Regular", func(t *testing.T) {
		if err := ValidatePath(filepath.Join("some", "dir", "file.txt")); err != nil {
			t.Errorf("ValidatePath() error = %v", err)
		}
	})

	t.Run("WindowsInvalidChars", func(t *testing.T) {
		if runtime.GOOS != "windows" {
			t.Skip("Windows-only character rules")
		}
		if err := ValidatePath(`C:\dir\bad<name.txt`); err == nil {
			t.Error("ValidatePath() should reject '<' on Windows")
		}
		// Drive letters stay valid
		if err := ValidatePath(`C:\dir\file.txt`); err != nil {
			t.Errorf("ValidatePath() error = %v for a drive-letter path", err)
		}
	})
}

func TestIsUNCPath(t *testing.T) {
	if runtime.GOOS != "windows" {
		if IsUNCPath(`\\server\share`) {
			t.Error("IsUNCPath() = true on a non-Windows platform")
		}
		return
	}

	if !IsUNCPath(`\\server\share`) {
		t.Error(`IsUNCPath(\\server\share) = false`)
	}
	if IsUNCPath(`C:\dir`) {
		t.Error(`IsUNCPath(C:\dir) = true`)
	}
}
