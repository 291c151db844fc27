package listing

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sdejongh/bulkmv/pkg/pathutil"
)

func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}
	return root
}

func TestList(t *testing.T) {
	t.Run("FilesOnly", func(t *testing.T) {
		root := makeTree(t, "a.txt", "sub/b.txt", "sub/deep/c.txt")

		lister, err := New(root, nil, nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		paths, err := lister.List(context.Background(), nil)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		want := []string{"a.txt", "sub/b.txt", "sub/deep/c.txt"}
		if len(paths) != len(want) {
			t.Fatalf("List() = %v, want %v", paths, want)
		}
		for i := range want {
			if paths[i] != want[i] {
				t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
			}
		}
	})

	t.Run("IncludePatterns", func(t *testing.T) {
		root := makeTree(t, "a.txt", "b.jpg", "sub/c.jpg", "sub/d.md")

		lister, err := New(root, nil, nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		paths, err := lister.List(context.Background(), []string{"*.jpg"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		if len(paths) != 2 {
			t.Fatalf("List(*.jpg) = %v, want the two jpg files", paths)
		}
		if paths[0] != "b.jpg" || paths[1] != "sub/c.jpg" {
			t.Errorf("List(*.jpg) = %v", paths)
		}
	})

	t.Run("PathPattern", func(t *testing.T) {
		root := makeTree(t, "a.md", "docs/b.md", "docs/c.txt")

		lister, err := New(root, nil, nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		paths, err := lister.List(context.Background(), []string{"docs/*.md"})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		if len(paths) != 1 || paths[0] != "docs/b.md" {
			t.Errorf("List(docs/*.md) = %v, want [docs/b.md]", paths)
		}
	})

	t.Run("ExcludeDirectoryPattern", func(t *testing.T) {
		root := makeTree(t, "a.txt", ".git/config", "node_modules/pkg/index.js")

		lister, err := New(root, []string{".git/", "node_modules/"}, nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		paths, err := lister.List(context.Background(), nil)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		if len(paths) != 1 || paths[0] != "a.txt" {
			t.Errorf("List() = %v, want [a.txt]", paths)
		}
	})

	t.Run("FiltersTempArtifacts", func(t *testing.T) {
		root := makeTree(t, "a.txt")
		tmp := pathutil.TempSibling(filepath.Join(root, "a.txt"))
		if err := os.WriteFile(tmp, []byte("staged"), 0644); err != nil {
			t.Fatalf("failed to create temp artifact: %v", err)
		}

		lister, err := New(root, nil, nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		paths, err := lister.List(context.Background(), nil)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		if len(paths) != 1 || paths[0] != "a.txt" {
			t.Errorf("List() = %v, staging artifacts must be filtered", paths)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		root := makeTree(t, "a.txt")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		lister, err := New(root, nil, nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if _, err := lister.List(ctx, nil); err == nil {
			t.Error("List() should fail with a cancelled context")
		}
	})
}

func TestShouldExclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"file.tmp", []string{"*.tmp"}, true},
		{"sub/file.tmp", []string{"*.tmp"}, true},
		{"file.txt", []string{"*.tmp"}, false},
		{".git/config", []string{".git/"}, true},
		{"a/.git/config", []string{".git/"}, true},
		{"gitool.txt", []string{".git/"}, false},
		{"build/out.bin", []string{"build/*"}, true},
		{"a/testdata/x", []string{"**/testdata"}, true},
		{"docs/a.md", []string{"docs/*.md"}, true},
		{"docs/a.txt", []string{"docs/*.md"}, false},
		{"anything", nil, false},
	}

	for _, tt := range tests {
		if got := shouldExclude(tt.path, tt.patterns); got != tt.want {
			t.Errorf("shouldExclude(%q, %v) = %t, want %t", tt.path, tt.patterns, got, tt.want)
		}
	}
}
