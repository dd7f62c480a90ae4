package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestFS(t *testing.T, files map[string]string) (string, *FS) {
	t.Helper()
	dir := t.TempDir()
	for rel, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	t.Cleanup(func() { _ = fs.Close() })
	return dir, fs
}

func TestRead(t *testing.T) {
	_, fs := newTestFS(t, map[string]string{"site.yaml": "name: x\n"})

	got, err := fs.Read("site.yaml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "name: x\n" {
		t.Errorf("Read = %q", got)
	}

	if _, err := fs.Read("missing.yaml"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}
}

func TestList(t *testing.T) {
	_, fs := newTestFS(t, map[string]string{
		"projects/b.md":       "b",
		"projects/a.MD":       "a",
		"projects/a/deep.md":  "deep",
		"projects/notes.txt":  "skip",
		"projects/.hidden.md": "skip",
		"site.yaml":           "skip",
	})

	items, err := fs.List("projects", ".md")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var paths []string
	for _, it := range items {
		paths = append(paths, it.Path)
	}
	want := []string{"projects/a.MD", "projects/a/deep.md", "projects/b.md"}
	if len(paths) != len(want) {
		t.Fatalf("paths = %q, want %q", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
	if items[2].Checksum == "" || items[2].Size != 1 {
		t.Errorf("metadata = %+v", items[2])
	}

	all, err := fs.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("List(\"\") = %d files, want 5", len(all))
	}
}

func TestListMissingDir(t *testing.T) {
	_, fs := newTestFS(t, nil)
	items, err := fs.List("projects", ".md")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len = %d, want 0", len(items))
	}
}

func TestPathsOutsideRoot(t *testing.T) {
	_, fs := newTestFS(t, nil)

	for _, p := range []string{"../../etc/passwd", "../outside.md", "/etc/shadow", "projects/../../x"} {
		if _, err := fs.Read(p); err == nil {
			t.Errorf("Read(%q) should fail", p)
		}
		if _, err := fs.List(p); err == nil {
			t.Errorf("List(%q) should fail", p)
		}
	}
}

func TestSymlinkOutsideRoot(t *testing.T) {
	outside := filepath.Join(t.TempDir(), "secret.md")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir, fs := newTestFS(t, map[string]string{"projects/a.md": "a"})
	if err := os.Symlink(outside, filepath.Join(dir, "projects", "b.md")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if _, err := fs.Read("projects/b.md"); err == nil {
		t.Error("reading through an escaping symlink should fail")
	}
	items, err := fs.List("projects", ".md")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].Path != "projects/a.md" {
		t.Errorf("List = %+v, want only projects/a.md", items)
	}
}

func TestNewFS(t *testing.T) {
	if _, err := NewFS(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing dir")
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFS(file); err == nil {
		t.Error("expected error when root is a file")
	}

	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Close()
	if fs.Root() != dir {
		t.Errorf("Root = %q, want %q", fs.Root(), dir)
	}
}
