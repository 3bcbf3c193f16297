package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "docs"))
	if err := s.EnsureRoot(); err != nil {
		t.Fatalf("failed to create output root: %v", err)
	}
	return s
}

func TestWritePageCreatesNestedDirectories(t *testing.T) {
	s := newTestStorage(t)

	path, err := s.WritePage("features/email/resend", []byte("# Resend\n"))
	if err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}

	want := filepath.Join(s.Root(), "features", "email", "resend.md")
	if path != want {
		t.Errorf("WritePage path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written page: %v", err)
	}
	if string(data) != "# Resend\n" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestWritePageOverwrites(t *testing.T) {
	s := newTestStorage(t)

	if _, err := s.WritePage("get-started", []byte("old")); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	path, err := s.WritePage("get-started", []byte("new"))
	if err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read page: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("overwrite did not replace content, got %q", data)
	}
}

func TestPagePathDeterministic(t *testing.T) {
	s := New("shipany_docs")

	tests := []struct {
		stem string
		want string
	}{
		{"get-started", filepath.Join("shipany_docs", "get-started.md")},
		{"guide/faq", filepath.Join("shipany_docs", "guide", "faq.md")},
	}
	for _, tt := range tests {
		if got := s.PagePath(tt.stem); got != tt.want {
			t.Errorf("PagePath(%q) = %q, want %q", tt.stem, got, tt.want)
		}
	}
}

func TestSaveFileAndStats(t *testing.T) {
	s := newTestStorage(t)

	if s.HasFile("README.md") {
		t.Fatal("HasFile true before write")
	}
	if err := s.SaveFile("README.md", []byte("# index\n")); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	if !s.HasFile("README.md") {
		t.Error("HasFile false after write")
	}

	stats, err := s.GetFileStats("README.md")
	if err != nil {
		t.Fatalf("GetFileStats failed: %v", err)
	}
	if stats.SizeBytes != int64(len("# index\n")) {
		t.Errorf("unexpected size: %d", stats.SizeBytes)
	}
}

func TestEnsureRootFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	s := New(filepath.Join(blocker, "docs"))
	err := s.EnsureRoot()
	if err == nil {
		t.Fatal("expected error creating root under a regular file")
	}
	if !strings.Contains(err.Error(), "failed to create output directory") {
		t.Errorf("unexpected error: %v", err)
	}
}
