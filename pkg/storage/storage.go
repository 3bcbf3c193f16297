package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Storage writes all run output under a single root directory. Existing files
// are overwritten without warning; there is no conflict detection.
type Storage struct {
	root string
}

// FileStats holds metadata about a file without reading its contents.
type FileStats struct {
	SizeBytes int64
	ModTime   time.Time
}

func New(root string) *Storage {
	return &Storage{root: root}
}

func (s *Storage) Root() string {
	return s.root
}

// EnsureRoot creates the output root. The orchestrator calls this once,
// before any fetch, so a bad output location fails the run up front.
func (s *Storage) EnsureRoot() error {
	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.root, err)
	}
	return nil
}

// PagePath maps a catalog stem to its output file path. Stem segments become
// nested directories.
func (s *Storage) PagePath(stem string) string {
	return filepath.Join(s.root, filepath.FromSlash(stem)+".md")
}

// WritePage writes one converted page, creating intermediate directories as
// needed. Returns the written path.
func (s *Storage) WritePage(stem string, content []byte) (string, error) {
	path := s.PagePath(stem)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// SaveFile writes a file directly under the output root (index, run summary).
func (s *Storage) SaveFile(name string, content []byte) error {
	path := filepath.Join(s.root, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s *Storage) HasFile(name string) bool {
	_, err := os.Stat(filepath.Join(s.root, name))
	return err == nil || !os.IsNotExist(err)
}

// GetFileStats returns size and modification time for a file under the root.
func (s *Storage) GetFileStats(name string) (*FileStats, error) {
	info, err := os.Stat(filepath.Join(s.root, name))
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return &FileStats{
		SizeBytes: info.Size(),
		ModTime:   info.ModTime(),
	}, nil
}
