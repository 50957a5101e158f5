package fsio

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"
)

// Store defines the filesystem access used by the text and search components.
// Implementations must support UTF-8 text; ReadText reports non-decodable
// content through ErrNotText so tree-wide callers can skip it.
type Store interface {
	ReadText(path string) (string, error)
	WriteText(path string, text string) error
	AppendText(path string, text string) error
	EnumerateRecursive(root, glob string) ([]string, error)
}

// ErrNotText is returned by ReadText when a file is not valid UTF-8.
var ErrNotText = fmt.Errorf("file is not valid UTF-8 text")

// Info summarizes a single filesystem entry.
type Info struct {
	Path    string
	Size    int64
	IsDir   bool
	Mode    fs.FileMode
	ModTime time.Time
}

// DiskStore implements Store against the local filesystem.
type DiskStore struct{}

// NewDiskStore creates a Store backed by the local filesystem.
func NewDiskStore() *DiskStore {
	return &DiskStore{}
}

// ReadText reads the whole file as UTF-8 text.
func (s *DiskStore) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrNotText)
	}

	return string(data), nil
}

// WriteText writes text to path, creating parent directories as needed.
func (s *DiskStore) WriteText(path string, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create parent directories for %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// AppendText appends text to path, creating the file and parents as needed.
func (s *DiskStore) AppendText(path string, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create parent directories for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("append to %s: %w", path, err)
	}

	return nil
}

// EnumerateRecursive walks root and returns every non-directory path whose
// base name matches glob, in lexical walk order. Unreadable subtrees are
// skipped rather than aborting the walk.
func (s *DiskStore) EnumerateRecursive(root, glob string) ([]string, error) {
	if glob == "" {
		glob = "*"
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip unreadable entries, keep walking
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		matched, matchErr := filepath.Match(glob, d.Name())
		if matchErr != nil {
			return fmt.Errorf("bad glob %q: %w", glob, matchErr)
		}
		if matched {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate %s: %w", root, err)
	}

	return paths, nil
}

// Copy copies a single file, creating destination parents as needed.
func (s *DiskStore) Copy(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create parent directories for %s: %w", dst, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}

	return nil
}

// Move moves or renames a file or directory, creating destination parents.
func (s *DiskStore) Move(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create parent directories for %s: %w", dst, err)
	}

	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("move %s to %s: %w", src, dst, err)
	}

	return nil
}

// Remove deletes a file, or a directory when recursive is set.
// Removing a non-empty directory without recursive fails.
func (s *DiskStore) Remove(path string, recursive bool) error {
	if recursive {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
		return nil
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	return nil
}

// Touch creates an empty file or updates the modification time of an
// existing one, creating parent directories as needed.
func (s *DiskStore) Touch(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create parent directories for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("touch %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("touch %s: %w", path, err)
	}

	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		return fmt.Errorf("touch %s: %w", path, err)
	}

	return nil
}

// MkdirAll creates a directory and any missing parents.
func (s *DiskStore) MkdirAll(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

// Stat returns a summary of a filesystem entry.
func (s *DiskStore) Stat(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", path, err)
	}

	return Info{
		Path:    path,
		Size:    fi.Size(),
		IsDir:   fi.IsDir(),
		Mode:    fi.Mode(),
		ModTime: fi.ModTime(),
	}, nil
}
