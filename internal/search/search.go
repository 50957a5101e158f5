// Package search provides single-file and tree-wide pattern search plus
// glob-based file discovery.
package search

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/stwalsh4118/prelude/internal/fsio"
	"github.com/stwalsh4118/prelude/internal/logging"
)

// Match is one matching line within a file, 1-based.
type Match struct {
	Line int
	Text string
}

// TreeMatch is one matching line found during a tree-wide search.
type TreeMatch struct {
	Path string
	Line int
	Text string
}

// Searcher runs pattern searches against files in a Store.
type Searcher struct {
	store  fsio.Store
	logger logging.Logger
}

// NewSearcher creates a new searcher instance.
func NewSearcher(store fsio.Store, logger logging.Logger) (*Searcher, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &Searcher{
		store:  store,
		logger: logger.With("component", "search"),
	}, nil
}

// GrepFile returns every line of path the pattern matches anywhere in,
// annotated with its 1-based line number.
func (s *Searcher) GrepFile(path, pattern string, ignoreCase bool) ([]Match, error) {
	rx, err := compile(pattern, ignoreCase)
	if err != nil {
		return nil, err
	}

	content, err := s.store.ReadText(path)
	if err != nil {
		return nil, err
	}

	var hits []Match
	for i, line := range splitLines(content) {
		if rx.MatchString(line) {
			hits = append(hits, Match{Line: i + 1, Text: line})
		}
	}

	s.logger.Debug("grepped file", "path", path, "pattern", pattern, "hits", len(hits))
	return hits, nil
}

// GrepTree searches every non-directory file under root whose name matches
// glob. Files that cannot be read as text are skipped without error.
func (s *Searcher) GrepTree(root, pattern, glob string, ignoreCase bool) ([]TreeMatch, error) {
	rx, err := compile(pattern, ignoreCase)
	if err != nil {
		return nil, err
	}

	paths, err := s.store.EnumerateRecursive(root, glob)
	if err != nil {
		return nil, err
	}

	var hits []TreeMatch
	for _, path := range paths {
		content, err := s.store.ReadText(path)
		if err != nil {
			continue
		}
		for i, line := range splitLines(content) {
			if rx.MatchString(line) {
				hits = append(hits, TreeMatch{Path: path, Line: i + 1, Text: line})
			}
		}
	}

	s.logger.Debug("grepped tree", "root", root, "pattern", pattern, "hits", len(hits))
	return hits, nil
}

// Find returns every file under root whose name matches glob, sorted.
func (s *Searcher) Find(root, glob string) ([]string, error) {
	paths, err := s.store.EnumerateRecursive(root, glob)
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// Glob performs a non-recursive glob within dir (use Find for recursive).
func (s *Searcher) Glob(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
	}

	sort.Strings(matches)
	return matches, nil
}

// compile builds the search regexp, optionally case-insensitive.
func compile(pattern string, ignoreCase bool) (*regexp.Regexp, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return rx, nil
}

// splitLines splits content into lines without a phantom final entry for a
// trailing terminator.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}
