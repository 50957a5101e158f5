// Package editor implements a line-addressed text editor over files: range
// reads, range and pattern deletions, insertions, and regexp substitutions,
// with 1-based inclusive addressing and clamped (never rejected) ranges.
package editor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/stwalsh4118/prelude/internal/fsio"
	"github.com/stwalsh4118/prelude/internal/logging"
)

// NumberedLine is a line of text annotated with its absolute 1-based
// position in the file it was read from.
type NumberedLine struct {
	Number int
	Text   string
}

// Editor performs line-addressed edits against files in a Store.
type Editor struct {
	store  fsio.Store
	logger logging.Logger
}

// NewEditor creates a new editor instance.
func NewEditor(store fsio.Store, logger logging.Logger) (*Editor, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &Editor{
		store:  store,
		logger: logger.With("component", "editor"),
	}, nil
}

// ReadRange returns the lines from start through end, annotated with their
// absolute line numbers. end <= 0 selects through the LAST line (unlike
// DeleteRange, whose default is a single line). Bounds are clamped into
// [1, length]; an empty buffer yields an empty result.
func (e *Editor) ReadRange(path string, start, end int) ([]NumberedLine, error) {
	buf, err := e.load(path)
	if err != nil {
		return nil, err
	}

	if end <= 0 {
		end = buf.Len()
	}

	s, t, ok := clampRange(start, end, buf.Len())
	if !ok {
		return nil, nil
	}

	out := make([]NumberedLine, 0, t-s+1)
	for n := s; n <= t; n++ {
		out = append(out, NumberedLine{Number: n, Text: buf.Line(n)})
	}

	e.logger.Debug("read line range", "path", path, "start", s, "end", t, "lines", len(out))
	return out, nil
}

// DeleteRange removes the lines from start through end and rewrites the
// file, returning the removed-line count. end <= 0 deletes exactly one line
// (end defaults to start) -- this intentionally differs from ReadRange's
// default of "through the last line" and is part of the contract. The
// rewritten content ends in a line terminator iff the buffer held any lines
// before the deletion.
func (e *Editor) DeleteRange(path string, start, end int) (int, error) {
	buf, err := e.load(path)
	if err != nil {
		return 0, err
	}

	if end <= 0 {
		end = start
	}

	wasNonEmpty := buf.Len() > 0

	s, t, ok := clampRange(start, end, buf.Len())
	count := 0
	if ok {
		count = t - s + 1
		buf.lines = append(buf.lines[:s-1], buf.lines[t:]...)
	}

	if err := e.persist(path, buf, wasNonEmpty); err != nil {
		return 0, err
	}

	e.logger.Debug("deleted line range", "path", path, "start", s, "end", t, "removed", count)
	return count, nil
}

// DeleteMatching removes every line the pattern matches anywhere in (a
// search, not a full match) and rewrites the file, returning the removed
// count. With regex=false the pattern is a plain substring. Terminator
// policy matches DeleteRange.
func (e *Editor) DeleteMatching(path, pattern string, regex bool) (int, error) {
	buf, err := e.load(path)
	if err != nil {
		return 0, err
	}

	matches := func(line string) bool { return strings.Contains(line, pattern) }
	if regex {
		rx, err := regexp.Compile(pattern)
		if err != nil {
			return 0, fmt.Errorf("compile pattern %q: %w", pattern, err)
		}
		matches = rx.MatchString
	}

	wasNonEmpty := buf.Len() > 0

	kept := buf.lines[:0]
	for _, line := range buf.lines {
		if !matches(line) {
			kept = append(kept, line)
		}
	}
	count := buf.Len() - len(kept)
	buf.lines = kept

	if err := e.persist(path, buf, wasNonEmpty); err != nil {
		return 0, err
	}

	e.logger.Debug("deleted matching lines", "path", path, "pattern", pattern, "removed", count)
	return count, nil
}

// InsertAt inserts the lines of text at the given position. lineNum is
// clamped to [1, length+1]. With after=true the insertion follows line
// min(lineNum, length), so inserting "after" a position beyond the end
// appends; with after=false it precedes lineNum. The result is always
// persisted WITH a trailing terminator, regardless of the original
// content's terminator -- an intentional asymmetry with the delete
// operations.
func (e *Editor) InsertAt(path string, lineNum int, text string, after bool) error {
	buf, err := e.load(path)
	if err != nil {
		return err
	}

	inserted := newBuffer(text).lines

	if lineNum < 1 {
		lineNum = 1
	}
	if lineNum > buf.Len()+1 {
		lineNum = buf.Len() + 1
	}

	var idx int // 0-based index the new lines land at
	if after {
		idx = lineNum
		if idx > buf.Len() {
			idx = buf.Len()
		}
	} else {
		idx = lineNum - 1
	}

	lines := make([]string, 0, buf.Len()+len(inserted))
	lines = append(lines, buf.lines[:idx]...)
	lines = append(lines, inserted...)
	lines = append(lines, buf.lines[idx:]...)
	buf.lines = lines

	if err := e.persist(path, buf, true); err != nil {
		return err
	}

	e.logger.Debug("inserted lines", "path", path, "line", lineNum, "after", after, "count", len(inserted))
	return nil
}

// Substitute performs a global regexp substitution across the whole file
// content (not line by line) and returns the number of non-overlapping
// matches replaced. The file is rewritten even when the count is zero.
func (e *Editor) Substitute(path, pattern, repl string) (int, error) {
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}

	content, err := e.store.ReadText(path)
	if err != nil {
		return 0, err
	}

	count := len(rx.FindAllStringIndex(content, -1))
	replaced := rx.ReplaceAllString(content, repl)

	if err := e.store.WriteText(path, replaced); err != nil {
		return 0, err
	}

	e.logger.Debug("substituted pattern", "path", path, "pattern", pattern, "count", count)
	return count, nil
}

// SubstituteTree applies Substitute to every non-directory file under root
// whose name matches glob, returning the total replacement count. Files
// that cannot be decoded as text are silently skipped; a file is rewritten
// only when its own count is positive. Partial application on a later
// failure is acceptable and is not rolled back.
func (e *Editor) SubstituteTree(root, pattern, repl, glob string) (int, error) {
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}

	paths, err := e.store.EnumerateRecursive(root, glob)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, path := range paths {
		content, err := e.store.ReadText(path)
		if err != nil {
			// Binary or unreadable file: skip and continue.
			e.logger.Debug("skipping undecodable file", "path", path, "error", err)
			continue
		}

		count := len(rx.FindAllStringIndex(content, -1))
		if count == 0 {
			continue
		}

		if err := e.store.WriteText(path, rx.ReplaceAllString(content, repl)); err != nil {
			e.logger.Warn("failed to rewrite file, continuing", "path", path, "error", err)
			continue
		}
		total += count
	}

	e.logger.Debug("substituted across tree", "root", root, "pattern", pattern, "total", total)
	return total, nil
}

// load reads path into a line buffer.
func (e *Editor) load(path string) (*Buffer, error) {
	content, err := e.store.ReadText(path)
	if err != nil {
		return nil, err
	}
	return newBuffer(content), nil
}

// persist writes the buffer back. terminate forces a trailing terminator;
// otherwise one is written only for a non-empty buffer.
func (e *Editor) persist(path string, buf *Buffer, terminate bool) error {
	return e.store.WriteText(path, buf.render(terminate))
}
