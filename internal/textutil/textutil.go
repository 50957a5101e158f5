// Package textutil provides small shell-style text transforms: head, tail,
// counts, sorting, adjacent de-duplication, and column extraction. All
// functions operate on strings of line-oriented text and never touch
// storage.
package textutil

import (
	"sort"
	"strings"
)

// Counts summarizes a text the way wc does.
type Counts struct {
	Lines int
	Words int
	Chars int
}

// UniqGroup is a run of identical adjacent lines.
type UniqGroup struct {
	Count int
	Text  string
}

// Head returns the first n lines of text.
func Head(text string, n int) string {
	lines := splitLines(text)
	if n < 0 {
		n = 0
	}
	if n > len(lines) {
		n = len(lines)
	}
	return strings.Join(lines[:n], "\n")
}

// Tail returns the last n lines of text.
func Tail(text string, n int) string {
	lines := splitLines(text)
	if n < 0 {
		n = 0
	}
	if n > len(lines) {
		n = len(lines)
	}
	return strings.Join(lines[len(lines)-n:], "\n")
}

// Count returns line, word, and character counts for text.
func Count(text string) Counts {
	return Counts{
		Lines: len(splitLines(text)),
		Words: len(strings.Fields(text)),
		Chars: len([]rune(text)),
	}
}

// SortLines sorts the lines of text. With unique set, duplicate lines are
// collapsed (keeping first occurrence) before sorting.
func SortLines(text string, reverse, unique bool) string {
	lines := splitLines(text)

	if unique {
		seen := make(map[string]bool, len(lines))
		kept := lines[:0]
		for _, line := range lines {
			if !seen[line] {
				seen[line] = true
				kept = append(kept, line)
			}
		}
		lines = kept
	}

	sort.Strings(lines)
	if reverse {
		for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
			lines[i], lines[j] = lines[j], lines[i]
		}
	}

	return strings.Join(lines, "\n")
}

// Uniq collapses runs of identical adjacent lines, reporting each run's
// length, like uniq -c.
func Uniq(text string) []UniqGroup {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil
	}

	var groups []UniqGroup
	current := lines[0]
	count := 1
	for _, line := range lines[1:] {
		if line == current {
			count++
			continue
		}
		groups = append(groups, UniqGroup{Count: count, Text: current})
		current = line
		count = 1
	}
	groups = append(groups, UniqGroup{Count: count, Text: current})

	return groups
}

// Columns extracts the given 0-indexed columns from each line, like cut.
// An empty sep splits on any run of whitespace. Indices past a line's field
// count are skipped for that line.
func Columns(text string, indices []int, sep string) string {
	var out []string
	for _, line := range splitLines(text) {
		var parts []string
		if sep == "" {
			parts = strings.Fields(line)
		} else {
			parts = strings.Split(line, sep)
		}

		var selected []string
		for _, idx := range indices {
			if idx >= 0 && idx < len(parts) {
				selected = append(selected, parts[idx])
			}
		}
		out = append(out, strings.Join(selected, " "))
	}

	return strings.Join(out, "\n")
}

// splitLines splits text into lines, treating a trailing terminator as
// closing the last line rather than opening an empty one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
