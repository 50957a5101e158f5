package editor

import "strings"

// Buffer holds one file's content as an ordered sequence of lines. A
// trailing terminator closes the last line rather than opening an empty
// one; whether the output is re-terminated is the caller's decision at
// render time. Line addressing is 1-based and inclusive on both ends
// everywhere a range is accepted.
type Buffer struct {
	lines []string
}

// newBuffer splits content into lines. Empty content yields an empty buffer.
func newBuffer(content string) *Buffer {
	b := &Buffer{}
	if content == "" {
		return b
	}

	trimmed := strings.TrimSuffix(content, "\n")
	if trimmed == "" {
		// Content was a bare terminator: a single empty line.
		b.lines = []string{""}
		return b
	}

	b.lines = strings.Split(trimmed, "\n")
	return b
}

// Len returns the number of lines in the buffer.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns the 1-based line n. The caller must pass a clamped index.
func (b *Buffer) Line(n int) string {
	return b.lines[n-1]
}

// render joins the lines back into file content. When terminate is set the
// content always ends in a line terminator; otherwise a terminator is
// appended only for a non-empty buffer.
func (b *Buffer) render(terminate bool) string {
	joined := strings.Join(b.lines, "\n")
	if terminate || len(b.lines) > 0 {
		return joined + "\n"
	}
	return joined
}

// clampRange clamps a 1-based inclusive (start, end) to [1, n]. It reports
// ok=false when the clamped range selects nothing (empty buffer, start past
// the end, or an inverted range). Out-of-range input degrades to an empty or
// truncated selection; it is never an error.
func clampRange(start, end, n int) (int, int, bool) {
	if n == 0 {
		return 0, 0, false
	}

	if start < 1 {
		start = 1
	}
	if end > n {
		end = n
	}
	if start > n || end < start {
		return 0, 0, false
	}

	return start, end, true
}
