package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stwalsh4118/prelude/internal/fsio"
	"github.com/stwalsh4118/prelude/internal/logging"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()

	ed, err := NewEditor(fsio.NewDiskStore(), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("failed to create editor: %v", err)
	}
	return ed
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func readBack(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back %s: %v", path, err)
	}
	return string(data)
}

func TestNewEditor(t *testing.T) {
	if _, err := NewEditor(nil, logging.NewNoopLogger()); err == nil {
		t.Fatal("expected error when store is nil")
	}
	if _, err := NewEditor(fsio.NewDiskStore(), nil); err == nil {
		t.Fatal("expected error when logger is nil")
	}
}

func TestReadRange(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "a\nb\nc\nd\ne\n")

	tests := []struct {
		name       string
		start, end int
		wantFirst  int
		wantCount  int
	}{
		{"interior range", 2, 4, 2, 3},
		{"end defaults to last line", 3, 0, 3, 3},
		{"start clamped up", -10, 2, 1, 2},
		{"end clamped down", 4, 99, 4, 2},
		{"single line", 5, 5, 5, 1},
		{"start beyond end of file", 6, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ed.ReadRange(path, tt.start, tt.end)
			if err != nil {
				t.Fatalf("ReadRange failed: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Fatalf("got %d lines, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount > 0 && got[0].Number != tt.wantFirst {
				t.Errorf("first line number = %d, want %d", got[0].Number, tt.wantFirst)
			}
			// Every entry carries its correct absolute position.
			for i, nl := range got {
				if nl.Number != tt.wantFirst+i {
					t.Errorf("entry %d has number %d, want %d", i, nl.Number, tt.wantFirst+i)
				}
			}
		})
	}
}

func TestReadRangeCardinality(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "1\n2\n3\n4\n5\n6\n")

	// For all valid start <= end <= length the result has end-start+1 entries.
	for start := 1; start <= 6; start++ {
		for end := start; end <= 6; end++ {
			got, err := ed.ReadRange(path, start, end)
			if err != nil {
				t.Fatalf("ReadRange(%d, %d) failed: %v", start, end, err)
			}
			if len(got) != end-start+1 {
				t.Fatalf("ReadRange(%d, %d) returned %d entries", start, end, len(got))
			}
		}
	}
}

func TestReadRangeEmptyFile(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "")

	got, err := ed.ReadRange(path, 1, 0)
	if err != nil {
		t.Fatalf("ReadRange failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestReadRangeMissingFile(t *testing.T) {
	ed := newTestEditor(t)

	if _, err := ed.ReadRange(filepath.Join(t.TempDir(), "gone.txt"), 1, 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDeleteRangeScenario(t *testing.T) {
	// File ["a","b","c","d"] with no trailing terminator; deleting 2-3
	// leaves ["a","d"] and reports 2. The rewrite gains a terminator
	// because the pre-delete buffer was non-empty.
	ed := newTestEditor(t)
	path := writeFixture(t, "a\nb\nc\nd")

	count, err := ed.DeleteRange(path, 2, 3)
	if err != nil {
		t.Fatalf("DeleteRange failed: %v", err)
	}
	if count != 2 {
		t.Errorf("removed = %d, want 2", count)
	}
	if got := readBack(t, path); got != "a\nd\n" {
		t.Errorf("content = %q, want %q", got, "a\nd\n")
	}
}

func TestDeleteRangeDefaultsToSingleLine(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "a\nb\nc\n")

	// end omitted deletes exactly one line, unlike ReadRange's default.
	count, err := ed.DeleteRange(path, 2, 0)
	if err != nil {
		t.Fatalf("DeleteRange failed: %v", err)
	}
	if count != 1 {
		t.Errorf("removed = %d, want 1", count)
	}
	if got := readBack(t, path); got != "a\nc\n" {
		t.Errorf("content = %q, want %q", got, "a\nc\n")
	}
}

func TestDeleteRangeArithmetic(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "1\n2\n3\n4\n5\n")

	count, err := ed.DeleteRange(path, 2, 4)
	if err != nil {
		t.Fatalf("DeleteRange failed: %v", err)
	}

	after, err := ed.ReadRange(path, 1, 0)
	if err != nil {
		t.Fatalf("ReadRange failed: %v", err)
	}

	if len(after) != 5-count {
		t.Errorf("new length = %d, want %d", len(after), 5-count)
	}
	for _, nl := range after {
		if nl.Text == "2" || nl.Text == "3" || nl.Text == "4" {
			t.Errorf("deleted line %q reappeared", nl.Text)
		}
	}
}

func TestDeleteRangeOutOfBounds(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "a\nb\n")

	count, err := ed.DeleteRange(path, 10, 20)
	if err != nil {
		t.Fatalf("DeleteRange failed: %v", err)
	}
	if count != 0 {
		t.Errorf("removed = %d, want 0", count)
	}
	if got := readBack(t, path); got != "a\nb\n" {
		t.Errorf("content changed: %q", got)
	}
}

func TestDeleteRangeEmptyFileStaysUnterminated(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "")

	count, err := ed.DeleteRange(path, 1, 5)
	if err != nil {
		t.Fatalf("DeleteRange failed: %v", err)
	}
	if count != 0 {
		t.Errorf("removed = %d, want 0", count)
	}
	if got := readBack(t, path); got != "" {
		t.Errorf("empty file gained content: %q", got)
	}
}

func TestDeleteMatching(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "keep\ndrop 1\nkeep too\ndrop 2\n")

	count, err := ed.DeleteMatching(path, `drop \d`, true)
	if err != nil {
		t.Fatalf("DeleteMatching failed: %v", err)
	}
	if count != 2 {
		t.Errorf("removed = %d, want 2", count)
	}
	if got := readBack(t, path); got != "keep\nkeep too\n" {
		t.Errorf("content = %q", got)
	}
}

func TestDeleteMatchingSubstring(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "a.b\naxb\n")

	// regex=false treats the pattern as a literal substring.
	count, err := ed.DeleteMatching(path, "a.b", false)
	if err != nil {
		t.Fatalf("DeleteMatching failed: %v", err)
	}
	if count != 1 {
		t.Errorf("removed = %d, want 1", count)
	}
	if got := readBack(t, path); got != "axb\n" {
		t.Errorf("content = %q", got)
	}
}

func TestDeleteMatchingIdempotent(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "one\ntwo\nthree\n")

	first, err := ed.DeleteMatching(path, "t", true)
	if err != nil {
		t.Fatalf("DeleteMatching failed: %v", err)
	}
	if first != 2 {
		t.Errorf("first pass removed %d, want 2", first)
	}

	second, err := ed.DeleteMatching(path, "t", true)
	if err != nil {
		t.Fatalf("DeleteMatching failed: %v", err)
	}
	if second != 0 {
		t.Errorf("second pass removed %d, want 0", second)
	}
}

func TestDeleteMatchingBadPattern(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "x\n")

	if _, err := ed.DeleteMatching(path, "(", true); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestInsertAtAfter(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "a\nb\nc\n")

	if err := ed.InsertAt(path, 1, "x\ny", true); err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}
	if got := readBack(t, path); got != "a\nx\ny\nb\nc\n" {
		t.Errorf("content = %q", got)
	}
}

func TestInsertAtBefore(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "a\nb\nc\n")

	if err := ed.InsertAt(path, 1, "x", false); err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}
	if got := readBack(t, path); got != "x\na\nb\nc\n" {
		t.Errorf("content = %q", got)
	}
}

func TestInsertAtBeyondEndAppends(t *testing.T) {
	// Inserting "after" line 100 of a 3-line file appends as the 4th line.
	ed := newTestEditor(t)
	path := writeFixture(t, "a\nb\nc\n")

	if err := ed.InsertAt(path, 100, "x", true); err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}

	lines, err := ed.ReadRange(path, 1, 0)
	if err != nil {
		t.Fatalf("ReadRange failed: %v", err)
	}
	if len(lines) != 4 {
		t.Fatalf("length = %d, want 4", len(lines))
	}
	if lines[3].Text != "x" || lines[3].Number != 4 {
		t.Errorf("last line = %+v, want x at 4", lines[3])
	}
}

func TestInsertAtGrowsByInsertedLineCount(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "a\nb\nc\n")

	if err := ed.InsertAt(path, 2, "1\n2\n3", true); err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}

	lines, err := ed.ReadRange(path, 1, 0)
	if err != nil {
		t.Fatalf("ReadRange failed: %v", err)
	}
	if len(lines) != 6 {
		t.Fatalf("length = %d, want 6", len(lines))
	}
	// Inserted lines sit immediately after line 2.
	if lines[2].Text != "1" || lines[3].Text != "2" || lines[4].Text != "3" {
		t.Errorf("inserted lines misplaced: %+v", lines)
	}
}

func TestInsertAtAlwaysTerminates(t *testing.T) {
	// Unlike the delete operations, insertion always persists a trailing
	// terminator even when the original content had none.
	ed := newTestEditor(t)
	path := writeFixture(t, "a\nb")

	if err := ed.InsertAt(path, 2, "c", true); err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}
	if got := readBack(t, path); got != "a\nb\nc\n" {
		t.Errorf("content = %q, want %q", got, "a\nb\nc\n")
	}
}

func TestSubstitute(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "foo bar foo\nbaz foo\n")

	count, err := ed.Substitute(path, "foo", "qux")
	if err != nil {
		t.Fatalf("Substitute failed: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if got := readBack(t, path); got != "qux bar qux\nbaz qux\n" {
		t.Errorf("content = %q", got)
	}
}

func TestSubstituteIdentityRoundTrip(t *testing.T) {
	ed := newTestEditor(t)
	original := "X marks\nthe X spot\n"
	path := writeFixture(t, original)

	count, err := ed.Substitute(path, "X", "X")
	if err != nil {
		t.Fatalf("Substitute failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if got := readBack(t, path); got != original {
		t.Errorf("content changed: %q", got)
	}
}

func TestSubstituteZeroMatchesStillPersists(t *testing.T) {
	ed := newTestEditor(t)
	path := writeFixture(t, "abc\n")

	count, err := ed.Substitute(path, "nomatch", "x")
	if err != nil {
		t.Fatalf("Substitute failed: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if got := readBack(t, path); got != "abc\n" {
		t.Errorf("content = %q", got)
	}
}

func TestSubstituteTree(t *testing.T) {
	ed := newTestEditor(t)
	root := t.TempDir()
	store := fsio.NewDiskStore()

	fixtures := map[string]string{
		"a.txt":          "foo\nfoo\n",
		"sub/b.txt":      "foo bar\n",
		"sub/c.md":       "foo\n", // excluded by glob
		"sub/deep/d.txt": "nothing here\n",
	}
	for rel, content := range fixtures {
		if err := store.WriteText(filepath.Join(root, filepath.FromSlash(rel)), content); err != nil {
			t.Fatalf("fixture write failed: %v", err)
		}
	}
	// A binary file matching the glob is silently skipped.
	if err := os.WriteFile(filepath.Join(root, "bin.txt"), []byte{0xff, 0x00, 0x80}, 0644); err != nil {
		t.Fatalf("fixture write failed: %v", err)
	}

	total, err := ed.SubstituteTree(root, "foo", "qux", "*.txt")
	if err != nil {
		t.Fatalf("SubstituteTree failed: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}

	if got := readBack(t, filepath.Join(root, "a.txt")); got != "qux\nqux\n" {
		t.Errorf("a.txt = %q", got)
	}
	if got := readBack(t, filepath.Join(root, "sub", "c.md")); got != "foo\n" {
		t.Errorf("c.md should be untouched, got %q", got)
	}
	if got := readBack(t, filepath.Join(root, "sub", "deep", "d.txt")); got != "nothing here\n" {
		t.Errorf("d.txt should be untouched, got %q", got)
	}
}

func TestBufferSplitSemantics(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   int
	}{
		{"empty", "", 0},
		{"single unterminated", "a", 1},
		{"single terminated", "a\n", 1},
		{"bare terminator", "\n", 1},
		{"multi unterminated", "a\nb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuffer(tt.content)
			if b.Len() != tt.lines {
				t.Errorf("Len() = %d, want %d", b.Len(), tt.lines)
			}
		})
	}
}

func TestClampRange(t *testing.T) {
	tests := []struct {
		name           string
		start, end, n  int
		wantS, wantE   int
		wantOK         bool
	}{
		{"identity", 2, 3, 5, 2, 3, true},
		{"clamp both", -4, 99, 5, 1, 5, true},
		{"empty buffer", 1, 1, 0, 0, 0, false},
		{"start past end of buffer", 6, 9, 5, 0, 0, false},
		{"inverted after clamp", 4, 2, 5, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e, ok := clampRange(tt.start, tt.end, tt.n)
			if s != tt.wantS || e != tt.wantE || ok != tt.wantOK {
				t.Errorf("clampRange(%d, %d, %d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.start, tt.end, tt.n, s, e, ok, tt.wantS, tt.wantE, tt.wantOK)
			}
		})
	}
}
