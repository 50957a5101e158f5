// Package diffutil renders line diffs between files. The diff algorithm
// itself is delegated to diff-match-patch; this package only feeds it lines
// and formats the result.
package diffutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stwalsh4118/prelude/internal/fsio"
)

// Files returns a line diff between two files, empty when identical.
func Files(store fsio.Store, pathA, pathB string) (string, error) {
	a, err := store.ReadText(pathA)
	if err != nil {
		return "", err
	}
	b, err := store.ReadText(pathB)
	if err != nil {
		return "", err
	}

	return Texts(a, b, pathA, pathB), nil
}

// Texts returns a line diff between two texts with ---/+++ labels, empty
// when the texts are identical.
func Texts(a, b, labelA, labelB string) string {
	if a == b {
		return ""
	}

	dmp := diffmatchpatch.New()
	chA, chB, lineArr := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chA, chB, false), lineArr)

	var sb strings.Builder
	sb.WriteString("--- " + labelA + "\n")
	sb.WriteString("+++ " + labelB + "\n")

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			sb.WriteString(prefix + line + "\n")
		}
	}

	return sb.String()
}
