// Package registry holds the static catalog of toolkit helpers used to
// build the documentation listing. Each operation declares itself in a
// declarative table; nothing is discovered at runtime.
package registry

import (
	"sort"
	"strings"
)

// Helper describes one operation exposed to a session.
type Helper struct {
	Name      string
	Signature string
	Summary   string
	Category  string
}

// Category names, in the order the original toolkit grouped them.
const (
	CategoryFileIO      = "File I/O"
	CategoryFileOps     = "File ops"
	CategoryLineOps     = "Line ops"
	CategoryFindReplace = "Find/Replace"
	CategorySearch      = "Search"
	CategoryText        = "Text"
	CategoryShell       = "Shell"
	CategoryGit         = "Git"
)

// helpers is the declarative table the documentation listing is built from.
var helpers = []Helper{
	{"read", "read(path)", "Read file contents as UTF-8 text.", CategoryFileIO},
	{"write", "write(path, content)", "Write file contents, creating parent directories.", CategoryFileIO},
	{"append", "append(path, content)", "Append to a file, creating it as needed.", CategoryFileIO},
	{"touch", "touch(path)", "Create an empty file or update its mtime.", CategoryFileIO},

	{"cp", "cp(src, dst)", "Copy a file.", CategoryFileOps},
	{"mv", "mv(src, dst)", "Move or rename a file or directory.", CategoryFileOps},
	{"rm", "rm(path, recursive=false)", "Delete a file or directory.", CategoryFileOps},
	{"mkdir", "mkdir(path)", "Create a directory with parents.", CategoryFileOps},
	{"stat", "stat(path)", "Summarize a file or directory.", CategoryFileOps},

	{"lines", "lines(path, start=1, end=last)", "Read a 1-based inclusive line range.", CategoryLineOps},
	{"delete-lines", "delete-lines(path, start, end=start)", "Delete a line range in place.", CategoryLineOps},
	{"delete-matching", "delete-matching(path, pattern, regex=true)", "Delete lines matching a pattern.", CategoryLineOps},
	{"insert", "insert(path, line, text, after=true)", "Insert text at a line position.", CategoryLineOps},

	{"sub", "sub(path, pattern, replacement)", "Regexp replace across a whole file.", CategoryFindReplace},
	{"sub-tree", "sub-tree(root, pattern, replacement, glob=*)", "Regexp replace across a file tree.", CategoryFindReplace},

	{"grep", "grep(path, pattern, ignore-case=false)", "Search a single file.", CategorySearch},
	{"grep-tree", "grep-tree(root, pattern, glob=*)", "Search recursively across files.", CategorySearch},
	{"find", "find(root, glob)", "Recursive glob find, files only.", CategorySearch},
	{"glob", "glob(dir, pattern)", "Non-recursive glob.", CategorySearch},

	{"head", "head(text, n=10)", "First n lines of text.", CategoryText},
	{"tail", "tail(text, n=10)", "Last n lines of text.", CategoryText},
	{"wc", "wc(text)", "Line, word, and character counts.", CategoryText},
	{"sort-lines", "sort-lines(text, reverse=false, unique=false)", "Sort lines of text.", CategoryText},
	{"uniq", "uniq(text)", "Collapse duplicate adjacent lines.", CategoryText},
	{"cols", "cols(text, indices, sep=whitespace)", "Extract columns from text.", CategoryText},
	{"diff", "diff(a, b)", "Line diff between two files.", CategoryText},

	{"run", "run(cmdline, cwd=., timeout=none)", "Run a shell command line.", CategoryShell},

	{"git-status", "git status", "Structured working tree status.", CategoryGit},
	{"git-diff", "git diff(paths=all, staged=false, ref=none, stat=false)", "Raw diff of uncommitted changes.", CategoryGit},
	{"git-log", "git log(n=10, oneline=true)", "Recent commits, newest first.", CategoryGit},
	{"git-show", "git show(ref=HEAD, stat=true)", "Details of a single commit.", CategoryGit},
	{"git-file", "git file(ref, path, lines=all)", "File content at a ref.", CategoryGit},
	{"git-branch", "git branch", "Local and remote branches.", CategoryGit},
	{"git-changes", "git changes", "Whether the tree has uncommitted changes.", CategoryGit},
}

// All returns the catalog sorted by category then name.
func All() []Helper {
	out := make([]Helper, len(helpers))
	copy(out, helpers)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Categories returns the distinct category names, sorted.
func Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, h := range helpers {
		if !seen[h.Category] {
			seen[h.Category] = true
			cats = append(cats, h.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// ByCategory returns the helpers in one category, sorted by name.
func ByCategory(category string) []Helper {
	var out []Helper
	for _, h := range helpers {
		if h.Category == category {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Render produces the plain-text documentation listing, grouped by
// category.
func Render() string {
	var sb strings.Builder
	for _, cat := range Categories() {
		sb.WriteString(cat + "\n")
		for _, h := range ByCategory(cat) {
			sb.WriteString("  " + h.Name)
			pad := 18 - len(h.Name)
			if pad < 1 {
				pad = 1
			}
			sb.WriteString(strings.Repeat(" ", pad))
			sb.WriteString(h.Summary + "\n")
			sb.WriteString("    " + h.Signature + "\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
