package gitreport

import (
	"strconv"
	"strings"
)

// Porcelain v2 and branch --format markers the parsers key on.
const (
	branchHeadMarker = "# branch.head "
	branchABMarker   = "# branch.ab "
	headSigil        = "*"
	remoteRefPrefix  = "remotes/"
	featurePrefix    = "feature/"
)

// parseStatus decodes `git status --porcelain=v2 --branch` output.
// Unrecognized lines are ignored.
func parseStatus(out string) StatusReport {
	var report StatusReport

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, branchHeadMarker):
			// "# branch.head <name>": the third whitespace field.
			report.Branch = line[len(branchHeadMarker):]

		case strings.HasPrefix(line, branchABMarker):
			// "# branch.ab +<ahead> -<behind>"
			for _, tok := range strings.Fields(line[len(branchABMarker):]) {
				switch {
				case strings.HasPrefix(tok, "+"):
					if n, err := strconv.Atoi(tok[1:]); err == nil {
						report.Ahead = n
					}
				case strings.HasPrefix(tok, "-"):
					if n, err := strconv.Atoi(tok[1:]); err == nil {
						report.Behind = n
					}
				}
			}

		case strings.HasPrefix(line, "1 ") || strings.HasPrefix(line, "2 "):
			// Ordinary/renamed changed entry: the second field is the
			// two-character XY code, and everything after the eighth
			// space is the path. The cap keeps paths containing spaces
			// intact for ordinary entries.
			parts := strings.SplitN(line, " ", 9)
			if len(parts) < 3 || len(parts[1]) < 2 {
				continue
			}
			xy := parts[1]
			path := parts[len(parts)-1]
			if xy[0] != '.' {
				report.Staged = append(report.Staged, path)
			}
			if xy[1] != '.' {
				report.Modified = append(report.Modified, path)
			}

		case strings.HasPrefix(line, "? "):
			report.Untracked = append(report.Untracked, line[2:])
		}
	}

	return report
}

// parseLog decodes NUL-delimited `git log --format=<sha>%x00%s%x00%an%x00%aI`
// output, one commit per line. Malformed lines are dropped.
func parseLog(out string) []LogEntry {
	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		parts := strings.Split(line, "\x00")
		if len(parts) < 4 {
			continue
		}
		entries = append(entries, LogEntry{
			SHA:     parts[0],
			Subject: parts[1],
			Author:  parts[2],
			Date:    parts[3],
		})
	}
	return entries
}

// parseShow decodes the NUL-delimited no-patch `git show` output into a
// commit detail. The body is the final field, trimmed; stat lines, when
// requested, are attached separately by the caller.
func parseShow(out string) CommitDetail {
	parts := strings.Split(strings.TrimSpace(out), "\x00")

	var detail CommitDetail
	if len(parts) > 0 {
		detail.SHA = parts[0]
	}
	if len(parts) > 1 {
		detail.Subject = parts[1]
	}
	if len(parts) > 2 {
		detail.Author = parts[2]
	}
	if len(parts) > 3 {
		detail.Date = parts[3]
	}
	if len(parts) > 4 {
		detail.Body = strings.TrimSpace(parts[4])
	}
	return detail
}

// parseStatLines trims `git show --stat --format=` output, keeping
// non-empty lines in order.
func parseStatLines(out string) []string {
	var files []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			files = append(files, trimmed)
		}
	}
	return files
}

// parseBranches decodes `git branch -a --format=%(refname:short)%00%(HEAD)`
// output: one NUL-delimited (name, HEAD-marker) pair per line.
func parseBranches(out string) BranchReport {
	var report BranchReport

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\x00")
		name := parts[0]
		isCurrent := len(parts) > 1 && parts[1] == headSigil

		if isCurrent {
			report.Current = name
		}
		if isRemoteBranch(name) {
			report.Remote = append(report.Remote, name)
		} else {
			report.Local = append(report.Local, name)
		}
	}

	return report
}

// isRemoteBranch classifies a short ref name as remote. The heuristic --
// remote-refs prefix, or any path separator outside the feature/ namespace
// -- can misclassify topic branches that contain separators. Preserved
// as-is; see the quirk test.
func isRemoteBranch(name string) bool {
	if strings.HasPrefix(name, remoteRefPrefix) {
		return true
	}
	return strings.Contains(name, "/") && !strings.HasPrefix(name, featurePrefix)
}
