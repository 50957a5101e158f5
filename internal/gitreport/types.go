package gitreport

// StatusReport is the decoded form of a porcelain v2 status with branch
// tracking. Path lists preserve git's output order; a partially staged path
// may appear in both Staged and Modified.
type StatusReport struct {
	// Branch is the current branch name, empty when unknown or detached.
	Branch string

	// Ahead is the number of commits ahead of upstream.
	Ahead int

	// Behind is the number of commits behind upstream.
	Behind int

	// Staged lists paths with index-side changes.
	Staged []string

	// Modified lists paths with working-tree-side changes.
	Modified []string

	// Untracked lists untracked paths verbatim.
	Untracked []string
}

// LogEntry is one commit from the log, newest first.
type LogEntry struct {
	// SHA is abbreviated or full depending on how the log was requested.
	SHA string

	// Subject is the first line of the commit message.
	Subject string

	// Author is the author name.
	Author string

	// Date is the author date in strict ISO-8601 form, as emitted by git.
	Date string
}

// CommitDetail is the decoded form of a single commit.
type CommitDetail struct {
	SHA     string
	Subject string
	Author  string
	Date    string

	// Body is the free-text message body, trimmed.
	Body string

	// Files holds the per-file change summary lines, trimmed, in git's order.
	Files []string
}

// BranchReport lists branches split into local and remote.
type BranchReport struct {
	// Current is the checked-out branch name, empty when detached.
	Current string

	Local  []string
	Remote []string
}

// LogOptions configures a Log request.
type LogOptions struct {
	// Limit caps the number of entries. Values < 1 fall back to 10.
	Limit int

	// FullSHA requests full 40-character hashes instead of abbreviated ones.
	FullSHA bool

	// RefRange optionally restricts the walk (e.g. "main..topic").
	RefRange string

	// Paths optionally restricts the log to commits touching these paths.
	Paths []string
}

// DiffOptions configures a Diff request.
type DiffOptions struct {
	// Staged diffs the index against HEAD instead of the working tree.
	Staged bool

	// Ref optionally diffs against a ref instead of the index.
	Ref string

	// Stat requests the per-file change summary instead of the patch.
	Stat bool

	// Paths optionally restricts the diff to these paths.
	Paths []string
}
