package output

// CheckIssue is a single finding in the check command's JSON output.
type CheckIssue struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// CheckFileResult groups the findings for one guide.
type CheckFileResult struct {
	Path   string       `json:"path"`
	Issues []CheckIssue `json:"issues"`
}

// CheckSummary carries the counters printed at the end of a report.
type CheckSummary struct {
	Total        int `json:"total"`
	Excluded     int `json:"excluded"`
	Compliant    int `json:"compliant"`
	NonCompliant int `json:"non_compliant"`
}

// CheckOutput is the check command's JSON document.
type CheckOutput struct {
	RunID        string            `json:"run_id"`
	Root         string            `json:"root"`
	Summary      CheckSummary      `json:"summary"`
	Excluded     []string          `json:"excluded"`
	Compliant    []string          `json:"compliant"`
	NonCompliant []CheckFileResult `json:"non_compliant"`
}
