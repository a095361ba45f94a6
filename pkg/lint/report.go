package lint

// FileResult pairs a guide path with its compliance findings.
type FileResult struct {
	Path        string       `json:"path"`
	Diagnostics []Diagnostic `json:"issues"`
}

// Report buckets every analyzed guide into exactly one of three
// disjoint sets. Files keep the order in which they were added, so
// callers adding in sorted-path order get a sorted report.
type Report struct {
	Root         string
	Excluded     []string
	Compliant    []string
	NonCompliant []FileResult
}

// NewReport creates an empty report for the given root.
func NewReport(root string) *Report {
	return &Report{Root: root}
}

// AddExcluded records a simple connect guide that was exempted from
// compliance checks.
func (r *Report) AddExcluded(path string) {
	r.Excluded = append(r.Excluded, path)
}

// AddResult routes an analyzed guide into the compliant or
// non-compliant bucket based on its diagnostics.
func (r *Report) AddResult(path string, diags []Diagnostic) {
	if len(diags) == 0 {
		r.Compliant = append(r.Compliant, path)
		return
	}
	r.NonCompliant = append(r.NonCompliant, FileResult{Path: path, Diagnostics: diags})
}

// Total returns the number of analyzed guides, excluded ones included.
func (r *Report) Total() int {
	return len(r.Excluded) + len(r.Compliant) + len(r.NonCompliant)
}

// HasFindings reports whether any guide landed in the non-compliant
// bucket.
func (r *Report) HasFindings() bool {
	return len(r.NonCompliant) > 0
}

// Summary holds the report counters.
type Summary struct {
	Total        int `json:"total"`
	Excluded     int `json:"excluded"`
	Compliant    int `json:"compliant"`
	NonCompliant int `json:"non_compliant"`
}

// Summarize returns the report counters.
func (r *Report) Summarize() Summary {
	return Summary{
		Total:        r.Total(),
		Excluded:     len(r.Excluded),
		Compliant:    len(r.Compliant),
		NonCompliant: len(r.NonCompliant),
	}
}
