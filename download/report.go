// Package download drives the sequential retrieval of expanded media listings
// with per-item progress tracking, failure isolation and aggregate reporting.
package download

// Failure records one item that could not be retrieved.
type Failure struct {
	Locator string `json:"locator"`
	Reason  string `json:"reason"`
}

// Report aggregates the outcome of one orchestrator run.
// Failures are data, not errors: a fully failed run still yields a report.
type Report struct {
	Attempted int       `json:"attempted"`
	Succeeded int       `json:"succeeded"`
	Failures  []Failure `json:"failures,omitempty"`
}

// Failed returns the number of items that could not be retrieved.
func (r *Report) Failed() int {
	return len(r.Failures)
}

// AllSucceeded reports whether every attempted item was retrieved.
func (r *Report) AllSucceeded() bool {
	return r.Succeeded == r.Attempted
}
