package audit

import "time"

// Node is one element affected by a violation.
type Node struct {
	HTML   string   `json:"html"`
	Target []string `json:"target"`
}

// Violation is a single axe-core rule failure on a page.
type Violation struct {
	ID      string `json:"id"`
	Impact  string `json:"impact,omitempty"`
	Help    string `json:"help"`
	HelpURL string `json:"helpUrl,omitempty"`
	Nodes   []Node `json:"nodes"`
}

// Outcome classifies a checked page.
type Outcome int

const (
	OutcomePass Outcome = iota
	OutcomeFail
	OutcomeLoadError
)

func (o Outcome) String() string {
	switch o {
	case OutcomePass:
		return "PASS"
	case OutcomeFail:
		return "FAIL"
	default:
		return "LOAD_ERROR"
	}
}

// Result is the report entry for one URL. Violations holds the rules that
// matched the category filter, AllViolations everything axe-core reported.
// Load errors carry only URL, Passed=false and Error.
type Result struct {
	URL           string      `json:"url"`
	Passed        bool        `json:"passed"`
	Violations    []Violation `json:"violations,omitzero"`
	AllViolations []Violation `json:"allViolations,omitzero"`
	Error         string      `json:"error,omitempty"`
}

// Outcome reports how the page was classified.
func (r Result) Outcome() Outcome {
	switch {
	case r.Error != "":
		return OutcomeLoadError
	case r.Passed:
		return OutcomePass
	default:
		return OutcomeFail
	}
}

// Summary aggregates a run. Errored pages count towards Total only.
type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
}

// ExitCode is 1 when any page failed and 0 otherwise, regardless of load errors.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

// Summarize counts results by outcome.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome() {
		case OutcomePass:
			s.Passed++
		case OutcomeFail:
			s.Failed++
		case OutcomeLoadError:
			s.Errored++
		}
	}
	return s
}

// Report is the outcome of one Runner.Run call.
type Report struct {
	Results    []Result
	Summary    Summary
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration is the wall time of the run.
func (r Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
