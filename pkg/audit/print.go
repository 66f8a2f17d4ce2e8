package audit

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
)

var (
	passColor  = color.New(color.FgGreen)
	failColor  = color.New(color.FgRed)
	warnColor  = color.New(color.FgYellow)
	titleColor = color.New(color.FgCyan, color.Bold)
)

// maxPrintedViolations caps how many violations are echoed per failed page.
const maxPrintedViolations = 2

// PrintHeader writes the run banner.
func PrintHeader(w io.Writer, m Matrix) {
	titleColor.Fprintln(w, "🔍 TRIZEL WCAG Contrast Checker")
	titleColor.Fprintln(w, "================================")
	fmt.Fprintf(w, "Base URL: %s\n", m.BaseURL)
	fmt.Fprintf(w, "Languages: %s\n\n", strings.Join(m.Locales, ", "))
}

// PrintResult writes one line per page, plus the first violations of a
// failed page. It has the Observer signature.
func PrintResult(w io.Writer) Observer {
	return func(r Result) {
		fmt.Fprintf(w, "  Checking: %s\n", r.URL)
		switch r.Outcome() {
		case OutcomePass:
			passColor.Fprintln(w, "    ✅ PASS")
		case OutcomeLoadError:
			warnColor.Fprintf(w, "    ⚠️  ERROR: %s\n", r.Error)
		case OutcomeFail:
			failColor.Fprintf(w, "    ❌ FAIL - %d contrast violations\n", len(r.Violations))
			for _, v := range r.Violations[:min(len(r.Violations), maxPrintedViolations)] {
				fmt.Fprintf(w, "       %s: %s\n", v.ID, v.Help)
				if len(v.Nodes) > 0 {
					fmt.Fprintf(w, "       Affected: %s...\n", truncate(v.Nodes[0].HTML, 80))
				}
			}
		}
	}
}

// PrintSummary writes the totals with pass and fail percentages.
func PrintSummary(w io.Writer, report Report) {
	s := report.Summary
	titleColor.Fprintln(w, "\n================================")
	titleColor.Fprintln(w, "📊 Summary")
	titleColor.Fprintln(w, "================================")
	fmt.Fprintf(w, "Total pages checked: %d\n", s.Total)
	passColor.Fprintf(w, "Passed: %d (%d%%)\n", s.Passed, percent(s.Passed, s.Total))
	failColor.Fprintf(w, "Failed: %d (%d%%)\n", s.Failed, percent(s.Failed, s.Total))
	if s.Errored > 0 {
		warnColor.Fprintf(w, "Errors: %d (not counted as failures)\n", s.Errored)
	}

	if s.ExitCode() != 0 {
		failColor.Fprintln(w, "\n❌ Contrast check FAILED - Fix violations before proceeding")
		return
	}
	passColor.Fprintln(w, "\n✅ All contrast checks PASSED!")
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
