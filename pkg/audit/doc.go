// Package audit checks rendered pages for WCAG colour-contrast violations
// with axe-core running in headless Chromium.
//
// A Matrix expands to the URLs to check: locale-independent root pages
// first, then every page for each locale. A Runner hands each URL to an
// Engine and classifies the outcome:
//
//   - PASS: no violation whose rule id contains the category
//   - FAIL: at least one such violation
//   - LOAD_ERROR: the page could not be loaded or evaluated
//
// Load errors are reported but never counted as failures, so only FAIL
// pages make Summary.ExitCode return 1.
//
//	src, err := audit.LoadAxeSource(ctx, "axe.min.js", audit.DefaultAxeURL)
//	engine, err := audit.NewBrowserEngine(ctx, audit.BrowserConfig{AxeSource: src})
//	defer engine.Close()
//
//	report := audit.NewRunner(engine, audit.WithWorkers(4)).
//	    Run(ctx, audit.DefaultMatrix("http://localhost:8000").URLs())
//	_ = audit.WriteReport(audit.DefaultReportPath, report.Results)
//	os.Exit(report.Summary.ExitCode())
package audit
