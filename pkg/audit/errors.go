package audit

import "errors"

var (
	// ErrLoad marks a page that could not be opened or navigated.
	ErrLoad = errors.New("audit: page load failed")

	// ErrEvaluate marks a page on which axe-core could not be injected or run.
	ErrEvaluate = errors.New("audit: evaluation failed")

	// ErrBrowser indicates the headless browser could not be launched or reached.
	ErrBrowser = errors.New("audit: browser unavailable")

	// ErrAxeSource indicates the axe-core script could not be loaded from disk or URL.
	ErrAxeSource = errors.New("audit: axe-core source unavailable")

	// ErrInvalidSchedule is returned by Watch for an unparsable cron expression.
	ErrInvalidSchedule = errors.New("audit: invalid schedule")

	// ErrWriteReport wraps every failure to persist the report file.
	ErrWriteReport = errors.New("audit: write report")
)
