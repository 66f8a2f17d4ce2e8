package handlers

import (
	"github.com/a-h/templ"

	"github.com/trizel-ai/trizel"
	"github.com/trizel-ai/trizel/pkg/i18n"
	"github.com/trizel-ai/trizel/pkg/modal"
	"github.com/trizel-ai/trizel/pkg/status"
	"github.com/trizel-ai/trizel/views"
)

// Site is what every full-page handler shares: the locale table and where
// the daily status file is published.
type Site struct {
	Locales    *i18n.Locales
	StatusPath string
}

// NewSite creates a Site. An empty statusPath means status.DefaultPath.
func NewSite(locales *i18n.Locales, statusPath string) Site {
	if statusPath == "" {
		statusPath = status.DefaultPath
	}
	return Site{Locales: locales, StatusPath: statusPath}
}

// translator returns the request translator, or a canonical one when the
// I18n middleware did not run.
func (s Site) translator(c trizel.Context, catalog *i18n.I18n) *i18n.Translator {
	if tr := c.Translator(); tr != nil {
		return tr
	}
	return i18n.NewTranslator(catalog, s.Locales.Canonical(), "site")
}

// page builds the layout data for a response. The assistant dialog state
// comes from the ?assistant= parameter so it works without JavaScript.
func (s Site) page(c trizel.Context, tr *i18n.Translator, title, description string, body templ.Component) views.Page {
	return views.Page{
		T:           tr,
		Locales:     s.Locales,
		Path:        c.Path(),
		Title:       title,
		Description: description,
		Content:     body,
		Indicator:   views.DailyIndicatorFallback(tr, s.StatusPath),
		Assistant:   assistantState(c.Query(views.AssistantQuery)),
	}
}

// assistantState replays the requested action on a freshly mounted dialog,
// so a page load always starts closed. Focus moves synchronously and ends up
// in the snapshot, where the view renders it as autofocus.
func assistantState(v string) modal.Snapshot {
	h := modal.Mount(modal.Config{Scheduler: modal.ImmediateScheduler{}})
	defer h.Close()

	if a, err := modal.ParseAction(v); err == nil {
		h.Dispatch(a, "")
	}
	return h.Snapshot()
}
