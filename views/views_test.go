package views_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/trizel-ai/trizel/pkg/content"
	"github.com/trizel-ai/trizel/pkg/i18n"
	"github.com/trizel-ai/trizel/pkg/markdown"
	"github.com/trizel-ai/trizel/pkg/modal"
	"github.com/trizel-ai/trizel/pkg/status"
	"github.com/trizel-ai/trizel/views"
	"github.com/trizel-ai/trizel/web"
)

func catalog(t *testing.T) *i18n.I18n {
	t.Helper()
	c, err := i18n.New(i18n.WithDefaultLanguage("en"), i18n.WithYAMLDir(web.Translations()))
	require.NoError(t, err)
	return c
}

func translator(t *testing.T, code string) *i18n.Translator {
	t.Helper()
	l, ok := i18n.DefaultLocales().Lookup(code)
	require.True(t, ok, code)
	return i18n.NewTranslator(catalog(t), l, "site")
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestLayout(t *testing.T) {
	t.Parallel()

	page := func(tr *i18n.Translator, state modal.Snapshot) views.Page {
		return views.Page{
			T:         tr,
			Locales:   i18n.DefaultLocales(),
			Path:      "/" + tr.Language() + "/methodology/",
			Title:     "Methodology",
			Content:   templ.Raw("<h1>Methodology</h1>"),
			Indicator: views.DailyIndicatorFallback(tr, status.DefaultPath),
			Assistant: state,
		}
	}

	t.Run("right to left locale", func(t *testing.T) {
		t.Parallel()
		out := render(t, views.Layout(page(translator(t, "ar"), modal.Snapshot{})))

		require.True(t, strings.HasPrefix(out, `<!doctype html><html lang="ar" dir="rtl">`))
		require.Contains(t, out, "انتقل إلى المحتوى الرئيسي")
		require.Contains(t, out, `hx-get="/ar/partials/daily-indicator"`)
		require.Contains(t, out, `<h1>Methodology</h1>`)
		require.Contains(t, out, `<title>Methodology · TRIZEL</title>`)
		require.Contains(t, out, `<body>`)
		require.Contains(t, out, `class="trizel-ai-modal" hidden`)
	})

	t.Run("left to right locale", func(t *testing.T) {
		t.Parallel()
		out := render(t, views.Layout(page(translator(t, "zh"), modal.Snapshot{})))
		require.Contains(t, out, `<html lang="zh" dir="ltr">`)
		require.Contains(t, out, `href="/zh/how-to-cite/"`)
	})

	t.Run("open assistant locks scrolling", func(t *testing.T) {
		t.Parallel()
		h := modal.Mount(modal.Config{Scheduler: modal.ImmediateScheduler{}})
		t.Cleanup(h.Close)
		h.Dispatch(modal.ActionTrigger, "")

		out := render(t, views.Layout(page(translator(t, "en"), h.Snapshot())))
		require.Contains(t, out, `<body class="modal-open">`)
		require.Contains(t, out, `class="trizel-ai-modal active"`)
		require.Contains(t, out, `data-return-focus="trizel-ai-button"`)
		require.Contains(t, out, `aria-label="Close dialog" autofocus>`)
	})

	t.Run("return focus and focus come from the snapshot", func(t *testing.T) {
		t.Parallel()
		out := render(t, views.Layout(page(translator(t, "en"), modal.Snapshot{
			State:        modal.Open,
			Visible:      true,
			ScrollLocked: true,
			ReturnFocus:  "nav-help",
		})))
		require.Contains(t, out, `data-return-focus="nav-help"`)
		require.NotContains(t, out, "autofocus", "focus has not moved yet")
	})
}

func TestArchiveBanner(t *testing.T) {
	t.Parallel()

	tr := translator(t, "en")
	out := render(t, views.ArchiveBanner(tr, "/en/methodology/"))
	require.Contains(t, out, `role="note"`)
	require.Contains(t, out, `href="/artifacts/"`)
	require.Contains(t, out, "Archive Mode Available:")

	require.Empty(t, render(t, views.ArchiveBanner(tr, "/artifacts/")))
	require.Empty(t, render(t, views.ArchiveBanner(tr, "/artifacts/3i-atlas/manifest.json")))
}

func TestDailyIndicator(t *testing.T) {
	t.Parallel()

	tr := translator(t, "en")

	t.Run("ok status", func(t *testing.T) {
		t.Parallel()
		out := render(t, views.DailyIndicator(tr, status.Record{
			Status:      status.OK,
			AsOfUTC:     "2025-06-01T00:00:00Z",
			Designation: "3I/ATLAS",
			EventID:     "evt-1",
			Summary:     "All <strong>gates</strong> passed.",
			Gate:        "G3",
			ProofType:   "observational",
			Links:       status.Links{Latest: "/artifacts/", Manifest: "/artifacts/m.json", Crate: "/artifacts/c.json"},
		}))
		require.Contains(t, out, `<span class="indicator-emoji" aria-hidden="true">🟢</span>`)
		require.Contains(t, out, `<span class="indicator-status">OK</span>`)
		require.Contains(t, out, "All <strong>gates</strong> passed.")
		require.Contains(t, out, "As of: 2025-06-01T00:00:00Z")
		require.Contains(t, out, "Gate: G3")
		require.Contains(t, out, `href="/artifacts/m.json"`)
	})

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()
		out := render(t, views.DailyIndicator(tr, status.Record{Status: "UNKNOWN"}))
		require.Contains(t, out, `aria-hidden="true">⚪</span>`)
		require.Contains(t, out, "UNKNOWN")
	})

	t.Run("untrusted values", func(t *testing.T) {
		t.Parallel()
		out := render(t, views.DailyIndicator(tr, status.Record{
			Status:      status.Error,
			Designation: `<img src=x onerror=alert(1)>`,
			Summary:     `<script>alert(1)</script>bad`,
			Links:       status.Links{Latest: "javascript:alert(1)"},
		}))
		require.NotContains(t, out, "<script>")
		require.NotContains(t, out, "<img")
		require.NotContains(t, out, "javascript:")
		require.Contains(t, out, "🔴")
	})

	t.Run("localized labels", func(t *testing.T) {
		t.Parallel()
		out := render(t, views.DailyIndicator(translator(t, "fr"), status.Record{Status: status.Paused, Gate: "G1"}))
		require.Contains(t, out, "Porte : G1")
	})

	t.Run("fallback", func(t *testing.T) {
		t.Parallel()
		out := render(t, views.DailyIndicatorFallback(tr, status.DefaultPath))
		require.Contains(t, out, `href="/data/publish/3i-atlas/daily-status.json"`)
		require.Contains(t, out, status.FallbackSymbol)
	})
}

func TestLanguageSwitcher(t *testing.T) {
	t.Parallel()

	locales := i18n.DefaultLocales()
	fr, _ := locales.Lookup("fr")
	out := render(t, views.LanguageSwitcher(translator(t, "fr"), locales, fr, "/fr/methodology/"))

	require.Contains(t, out, `action="/lang"`)
	require.Contains(t, out, `name="from" value="/fr/methodology/"`)
	require.Contains(t, out, `<option value="fr" lang="fr" dir="ltr" selected>Français</option>`)
	require.Contains(t, out, `<option value="ar" lang="ar" dir="rtl">العربية</option>`)
	require.Equal(t, 5, strings.Count(out, "<option"))
	require.Equal(t, 1, strings.Count(out, "selected"))
}

func TestAssistant(t *testing.T) {
	t.Parallel()

	cat := catalog(t)
	locales := i18n.DefaultLocales()
	for _, l := range locales.All() {
		t.Run(l.Code, func(t *testing.T) {
			t.Parallel()
			tr := i18n.NewTranslator(cat, l, "site")
			want := cat.T(l.Code, views.AssistantNS, "modal_title")

			dialog := render(t, views.AssistantDialog(tr, "/"+l.Code+"/", modal.Snapshot{}))
			require.Contains(t, dialog, `role="dialog" aria-modal="true"`)
			require.Contains(t, dialog, `aria-labelledby="trizel-ai-modal-title"`)
			require.Contains(t, dialog, templ.EscapeString(want))
			require.Contains(t, dialog, `href="/PHASE_F_GOVERNANCE.md"`)
			require.Contains(t, dialog, `href="https://github.com/trizel-ai/trizel-core"`)
			require.Contains(t, dialog, `href="/`+l.Code+`/?assistant=close"`)
			for _, key := range cat.Keys("en", views.AssistantNS) {
				require.NotContains(t, dialog, ">"+key+"<", "untranslated key %s", key)
			}

			button := render(t, views.AssistantButton(tr, "/"+l.Code+"/"))
			require.True(t, strings.HasPrefix(button, `<button type="button" class="trizel-ai-button" id="trizel-ai-button"`))
			require.Contains(t, button, `aria-haspopup="dialog" hidden>`)
			require.Contains(t, button, `<noscript><a class="trizel-ai-button" href="/`+l.Code+`/?assistant=open"`)
			require.NotContains(t, button, `role="button"`)
			require.Contains(t, button, templ.EscapeString(cat.T(l.Code, views.AssistantNS, "button_aria_label")))
		})
	}
}

func TestArticle(t *testing.T) {
	t.Parallel()

	doc, err := markdown.New().Render([]byte("# Méthodologie\n\nTexte."))
	require.NoError(t, err)

	own := render(t, views.Article(translator(t, "fr"), &content.Page{Document: doc, Locale: "fr"}))
	require.Contains(t, own, `<article class="content" lang="fr">`)
	require.NotContains(t, own, "fallback-notice")

	fallback := render(t, views.Article(translator(t, "ru"), &content.Page{Document: doc, Locale: "en", Fallback: true}))
	require.Contains(t, fallback, "fallback-notice")
	require.Contains(t, fallback, "Показана английская версия")
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	out := render(t, views.ErrorPage(translator(t, "ru"), 404, "Страница не найдена", ""))
	require.Contains(t, out, `<p class="error-code">404</p>`)
	require.Contains(t, out, "<h1>Страница не найдена</h1>")
	require.Contains(t, out, `href="/ru/"`)
}
