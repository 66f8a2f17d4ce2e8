package views

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/trizel-ai/trizel/pkg/i18n"
	"github.com/trizel-ai/trizel/pkg/modal"
)

// Assistant links and the query parameter used without JavaScript.
const (
	GovernancePath  = "/PHASE_F_GOVERNANCE.md"
	CoreRepoURL     = "https://github.com/trizel-ai/trizel-core"
	AssistantQuery  = "assistant"
	AssistantNS     = "assistant"
	assistantTitle  = "trizel-ai-modal-title"
	assistantDialog = modal.DefaultDialogID
)

// AssistantActionURL returns path with the assistant action as its only
// query parameter.
func AssistantActionURL(path string, a modal.Action) string {
	return path + "?" + url.Values{AssistantQuery: {a.String()}}.Encode()
}

// AssistantButton renders the floating trigger. The script reveals the
// button; without JavaScript the noscript link reloads the page with the
// dialog open.
func AssistantButton(t *i18n.Translator, path string) templ.Component {
	t = t.In(AssistantNS)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		label := t.T("button_aria_label")
		icon := svgOpen("trizel-ai-button-icon") + chatIcon

		h := newHTML(ctx, w)
		h.raw(`<button type="button" class="trizel-ai-button"`)
		h.attr("id", modal.DefaultTriggerID)
		h.attr("aria-label", label)
		h.attr("aria-controls", assistantDialog)
		h.raw(` aria-haspopup="dialog" hidden>` + icon + `</button>`)

		h.raw(`<noscript><a class="trizel-ai-button"`)
		h.href(AssistantActionURL(path, modal.ActionTrigger))
		h.attr("aria-label", label)
		h.raw(`>` + icon + `</a></noscript>`)
		return h.done()
	})
}

// AssistantDialog renders the informational dialog as s describes it. A
// closed dialog is present but hidden so the script can open it in place.
func AssistantDialog(t *i18n.Translator, path string, s modal.Snapshot) templ.Component {
	t = t.In(AssistantNS)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(ctx, w)
		h.raw(`<div role="dialog" aria-modal="true"`)
		h.attr("id", assistantDialog)
		h.attr("aria-labelledby", assistantTitle)
		if s.Visible {
			h.raw(` class="trizel-ai-modal active"`)
			if s.ReturnFocus != "" {
				h.attr("data-return-focus", s.ReturnFocus)
			}
		} else {
			h.raw(` class="trizel-ai-modal" hidden`)
		}
		h.raw(`><div class="trizel-ai-modal-content">`)

		h.raw(`<header class="trizel-ai-modal-header"><h2 class="trizel-ai-modal-title"`)
		h.attr("id", assistantTitle)
		h.raw(`>` + svgOpen("trizel-ai-modal-title-icon") + chatIcon)
		h.text(t.T("modal_title"))
		h.raw(`</h2><a class="trizel-ai-modal-close" role="button"`)
		h.attr("id", modal.DefaultCloseID)
		h.href(AssistantActionURL(path, modal.ActionCloseControl))
		h.attr("aria-label", t.T("close_aria_label"))
		if s.Focused == modal.DefaultCloseID {
			h.raw(` autofocus`)
		}
		h.raw(`>` + svgOpen("trizel-ai-modal-close-icon") + closeIcon + `</a></header>`)

		h.raw(`<div class="trizel-ai-modal-body">`)
		h.raw(`<div class="trizel-ai-governance-notice"><p class="trizel-ai-governance-notice-title">`)
		h.text(t.T("governance_notice_title"))
		h.raw(`</p><p class="trizel-ai-governance-notice-text"><strong>`)
		h.text(t.T("governance_notice_subtitle"))
		h.raw(`</strong><br>`)
		h.text(t.T("governance_notice_text"))
		h.raw(`</p></div>`)

		h.raw(`<div class="trizel-ai-status"><span class="trizel-ai-status-indicator"></span>`)
		h.text(t.T("status_badge"))
		h.raw(`</div><div class="trizel-ai-content">`)

		h.raw(`<h3>`)
		h.text(t.T("welcome_heading"))
		h.raw(`</h3><p>`)
		h.text(t.T("welcome_intro"))
		h.raw(`</p>`)
		list(h, t, "category_find_info", "category_understand", "category_navigate",
			"category_language", "category_reference")

		h.raw(`<h3>`)
		h.text(t.T("limitations_heading"))
		h.raw(`</h3><p>`)
		h.text(t.T("limitations_intro"))
		h.raw(`</p>`)
		list(h, t, "limitation_no_exec", "limitation_no_auth", "limitation_no_mod", "limitation_no_live")

		h.raw(`<h3>`)
		h.text(t.T("usage_heading"))
		h.raw(`</h3><p><strong>`)
		h.text(t.T("usage_note_label"))
		h.raw(`</strong> `)
		h.text(t.T("usage_note_text"))
		h.raw(`</p><p>`)
		h.text(t.T("usage_instruction"))
		h.raw(`</p><p><em>`)
		h.text(t.T("usage_implementation"))
		h.raw(`</em></p>`)

		h.raw(`<h3>`)
		h.text(t.T("governance_heading"))
		h.raw(`</h3><p>`)
		h.text(t.T("governance_text_1"))
		h.raw(` <a target="_blank"`)
		h.href(GovernancePath)
		h.raw(`>`)
		h.text(t.T("governance_link_1"))
		h.raw(`</a>, `)
		h.text(t.T("governance_text_2"))
		h.raw(`</p><p>`)
		h.text(t.T("governance_text_3"))
		h.raw(` <a target="_blank" rel="noopener noreferrer"`)
		h.href(CoreRepoURL)
		h.raw(`>`)
		h.text(t.T("governance_link_2"))
		h.raw(`</a> `)
		h.text(t.T("governance_text_4"))
		h.raw(`</p></div></div>`)

		h.raw(`<footer class="trizel-ai-modal-footer"><p class="trizel-ai-footer-text">`)
		h.text(t.T("footer_text_1"))
		h.raw(` <a target="_blank"`)
		h.href(GovernancePath)
		h.raw(`>`)
		h.text(t.T("footer_link"))
		h.raw(`</a> `)
		h.text(t.T("footer_text_2"))
		h.raw(`</p></footer></div></div>`)
		return h.done()
	})
}

// list renders label/description pairs stored as key and key+"_desc".
func list(h *html, t *i18n.Translator, keys ...string) {
	h.raw(`<ul>`)
	for _, k := range keys {
		h.raw(`<li><strong>`)
		h.text(t.T(k))
		h.raw(`</strong> `)
		h.text(t.T(k + "_desc"))
		h.raw(`</li>`)
	}
	h.raw(`</ul>`)
}
