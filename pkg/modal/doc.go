// Package modal implements the assistant dialog state machine.
//
// The dialog starts closed. The trigger opens it, suspends page scrolling
// and moves focus to the close control after a short delay. The close
// control, a click on the backdrop or the cancel key close it, restore
// scrolling and return focus to the control that opened it.
//
//	h := modal.Mount(modal.Config{OnFocus: focusElement})
//	defer h.Close()
//
//	h.Click("trizel-ai-button") // open
//	h.Key("Escape")             // closed
//
// Without JavaScript the page handler mounts a Handle with
// ImmediateScheduler, dispatches the action parsed from the URL and renders
// the resulting Snapshot. Next exposes the bare transition table.
package modal
