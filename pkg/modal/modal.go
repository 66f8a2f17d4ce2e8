package modal

import (
	"sync"
	"time"
)

// Default element ids and timings of the assistant dialog.
const (
	DefaultDialogID   = "trizel-ai-modal"
	DefaultTriggerID  = "trizel-ai-button"
	DefaultCloseID    = "trizel-ai-modal-close"
	DefaultFocusDelay = 100 * time.Millisecond
	DefaultCancelKey  = "Escape"
)

// Config describes one dialog instance.
type Config struct {
	DialogID   string
	TriggerID  string
	CloseID    string
	FocusDelay time.Duration
	CancelKey  string
	Scheduler  Scheduler
	// OnFocus is called with the id of the element that receives focus.
	OnFocus func(id string)
}

func (c Config) withDefaults() Config {
	if c.DialogID == "" {
		c.DialogID = DefaultDialogID
	}
	if c.TriggerID == "" {
		c.TriggerID = DefaultTriggerID
	}
	if c.CloseID == "" {
		c.CloseID = DefaultCloseID
	}
	if c.FocusDelay <= 0 {
		c.FocusDelay = DefaultFocusDelay
	}
	if c.CancelKey == "" {
		c.CancelKey = DefaultCancelKey
	}
	if c.Scheduler == nil {
		c.Scheduler = RealScheduler{}
	}
	return c
}

// Snapshot is the observable state of a dialog.
type Snapshot struct {
	State        State
	Visible      bool
	ScrollLocked bool
	// ReturnFocus is the control that opened the dialog most recently.
	ReturnFocus string
	// Focused is the element that received focus last, if any.
	Focused string
}

// Handle owns the state of one mounted dialog. It is safe for concurrent use.
type Handle struct {
	cfg Config

	mu          sync.Mutex
	state       State
	returnFocus string
	focused     string
	pending     Timer
	generation  uint64
	closed      bool
}

// Mount creates a closed dialog.
func Mount(cfg Config) *Handle {
	return &Handle{cfg: cfg.withDefaults()}
}

// Config returns the effective configuration.
func (h *Handle) Config() Config {
	return h.cfg
}

// Dispatch applies action and returns the resulting state. triggerID is the
// control that opened the dialog; empty means the configured trigger.
// Actions that are not transitions from the current state are ignored.
func (h *Handle) Dispatch(action Action, triggerID string) State {
	h.mu.Lock()
	if h.closed {
		defer h.mu.Unlock()
		return h.state
	}
	next, ok := Next(h.state, action)
	if !ok {
		defer h.mu.Unlock()
		return h.state
	}

	var target string
	if next == Open {
		if triggerID == "" {
			triggerID = h.cfg.TriggerID
		}
		h.returnFocus = triggerID
		target = h.cfg.CloseID
	} else {
		target = h.returnFocus
	}
	h.state = next

	if h.pending != nil {
		h.pending.Stop()
		h.pending = nil
	}
	h.generation++
	gen := h.generation
	h.mu.Unlock()

	if target == "" {
		return next
	}

	// Scheduled outside the lock: ImmediateScheduler calls back synchronously.
	t := h.cfg.Scheduler.AfterFunc(h.cfg.FocusDelay, func() { h.focus(gen, target) })

	h.mu.Lock()
	if h.generation == gen && !h.closed {
		h.pending = t
	} else {
		t.Stop()
	}
	h.mu.Unlock()
	return next
}

func (h *Handle) focus(gen uint64, id string) {
	h.mu.Lock()
	if h.closed || h.generation != gen {
		h.mu.Unlock()
		return
	}
	h.focused = id
	h.pending = nil
	onFocus := h.cfg.OnFocus
	h.mu.Unlock()

	if onFocus != nil {
		onFocus(id)
	}
}

// Key handles a key press anywhere in the document.
func (h *Handle) Key(key string) State {
	if key != h.cfg.CancelKey {
		return h.Snapshot().State
	}
	return h.Dispatch(ActionCancelKey, "")
}

// Click handles a click whose target element has id targetID. A click on
// the dialog element itself is a click on the backdrop, outside the content.
func (h *Handle) Click(targetID string) State {
	switch targetID {
	case h.cfg.DialogID:
		return h.Dispatch(ActionOutsideClick, "")
	case h.cfg.CloseID:
		return h.Dispatch(ActionCloseControl, "")
	case h.cfg.TriggerID:
		return h.Dispatch(ActionTrigger, targetID)
	default:
		return h.Snapshot().State
	}
}

// Snapshot returns the current observable state.
func (h *Handle) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	open := h.state == Open
	return Snapshot{
		State:        h.state,
		Visible:      open,
		ScrollLocked: open,
		ReturnFocus:  h.returnFocus,
		Focused:      h.focused,
	}
}

// Close cancels pending focus changes. Further actions are ignored.
func (h *Handle) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.generation++
	if h.pending != nil {
		h.pending.Stop()
		h.pending = nil
	}
}
