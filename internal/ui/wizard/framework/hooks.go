package framework

// Hooks holds the before/after callbacks of a widget with local state S
// in a wizard sharing a context of type C.
//
// The zero value shows the widget and advances after it.
type Hooks[S, C any] struct {
	before func(ctx *C) RenderGate
	after  func(state *S, ctx *C) Action
}

// SetBefore sets the hook deciding whether the widget is shown.
func (h *Hooks[S, C]) SetBefore(fn func(ctx *C) RenderGate) {
	h.before = fn
}

// SetAfter sets the hook run after each input event (or once, for
// non-interactive widgets). It is the only place the context is mutated.
func (h *Hooks[S, C]) SetAfter(fn func(state *S, ctx *C) Action) {
	h.after = fn
}

// RunBefore runs the before hook, defaulting to Show.
func (h *Hooks[S, C]) RunBefore(ctx *C) RenderGate {
	if h.before == nil {
		return Show
	}
	return h.before(ctx)
}

// RunAfter runs the after hook, defaulting to Advance.
func (h *Hooks[S, C]) RunAfter(state *S, ctx *C) Action {
	if h.after == nil {
		return Advance
	}
	return h.after(state, ctx)
}
