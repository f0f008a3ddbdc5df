package core

import (
	"fmt"

	"github.com/go-weft/weft/pkg/errors"
)

// stateUpdate is one pending change to a hook slot: either a
// replacement value or a transform of the previous state.
type stateUpdate struct {
	set   bool
	value any
	apply func(any) any
}

// hookSlot holds one piece of component state. A slot is persistent:
// the same slot object is carried from render to render through the
// alternate link, so a setter captured by an old listener still
// reaches live state. pending accumulates updates between renders and
// is drained, in order, each time the slot is read.
type hookSlot struct {
	state   any
	pending []stateUpdate
}

// drain folds the pending updates over the state, in order, and
// clears the queue.
func (s *hookSlot) drain() {
	for _, u := range s.pending {
		if u.set {
			s.state = u.value
		} else {
			s.state = u.apply(s.state)
		}
	}
	s.pending = nil
}

// Setter enqueues updates to one hook slot and schedules a re-render.
type Setter[T any] struct {
	r    *Renderer
	slot *hookSlot
}

// Set replaces the slot's state with v on the next render.
func (s Setter[T]) Set(v T) {
	s.dispatch(stateUpdate{set: true, value: v})
}

// Update transforms the slot's state on the next render. Updates
// queued before a render executes fold left in call order, so three
// queued increments equal three committed one at a time.
func (s Setter[T]) Update(fn func(T) T) {
	s.dispatch(stateUpdate{apply: func(v any) any { return fn(v.(T)) }})
}

func (s Setter[T]) dispatch(u stateUpdate) {
	s.slot.pending = append(s.slot.pending, u)
	s.r.scheduleStateUpdate()
}

// scheduleStateUpdate starts a fresh render pass rooted at the top of
// the tree. Setters firing during commit are deferred until the
// commit pass finishes; the host tree is never mutated reentrantly.
func (r *Renderer) scheduleStateUpdate() {
	if r.committing {
		r.pendingUpdate = true
		return
	}
	r.scheduleRootUpdate()
}

// UseState returns the component-local state at the current hook slot
// and a setter that changes it across re-renders.
//
// It is valid only while a composite fiber is being processed by the
// scheduler; calling it anywhere else panics with *errors.HookError.
// A component must call it unconditionally and in the same order every
// render, or slots silently misalign against the previous render.
func UseState[T any](r *Renderer, initial T) (T, Setter[T]) {
	if r == nil || r.active == nil {
		panic(&errors.HookError{
			Op:         "core.UseState",
			StackTrace: errors.CaptureStack(),
		})
	}
	f := r.active

	var slot *hookSlot
	if f.alternate != nil && f.hookIndex < len(f.alternate.hooks) {
		slot = f.alternate.hooks[f.hookIndex]
	}
	if slot == nil {
		slot = &hookSlot{state: initial}
	}
	slot.drain()

	f.hooks = append(f.hooks, slot)
	f.hookIndex++

	state, ok := slot.state.(T)
	if !ok {
		// Slot misalignment: the component's hook order changed across
		// renders. Recover by resetting the slot to this call site's
		// initial value.
		errors.Report(&errors.WeftError{
			Op:    "core.UseState",
			Kind:  errors.KindHook,
			Fiber: f.name(),
			Err:   fmt.Errorf("hook slot %d holds %T, want %T", f.hookIndex-1, slot.state, initial),
		})
		state = initial
		slot.state = initial
	}
	return state, Setter[T]{r: r, slot: slot}
}
