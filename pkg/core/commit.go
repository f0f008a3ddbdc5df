package core

import (
	"errors"
	"reflect"
	"strings"

	wefterrors "github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/host"
)

var (
	errMissingHostParent = errors.New("no host-bearing ancestor")
	errStaleAlternate    = errors.New("update-tagged fiber has no alternate")
	errHostlessFiber     = errors.New("fiber has no node type and no host node")
)

// commitRoot applies every effect accumulated by the render phase to
// the host tree in one synchronous, uninterruptible pass, then
// promotes the work-in-progress tree to current. This pass contains
// no yield points: the host tree is only ever observed in fully
// updated states.
func (r *Renderer) commitRoot() {
	r.committing = true

	r.applyEffects()

	r.deletions = r.deletions[:0]
	r.current = r.wip
	r.wip = nil
	severAlternates(r.current)
	r.committing = false

	// A setter that fired during commit (from a listener invoked as a
	// side effect of a host mutation) was deferred; start its render
	// pass now that the tree is consistent.
	if r.pendingUpdate {
		r.pendingUpdate = false
		r.scheduleRootUpdate()
	}
}

// applyEffects flushes the deletion list, then walks the finished
// tree applying placements and updates. A panicking host backend is
// reported and aborts the remaining walk; commitRoot still promotes
// the tree afterwards, so the renderer stays usable.
func (r *Renderer) applyEffects() {
	defer wefterrors.Recover("core.commitRoot")

	for _, d := range r.deletions {
		r.commitDeletion(d)
	}
	r.commitTree(r.wip.child)
}

// severAlternates clears a freshly committed tree's cross-generation
// links. Diffs and hook lookups reach the committed fibers through
// the next pass's alternates, never through these; left intact they
// would chain every tree ever committed into reachability.
func severAlternates(root *fiber) {
	stack := []*fiber{root}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f.alternate = nil

		if f.sibling != nil {
			stack = append(stack, f.sibling)
		}
		if f.child != nil {
			stack = append(stack, f.child)
		}
	}
}

// commitTree walks the committed child/sibling chain depth-first with
// an explicit stack, parents before children, so every descendant is
// placed only after its nearest host-bearing ancestor exists.
func (r *Renderer) commitTree(root *fiber) {
	if root == nil {
		return
	}
	stack := []*fiber{root}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		r.commitEffect(f)

		// Sibling is pushed first so the child is processed next.
		if f.sibling != nil {
			stack = append(stack, f.sibling)
		}
		if f.child != nil {
			stack = append(stack, f.child)
		}
	}
}

// commitEffect applies one fiber's effect to the host tree. Failures
// are skipped with a diagnostic rather than aborting the walk: halting
// mid-commit would break atomicity for every unrelated subtree behind
// the failure.
func (r *Renderer) commitEffect(f *fiber) {
	switch f.effect {
	case effectPlacement:
		if f.hostNode == nil {
			return // composite: nothing to place
		}
		parent := f.hostParent()
		if parent == nil {
			wefterrors.Report(&wefterrors.WeftError{
				Op:    "core.commitPlacement",
				Kind:  wefterrors.KindCommit,
				Fiber: f.name(),
				Err:   errMissingHostParent,
			})
			return
		}
		r.tree.AppendChild(parent, f.hostNode)

	case effectUpdate:
		if f.hostNode == nil {
			return
		}
		if f.alternate == nil {
			wefterrors.Report(&wefterrors.WeftError{
				Op:    "core.commitUpdate",
				Kind:  wefterrors.KindInternal,
				Fiber: f.name(),
				Err:   errStaleAlternate,
			})
			return
		}
		if _, isText := f.typ.(TextType); isText {
			prev := f.alternate.props["value"]
			next := f.props["value"]
			if !sameAttrValue(prev, next) {
				r.tree.SetAttribute(f.hostNode, "value", next)
			}
			return
		}
		r.applyHostProps(f.hostNode, f.alternate.props, f.props)

	case effectDeletion:
		// Deletions are flushed from the deletions list before the
		// walk; a fiber reaching here with the tag is a no-op.
	}
}

// commitDeletion removes a deleted fiber's host subtree from under its
// nearest host-bearing ancestor. A composite fiber owns no host node,
// so the walk descends to find the host nodes its children own;
// descent stops at each owned host node because removing it detaches
// its whole subtree.
func (r *Renderer) commitDeletion(f *fiber) {
	parent := f.hostParent()
	if parent == nil {
		wefterrors.Report(&wefterrors.WeftError{
			Op:    "core.commitDeletion",
			Kind:  wefterrors.KindCommit,
			Fiber: f.name(),
			Err:   errMissingHostParent,
		})
		return
	}
	stack := []*fiber{f}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.hostNode != nil {
			if r.tree.ContainsChild(parent, n.hostNode) {
				r.tree.RemoveChild(parent, n.hostNode)
			}
			continue
		}
		for c := n.child; c != nil; c = c.sibling {
			stack = append(stack, c)
		}
	}
}

// applyHostProps diffs two prop maps and applies the difference to a
// host node: first removals (listeners detached, attributes removed),
// then additions and changes. Event keys follow the "on" prefix
// convention and map to listener attach/detach instead of attribute
// writes.
func (r *Renderer) applyHostProps(node host.Node, prev, next Props) {
	// Detach listeners that are gone or replaced.
	for key, old := range prev {
		if !isEventProp(key) {
			continue
		}
		if nw, ok := next[key]; ok && sameListener(old, nw) {
			continue
		}
		r.tree.RemoveEventListener(node, eventName(key))
	}
	// Remove attributes no longer declared.
	for key := range prev {
		if isEventProp(key) {
			continue
		}
		if _, ok := next[key]; !ok {
			r.tree.RemoveAttribute(node, key)
		}
	}
	// Set new or changed attributes.
	for key, value := range next {
		if isEventProp(key) {
			continue
		}
		if old, ok := prev[key]; ok && sameAttrValue(old, value) {
			continue
		}
		r.tree.SetAttribute(node, key, value)
	}
	// Attach new or replaced listeners.
	for key, value := range next {
		if !isEventProp(key) {
			continue
		}
		if old, ok := prev[key]; ok && sameListener(old, value) {
			continue
		}
		listener, ok := value.(host.Listener)
		if !ok {
			if fn, isFn := value.(func(host.Event)); isFn {
				listener = fn
			} else {
				wefterrors.Report(&wefterrors.WeftError{
					Op:   "core.applyHostProps",
					Kind: wefterrors.KindElement,
					Err:  errors.New("event prop " + key + " is not a host.Listener"),
				})
				continue
			}
		}
		r.tree.AddEventListener(node, eventName(key), listener)
	}
}

// sameAttrValue compares two attribute values, treating values of
// uncomparable types as always changed.
func sameAttrValue(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.IsValid() != bv.IsValid() {
		return false
	}
	if !av.IsValid() {
		return true
	}
	if av.Type() != bv.Type() || !av.Comparable() {
		return false
	}
	return a == b
}

// sameListener compares two listener values by function identity.
// Closures minted fresh each render share a code pointer, so hook
// state captured by a listener must live in hook slots (which persist
// across renders) rather than in the closure environment.
func sameListener(a, b any) bool {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() != reflect.Func || bv.Kind() != reflect.Func {
		return false
	}
	return av.Pointer() == bv.Pointer()
}

// isEventProp reports whether a prop key names an event listener.
func isEventProp(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}

// eventName maps an event prop key to its event name: onClick -> click.
func eventName(key string) string {
	return strings.ToLower(key[2:])
}
