package core

import (
	"time"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/host"
)

// Deadline is the time budget handed to one work slice. The work loop
// checks it between units of work and yields when it reports zero.
type Deadline interface {
	TimeRemaining() time.Duration
}

// WorkSlicer schedules a future work slice. The engine calls it with
// the loop to resume; the environment invokes that loop with a budget
// when it has idle time. This is the sole environment dependency for
// incremental rendering.
type WorkSlicer func(run func(Deadline))

// frameBudget is the slice budget used by SyncSlicer.
const frameBudget = 4 * time.Millisecond

type frameDeadline struct {
	end time.Time
}

func (d frameDeadline) TimeRemaining() time.Duration {
	remaining := time.Until(d.end)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SyncSlicer is the default WorkSlicer: it runs the slice immediately
// with a fresh frame budget. Work still yields at the same points as
// under a real idle callback, so render passes complete synchronously
// without starving the commit atomicity contract.
func SyncSlicer(run func(Deadline)) {
	run(frameDeadline{end: time.Now().Add(frameBudget)})
}

type unlimitedDeadline struct{}

func (unlimitedDeadline) TimeRemaining() time.Duration { return time.Hour }

// Flush runs all pending work to completion synchronously, including
// any render passes scheduled by state setters along the way. Hosts
// without an idle loop call this after Render.
func (r *Renderer) Flush() {
	for r.nextUnit != nil || r.wip != nil {
		r.workSlice(unlimitedDeadline{})
	}
}

// scheduleWork requests a future slice unless one is already pending.
func (r *Renderer) scheduleWork() {
	if r.scheduled {
		return
	}
	r.scheduled = true
	r.slicer(r.workSlice)
}

// workSlice is the cooperative work loop. It performs units of work
// until none remain or the budget is exhausted; at least one unit runs
// per slice so a zero budget single-steps instead of stalling. When
// the render phase completes it hands off to commit; when it yields it
// re-requests a slice and resumes later from nextUnit with no lost
// state.
func (r *Renderer) workSlice(d Deadline) {
	r.scheduled = false
	for r.nextUnit != nil {
		gen := r.generation
		next := r.performUnitOfWork(r.nextUnit)
		if gen != r.generation {
			// A new render started inside the unit; its cursor wins
			// and the tree this unit belonged to is abandoned.
			continue
		}
		r.nextUnit = next
		if d.TimeRemaining() <= 0 {
			break
		}
	}
	if r.nextUnit == nil && r.wip != nil {
		r.commitRoot()
	}
	if r.nextUnit != nil {
		r.scheduleWork()
	}
}

// performUnitOfWork processes exactly one fiber: it materializes the
// fiber's output (host node or composite render) and reconciles its
// declared children, then returns the next fiber under the
// depth-first, return-to-ancestor rule: child first, else sibling,
// else the first ancestor sibling.
func (r *Renderer) performUnitOfWork(f *fiber) *fiber {
	switch typ := f.typ.(type) {
	case CompositeType:
		r.updateComposite(f, typ)
	default:
		r.updateHost(f)
	}

	if f.child != nil {
		return f.child
	}
	for next := f; next != nil; next = next.parent {
		if next.sibling != nil {
			return next.sibling
		}
	}
	return nil
}

// updateComposite invokes the component function and reconciles its
// single produced element. The fiber is the active hook target for
// the duration of the call.
func (r *Renderer) updateComposite(f *fiber, typ CompositeType) {
	f.hooks = nil
	f.hookIndex = 0
	r.active = f
	produced, ok := r.renderComposite(f, typ)
	r.active = nil

	var declared []Element
	if ok && produced.Type != nil {
		declared = []Element{produced}
	}
	r.reconcileChildren(f, declared)
}

// renderComposite runs the component function with panic containment:
// a panicking component is reported and renders nothing, so one
// malformed component cannot poison unrelated subtrees or abort the
// pass.
func (r *Renderer) renderComposite(f *fiber, typ CompositeType) (out Element, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			errors.ReportRenderError(&errors.RenderError{
				Component:  typeName(typ),
				Recovered:  rec,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
			out = Element{}
			ok = false
		}
	}()
	return typ.Render(r, f.props, f.children), true
}

// updateHost materializes the fiber's host node if needed and
// reconciles its declared children. Materialization is idempotent:
// the node is created once and reused across updates through the
// alternate link.
func (r *Renderer) updateHost(f *fiber) {
	if f.hostNode == nil {
		f.hostNode = r.createHostNode(f)
	}
	r.reconcileChildren(f, f.children)
}

// createHostNode instantiates the detached host node for a host or
// text fiber. Initial props are applied while the node is detached,
// so nothing is host-visible before commit.
func (r *Renderer) createHostNode(f *fiber) host.Node {
	switch typ := f.typ.(type) {
	case TextType:
		return r.tree.CreateTextNode(textValue(f.props))
	case HostType:
		node := r.tree.CreateNode(string(typ))
		r.applyHostProps(node, nil, f.props)
		return node
	}
	errors.Report(&errors.WeftError{
		Op:    "core.createHostNode",
		Kind:  errors.KindInternal,
		Fiber: f.name(),
		Err:   errHostlessFiber,
	})
	return nil
}
