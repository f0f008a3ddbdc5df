package core

import (
	"github.com/go-weft/weft/pkg/host"
)

// Renderer owns the complete render state for one root: the committed
// fiber tree, the in-flight work-in-progress tree, the scheduler
// cursor, and the deletions accumulated by the current pass.
//
// A Renderer is single-threaded by design: one work loop is active at
// a time, yields happen only between units of work, and a new render
// always replaces in-flight state wholesale rather than merging with
// it. There is nothing to lock because there is never a second writer.
type Renderer struct {
	tree   host.Tree
	slicer WorkSlicer

	container host.Node

	// current is the last committed root; the baseline every diff
	// reads through alternate links.
	current *fiber
	// wip is the in-flight root. At most one exists at any time;
	// starting a new render abandons any partially built tree.
	wip *fiber
	// nextUnit is the scheduler cursor. Persisting it across slices is
	// what makes suspend/resume lossless.
	nextUnit *fiber
	// deletions collects old fibers dropped by the current pass; their
	// host subtrees are removed first during commit.
	deletions []*fiber

	// active is the composite fiber currently being rendered; hooks
	// are only valid while it is set.
	active *fiber

	// committing is true for the duration of the commit pass. A state
	// setter firing inside commit (from a listener attached as a side
	// effect of a host mutation) is deferred until the pass finishes
	// rather than reentering the scheduler mid-commit.
	committing    bool
	pendingUpdate bool

	// scheduled guards against piling up slice requests: one pending
	// slice is enough to resume from nextUnit.
	scheduled bool

	// generation increments whenever a render pass starts. The work
	// loop checks it around each unit so a pass scheduled from inside
	// a unit (a host primitive firing a listener synchronously)
	// replaces the cursor instead of being overwritten by it.
	generation uint64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSlicer replaces the work-slice source. Tests install a manual
// slicer to drive the scheduler deterministically.
func WithSlicer(s WorkSlicer) Option {
	return func(r *Renderer) {
		r.slicer = s
	}
}

// NewRenderer creates a renderer that mutates the given host tree.
// By default work runs synchronously in frame-budget slices; pass
// WithSlicer to integrate with a host idle callback.
func NewRenderer(tree host.Tree, opts ...Option) *Renderer {
	r := &Renderer{
		tree:   tree,
		slicer: SyncSlicer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render starts a new top-level render of el into container. Any
// in-flight render is abandoned: its partially built fibers become
// unreachable and are never partially committed.
func (r *Renderer) Render(el Element, container host.Node) {
	r.container = container
	r.wip = &fiber{
		hostNode:  container,
		children:  []Element{el},
		alternate: r.current,
	}
	r.deletions = r.deletions[:0]
	r.nextUnit = r.wip
	r.generation++
	r.scheduleWork()
}

// scheduleRootUpdate starts a fresh render pass from the committed
// baseline. State setters land here: the re-render is always rooted
// at the top of the tree regardless of where the state lives.
func (r *Renderer) scheduleRootUpdate() {
	base := r.current
	if base == nil {
		// A setter fired before the first commit; re-run the in-flight
		// render from its root instead.
		if r.wip == nil && r.nextUnit == nil {
			return
		}
		if r.wip != nil {
			base = r.wip
		} else {
			base = r.nextUnit.root()
		}
	}
	r.wip = &fiber{
		hostNode:  base.hostNode,
		props:     base.props,
		children:  base.children,
		alternate: r.current,
	}
	r.deletions = r.deletions[:0]
	r.nextUnit = r.wip
	r.generation++
	r.scheduleWork()
}
