// Package core implements the weft rendering engine: a declarative
// element tree is diffed against the previously committed fiber tree,
// the minimal set of host mutations is computed incrementally under a
// cooperative time budget, and the accumulated effects are applied to
// the host tree in one uninterrupted commit pass.
//
// # Core Types
//
// Element is an immutable description of one UI node: a type, a
// property map, and ordered child elements. Elements are cheap values
// recreated on every render and never mutated.
//
// A fiber (internal) is the unit of reconciliation and scheduling: it
// mirrors one element's position in the tree, owns the element's host
// node, and links to its counterpart in the last committed tree via a
// non-owning alternate reference.
//
// Renderer owns all render state for a single root: the committed
// tree, the work-in-progress tree, the scheduler cursor, and the
// pending deletions. Multiple independent roots are just multiple
// Renderers; there is no package-level render state.
//
// # Rendering
//
//	tree := host.NewMemoryTree()
//	container := tree.NewContainer("root")
//	r := core.NewRenderer(tree)
//	r.Render(core.Host("div", nil, core.Host("h1", nil, "Hi")), container)
//	r.Flush()
//
// # State
//
// Components are plain functions. Component-local state that survives
// re-renders comes from UseState, which must be called unconditionally
// and in the same order on every render of a component:
//
//	counter := core.Composite("Counter", func(r *core.Renderer, props core.Props, children []core.Element) core.Element {
//	    count, setCount := core.UseState(r, 0)
//	    return core.Host("button", core.Props{
//	        "onClick": host.Listener(func(host.Event) { setCount.Update(func(n int) int { return n + 1 }) }),
//	    }, count)
//	})
//
// # Scheduling
//
// Reconciliation runs one fiber at a time and yields between fibers
// whenever the caller-supplied time budget is exhausted. The budget
// source is an injectable WorkSlicer, so hosts plug in their idle
// callback and tests drive the loop deterministically. The commit
// pass never yields: the host tree is only ever observed in fully
// updated states.
package core
