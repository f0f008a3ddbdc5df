package rendertest

import (
	"testing"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/host"
)

// Tester drives a renderer against an in-memory host tree with full
// control over scheduling. It is the recommended entry point for
// integration-style tests of component trees.
type Tester struct {
	t *testing.T

	// Tree is the in-memory host backend, exposed for journal and
	// dispatch assertions.
	Tree *host.MemoryTree
	// Container is the root node renders target.
	Container *host.MemoryNode
	// Renderer is the renderer under test.
	Renderer *core.Renderer
	// Slicer is the manual slicer driving the renderer.
	Slicer *ManualSlicer
}

// NewTester creates a tester with a fresh memory tree and a manually
// driven renderer.
func NewTester(t *testing.T) *Tester {
	tree := host.NewMemoryTree()
	slicer := &ManualSlicer{}
	return &Tester{
		t:         t,
		Tree:      tree,
		Container: tree.NewContainer("root"),
		Renderer:  core.NewRenderer(tree, core.WithSlicer(slicer.Request)),
		Slicer:    slicer,
	}
}

// Render renders el into the container and runs all work, including
// re-renders scheduled by state setters along the way.
func (ts *Tester) Render(el core.Element) {
	ts.Renderer.Render(el, ts.Container)
	ts.Slicer.Drain()
}

// RenderUnits starts rendering el but performs only n single-unit
// slices, leaving the pass suspended. Call Settle to finish it.
func (ts *Tester) RenderUnits(el core.Element, n int) {
	ts.Renderer.Render(el, ts.Container)
	for i := 0; i < n; i++ {
		if !ts.Slicer.Step(ZeroDeadline{}) {
			ts.t.Fatalf("no slice queued after %d units", i)
		}
	}
}

// Settle runs all outstanding work to completion.
func (ts *Tester) Settle() {
	ts.Slicer.Drain()
}

// Dispatch fires an event on a node and then settles, mirroring how a
// host delivers input between idle slices.
func (ts *Tester) Dispatch(node host.Node, event string) bool {
	fired := ts.Tree.Dispatch(node, event, nil)
	ts.Slicer.Drain()
	return fired
}

// FindByTag returns the first node with the given tag in depth-first
// order under the container, or nil.
func (ts *Tester) FindByTag(tag string) *host.MemoryNode {
	return findByTag(ts.Container, tag)
}

func findByTag(n *host.MemoryNode, tag string) *host.MemoryNode {
	if n.Tag == tag {
		return n
	}
	for _, child := range n.Children() {
		if found := findByTag(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// Text concatenates the text leaves under the container in document
// order.
func (ts *Tester) Text() string {
	return collectText(ts.Container)
}

func collectText(n *host.MemoryNode) string {
	if n.IsText() {
		return n.Text
	}
	out := ""
	for _, child := range n.Children() {
		out += collectText(child)
	}
	return out
}
