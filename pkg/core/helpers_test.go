package core

import (
	"time"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/host"
)

// captureHandler collects diagnostics for assertions.
type captureHandler struct {
	errors  []*errors.WeftError
	panics  []*errors.PanicError
	renders []*errors.RenderError
}

func (h *captureHandler) HandleError(err *errors.WeftError)   { h.errors = append(h.errors, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError) { h.panics = append(h.panics, err) }
func (h *captureHandler) HandleRenderError(err *errors.RenderError) {
	h.renders = append(h.renders, err)
}

// manualSlicer queues work slices so tests control exactly when and
// with what budget the scheduler runs.
type manualSlicer struct {
	queue []func(Deadline)
}

func (s *manualSlicer) request(run func(Deadline)) {
	s.queue = append(s.queue, run)
}

func (s *manualSlicer) pending() int {
	return len(s.queue)
}

// step runs the next queued slice with the given budget and reports
// whether one ran.
func (s *manualSlicer) step(d Deadline) bool {
	if len(s.queue) == 0 {
		return false
	}
	run := s.queue[0]
	s.queue = s.queue[1:]
	run(d)
	return true
}

// drain runs queued slices with an unlimited budget until none remain.
func (s *manualSlicer) drain() {
	for s.step(unlimitedDeadline{}) {
	}
}

// zeroDeadline forces a yield after every unit of work.
type zeroDeadline struct{}

func (zeroDeadline) TimeRemaining() time.Duration { return 0 }

// newTestRenderer wires a renderer to a fresh memory tree and manual
// slicer.
func newTestRenderer() (*Renderer, *host.MemoryTree, *host.MemoryNode, *manualSlicer) {
	tree := host.NewMemoryTree()
	container := tree.NewContainer("root")
	slicer := &manualSlicer{}
	r := NewRenderer(tree, WithSlicer(slicer.request))
	return r, tree, container, slicer
}

// renderAndFlush renders el and drains all scheduled work.
func renderAndFlush(r *Renderer, s *manualSlicer, el Element, container host.Node) {
	r.Render(el, container)
	s.drain()
}

// childFibers collects the committed root's direct child chain.
func childFibers(r *Renderer) []*fiber {
	var out []*fiber
	if r.current == nil {
		return out
	}
	for f := r.current.child; f != nil; f = f.sibling {
		out = append(out, f)
	}
	return out
}
