package rendertest

import (
	"time"

	"github.com/go-weft/weft/pkg/core"
)

// ManualSlicer queues work slices instead of running them, so a test
// decides exactly when the scheduler resumes and with what budget.
// Install it with core.WithSlicer(slicer.Request).
type ManualSlicer struct {
	queue []func(core.Deadline)
}

// Request enqueues a slice. It is the core.WorkSlicer to inject.
func (s *ManualSlicer) Request(run func(core.Deadline)) {
	s.queue = append(s.queue, run)
}

// Pending returns the number of queued slices.
func (s *ManualSlicer) Pending() int {
	return len(s.queue)
}

// Step runs the next queued slice with the given budget and reports
// whether one ran. A ZeroDeadline budget performs exactly one unit of
// work per step.
func (s *ManualSlicer) Step(d core.Deadline) bool {
	if len(s.queue) == 0 {
		return false
	}
	run := s.queue[0]
	s.queue = s.queue[1:]
	run(d)
	return true
}

// Drain runs queued slices with an unlimited budget until none
// remain, including slices scheduled by the work they trigger.
func (s *ManualSlicer) Drain() {
	for s.Step(UnlimitedDeadline{}) {
	}
}

// ZeroDeadline reports no remaining budget, forcing the work loop to
// yield after every unit of work.
type ZeroDeadline struct{}

func (ZeroDeadline) TimeRemaining() time.Duration { return 0 }

// UnlimitedDeadline never runs out of budget.
type UnlimitedDeadline struct{}

func (UnlimitedDeadline) TimeRemaining() time.Duration { return time.Hour }
