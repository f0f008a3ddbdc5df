package core

import (
	"github.com/go-weft/weft/pkg/host"
)

// effectTag records, during reconciliation, the host mutation a fiber
// needs at commit time.
type effectTag uint8

const (
	effectNone effectTag = iota
	effectPlacement
	effectUpdate
	effectDeletion
)

func (t effectTag) String() string {
	switch t {
	case effectPlacement:
		return "PLACEMENT"
	case effectUpdate:
		return "UPDATE"
	case effectDeletion:
		return "DELETION"
	default:
		return "NONE"
	}
}

// fiber is the unit of reconciliation and scheduling: one mutable
// node mirroring one element's position in the tree.
//
// parent/child/sibling form a left-child right-sibling encoding of
// the n-ary tree, which lets the scheduler and the commit walk
// traverse depth-first with O(1) auxiliary state.
//
// alternate is a non-owning cross-generation reference to the fiber
// at the same position in the last committed tree. It is read for
// prior host-node identity, props, and hook slots, and never used to
// mutate the old tree.
type fiber struct {
	typ      NodeType // nil for the synthetic root fiber
	props    Props
	children []Element // declared children awaiting reconciliation

	// hostNode is exclusively owned for host and text fibers; nil for
	// composites. It is the only handle the commit phase mutates.
	hostNode host.Node

	parent    *fiber
	child     *fiber
	sibling   *fiber
	alternate *fiber

	effect effectTag

	// hooks are the state slots resolved during this fiber's render,
	// positionally indexed by hook call order.
	hooks     []*hookSlot
	hookIndex int
}

// name labels the fiber for diagnostics.
func (f *fiber) name() string {
	if f == nil {
		return "<nil>"
	}
	return typeName(f.typ)
}

// hostParent returns the host node of the nearest ancestor that owns
// one. Composite fibers own no host node, so placements and removals
// attach at the closest host-bearing ancestor instead.
func (f *fiber) hostParent() host.Node {
	for p := f.parent; p != nil; p = p.parent {
		if p.hostNode != nil {
			return p.hostNode
		}
	}
	return nil
}

// root walks parent links to the top of the fiber's tree.
func (f *fiber) root() *fiber {
	top := f
	for top.parent != nil {
		top = top.parent
	}
	return top
}
