package core

import (
	"reflect"
)

// reconcileChildren diffs the declared child elements against the
// previous committed children (reached through the parent's alternate)
// and links the resulting fibers into a new child/sibling chain.
//
// The walk is positional: declared index i is compared against the
// i-th old fiber in traversal order, never against a logical identity.
// Inserting or removing in the middle of a same-typed list therefore
// updates every later slot against the wrong prior state and emits a
// trailing deletion or placement. That behavior is part of the
// contract; see TestReconcile_PositionalDiff.
func (r *Renderer) reconcileChildren(f *fiber, declared []Element) {
	var oldFiber *fiber
	if f.alternate != nil {
		oldFiber = f.alternate.child
	}

	index := 0
	var prevSibling *fiber
	for index < len(declared) || oldFiber != nil {
		var decl *Element
		if index < len(declared) {
			decl = &declared[index]
		}

		same := oldFiber != nil && decl != nil && sameNodeType(oldFiber.typ, decl.Type)

		var newFiber *fiber
		if same {
			// Same slot, same type: keep the host node, diff props at
			// commit time.
			newFiber = &fiber{
				typ:       oldFiber.typ,
				props:     decl.Props,
				children:  decl.Children,
				hostNode:  oldFiber.hostNode,
				parent:    f,
				alternate: oldFiber,
				effect:    effectUpdate,
			}
		}
		if decl != nil && !same {
			newFiber = &fiber{
				typ:      decl.Type,
				props:    decl.Props,
				children: decl.Children,
				parent:   f,
				effect:   effectPlacement,
			}
		}
		if oldFiber != nil && !same {
			oldFiber.effect = effectDeletion
			r.deletions = append(r.deletions, oldFiber)
		}

		if oldFiber != nil {
			oldFiber = oldFiber.sibling
		}
		if index == 0 {
			f.child = newFiber
		} else if newFiber != nil && prevSibling != nil {
			prevSibling.sibling = newFiber
		}
		if newFiber != nil {
			prevSibling = newFiber
		}
		index++
	}
}

// sameNodeType reports whether two element types occupy the same slot
// compatibly. Host tags compare by string, text always matches text,
// and composites compare by render-function identity.
func sameNodeType(a, b NodeType) bool {
	switch at := a.(type) {
	case HostType:
		bt, ok := b.(HostType)
		return ok && at == bt
	case TextType:
		_, ok := b.(TextType)
		return ok
	case CompositeType:
		bt, ok := b.(CompositeType)
		if !ok || at.Render == nil || bt.Render == nil {
			return false
		}
		return reflect.ValueOf(at.Render).Pointer() == reflect.ValueOf(bt.Render).Pointer()
	}
	return false
}
