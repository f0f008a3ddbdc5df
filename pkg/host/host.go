// Package host defines the contract between the weft engine and the
// mutable tree it renders into. The engine never mutates host state
// directly; every change flows through a Tree implementation, which
// keeps the core testable against an in-memory tree and portable
// across real backends.
package host

// Node is an opaque handle to one node owned by a Tree. The engine
// treats handles as identity-only values: it stores them, compares
// them, and hands them back to the Tree, nothing more.
type Node interface {
	isHostNode()
}

// Event is delivered to listeners registered via AddEventListener.
type Event struct {
	// Type is the event name, e.g. "click".
	Type string
	// Target is the node the event was dispatched on.
	Target Node
	// Data carries backend-specific payload, if any.
	Data any
}

// Listener receives events dispatched on a node.
type Listener func(Event)

// Tree is the set of mutation and query primitives the engine needs
// from a host backend.
type Tree interface {
	// CreateNode creates a detached node with the given tag.
	CreateNode(tag string) Node
	// CreateTextNode creates a detached text node with the given value.
	CreateTextNode(value string) Node

	// SetAttribute sets an attribute on a node. For text nodes the
	// reserved attribute "value" replaces the node's text.
	SetAttribute(node Node, key string, value any)
	// RemoveAttribute removes an attribute from a node.
	RemoveAttribute(node Node, key string)

	// AddEventListener registers a listener for the named event.
	AddEventListener(node Node, event string, listener Listener)
	// RemoveEventListener unregisters the listener for the named event.
	RemoveEventListener(node Node, event string)

	// AppendChild attaches child as the last child of parent.
	AppendChild(parent, child Node)
	// RemoveChild detaches child from parent. Removing a child that is
	// not attached to parent is a no-op.
	RemoveChild(parent, child Node)
	// ContainsChild reports whether child is a direct child of parent.
	ContainsChild(parent, child Node) bool
}
