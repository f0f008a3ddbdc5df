package host

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// MemoryNode is a node in a MemoryTree. Fields are exported read-only
// views for tests and tooling; mutation goes through the Tree methods.
type MemoryNode struct {
	// ID is a stable identifier assigned at creation. RenderWithIDs
	// surfaces it to tell apart nodes sharing a tag across dumps.
	ID string
	// Tag is the node tag, or "#text" for text nodes.
	Tag string
	// Text is the text value for text nodes.
	Text string

	attrs     map[string]any
	listeners map[string]Listener
	children  []*MemoryNode
	parent    *MemoryNode
}

func (n *MemoryNode) isHostNode() {}

// Attr returns the attribute value and whether it is set.
func (n *MemoryNode) Attr(key string) (any, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// AttrNames returns the set attribute names in sorted order.
func (n *MemoryNode) AttrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ListenerEvents returns the event names with registered listeners,
// in sorted order.
func (n *MemoryNode) ListenerEvents() []string {
	events := make([]string, 0, len(n.listeners))
	for k := range n.listeners {
		events = append(events, k)
	}
	sort.Strings(events)
	return events
}

// Children returns the node's children in order.
func (n *MemoryNode) Children() []*MemoryNode {
	return slices.Clone(n.children)
}

// Parent returns the node's parent, or nil if detached.
func (n *MemoryNode) Parent() *MemoryNode {
	return n.parent
}

// IsText reports whether the node is a text node.
func (n *MemoryNode) IsText() bool {
	return n.Tag == textTag
}

const textTag = "#text"

// MemoryTree is an in-memory Tree used by tests and the CLI. Beyond
// the Tree contract it keeps a journal of every mutation applied, so
// tests can assert not just final shape but how much work was done.
type MemoryTree struct {
	journal []string
}

// NewMemoryTree returns an empty MemoryTree.
func NewMemoryTree() *MemoryTree {
	return &MemoryTree{}
}

// NewContainer creates a detached node to render into.
func (t *MemoryTree) NewContainer(tag string) *MemoryNode {
	n := t.CreateNode(tag).(*MemoryNode)
	// Container creation is setup, not render work.
	t.ResetJournal()
	return n
}

func (t *MemoryTree) CreateNode(tag string) Node {
	n := &MemoryNode{
		ID:  uuid.NewString(),
		Tag: tag,
	}
	t.log("create(%s)", tag)
	return n
}

func (t *MemoryTree) CreateTextNode(value string) Node {
	n := &MemoryNode{
		ID:   uuid.NewString(),
		Tag:  textTag,
		Text: value,
	}
	t.log("createText(%q)", value)
	return n
}

func (t *MemoryTree) SetAttribute(node Node, key string, value any) {
	n := node.(*MemoryNode)
	if n.IsText() && key == "value" {
		n.Text = fmt.Sprint(value)
		t.log("setText(%s, %q)", n.Tag, n.Text)
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[key] = value
	t.log("setAttr(%s, %s)", n.Tag, key)
}

func (t *MemoryTree) RemoveAttribute(node Node, key string) {
	n := node.(*MemoryNode)
	delete(n.attrs, key)
	t.log("removeAttr(%s, %s)", n.Tag, key)
}

func (t *MemoryTree) AddEventListener(node Node, event string, listener Listener) {
	n := node.(*MemoryNode)
	if n.listeners == nil {
		n.listeners = make(map[string]Listener)
	}
	n.listeners[event] = listener
	t.log("addListener(%s, %s)", n.Tag, event)
}

func (t *MemoryTree) RemoveEventListener(node Node, event string) {
	n := node.(*MemoryNode)
	delete(n.listeners, event)
	t.log("removeListener(%s, %s)", n.Tag, event)
}

func (t *MemoryTree) AppendChild(parent, child Node) {
	p := parent.(*MemoryNode)
	c := child.(*MemoryNode)
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = p
	p.children = append(p.children, c)
	t.log("append(%s, %s)", p.Tag, c.Tag)
}

func (t *MemoryTree) RemoveChild(parent, child Node) {
	p := parent.(*MemoryNode)
	c := child.(*MemoryNode)
	if c.parent != p {
		return
	}
	p.detach(c)
	c.parent = nil
	t.log("remove(%s, %s)", p.Tag, c.Tag)
}

func (t *MemoryTree) ContainsChild(parent, child Node) bool {
	p := parent.(*MemoryNode)
	c := child.(*MemoryNode)
	return c.parent == p
}

// Dispatch invokes the listener registered on node for the named
// event, if any, and reports whether one fired.
func (t *MemoryTree) Dispatch(node Node, event string, data any) bool {
	n := node.(*MemoryNode)
	listener, ok := n.listeners[event]
	if !ok {
		return false
	}
	listener(Event{Type: event, Target: node, Data: data})
	return true
}

// Journal returns the mutations applied since the last reset, in order.
func (t *MemoryTree) Journal() []string {
	return slices.Clone(t.journal)
}

// ResetJournal clears the mutation journal.
func (t *MemoryTree) ResetJournal() {
	t.journal = t.journal[:0]
}

func (t *MemoryTree) log(format string, args ...any) {
	t.journal = append(t.journal, fmt.Sprintf(format, args...))
}

func (p *MemoryNode) detach(c *MemoryNode) {
	for i, existing := range p.children {
		if existing == c {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

// Render writes an indented textual dump of the subtree rooted at n.
func (n *MemoryNode) Render() string {
	var sb strings.Builder
	n.render(&sb, 0, false)
	return sb.String()
}

// RenderWithIDs is Render with each line suffixed by the node's short
// ID, so dumps of trees with repeated tags stay unambiguous.
func (n *MemoryNode) RenderWithIDs() string {
	var sb strings.Builder
	n.render(&sb, 0, true)
	return sb.String()
}

// ShortID returns the first eight characters of the node's ID.
func (n *MemoryNode) ShortID() string {
	if len(n.ID) > 8 {
		return n.ID[:8]
	}
	return n.ID
}

func (n *MemoryNode) render(sb *strings.Builder, depth int, withIDs bool) {
	indent := strings.Repeat("  ", depth)
	if n.IsText() {
		fmt.Fprintf(sb, "%s%q", indent, n.Text)
		if withIDs {
			fmt.Fprintf(sb, " #%s", n.ShortID())
		}
		sb.WriteString("\n")
		return
	}
	sb.WriteString(indent)
	sb.WriteString("<")
	sb.WriteString(n.Tag)
	for _, key := range n.AttrNames() {
		v, _ := n.Attr(key)
		fmt.Fprintf(sb, " %s=%q", key, fmt.Sprint(v))
	}
	for _, event := range n.ListenerEvents() {
		fmt.Fprintf(sb, " on:%s", event)
	}
	sb.WriteString(">")
	if withIDs {
		fmt.Fprintf(sb, " #%s", n.ShortID())
	}
	sb.WriteString("\n")
	for _, child := range n.children {
		child.render(sb, depth+1, withIDs)
	}
}
