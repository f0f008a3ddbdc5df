package rendertest

import (
	"encoding/json"
	"fmt"

	"github.com/sebdah/goldie/v2"

	"github.com/go-weft/weft/pkg/host"
)

// Node is the serialized form of one host node. Node IDs are omitted
// on purpose: they are unique per process and would make goldens
// nondeterministic.
type Node struct {
	Tag      string            `json:"tag,omitempty"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Events   []string          `json:"events,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// Capture serializes the subtree rooted at n. Attribute values are
// stringified so goldens stay stable across value types.
func Capture(n *host.MemoryNode) *Node {
	out := &Node{Tag: n.Tag}
	if n.IsText() {
		out.Text = n.Text
	}
	names := n.AttrNames()
	if len(names) > 0 {
		out.Attrs = make(map[string]string, len(names))
		for _, name := range names {
			v, _ := n.Attr(name)
			out.Attrs[name] = fmt.Sprint(v)
		}
	}
	if events := n.ListenerEvents(); len(events) > 0 {
		out.Events = events
	}
	for _, child := range n.Children() {
		out.Children = append(out.Children, Capture(child))
	}
	return out
}

// Snapshot renders the subtree rooted at n as indented JSON with a
// trailing newline.
func Snapshot(n *host.MemoryNode) []byte {
	data, err := json.MarshalIndent(Capture(n), "", "  ")
	if err != nil {
		panic(fmt.Sprintf("rendertest: snapshot marshal failed: %v", err))
	}
	return append(data, '\n')
}

// MatchGolden asserts the committed host tree against the golden file
// testdata/<name>.golden. Regenerate with -update.
func (ts *Tester) MatchGolden(name string) {
	ts.t.Helper()
	g := goldie.New(ts.t)
	g.Assert(ts.t, name, Snapshot(ts.Container))
}
