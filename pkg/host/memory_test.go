package host

import (
	"strings"
	"testing"
)

func TestMemoryTree_AppendRemoveContains(t *testing.T) {
	tree := NewMemoryTree()
	parent := tree.CreateNode("div").(*MemoryNode)
	child := tree.CreateNode("span").(*MemoryNode)

	tree.AppendChild(parent, child)
	if !tree.ContainsChild(parent, child) {
		t.Fatal("expected parent to contain child after append")
	}
	if got := len(parent.Children()); got != 1 {
		t.Fatalf("expected 1 child, got %d", got)
	}

	tree.RemoveChild(parent, child)
	if tree.ContainsChild(parent, child) {
		t.Fatal("expected child detached after remove")
	}
	if child.Parent() != nil {
		t.Fatal("expected nil parent after remove")
	}
}

func TestMemoryTree_RemoveForeignChildIsNoop(t *testing.T) {
	tree := NewMemoryTree()
	a := tree.CreateNode("div")
	b := tree.CreateNode("div")
	orphan := tree.CreateNode("span")

	tree.AppendChild(a, orphan)
	tree.RemoveChild(b, orphan)

	if !tree.ContainsChild(a, orphan) {
		t.Fatal("removing via the wrong parent must not detach the child")
	}
}

func TestMemoryTree_AppendReparents(t *testing.T) {
	tree := NewMemoryTree()
	a := tree.CreateNode("div").(*MemoryNode)
	b := tree.CreateNode("div").(*MemoryNode)
	child := tree.CreateNode("span").(*MemoryNode)

	tree.AppendChild(a, child)
	tree.AppendChild(b, child)

	if tree.ContainsChild(a, child) {
		t.Fatal("child should have been detached from the first parent")
	}
	if !tree.ContainsChild(b, child) {
		t.Fatal("child should be attached to the second parent")
	}
	if len(a.Children()) != 0 {
		t.Fatalf("first parent should have no children, got %d", len(a.Children()))
	}
}

func TestMemoryTree_TextValueAttribute(t *testing.T) {
	tree := NewMemoryTree()
	text := tree.CreateTextNode("Hi").(*MemoryNode)

	if !text.IsText() {
		t.Fatal("expected a text node")
	}
	if text.Text != "Hi" {
		t.Fatalf("Text = %q, want %q", text.Text, "Hi")
	}

	tree.SetAttribute(text, "value", "Bye")
	if text.Text != "Bye" {
		t.Fatalf("Text = %q, want %q after value update", text.Text, "Bye")
	}
}

func TestMemoryTree_AttributesAndListeners(t *testing.T) {
	tree := NewMemoryTree()
	node := tree.CreateNode("a").(*MemoryNode)

	tree.SetAttribute(node, "href", "/home")
	if v, ok := node.Attr("href"); !ok || v != "/home" {
		t.Fatalf("Attr(href) = %v, %v", v, ok)
	}

	fired := 0
	tree.AddEventListener(node, "click", func(e Event) {
		if e.Type != "click" || e.Target != node {
			t.Errorf("unexpected event %+v", e)
		}
		fired++
	})
	if !tree.Dispatch(node, "click", nil) {
		t.Fatal("expected a listener to fire")
	}
	if fired != 1 {
		t.Fatalf("listener fired %d times, want 1", fired)
	}

	tree.RemoveEventListener(node, "click")
	if tree.Dispatch(node, "click", nil) {
		t.Fatal("expected no listener after removal")
	}

	tree.RemoveAttribute(node, "href")
	if _, ok := node.Attr("href"); ok {
		t.Fatal("expected href removed")
	}
}

func TestMemoryTree_Journal(t *testing.T) {
	tree := NewMemoryTree()
	parent := tree.CreateNode("div")
	child := tree.CreateTextNode("x")
	tree.AppendChild(parent, child)

	journal := tree.Journal()
	if len(journal) != 3 {
		t.Fatalf("journal has %d entries, want 3: %v", len(journal), journal)
	}
	if journal[2] != "append(div, #text)" {
		t.Errorf("journal[2] = %q", journal[2])
	}

	tree.ResetJournal()
	if len(tree.Journal()) != 0 {
		t.Fatal("expected empty journal after reset")
	}
}

func TestMemoryNode_Render(t *testing.T) {
	tree := NewMemoryTree()
	div := tree.CreateNode("div").(*MemoryNode)
	h1 := tree.CreateNode("h1").(*MemoryNode)
	text := tree.CreateTextNode("Hi")
	tree.SetAttribute(div, "id", "app")
	tree.AppendChild(div, h1)
	tree.AppendChild(h1, text)

	got := div.Render()
	want := "<div id=\"app\">\n  <h1>\n    \"Hi\"\n"
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestMemoryNode_RenderWithIDs(t *testing.T) {
	tree := NewMemoryTree()
	div := tree.CreateNode("div").(*MemoryNode)
	text := tree.CreateTextNode("Hi").(*MemoryNode)
	tree.AppendChild(div, text)

	got := div.RenderWithIDs()
	if !strings.Contains(got, "<div> #"+div.ShortID()) {
		t.Errorf("dump %q does not label the div by ID", got)
	}
	if !strings.Contains(got, `"Hi" #`+text.ShortID()) {
		t.Errorf("dump %q does not label the text node by ID", got)
	}
	if strings.Contains(div.Render(), "#"+div.ShortID()) {
		t.Error("plain Render must not include IDs")
	}
	if len(div.ShortID()) != 8 {
		t.Errorf("ShortID() = %q, want 8 characters", div.ShortID())
	}
}

func TestMemoryNode_UniqueIDs(t *testing.T) {
	tree := NewMemoryTree()
	a := tree.CreateNode("div").(*MemoryNode)
	b := tree.CreateNode("div").(*MemoryNode)
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected nodes to carry IDs")
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct node IDs")
	}
	if !strings.Contains(a.ID, "-") {
		t.Errorf("ID %q does not look like a UUID", a.ID)
	}
}
