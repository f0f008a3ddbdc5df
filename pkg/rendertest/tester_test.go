package rendertest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/host"
)

func TestTester_GoldenSnapshot(t *testing.T) {
	ts := NewTester(t)
	ts.Render(core.Host("div", core.Props{"id": "app"},
		core.Host("h1", nil, "Hi"),
		core.Host("ul", nil,
			core.Host("li", nil, "one"),
			core.Host("li", nil, "two"),
		),
	))
	ts.MatchGolden("basic_tree")
}

func TestTester_RenderUnitsSuspends(t *testing.T) {
	ts := NewTester(t)

	ts.RenderUnits(core.Host("div", nil, core.Host("h1", nil, "Hi")), 2)
	assert.Empty(t, ts.Container.Children(),
		"suspended render must not have committed")

	ts.Settle()
	require.Len(t, ts.Container.Children(), 1)
	assert.Equal(t, "Hi", ts.Text())
}

func TestTester_DispatchDrivesState(t *testing.T) {
	ts := NewTester(t)

	counter := core.Composite("Counter", func(r *core.Renderer, props core.Props, children []core.Element) core.Element {
		n, setN := core.UseState(r, 0)
		return core.Host("button", core.Props{
			"onClick": host.Listener(func(host.Event) {
				setN.Update(func(v int) int { return v + 1 })
			}),
		}, n)
	})

	ts.Render(core.NewElement(counter, nil))
	assert.Equal(t, "0", ts.Text())

	button := ts.FindByTag("button")
	require.NotNil(t, button)

	require.True(t, ts.Dispatch(button, "click"))
	assert.Equal(t, "1", ts.Text())

	require.True(t, ts.Dispatch(button, "click"))
	require.True(t, ts.Dispatch(button, "click"))
	assert.Equal(t, "3", ts.Text())
}

func TestTester_FindByTag(t *testing.T) {
	ts := NewTester(t)
	ts.Render(core.Host("div", nil,
		core.Host("ul", nil, core.Host("li", nil, "x")),
	))

	li := ts.FindByTag("li")
	require.NotNil(t, li)
	assert.Equal(t, "li", li.Tag)
	assert.Nil(t, ts.FindByTag("nav"))
}

func TestSnapshot_OmitsEmptyFields(t *testing.T) {
	tree := host.NewMemoryTree()
	n := tree.CreateNode("div").(*host.MemoryNode)

	got := string(Snapshot(n))
	want := "{\n  \"tag\": \"div\"\n}\n"
	assert.Equal(t, want, got)
}

func TestSnapshot_RecordsListenersAsEventNames(t *testing.T) {
	ts := NewTester(t)
	ts.Render(core.Host("button", core.Props{
		"onClick": host.Listener(func(host.Event) {}),
		"onBlur":  host.Listener(func(host.Event) {}),
	}))

	snap := Capture(ts.FindByTag("button"))
	assert.Equal(t, []string{"blur", "click"}, snap.Events)
	assert.Empty(t, snap.Attrs, "listeners are not attributes")
}
