package chrome

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDropdowns(t *testing.T) {
	d := NewDropdowns(
		Menu{Name: "Categories", Open: true},
		Menu{Name: "Elsewhere"},
	)
	assert.False(t, d.IsOpen("Categories"), "menus start closed")

	assert.True(t, d.Toggle("Categories"))
	assert.True(t, d.Toggle("Elsewhere"))
	assert.True(t, d.IsOpen("Categories"), "toggling one menu leaves the other open")

	assert.True(t, d.ClickInside("Categories"))
	assert.True(t, d.IsOpen("Categories"))
	assert.True(t, d.IsOpen("Elsewhere"))
	assert.Equal(t, "Categories", d.Focused())

	assert.False(t, d.Toggle("Categories"))
	assert.Empty(t, d.Focused(), "closing a menu drops its focus")
	assert.False(t, d.ClickInside("Categories"), "a closed menu takes no clicks")

	assert.True(t, d.ClickInside("Elsewhere"))
	d.ClickOutside()
	assert.False(t, d.IsOpen("Elsewhere"))
	assert.Empty(t, d.Focused())

	assert.False(t, d.Toggle("missing"))

	menus := d.Menus()
	menus[0].Open = true
	assert.False(t, d.IsOpen("Categories"), "Menus returns a copy")
}

func TestCategoryMenu(t *testing.T) {
	m := CategoryMenu("Categories", []string{"CLI", "Data & ML"}, "/projects")
	assert.Equal(t, []Link{
		{Label: "CLI", Href: "/projects?cat=CLI"},
		{Label: "Data & ML", Href: "/projects?cat=Data+%26+ML"},
	}, m.Links)
}

func TestSearchTarget(t *testing.T) {
	target, ok := SearchTarget("/projects", "  orbit tracker ")
	assert.True(t, ok)
	assert.Equal(t, "/projects?q=orbit+tracker", target)

	target, ok = SearchTarget("/projects", " \t ")
	assert.False(t, ok)
	assert.Equal(t, "", target)
}

func TestCarousel_Advances(t *testing.T) {
	c := NewCarousel(3, 10*time.Millisecond)
	c.Start()
	defer c.Stop()

	select {
	case i := <-c.Changes():
		assert.Equal(t, 1, i)
	case <-time.After(time.Second):
		t.Fatal("carousel did not advance")
	}
}

func TestCarousel_HoverPauses(t *testing.T) {
	c := NewCarousel(3, 20*time.Millisecond)
	c.Start()
	defer c.Stop()

	c.Hover()
	assert.True(t, c.Paused())
	idx := c.Index()
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, idx, c.Index(), "no advance while hovered")

	c.Leave()
	assert.False(t, c.Paused())
	select {
	case <-c.Changes():
	case <-time.After(time.Second):
		t.Fatal("carousel did not resume after leave")
	}
}

func TestCarousel_LeaveWithoutHover(t *testing.T) {
	c := NewCarousel(3, time.Hour)
	c.Leave()
	assert.False(t, c.Paused())
	assert.Equal(t, 0, c.Index())
}

func TestCarousel_Go(t *testing.T) {
	c := NewCarousel(4, time.Hour)
	c.Go(5)
	assert.Equal(t, 1, c.Index())
	c.Go(-1)
	assert.Equal(t, 3, c.Index())

	empty := NewCarousel(0, time.Hour)
	empty.Go(3)
	assert.Equal(t, 0, empty.Index())
}

func TestCarousel_Stop(t *testing.T) {
	c := NewCarousel(2, 10*time.Millisecond)
	c.Start()
	c.Stop()
	select {
	case <-c.Changes():
		t.Fatal("stopped carousel advanced")
	case <-time.After(60 * time.Millisecond):
	}
}
