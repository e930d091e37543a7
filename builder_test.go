package treeview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func controlTexts(s *Surface) []string {
	var texts []string
	for _, ctl := range s.Controls() {
		texts = append(texts, ctl.Text())
	}
	return texts
}

func sceneBuild(v *testView) {
	scenes := v.Add(NewBasicItem("Scenes"))
	scenes.Add(NewBasicItem("A"))
	scenes.Add(NewBasicItem("B"))
	scenes.SetCollapsed(false)
	v.Add(NewBasicItem("Objects"))
}

func TestBuildTreeView(t *testing.T) {
	t.Run("EmitsVisibleRowsInOrder", func(t *testing.T) {
		surface := NewSurface(nil)
		view := &testView{build: sceneBuild}
		surface.AddView("scene tree", view)

		NewBuilder(surface).BuildTreeView(view)

		want := []string{"Scenes", "A", "B", "Objects"}
		if diff := cmp.Diff(want, controlTexts(surface)); diff != "" {
			t.Errorf("emitted rows mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("RowMetadata", func(t *testing.T) {
		surface := NewSurface(nil)
		view := &testView{build: sceneBuild}
		surface.AddView("scene tree", view)

		NewBuilder(surface).BuildTreeView(view)

		ctls := surface.Controls()
		if ctls[0].Icon() != IconChevronDown {
			t.Errorf("expanded collapsible row should carry the down chevron")
		}
		if ctls[0].Indent() != 0 || ctls[1].Indent() != 1 {
			t.Errorf("indentation should follow item depth")
		}
		if ctls[3].Icon() != IconNone {
			t.Errorf("leaf without explicit icon should carry no icon")
		}
	})

	t.Run("CollapsedSubtreeSkipped", func(t *testing.T) {
		surface := NewSurface(nil)
		view := &testView{build: func(v *testView) {
			scenes := v.Add(NewBasicItem("Scenes"))
			scenes.Add(NewBasicItem("A"))
			v.Add(NewBasicItem("Objects"))
		}}
		surface.AddView("scene tree", view)

		NewBuilder(surface).BuildTreeView(view)

		want := []string{"Scenes", "Objects"}
		if diff := cmp.Diff(want, controlTexts(surface)); diff != "" {
			t.Errorf("collapsed rows leaked into the layout (-want +got):\n%s", diff)
		}
		if surface.Controls()[0].Icon() != IconChevronRight {
			t.Errorf("collapsed row should carry the right chevron")
		}
	})

	t.Run("RestoresLayoutContext", func(t *testing.T) {
		surface := NewSurface(nil)
		outer := surface.Column()

		view := &testView{build: sceneBuild}
		surface.AddView("scene tree", view)
		NewBuilder(surface).BuildTreeView(view)

		if surface.CurrentLayout() != outer {
			t.Errorf("tree view must restore the surrounding layout context")
		}
	})

	t.Run("RowRegionsAreHorizontal", func(t *testing.T) {
		surface := NewSurface(nil)
		view := &testView{build: sceneBuild}
		surface.AddView("scene tree", view)
		NewBuilder(surface).BuildTreeView(view)

		column := surface.RootLayout().children[0]
		if column.Direction() != Vertical {
			t.Fatalf("tree should emit into a fresh column region")
		}
		for _, row := range column.children {
			if row.Direction() != Horizontal {
				t.Errorf("each item should get its own row region")
			}
			if len(row.Controls()) != 1 {
				t.Errorf("basic rows emit exactly one control, got %d", len(row.Controls()))
			}
		}
	})
}

func TestRedrawCycle(t *testing.T) {
	// Two full redraws against the same surface lineage: collapse state
	// set by interacting with frame one must survive into frame two.
	s1 := NewSurface(nil)
	v1 := &testView{build: sceneBuild}
	s1.AddView("scene tree", v1)
	NewBuilder(s1).BuildTreeView(v1)

	// Click the chevron on "Scenes".
	s1.Controls()[0].Toggle()

	s2 := NewSurface(s1)
	v2 := &testView{build: sceneBuild}
	s2.AddView("scene tree", v2)
	NewBuilder(s2).BuildTreeView(v2)

	want := []string{"Scenes", "Objects"}
	if diff := cmp.Diff(want, controlTexts(s2)); diff != "" {
		t.Errorf("collapse did not survive the redraw (-want +got):\n%s", diff)
	}

	// A view registered under a different id inherits nothing.
	s3 := NewSurface(s2)
	v3 := &testView{build: sceneBuild}
	s3.AddView("other tree", v3)
	NewBuilder(s3).BuildTreeView(v3)

	wantFresh := []string{"Scenes", "A", "B", "Objects"}
	if diff := cmp.Diff(wantFresh, controlTexts(s3)); diff != "" {
		t.Errorf("view identity should be scoped by id (-want +got):\n%s", diff)
	}
}

func TestSideTable(t *testing.T) {
	surface := NewSurface(nil)
	view := &testView{build: sceneBuild}
	surface.AddView("scene tree", view)
	builder := NewBuilder(surface)
	builder.BuildTreeView(view)

	for _, ctl := range surface.Controls() {
		item := builder.ItemFor(ctl)
		if item == nil {
			t.Fatalf("control %q has no item binding", ctl.Text())
		}
		if item.Label() != ctl.Text() {
			t.Errorf("control %q bound to item %q", ctl.Text(), item.Label())
		}
	}

	if builder.ItemFor(&Control{}) != nil {
		t.Errorf("unknown control should resolve to nil")
	}
}

func TestActivate(t *testing.T) {
	var activated []string

	surface := NewSurface(nil)
	view := &testView{build: func(v *testView) {
		for _, label := range []string{"one", "two"} {
			label := label
			v.Add(NewBasicItem(label).ActivateFunc(func(*BasicItem) {
				activated = append(activated, label)
			}))
		}
	}}
	surface.AddView("picker", view)
	builder := NewBuilder(surface)
	builder.BuildTreeView(view)

	one, two := surface.Controls()[0], surface.Controls()[1]

	if item := builder.Activate(one); item == nil || !item.IsActive() {
		t.Fatalf("Activate should mark the item active and return it")
	}
	if diff := cmp.Diff([]string{"one"}, activated); diff != "" {
		t.Errorf("activation callback mismatch (-want +got):\n%s", diff)
	}

	// Activating another row clears the first: at most one active item
	// per tree after Activate.
	builder.Activate(two)
	if builder.ItemFor(one).IsActive() {
		t.Errorf("previously active item should be cleared")
	}
	if !builder.ItemFor(two).IsActive() {
		t.Errorf("newly activated item should be active")
	}

	if builder.Activate(&Control{}) != nil {
		t.Errorf("activating an unknown control should return nil")
	}
}

func TestViewAccessor(t *testing.T) {
	surface := NewSurface(nil)
	view := &testView{build: sceneBuild}
	surface.AddView("scene tree", view)
	NewBuilder(surface).BuildTreeView(view)

	view.ForEach(func(item Item) {
		if item.View() != View(view) {
			t.Errorf("item %q does not reach its view", item.Label())
		}
	}, IterNone)

	if NewBasicItem("loose").View() != nil {
		t.Errorf("detached item should have no view")
	}
}
