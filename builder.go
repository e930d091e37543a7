package treeview

// Builder drives one full redraw cycle for a tree view: construct the
// tree, reconcile it against the previous redraw's tree, emit the layout.
// It also owns the side table mapping emitted row controls back to the
// items that built them, valid until the next redraw.
type Builder struct {
	surface *Surface
	itemFor map[*Control]Item
}

// NewBuilder returns a builder emitting into the given surface.
func NewBuilder(surface *Surface) *Builder {
	return &Builder{
		surface: surface,
		itemFor: make(map[*Control]Item),
	}
}

// BuildTreeView runs one build → reconcile → layout cycle. This is the
// single entry point for a redraw.
func (b *Builder) BuildTreeView(view View) {
	tb := view.viewBase()
	tb.view = view

	view.BuildTree()
	tb.updateFromOld(b.surface.previousTreeFor(view))
	tb.buildLayout(&LayoutBuilder{surface: b.surface, builder: b})
}

// ItemFor returns the item that built the given control during the last
// redraw, or nil for an unknown control.
func (b *Builder) ItemFor(ctl *Control) Item {
	return b.itemFor[ctl]
}

// Activate makes the item behind the given control the active row and
// returns it, or nil for an unknown control.
//
// Unlike SetActive, which only flips the flag, Activate clears any
// previously active item in the same tree first, so at most one item per
// tree is active afterwards. This uniqueness is an invariant Activate
// adds; nothing stops callers from setting several active flags by hand.
func (b *Builder) Activate(ctl *Control) Item {
	item, ok := b.itemFor[ctl]
	if !ok {
		return nil
	}

	if t := item.base().tree; t != nil {
		t.ForEach(func(it Item) {
			it.SetActive(false)
		}, IterNone)
	}

	item.SetActive(true)
	item.OnActivate()
	return item
}

func (b *Builder) bind(ctl *Control, item Item) {
	b.itemFor[ctl] = item
}

// LayoutBuilder materializes reconciled items as rows. Created by Builder
// during BuildTreeView.
type LayoutBuilder struct {
	surface *Surface
	builder *Builder
}

// BuildRow opens a horizontal row region, lets the item build its content
// into it, and restores the prior layout context, so one row's
// construction cannot leak layout changes into sibling rows. Controls the
// item emitted are recorded in the builder's side table.
func (lb *LayoutBuilder) BuildRow(item Item) {
	prev := lb.surface.CurrentLayout()
	row := lb.surface.Row()

	item.BuildRow(row)

	for _, ctl := range row.Controls() {
		lb.builder.bind(ctl, item)
	}
	lb.surface.SetCurrentLayout(prev)
}

// Surface returns the surface rows are emitted into.
func (lb *LayoutBuilder) Surface() *Surface {
	return lb.surface
}
