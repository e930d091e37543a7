package treeview

// Item is the interface all tree view items implement.
//
// Concrete item types embed ItemBase, which provides everything except
// BuildRow. An item is rebuilt from scratch on every redraw; the open and
// active flags survive redraws because reconciliation copies them over from
// the matching item of the previous tree (see View).
type Item interface {
	// Identity
	Label() string

	// Hierarchy
	Depth() int
	Parent() Item
	View() View
	Add(child Item) Item
	ForEach(fn VisitFunc, opts IterOption)

	// Persistent row state
	SetActive(active bool)
	IsActive() bool
	ToggleCollapsed()
	SetCollapsed(collapsed bool)
	IsCollapsed() bool
	IsCollapsible() bool

	// BuildRow materializes this item's visual content into the given row
	// region. Implementations must go through the collapse and active
	// mutators rather than poking state directly, so that the flags a
	// later reconciliation pass transferred are not clobbered mid-frame.
	BuildRow(row *Layout)

	// OnActivate is invoked when the row becomes the active row.
	OnActivate()

	// UpdateFromOld copies persistent state from the matching item of the
	// previous redraw into this item.
	UpdateFromOld(old Item)

	base() *ItemBase
}

// ItemBase provides common state and functionality for tree view items.
// Embed this in your item structs; BuildRow is the only method left to
// implement.
type ItemBase struct {
	// label identifies an item across redraws, together with its
	// parents' labels.
	label string

	open   bool
	active bool

	// Set by Add. A nil tree means the item was never inserted.
	tree *Tree
	self handle
}

// NewItemBase returns an ItemBase carrying the given identity label.
func NewItemBase(label string) ItemBase {
	return ItemBase{label: label, self: noItem}
}

func (b *ItemBase) base() *ItemBase { return b }

// Label returns the identity label used for cross-redraw matching.
func (b *ItemBase) Label() string {
	return b.label
}

// Depth returns the number of ancestors above this item. Top-level items
// have depth 0. Used for row indentation.
func (b *ItemBase) Depth() int {
	if b.tree == nil {
		return 0
	}
	depth := 0
	for p := b.tree.nodes[b.self].parent; p != rootItem; p = b.tree.nodes[p].parent {
		depth++
	}
	return depth
}

// Parent returns the owning item, or nil for top-level items and items
// that were never inserted.
func (b *ItemBase) Parent() Item {
	if b.tree == nil {
		return nil
	}
	p := b.tree.nodes[b.self].parent
	if p == rootItem {
		return nil
	}
	return b.tree.nodes[p].item
}

// View returns the tree view this item belongs to, or nil when the item
// was never inserted.
func (b *ItemBase) View() View {
	if b.tree == nil {
		return nil
	}
	return b.tree.view
}

// Add inserts a newly constructed child under this item and returns it.
// The item must itself have been inserted into a tree first.
func (b *ItemBase) Add(child Item) Item {
	if b.tree == nil {
		panic("treeview: Add called on an item that is not attached to a tree")
	}
	return b.tree.addChild(b.self, child)
}

// ForEach visits the items below this one, depth-first in insertion order.
// The item itself is not visited.
func (b *ItemBase) ForEach(fn VisitFunc, opts IterOption) {
	if b.tree == nil {
		return
	}
	b.tree.forEachFrom(b.self, fn, opts)
}

// SetActive marks or unmarks this item as the active row. This only sets
// the flag; activation with single-active enforcement goes through
// Builder.Activate.
func (b *ItemBase) SetActive(active bool) {
	b.active = active
}

// IsActive reports whether this item is marked as the active row.
func (b *ItemBase) IsActive() bool {
	return b.active
}

// ToggleCollapsed flips the open flag.
func (b *ItemBase) ToggleCollapsed() {
	b.open = !b.open
}

// SetCollapsed sets the open flag to the inverse of collapsed.
func (b *ItemBase) SetCollapsed(collapsed bool) {
	b.open = !collapsed
}

// IsCollapsed reports whether this item hides its children. An item
// without children never reports collapsed, whatever the open flag says.
func (b *ItemBase) IsCollapsed() bool {
	return b.IsCollapsible() && !b.open
}

// IsCollapsible reports whether this item has children to hide.
func (b *ItemBase) IsCollapsible() bool {
	if b.tree == nil {
		return false
	}
	return b.tree.nodes[b.self].firstChild != noItem
}

// OnActivate is a no-op by default.
func (b *ItemBase) OnActivate() {}

// UpdateFromOld copies the open flag from the matching item of the last
// redraw. Item types carrying extra persistent state should override this,
// call the embedded version, then copy their own fields.
func (b *ItemBase) UpdateFromOld(old Item) {
	b.open = old.base().open
}
