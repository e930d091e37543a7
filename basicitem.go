package treeview

// Icon identifies the glyph drawn at the left edge of a row. The engine
// treats it as opaque; hosts decide how an icon id turns into pixels or
// cells.
type Icon string

const (
	IconNone         Icon = ""
	IconChevronRight Icon = "▸"
	IconChevronDown  Icon = "▾"
)

// BasicItem is the most basic item type: a label with an icon and an
// optional activation callback.
type BasicItem struct {
	ItemBase

	icon     Icon
	activate func(*BasicItem)

	// The control emitted by the last BuildRow call.
	ctl *Control
}

// NewBasicItem returns a basic item with the given label.
func NewBasicItem(label string) *BasicItem {
	return &BasicItem{ItemBase: NewItemBase(label)}
}

// Icon sets an explicit icon, overriding the collapse chevron.
func (b *BasicItem) Icon(icon Icon) *BasicItem {
	b.icon = icon
	return b
}

// ActivateFunc sets the callback invoked when this item becomes the
// active row. The callback receives the newly active item.
func (b *BasicItem) ActivateFunc(fn func(*BasicItem)) *BasicItem {
	b.activate = fn
	return b
}

// BuildRow implements Item. It emits one icon+text control indented by
// the item's depth, with the toggle affordance wired to the collapse
// state.
func (b *BasicItem) BuildRow(row *Layout) {
	b.ctl = row.IconText(b.drawIcon(), b.Label())
	b.ctl.SetIndent(b.Depth())
	b.ctl.OnToggle(b.ToggleCollapsed)
}

// OnActivate implements Item, invoking the stored callback if any.
func (b *BasicItem) OnActivate() {
	if b.activate != nil {
		b.activate(b)
	}
}

// Control returns the row control emitted by the last BuildRow call, so
// item types built on BasicItem can decorate their row after calling the
// embedded BuildRow. Nil before the first layout pass.
func (b *BasicItem) Control() *Control {
	return b.ctl
}

// drawIcon resolves the icon to draw: an explicit icon wins, then the
// collapse chevron for collapsible items, then nothing.
func (b *BasicItem) drawIcon() Icon {
	if b.icon != IconNone {
		return b.icon
	}
	if b.IsCollapsible() {
		if b.IsCollapsed() {
			return IconChevronRight
		}
		return IconChevronDown
	}
	return IconNone
}
