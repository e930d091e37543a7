package treeview

// Direction is the axis a layout region stacks its content on.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

// Surface is the host redraw block. It registers the views built into one
// redraw under host-chosen ids and keeps a handle to the previous redraw's
// surface, which is how a new tree finds the old tree to inherit state
// from. It also tracks the current layout context that regions and
// controls are appended to.
type Surface struct {
	prev *Surface

	views map[string]View
	ids   map[View]string

	root *Layout
	cur  *Layout

	controls []*Control
}

// NewSurface returns a surface for one redraw. prev is the surface of the
// previous redraw, or nil on the first one.
func NewSurface(prev *Surface) *Surface {
	s := &Surface{
		prev:  prev,
		views: make(map[string]View),
		ids:   make(map[View]string),
	}
	s.root = &Layout{surface: s, dir: Vertical}
	s.cur = s.root
	return s
}

// AddView registers a view under id and returns it. The id is the view's
// identity across redraws: the next redraw's view registered under the
// same id inherits this view's row state.
func (s *Surface) AddView(id string, view View) View {
	s.views[id] = view
	s.ids[view] = id
	view.viewBase().view = view
	return view
}

// previousTreeFor returns the previous redraw's tree for the same logical
// view, or nil when there is none.
func (s *Surface) previousTreeFor(view View) *Tree {
	if s.prev == nil {
		return nil
	}
	id, ok := s.ids[view]
	if !ok {
		return nil
	}
	old, ok := s.prev.views[id]
	if !ok {
		return nil
	}
	return &old.viewBase().Tree
}

// RootLayout returns the surface's top-level region, the entry point for
// walking everything emitted during the redraw.
func (s *Surface) RootLayout() *Layout {
	return s.root
}

// CurrentLayout returns the layout region new regions and controls are
// currently appended to.
func (s *Surface) CurrentLayout() *Layout {
	return s.cur
}

// SetCurrentLayout restores a previously current layout region. Every
// caller that changes the current layout must restore it before
// returning.
func (s *Surface) SetCurrentLayout(l *Layout) {
	s.cur = l
}

// Column opens a vertical region inside the current layout and makes it
// current.
func (s *Surface) Column() *Layout {
	return s.openLayout(Vertical)
}

// Row opens a horizontal region inside the current layout and makes it
// current.
func (s *Surface) Row() *Layout {
	return s.openLayout(Horizontal)
}

func (s *Surface) openLayout(dir Direction) *Layout {
	l := &Layout{surface: s, parent: s.cur, dir: dir}
	s.cur.children = append(s.cur.children, l)
	s.cur = l
	return l
}

// Controls returns every control emitted into this surface, in emission
// order. For a tree view that is one control per visible row, top to
// bottom.
func (s *Surface) Controls() []*Control {
	return s.controls
}

// Layout is one region of the surface. Rows and columns nest; controls are
// appended to the region that is current while an item builds its row.
type Layout struct {
	surface  *Surface
	parent   *Layout
	dir      Direction
	children []*Layout
	controls []*Control
}

// Direction returns the region's stacking axis.
func (l *Layout) Direction() Direction {
	return l.dir
}

// Controls returns the controls appended directly to this region.
func (l *Layout) Controls() []*Control {
	return l.controls
}

// IconText appends an icon+text control to this region and returns it, so
// the caller can attach indentation, toggle wiring and decorations.
func (l *Layout) IconText(icon Icon, text string) *Control {
	ctl := &Control{icon: icon, text: text}
	l.controls = append(l.controls, ctl)
	l.surface.controls = append(l.surface.controls, ctl)
	return ctl
}

// Control is one emitted row control: an icon, a label and the affordance
// metadata a host needs to draw and interact with the row. It is a plain
// value holder; the mapping back to the item that built it lives in the
// Builder's side table, not here.
type Control struct {
	icon   Icon
	text   string
	indent int
	extras []Icon

	toggle func()
}

// Icon returns the control's resolved icon.
func (c *Control) Icon() Icon {
	return c.icon
}

// Text returns the control's label text.
func (c *Control) Text() string {
	return c.text
}

// Indent returns the indentation level in tree depth units.
func (c *Control) Indent() int {
	return c.indent
}

// SetIndent sets the indentation level.
func (c *Control) SetIndent(indent int) {
	c.indent = indent
}

// OnToggle wires the control's built-in toggle affordance.
func (c *Control) OnToggle(fn func()) {
	c.toggle = fn
}

// Toggle invokes the toggle affordance, if wired. Hosts call this when the
// row's chevron is clicked.
func (c *Control) Toggle() {
	if c.toggle != nil {
		c.toggle()
	}
}

// AddExtra appends a trailing decoration icon to the row, e.g. per-row
// action buttons on the active row.
func (c *Control) AddExtra(icon Icon) {
	c.extras = append(c.extras, icon)
}

// Extras returns the trailing decoration icons.
func (c *Control) Extras() []Icon {
	return c.extras
}
