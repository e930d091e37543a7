package treeview

// View is the interface tree views implement. A view owns the whole item
// tree for one redraw; a fresh instance is built every redraw and
// reconciled against the previous one retrieved from the Surface.
//
// Concrete views embed TreeBase and implement BuildTree.
type View interface {
	// BuildTree populates the view with a fresh, complete item hierarchy
	// reflecting current data. It is called exactly once per redraw,
	// before reconciliation, and must not read previous-frame state.
	BuildTree()

	Add(item Item) Item
	ForEach(fn VisitFunc, opts IterOption)

	viewBase() *TreeBase
}

// TreeBase provides the container functionality of a tree view. Embed this
// in your view structs.
type TreeBase struct {
	Tree
}

func (t *TreeBase) viewBase() *TreeBase { return t }

// updateFromOld transfers persistent row state from the previous redraw's
// tree into this one. A nil old tree means there is nothing to inherit
// (first redraw, or the view identity changed) and is not an error.
//
// The old tree is only read, never mutated.
func (t *TreeBase) updateFromOld(old *Tree) {
	if old == nil || len(old.nodes) == 0 || len(t.nodes) == 0 {
		return
	}
	updateChildrenFromOld(&t.Tree, rootItem, old, rootItem)
}

// updateChildrenFromOld matches every new child, in order, against the old
// container's direct children by label. Matched items copy their state via
// UpdateFromOld, then their subtrees are matched one level down. Unmatched
// items keep the defaults BuildTree gave them.
//
// Matching is scoped to direct siblings: an item that changed parent
// between redraws counts as brand new. Each old child transfers its state
// at most once, so with duplicate labels under one parent the first new
// child wins its match and later duplicates inherit nothing.
func updateChildrenFromOld(newTree *Tree, newParent handle, oldTree *Tree, oldParent handle) {
	consumed := make(map[handle]bool)
	for c := range newTree.children(newParent) {
		item := newTree.nodes[c].item
		match := findMatchingChild(item.Label(), oldTree, oldParent, consumed)
		if match == noItem {
			continue
		}
		consumed[match] = true

		item.UpdateFromOld(oldTree.nodes[match].item)
		updateChildrenFromOld(newTree, c, oldTree, match)
	}
}

// findMatchingChild returns the first not-yet-consumed direct child of
// parent whose label equals label, or noItem.
func findMatchingChild(label string, t *Tree, parent handle, consumed map[handle]bool) handle {
	for c := range t.children(parent) {
		if consumed[c] {
			continue
		}
		if t.nodes[c].item.Label() == label {
			return c
		}
	}
	return noItem
}

// buildLayout walks the reconciled tree and emits one row per visible
// item into a fresh column region. The layout context active before the
// call is restored afterwards, so the tree view composes inside whatever
// layout surrounds it.
func (t *TreeBase) buildLayout(lb *LayoutBuilder) {
	prev := lb.surface.CurrentLayout()
	lb.surface.Column()

	t.ForEach(func(item Item) {
		lb.BuildRow(item)
	}, SkipCollapsed)

	lb.surface.SetCurrentLayout(prev)
}
