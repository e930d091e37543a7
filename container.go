package treeview

import "iter"

// handle indexes an item in a Tree's node arena. Handles stay valid for
// the lifetime of the tree; parent and child links are handles, never
// pointers.
type handle int

const (
	noItem handle = -1
	// rootItem is the sentinel node every tree starts with. It carries no
	// item; top-level items are its children.
	rootItem handle = 0
)

// Container is the capability shared by the tree view root and every
// item: an ordered collection of owned child items. Use it when code needs
// to add or walk children without caring whether the parent is the view
// itself or an item.
type Container interface {
	Add(item Item) Item
	ForEach(fn VisitFunc, opts IterOption)
}

// AddItem inserts item into c and returns it with its concrete type, so
// callers can keep configuring it without a type assertion.
func AddItem[T Item](c Container, item T) T {
	c.Add(item)
	return item
}

// VisitFunc visits one item during traversal.
type VisitFunc func(Item)

// IterOption is a bitmask of traversal options.
type IterOption uint8

const (
	// IterNone visits every item.
	IterNone IterOption = 0
	// SkipCollapsed prunes the subtree of any item that reports collapsed.
	// The collapsed item itself is still visited.
	SkipCollapsed IterOption = 1 << 0
)

// Tree owns the items of one tree view for one redraw. Items are stored in
// an arena of sibling-linked nodes; insertion order is display order.
//
// The zero value is an empty tree ready for use.
type Tree struct {
	nodes []node

	// The view this tree belongs to, set when the view is registered or
	// built. Items reach their view through this.
	view View
}

type node struct {
	item       Item
	parent     handle
	firstChild handle
	lastChild  handle
	nextSib    handle
}

// Add inserts a newly constructed item at the top level of the tree and
// returns it, so callers can keep configuring it. This is the only
// sanctioned insertion path; it establishes the parent and tree links all
// other operations rely on.
func (t *Tree) Add(item Item) Item {
	t.ensureRoot()
	return t.addChild(rootItem, item)
}

// Len returns the number of items in the tree.
func (t *Tree) Len() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return len(t.nodes) - 1
}

// ForEach visits every item in the tree, depth-first in insertion order.
func (t *Tree) ForEach(fn VisitFunc, opts IterOption) {
	if len(t.nodes) == 0 {
		return
	}
	t.forEachFrom(rootItem, fn, opts)
}

func (t *Tree) ensureRoot() {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node{
			parent:     noItem,
			firstChild: noItem,
			lastChild:  noItem,
			nextSib:    noItem,
		})
	}
}

func (t *Tree) addChild(parent handle, item Item) Item {
	b := item.base()
	if b.tree != nil {
		panic("treeview: item is already attached to a tree")
	}

	idx := handle(len(t.nodes))
	t.nodes = append(t.nodes, node{
		item:       item,
		parent:     parent,
		firstChild: noItem,
		lastChild:  noItem,
		nextSib:    noItem,
	})
	t.linkChild(parent, idx)

	b.tree = t
	b.self = idx
	return item
}

// linkChild appends child to parent's sibling chain, O(1) via lastChild.
func (t *Tree) linkChild(parent, child handle) {
	p := &t.nodes[parent]
	if p.firstChild == noItem {
		p.firstChild = child
	} else {
		t.nodes[p.lastChild].nextSib = child
	}
	p.lastChild = child
}

// children iterates the direct children of h in insertion order.
func (t *Tree) children(h handle) iter.Seq[handle] {
	return func(yield func(handle) bool) {
		for c := t.nodes[h].firstChild; c != noItem; c = t.nodes[c].nextSib {
			if !yield(c) {
				return
			}
		}
	}
}

func (t *Tree) forEachFrom(h handle, fn VisitFunc, opts IterOption) {
	for c := range t.children(h) {
		item := t.nodes[c].item
		fn(item)
		if opts&SkipCollapsed != 0 && item.IsCollapsed() {
			continue
		}
		t.forEachFrom(c, fn, opts)
	}
}
