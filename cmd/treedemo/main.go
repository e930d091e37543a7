// Command treedemo is an interactive tree view backed by the redraw
// engine: every keypress rebuilds the whole tree from scratch and
// reconciles it against the previous frame, so collapse and active state
// survive purely through label matching.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"treeview"
)

// catalog is the demo's underlying data: a small asset library outline.
type catalog struct {
	name     string
	children []catalog
}

var library = []catalog{
	{name: "Scenes", children: []catalog{
		{name: "Intro"},
		{name: "Outro"},
	}},
	{name: "Objects", children: []catalog{
		{name: "Camera"},
		{name: "Light"},
		{name: "Meshes", children: []catalog{
			{name: "Cube"},
			{name: "Sphere"},
			{name: "Suzanne"},
		}},
	}},
	{name: "Materials", children: []catalog{
		{name: "Metal"},
		{name: "Glass"},
	}},
}

// catalogItem keeps the active marker across redraws and decorates the
// active row with action icons.
type catalogItem struct {
	treeview.BasicItem
}

func newCatalogItem(label string) *catalogItem {
	return &catalogItem{BasicItem: *treeview.NewBasicItem(label)}
}

func (it *catalogItem) UpdateFromOld(old treeview.Item) {
	it.BasicItem.UpdateFromOld(old)
	it.SetActive(old.IsActive())
}

func (it *catalogItem) BuildRow(row *treeview.Layout) {
	it.BasicItem.BuildRow(row)
	if it.IsActive() {
		it.Control().AddExtra("+")
		it.Control().AddExtra("✕")
	}
}

func (it *catalogItem) OnActivate() {
	if v, ok := it.View().(*catalogView); ok && v.onPick != nil {
		v.onPick(it.Label())
	}
}

// catalogView rebuilds the item hierarchy from the library data on every
// redraw.
type catalogView struct {
	treeview.TreeBase
	onPick func(name string)
}

func (v *catalogView) BuildTree() {
	treeview.AddItem(v, newCatalogItem("All")).Icon("⌂")

	for _, c := range library {
		item := v.buildRecursive(v, c)
		// Root-level catalogs start open.
		item.SetCollapsed(false)
	}

	treeview.AddItem(v, newCatalogItem("Unassigned")).Icon("·")
}

func (v *catalogView) buildRecursive(parent treeview.Container, c catalog) *catalogItem {
	item := treeview.AddItem(parent, newCatalogItem(c.name))
	for _, child := range c.children {
		v.buildRecursive(item, child)
	}
	return item
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
)

type model struct {
	surface *treeview.Surface
	builder *treeview.Builder
	rows    []*treeview.Control

	cursor int
	status string
	width  int
}

func newModel() *model {
	m := &model{status: "Showing all assets", width: 80}
	m.redraw()
	return m
}

// redraw runs one full build → reconcile → layout cycle against the
// previous frame's surface.
func (m *model) redraw() {
	surface := treeview.NewSurface(m.surface)
	view := &catalogView{onPick: func(name string) {
		m.status = "Showing assets from " + name
	}}
	surface.AddView("asset catalog", view)

	builder := treeview.NewBuilder(surface)
	builder.BuildTreeView(view)

	m.surface = surface
	m.builder = builder
	m.rows = surface.Controls()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case " ":
			if len(m.rows) > 0 {
				m.rows[m.cursor].Toggle()
				m.redraw()
			}
		case "enter":
			if len(m.rows) > 0 {
				m.builder.Activate(m.rows[m.cursor])
				m.redraw()
			}
		}
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Asset Catalogs"))
	b.WriteString("\n\n")

	for i, ctl := range m.rows {
		item := m.builder.ItemFor(ctl)

		icon := string(ctl.Icon())
		if icon == "" {
			icon = " "
		}
		line := strings.Repeat("  ", ctl.Indent()) + icon + " " + ctl.Text()
		for _, extra := range ctl.Extras() {
			line += " " + string(extra)
		}
		// Truncate before styling so escape codes stay intact.
		line = runewidth.Truncate(line, m.width-2, "…")

		switch {
		case i == m.cursor:
			line = cursorStyle.Render(line)
		case item != nil && item.IsActive():
			line = activeStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("↑/↓ move · space toggle · enter activate · q quit"))
	b.WriteString("\n")
	return b.String()
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "treedemo: stdout is not a terminal")
		os.Exit(1)
	}
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "treedemo:", err)
		os.Exit(1)
	}
}
