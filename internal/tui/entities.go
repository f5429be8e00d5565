package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"

	"cartesian/internal/plane"
)

type entityItem struct {
	title, desc string
	kind        string
}

func (e entityItem) Title() string       { return e.title }
func (e entityItem) Description() string { return e.desc }
func (e entityItem) FilterValue() string { return e.kind + " " + e.title }

var entityColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "kind", Width: 7},
	{Title: "cartesian", Width: 24},
	{Title: "pixel", Width: 24},
}

// describe returns the kind, Cartesian and dot-space text of an entity.
func describe(tr plane.Transformer, e plane.Entity) (kind, cart, pix string) {
	at := func(p plane.Point) string {
		px, py := tr.ToCanvas(p.X, p.Y)
		return fmt.Sprintf("(%g, %g)", px, py)
	}
	switch e := e.(type) {
	case plane.Point:
		return "point", e.String(), at(e)
	case plane.Vector:
		return "vector", e.String(), at(e.Origin) + " -> " + at(e.Tip)
	}
	return "", "", ""
}

// refreshEntities rebuilds the sidebar items and the table rows from the
// plane, in draw order.
func (m *Model) refreshEntities() {
	tr := m.plane.Transformer()
	entities := m.plane.Entities()
	items := make([]list.Item, 0, len(entities))
	rows := make([]table.Row, 0, len(entities))
	for i, e := range entities {
		kind, cart, pix := describe(tr, e)
		items = append(items, entityItem{title: cart, desc: kind + " " + pix, kind: kind})
		rows = append(rows, table.Row{fmt.Sprintf("%d", i+1), kind, cart, pix})
	}
	m.l.SetItems(items)
	m.tbl.SetRows(rows)
	if len(rows) == 0 && m.showTable {
		m.showTable = false
		m.status = "no entities"
	}
}
