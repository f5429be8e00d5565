// Package tui is the interactive front end: a bubbletea model that shows a
// plane.Plane on a braille surface and feeds it from forms and a WKT paste box.
package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cartesian/internal/plane"
	"cartesian/internal/surface"
)

// Config fixes the plane size for the lifetime of the program.
type Config struct {
	Cols, Rows int     // map size in terminal cells
	Scale      float64 // braille dots per Cartesian unit
	ExportPath string  // image written by the export key
}

func DefaultConfig() Config {
	return Config{Cols: 72, Rows: 24, Scale: 8, ExportPath: "plane.png"}
}

type mode int

const (
	modeView mode = iota
	modePoint
	modeVector
	modePaste
)

const sidebarWidth = 28

type Model struct {
	width  int
	height int

	cfg   Config
	surf  *surface.Braille
	plane *plane.Plane

	mode        mode
	showSidebar bool
	helpVisible bool

	status string

	// point and vector forms
	inputs []textinput.Model
	focus  int

	// paste mode
	ta textarea.Model

	// entity sidebar
	l list.Model

	// entity table
	showTable bool
	tbl       table.Model

	// blocking alert, dismissed by any key
	alert string

	// hover state
	hovering bool
	hoverX   float64
	hoverY   float64
}

func New(cfg Config) Model {
	def := DefaultConfig()
	if cfg.Cols <= 0 {
		cfg.Cols = def.Cols
	}
	if cfg.Rows <= 0 {
		cfg.Rows = def.Rows
	}
	if cfg.Scale <= 0 {
		cfg.Scale = def.Scale
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = def.ExportPath
	}

	m := Model{
		cfg:         cfg,
		helpVisible: true,
		status:      "cartesian ready",
	}
	m.surf = surface.NewBraille(cfg.Cols, cfg.Rows)
	m.plane = plane.New(m.surf, plane.TerminalStyle().WithScale(cfg.Scale))

	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Entities"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.l.DisableQuitKeybindings()
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING). Press Enter to plot; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// entity table setup
	m.tbl = table.New(table.WithColumns(entityColumns), table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

// Plane exposes the plotted state.
func (m Model) Plane() *plane.Plane { return m.plane }

func (m Model) Init() tea.Cmd { return nil }
