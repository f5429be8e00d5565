package tui

import (
	"log"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"cartesian/internal/input"
)

const (
	headerHeight = 1
	footerHeight = 2
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.cfg.Rows)
		}
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch m.mode {
		case modePoint, modeVector:
			return m.updateForm(msg)
		case modePaste:
			switch msg.String() {
			case "esc":
				m.mode = modeView
				m.ta.Blur()
				m.status = "cancelled"
				return m, nil
			case "enter":
				m.submitPaste()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		if m.showTable {
			switch msg.String() {
			case "a", "esc":
				m.showTable = false
				return m, nil
			case "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "p":
			m.status = "add point"
			return m, m.openForm(modePoint, pointFields)
		case "v":
			m.status = "add vector"
			return m, m.openForm(modeVector, vectorFields)
		case "w":
			m.mode = modePaste
			m.ta.SetValue("")
			m.status = "paste mode"
			return m, m.ta.Focus()
		case "c":
			input.HandleClear(m.plane)
			m.refreshEntities()
			m.status = "cleared"
		case "e":
			if err := m.export(); err != nil {
				log.Printf("export failed: %v", err)
				m.status = "export failed: " + err.Error()
			} else {
				m.status = "exported to " + m.cfg.ExportPath
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshEntities()
				m.l.SetSize(sidebarWidth-2, m.cfg.Rows)
			}
		case "a":
			if m.plane.Len() == 0 {
				m.status = "no entities"
				return m, nil
			}
			m.refreshEntities()
			m.showTable = true
		case "h":
			m.helpVisible = !m.helpVisible
		}
	case tea.MouseMsg:
		m.hoverAt(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar && m.mode == modeView {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// mapOrigin is the screen cell of the map's top-left corner; it must match
// the layout in View.
func (m Model) mapOrigin() (int, int) {
	x := 0
	if m.showSidebar {
		x = sidebarWidth + 1
	}
	return x, headerHeight
}

// hoverAt records the Cartesian coordinate under the center of the hovered
// cell. This is a readout only; plotted entities are not hit-tested.
func (m *Model) hoverAt(x, y int) {
	ox, oy := m.mapOrigin()
	cx, cy := x-ox, y-oy
	if cx < 0 || cy < 0 || cx >= m.cfg.Cols || cy >= m.cfg.Rows {
		m.hovering = false
		return
	}
	// a cell is 2x4 braille dots
	px, py := float64(cx*2)+1, float64(cy*4)+2
	m.hoverX, m.hoverY = m.plane.Transformer().ToCartesian(px, py)
	m.hovering = true
}
