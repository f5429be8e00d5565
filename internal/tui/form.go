package tui

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cartesian/internal/input"
)

type field struct {
	prompt, placeholder string
}

var (
	pointFields  = []field{{"x: ", "2"}, {"y: ", "3"}}
	vectorFields = []field{{"origin: ", "0,0"}, {"tip: ", "1,0"}}
)

func (m *Model) openForm(md mode, fields []field) tea.Cmd {
	m.mode = md
	m.focus = 0
	m.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = f.prompt
		ti.Placeholder = f.placeholder
		ti.CharLimit = 32
		ti.Width = 20
		m.inputs[i] = ti
	}
	return m.inputs[0].Focus()
}

func (m *Model) closeForm() {
	m.mode = modeView
	m.inputs = nil
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		m.status = "cancelled"
		return m, nil
	case "tab", "down":
		return m, m.cycleFocus(1)
	case "shift+tab", "up":
		return m, m.cycleFocus(-1)
	case "enter":
		m.submitForm()
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submitForm plots the form's entity. A rejected form stays open behind the
// alert so the values can be corrected.
func (m *Model) submitForm() {
	a, b := m.inputs[0].Value(), m.inputs[1].Value()
	switch m.mode {
	case modePoint:
		p, err := input.HandleAddPoint(m.plane, a, b)
		if err != nil {
			m.reject("point", err)
			return
		}
		m.status = "added point " + p.String()
	case modeVector:
		v, err := input.HandleAddVector(m.plane, a, b)
		if err != nil {
			m.reject("vector", err)
			return
		}
		m.status = "added vector " + v.String()
	}
	m.closeForm()
	m.refreshEntities()
}

func (m *Model) submitPaste() {
	w := strings.TrimSpace(m.ta.Value())
	if w == "" {
		m.status = "paste: empty"
		return
	}
	entities, err := input.HandlePaste(m.plane, w)
	if err != nil {
		m.reject("paste", err)
		return
	}
	m.status = fmt.Sprintf("pasted %d entities", len(entities))
	m.mode = modeView
	m.ta.Blur()
	m.refreshEntities()
}

func (m *Model) reject(what string, err error) {
	log.Printf("rejected %s: %v", what, err)
	m.alert = err.Error()
	m.status = what + " rejected"
}

func (m Model) renderForm() string {
	title := "Add point"
	if m.mode == modeVector {
		title = "Add vector (x,y)"
	}
	rows := []string{titleStyle.Render(title), ""}
	for _, ti := range m.inputs {
		rows = append(rows, ti.View())
	}
	rows = append(rows, "", dimStyle.Render("tab next  enter plot  esc cancel"))
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderAlert() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		alertTitleStyle.Render("Input rejected"),
		"",
		m.alert,
		"",
		dimStyle.Render("press any key"),
	)
	return alertStyle.Render(body)
}

// Load plots the entities of a CSV file.
func (m *Model) Load(path string) error {
	entities, err := input.HandleLoad(m.plane, path)
	if err != nil {
		log.Printf("load failed: %v", err)
		return err
	}
	m.status = fmt.Sprintf("loaded %d entities from %s", len(entities), filepath.Base(path))
	m.refreshEntities()
	return nil
}
