package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tdewolff/argp"

	"cartesian/internal/tui"
)

type Plot struct {
	Cols   int     `short:"c" default:"72" desc:"Plane width in terminal cells"`
	Rows   int     `short:"r" default:"24" desc:"Plane height in terminal cells"`
	Scale  float64 `short:"s" default:"8" desc:"Braille dots per unit"`
	Export string  `short:"e" default:"plane.png" desc:"Export file, the extension picks the format (png, svg, pdf)"`
	Log    string  `short:"l" default:"" desc:"Log file, logging is off when empty"`
	Input  string  `index:"0" desc:"CSV file to plot at startup, with x,y and/or x0,y0,x1,y1 columns"`
}

func main() {
	root := argp.NewCmd(&Plot{}, "Terminal Cartesian plane plotter for points and vectors")
	root.Parse()
}

func (cmd *Plot) Run() error {
	if cmd.Cols < 8 || cmd.Rows < 4 || !(cmd.Scale > 0) {
		return argp.ShowUsage
	}

	// the alt screen owns stdout
	if cmd.Log != "" {
		f, err := tea.LogToFile(cmd.Log, "cartesian")
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := tui.New(tui.Config{
		Cols:       cmd.Cols,
		Rows:       cmd.Rows,
		Scale:      cmd.Scale,
		ExportPath: cmd.Export,
	})
	if cmd.Input != "" {
		if err := m.Load(cmd.Input); err != nil {
			return err
		}
	}
	log.Printf("plane %dx%d cells, %g dots per unit", cmd.Cols, cmd.Rows, cmd.Scale)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return err
	}
	return nil
}
