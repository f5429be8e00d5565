package tui

import (
	"fmt"
	"log"

	"cartesian/internal/surface"
)

// exportDPMM is the export resolution in pixels per braille dot.
const exportDPMM = 5

// export draws the plane onto a vector canvas of the same logical size and
// writes it to the configured path. The file type follows the extension.
func (m *Model) export() error {
	tr := m.plane.Transformer()
	cs := surface.NewCanvas(tr.Width, tr.Height, m.plane.Style().Background)
	m.plane.DrawTo(cs)
	if err := cs.WriteFile(m.cfg.ExportPath, exportDPMM); err != nil {
		return fmt.Errorf("export %s: %w", m.cfg.ExportPath, err)
	}
	log.Printf("exported %d entities to %s", m.plane.Len(), m.cfg.ExportPath)
	return nil
}
