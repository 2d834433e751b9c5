package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"pomotick/internal/config"
)

// WriteReport renders a PDF summary of this run's completed intervals into
// dir, creating it if needed, and returns the written file path. Nothing is
// ever read back; the report is a write-only artifact.
func WriteReport(dir string, eng Engine) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	now := time.Now()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Pomotick Focus Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", now.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Completed focus sessions: %d", eng.Sessions()))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total focus time: %s", FormatDuration(eng.FocusTotal())))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Cycle position: %d of %d", eng.DotsFilled(), config.SessionsPerCycle))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Completed Intervals")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)

	history := eng.History()
	if len(history) == 0 {
		pdf.Cell(0, 8, "  - Nothing completed yet.")
		pdf.Ln(6)
	}
	for _, c := range history {
		line := fmt.Sprintf("[%s]  %s  (%s)", c.At.Format("15:04"), c.Mode.Label(), FormatDuration(c.Mode.Duration()))
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	filename := fmt.Sprintf("focus_report_%s.pdf", now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
