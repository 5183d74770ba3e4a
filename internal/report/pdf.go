// Package report renders the profile catalogue as a PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/util"
	"github.com/go-pdf/fpdf"
)

// FileName is the catalogue file name for the given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("profiles_%s.pdf", now.Format("2006-01-02"))
}

// GenerateCatalogue writes one section per profile into dir and returns the
// absolute path of the PDF.
func GenerateCatalogue(profiles []models.TimerProfile, dir string, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Interval Timer Profiles", true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Interval Timer Profiles")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, "Generated "+now.Format("2006-01-02 15:04"))
	pdf.Ln(12)

	if len(profiles) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "No profiles to show.")
		pdf.Ln(8)
	}

	var grandTotal int64
	for _, p := range profiles {
		grandTotal += p.TotalDuration()
		writeProfile(pdf, p)
	}

	if len(profiles) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 10, fmt.Sprintf("%d profiles, %s in total", len(profiles), util.FormatDuration(grandTotal)))
		pdf.Ln(10)
	}

	path := filepath.Join(dir, FileName(now))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return absPath, nil
}

func writeProfile(pdf *fpdf.Fpdf, p models.TimerProfile) {
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("%s (%s)", p.Name, util.FormatDuration(p.TotalDuration())))
	pdf.Ln(8)

	if desc := util.Deref(p.Description); desc != "" {
		pdf.SetFont("Arial", "I", 11)
		pdf.MultiCell(0, 6, desc, "", "", false)
	}

	pdf.SetFont("Arial", "", 12)
	for _, phase := range models.Phases {
		pdf.Cell(0, 7, fmt.Sprintf("    %-16s %s", phase.String(), util.FormatDuration(p.DurationFor(phase))))
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, fmt.Sprintf("    %d sets x %d rounds", p.Sets, p.Rounds))
	pdf.Ln(10)
}
