package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/intervaltimer/internal/models"
	"github.com/akyairhashvil/intervaltimer/internal/testutil"
)

func TestGenerateCatalogue(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	profiles := []models.TimerProfile{
		testutil.NewProfile().WithName("Tabata").WithDescription("20 on / 10 off").Build(),
		testutil.NewProfile().WithName("Long Intervals").WithRounds(5).Build(),
	}

	path, err := GenerateCatalogue(profiles, dir, now)
	if err != nil {
		t.Fatalf("GenerateCatalogue failed: %v", err)
	}
	if filepath.Base(path) != "profiles_2026-03-01.pdf" {
		t.Fatalf("unexpected report name %q", path)
	}
	if !filepath.IsAbs(path) {
		t.Fatalf("expected absolute path, got %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("report is not a PDF")
	}
}

func TestGenerateCatalogueEmpty(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	path, err := GenerateCatalogue(nil, dir, time.Now())
	if err != nil {
		t.Fatalf("GenerateCatalogue failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected report file: %v", err)
	}
}
