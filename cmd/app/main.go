package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/intervaltimer/internal/clock"
	"github.com/akyairhashvil/intervaltimer/internal/config"
	"github.com/akyairhashvil/intervaltimer/internal/database"
	"github.com/akyairhashvil/intervaltimer/internal/engine"
	"github.com/akyairhashvil/intervaltimer/internal/report"
	"github.com/akyairhashvil/intervaltimer/internal/sound"
	"github.com/akyairhashvil/intervaltimer/internal/tui"
	"github.com/akyairhashvil/intervaltimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const usage = `usage: intervaltimer [command]

commands:
  (none)            open the interactive timer
  list [filter]     print profiles, e.g. "list sets:4 morning"
  report [dir]      write the profile catalogue as a PDF
  export [file]     write profiles as JSON (stdout when file is omitted)
  import <file>     load profiles from a JSON export
  version           print the build version
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	command := ""
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}
	switch command {
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	case "version", "--version":
		fmt.Fprintln(stdout, config.AppName, tui.VersionLabel())
		return 0
	case "", "list", "report", "export", "import":
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", command, usage)
		return 2
	}

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}

	ctx := context.Background()
	db, err := openDatabase(ctx, settings.DatabasePath)
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	defer db.Close()

	switch command {
	case "list":
		err = listProfiles(ctx, db, strings.Join(args, " "), stdout)
	case "report":
		err = writeReport(ctx, db, args, stdout)
	case "export":
		err = exportProfiles(ctx, db, args, stdout)
	case "import":
		err = importProfiles(ctx, db, args, stdout)
	default:
		err = runInteractive(db, settings)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

func settingsPath() string {
	if path := strings.TrimSpace(os.Getenv(config.EnvSettingsPath)); path != "" {
		return path
	}
	return filepath.Join(util.ConfigDir(config.AppName), config.SettingsFileName)
}

func loadSettings() (config.Settings, error) {
	return config.LoadSettings(settingsPath(), util.DataDir(config.AppName))
}

func openDatabase(ctx context.Context, path string) (*database.Database, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return database.Open(ctx, path)
}

func listProfiles(ctx context.Context, db database.ProfileRepository, filter string, out io.Writer) error {
	profiles, err := db.SearchProfiles(ctx, util.ParseSearchQuery(filter))
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Fprintln(out, "No profiles to show.")
		return nil
	}
	for _, p := range profiles {
		fmt.Fprintf(out, "%-*s  %8s  %2dx%-2d  %s\n",
			config.TargetNameWidth, p.Name,
			util.FormatDuration(p.TotalDuration()),
			p.Sets, p.Rounds, p.ID)
	}
	return nil
}

func writeReport(ctx context.Context, db database.ProfileRepository, args []string, out io.Writer) error {
	dir := util.ReportsDir(config.AppName)
	if len(args) > 0 {
		dir = args[0]
	}
	profiles, err := db.ListProfiles(ctx)
	if err != nil {
		return err
	}
	path, err := report.GenerateCatalogue(profiles, dir, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "PDF Report generated: %s\n", path)
	return nil
}

func exportProfiles(ctx context.Context, db *database.Database, args []string, out io.Writer) error {
	payload, err := db.ExportProfiles(ctx)
	if err != nil {
		return err
	}
	if len(args) == 0 || args[0] == "-" {
		_, err = fmt.Fprintln(out, string(payload))
		return err
	}
	if err := os.WriteFile(args[0], payload, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	fmt.Fprintf(out, "Profiles exported to %s\n", args[0])
	return nil
}

func importProfiles(ctx context.Context, db *database.Database, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("import needs a file")
	}
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}
	n, err := db.ImportProfiles(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Imported %d profiles\n", n)
	return nil
}

func runInteractive(db *database.Database, settings config.Settings) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal; try %q", "list")
	}

	logPath := filepath.Join(filepath.Dir(settings.DatabasePath), config.LogFileName)
	if f, err := tea.LogToFile(logPath, config.AppName); err == nil {
		defer f.Close()
	}

	player, err := sound.FromSettings(settings, os.Stderr)
	if err != nil {
		return err
	}
	defer player.Close()

	eng := engine.New(player, clock.NewTicker(settings.TickInterval))
	defer eng.Shutdown()

	model := tui.NewMainModel(db, eng, tui.Options{
		ReportDir: util.ReportsDir(config.AppName),
		Theme:     settings.Theme,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
