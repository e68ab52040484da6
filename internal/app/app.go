package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/tmux-stackbar/internal/backend"
	"github.com/atomicstack/tmux-stackbar/internal/chart"
	"github.com/atomicstack/tmux-stackbar/internal/compose"
	"github.com/atomicstack/tmux-stackbar/internal/render/export"
	"github.com/atomicstack/tmux-stackbar/internal/theme"
	"github.com/atomicstack/tmux-stackbar/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultExportWidth is the image width in pixels when none is configured.
const DefaultExportWidth = 640

// Config describes user-provided application options.
type Config struct {
	DataPath     string
	BarHeight    int
	Width        int
	Height       int
	ShowFooter   bool
	Reload       time.Duration
	ExportPath   string
	ExportFormat string
	RandomColors bool
}

// Run bootstraps and executes the Bubble Tea program, or writes an image
// and returns when an export path is configured.
func Run(cfg Config) error {
	if cfg.ExportPath != "" {
		return Export(cfg)
	}
	watcher := backend.NewWatcher(cfg.DataPath, cfg.Reload, chart.LoadFile)
	defer watcher.Stop()
	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		BarHeight:  cfg.BarHeight,
		Palette:    theme.DefaultPalette(),
		Picker:     picker(cfg),
	}, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Export renders the data file once into cfg.ExportPath.
func Export(cfg Config) error {
	doc, err := chart.LoadFile(cfg.DataPath)
	if err != nil {
		return err
	}
	def, err := export.ParseFormat(cfg.ExportFormat)
	if err != nil {
		return err
	}
	format := def
	if cfg.ExportFormat == "" {
		format = export.FormatForPath(cfg.ExportPath, def)
	}
	barHeight := cfg.BarHeight
	if barHeight <= 0 {
		barHeight = doc.BarHeight
	}
	c := compose.New(compose.Options{
		BarThickness: barHeight,
		Series:       doc.Charts,
		Palette:      theme.DefaultPalette(),
		Picker:       picker(cfg),
	}, nil)
	width := cfg.Width
	if width <= 0 {
		width = DefaultExportWidth
	}
	if err := export.WriteFile(cfg.ExportPath, c, width, format); err != nil {
		return fmt.Errorf("export %s: %w", cfg.ExportPath, err)
	}
	return nil
}

func picker(cfg Config) chart.Picker {
	if cfg.RandomColors {
		return chart.NewRandomPicker(0)
	}
	return chart.IndexPicker{}
}
