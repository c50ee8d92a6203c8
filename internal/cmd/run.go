package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"carrego/internal/config"
	"carrego/internal/domain"
	"carrego/internal/logging"
	"carrego/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	Mode            string `help:"Initial trip mode (air, ground, marine)" default:""`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	// Apply RunCmd-specific settings with proper precedence
	if r.ErrorClearDelay == 10 {
		if cli.settings != nil && cli.settings.ErrorClearDelay != nil {
			r.ErrorClearDelay = *cli.settings.ErrorClearDelay
		}
	}
	if r.Mode == "" {
		if cli.settings != nil && cli.settings.DefaultTripMode != "" {
			r.Mode = cli.settings.DefaultTripMode
		} else {
			r.Mode = config.DefaultTripMode
		}
	}
	if !domain.ValidMode(r.Mode) {
		return fmt.Errorf("invalid trip mode %q (want air, ground or marine)", r.Mode)
	}

	logging.Logger.Info("Starting carrego TUI", "base_url", cli.BaseURL, "mode", r.Mode)

	p := tea.NewProgram(
		ui.NewModel(ui.Dependencies{
			Auth:            cli.Container.AuthService,
			Trips:           cli.Container.TripService,
			Vehicles:        cli.Container.VehicleService,
			Reports:         cli.Container.ReportService,
			Profile:         cli.Container.ProfileService,
			DefaultMode:     domain.TripMode(r.Mode),
			ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
		}),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
