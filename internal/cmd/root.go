package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"carrego/internal/config"
	"carrego/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	BaseURL     string           `help:"Carrego API base URL" default:""`

	Run      RunCmd           `cmd:"" help:"Start the carrego TUI (default)" default:"1"`
	Register RegisterCmd      `cmd:"register" help:"Create an account"`
	Verify   VerifyCmd        `cmd:"verify" help:"Verify email with the one-time code"`
	Login    LoginCmd         `cmd:"login" help:"Sign in and persist the session"`
	Logout   LogoutCmd        `cmd:"logout" help:"Sign out and clear the persisted session"`
	ResetPw  ResetPasswordCmd `cmd:"reset-password" help:"Set a new password with a reset token"`
	Whoami   WhoamiCmd        `cmd:"whoami" help:"Show the signed-in user"`
	Trips    TripsCmd         `cmd:"trips" help:"Manage trips (list, add)"`
	Vehicles VehiclesCmd      `cmd:"vehicles" help:"Manage vehicles (list, add, del)"`
	Reports  ReportsCmd       `cmd:"reports" help:"Manage issue reports (list, submit)"`
	Profile  ProfileCmd       `cmd:"profile" help:"Manage the KYC profile (complete)"`
	Upload   UploadCmd        `cmd:"upload" help:"Upload a document to storage"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	c.settings = settings

	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.MaxLogFiles == 1000 {
		if _, hasEnv := os.LookupEnv("CARREGO_MAX_LOG_FILES"); !hasEnv {
			if settings.MaxLogFiles != nil {
				c.MaxLogFiles = *settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("CARREGO_DEBUG"); !hasEnv {
			if settings.Debug != nil && *settings.Debug {
				c.Debug = true
			}
		}
	}

	if c.BaseURL == "" {
		if env := os.Getenv("CARREGO_API_URL"); env != "" {
			c.BaseURL = env
		} else if settings.APIBaseURL != "" {
			c.BaseURL = settings.APIBaseURL
		} else {
			c.BaseURL = config.DefaultAPIBaseURL
		}
	}

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes inherit the debug settings and the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("CARREGO_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("CARREGO_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("CARREGO_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so the gorm logger
	// never sees a nil slog handler
	container, err := NewContainer(c.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
