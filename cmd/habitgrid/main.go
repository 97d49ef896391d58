package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/mtwalsh/habitgrid/internal/cli"
	"github.com/mtwalsh/habitgrid/internal/constants"
	"github.com/mtwalsh/habitgrid/internal/keyring"
	"github.com/mtwalsh/habitgrid/internal/logger"
	"github.com/mtwalsh/habitgrid/internal/storage"
	"github.com/mtwalsh/habitgrid/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.json or .db) or PostgreSQL connection string. Credentials must NOT be embedded in connection strings; use the OS keyring or ${env} instead." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habit storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive week grid." default:"1"`
	Add    cli.AddCmd    `cmd:"" help:"Add a new habit."`
	List   cli.ListCmd   `cmd:"" help:"List habits with today's status."`
	Toggle cli.ToggleCmd `cmd:"" help:"Toggle a habit's completion for a weekday."`
	Week   cli.WeekCmd   `cmd:"" help:"Print the week grid."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	ConfigCmd cli.ConfigCmd `cmd:"" name:"config" help:"Manage stored credentials."`
}

func main() {
	// A .env beside the binary may carry the database connection.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly habit grid tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
			"env":         constants.EnvConnectionString,
		},
	)

	configValue := resolveConfig(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: logDir(configValue),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	provider, err := newProvider(configValue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer provider.Close()

	t := tracker.New(provider)

	appCtx := &cli.Context{
		Provider: provider,
		Tracker:  t,
	}

	// Every command except init works against the restored collection.
	if ctx.Selected() == nil || ctx.Selected().Name != "init" {
		if err := provider.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		t.Restore()
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig expands the default path and, when the flag was left at
// its default, lets the environment or the OS keyring supply a Postgres
// connection string instead.
func resolveConfig(config string) string {
	if config == constants.DefaultConfigPath {
		if env := os.Getenv(constants.EnvConnectionString); env != "" {
			return env
		}
		if connStr, err := keyring.GetConnectionString(); err == nil {
			return connStr
		} else if !errors.Is(err, keyring.ErrNotFound) {
			logger.Debug("keyring unavailable", "error", err)
		}
	}
	return expandHome(config)
}

func newProvider(config string) (storage.Provider, error) {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if err := storage.ValidateConnectionString(config); err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(config), nil
	}
	if strings.HasSuffix(config, ".db") {
		return storage.NewSQLiteStore(config), nil
	}
	return storage.NewJSONStore(config), nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// logDir picks a writable directory for logs: next to file-backed
// storage, or the user config dir when storage is a database server.
func logDir(config string) string {
	if strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://") {
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, constants.AppName)
		}
		return "."
	}
	return filepath.Dir(config)
}
