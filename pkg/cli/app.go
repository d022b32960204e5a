package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	urfave "github.com/urfave/cli/v3"
	"github.com/veritasproject/veritas/pkg/config"
	"github.com/veritasproject/veritas/pkg/logging"
	"gopkg.in/yaml.v3"
)

const (
	dirMode      = 0700
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}

	confDirFlag = &urfave.StringFlag{
		Name:  "config",
		Usage: "Path to the config directory (optional, defaults to $HOME/.veritas)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	ConfDir string
	Debug   bool
	Conf    *config.Config
}

func getConfig(c *urfave.Command) *appConfig {
	return c.Root().Metadata[appConfigKey].(*appConfig)
}

func newApp() *urfave.Command {
	return &urfave.Command{
		Name:                  "veritas",
		Version:               fmt.Sprintf("%s (%s - %s)", version, commit, date),
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Usage:                 "CLI for computing Veritas reputation scores",
		Metadata:              make(map[string]any),
		Flags: []urfave.Flag{
			debugFlag,
			formatFlag,
			confDirFlag,
		},
		Commands: []*urfave.Command{
			sourceCmd,
			contentCmd,
			temporalCmd,
			scoreCmd,
			weightsCmd,
		},
		Before: func(_ context.Context, c *urfave.Command) (context.Context, error) {
			if c.Bool(debugFlag.Name) {
				logging.SetDefaultCLILogger("debug")
			}

			f := c.String(formatFlag.Name)
			if f == formatYAML || f == "yml" {
				outputFormat = formatYAML
			}

			confDir := c.String(confDirFlag.Name)
			if confDir == "" {
				confDir = getHomeDir()
			}

			conf, err := config.ReadOrCreate(confDir)
			if err != nil {
				return nil, fmt.Errorf("loading config: %w", err)
			}

			c.Root().Metadata[appConfigKey] = &appConfig{
				ConfDir: confDir,
				Debug:   c.Bool(debugFlag.Name),
				Conf:    conf,
			}
			return nil, nil
		},
	}
}

func getHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("error getting home dir, using current dir instead", "error", err)
		return "."
	}

	dirPath := filepath.Join(home, ".veritas")
	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dirPath)
		if err := os.Mkdir(dirPath, dirMode); err != nil {
			slog.Debug("error creating dir", "path", dirPath, "home", home, "error", err)
			return home
		}
	}
	return dirPath
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
