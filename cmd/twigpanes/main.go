// Command twigpanes runs the dockable panel workspace demo and inspects
// its persisted layout snapshots.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/PostHog/Twig-sub005/internal/appdirs"
	"github.com/PostHog/Twig-sub005/internal/closeguard"
	"github.com/PostHog/Twig-sub005/internal/config"
	"github.com/PostHog/Twig-sub005/internal/dragdrop"
	"github.com/PostHog/Twig-sub005/internal/logging"
	"github.com/PostHog/Twig-sub005/internal/panelstore"
	"github.com/PostHog/Twig-sub005/internal/tui/workspace"
)

var version = "dev"

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "twigpanes",
		Usage:   "dockable panel/tab workspace engine",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "config file path"},
		},
		Commands: []*cli.Command{
			runCommand(),
			snapshotCommand(),
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "open the workspace TUI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "task", Usage: "task/layout id", Value: "default"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			closeLog, err := logging.Init(cfg.Logging)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			store, err := buildStore(cfg)
			if err != nil {
				return err
			}
			layoutID := cmd.String("task")
			guard := closeguard.New(store, nil, nil)
			model := workspace.NewModel(store, guard, layoutID)
			program := tea.NewProgram(model, tea.WithAltScreen())
			model.AttachReconciler(dragdrop.New(store, layoutID, model.Deferrer(program)))

			slog.Info("workspace started", "task", layoutID)
			_, err = program.Run()
			return err
		},
	}
}

func snapshotCommand() *cli.Command {
	return &cli.Command{
		Name:  "snapshot",
		Usage: "inspect and reset persisted layouts",
		Commands: []*cli.Command{
			{
				Name:  "dump",
				Usage: "print the persisted snapshot as JSON",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := config.Load(cmd.String("config"))
					if err != nil {
						return err
					}
					persister, err := buildPersister(cfg)
					if err != nil {
						return err
					}
					data, err := json.MarshalIndent(persister.Load(), "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, string(data))
					return nil
				},
			},
			{
				Name:  "reset",
				Usage: "drop all persisted layouts",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := config.Load(cmd.String("config"))
					if err != nil {
						return err
					}
					persister, err := buildPersister(cfg)
					if err != nil {
						return err
					}
					store := panelstore.New(panelstore.Options{Persister: persister})
					store.ClearAllLayouts()
					fmt.Fprintln(cmd.Root().Writer, "layouts cleared")
					return nil
				},
			},
		},
	}
}

func buildPersister(cfg config.Config) (*panelstore.Persister, error) {
	dir := cfg.SnapshotDir
	if dir == "" {
		var err error
		dir, err = appdirs.StateDir()
		if err != nil {
			return nil, err
		}
	}
	return panelstore.NewPersister(dir, slog.Default())
}

func buildStore(cfg config.Config) (*panelstore.Store, error) {
	persister, err := buildPersister(cfg)
	if err != nil {
		return nil, err
	}
	store := panelstore.New(panelstore.Options{
		RecentFilesCap: cfg.RecentFilesCap,
		Persister:      persister,
	})
	if err := store.Restore(persister.Load()); err != nil {
		return nil, err
	}
	return store, nil
}
