package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/listkit"
	"github.com/go-theft-auto/listkit/internal/config"
)

// app is the state shared by subcommands after configuration loads.
type app struct {
	cfg    config.Config
	themes *listkit.ThemeDatabase
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "listdemo",
		Short:         "Demo host for the listkit list widget",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch a.cfg.Window.Backend {
			case "gl":
				return a.runGL()
			default:
				return a.runTUI()
			}
		},
	}
	config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newGLCmd(a),
		newTUICmd(a),
		newThemesCmd(a),
		newShotsCmd(a),
	)
	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	listkit.SetVerbose(cfg.Verbose)

	themes, err := loadThemes(cfg)
	if err != nil {
		return fmt.Errorf("load themes: %w", err)
	}
	a.cfg = cfg
	a.themes = themes
	return nil
}

func (a *app) theme() *listkit.Theme {
	return a.themes.StyleByName(a.cfg.Theme.Name)
}
