package main

import (
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/listkit/backend/terminal"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the demo in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}
}

func (a *app) runTUI() error {
	d := newDemo(a.cfg, a.theme())
	return terminal.Run(d.draw, terminal.WithStatus(d.status))
}
