package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/listkit"
)

func newThemesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Inspect and export list themes",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print theme names",
			RunE: func(cmd *cobra.Command, args []string) error {
				for i, name := range a.themes.StyleNames() {
					fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", i, name)
				}
				return nil
			},
		},
		newThemesExportCmd(a),
	)
	return cmd
}

func newThemesExportCmd(a *app) *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "export [name...]",
		Short: "Write themes to a TOML or YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			themes := a.themes.Themes()
			if len(args) > 0 {
				themes = themes[:0:0]
				for _, name := range args {
					themes = append(themes, a.themes.StyleByName(name))
				}
			}

			f := listkit.FormatTOML
			switch {
			case format != "":
				var err error
				if f, err = listkit.FormatFromPath("themes." + format); err != nil {
					return err
				}
			case out != "":
				var err error
				if f, err = listkit.FormatFromPath(out); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer file.Close()
				w = file
			}
			return listkit.EncodeThemes(w, f, themes)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&format, "format", "", "toml or yaml (default from --out, else toml)")
	return cmd
}
