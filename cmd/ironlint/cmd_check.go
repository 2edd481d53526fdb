package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/ironlint/lint"
	"github.com/dhamidi/ironlint/render"
	"github.com/dhamidi/ironlint/unit"
)

var errChecksFailed = errors.New("checks failed")

func newCheckCmd() *cobra.Command {
	var (
		outputFormat string
		configPath   string
		allow        []string
		warn         []string
		deny         []string
	)

	cmd := &cobra.Command{
		Use:   "check <unit>...",
		Short: "Run the borrow and parentheses analyses over unit files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger("ironlint.check")

			levels := lint.Levels{}
			if configPath != "" {
				loaded, err := lint.LoadLevels(configPath)
				if err != nil {
					return err
				}
				levels = loaded
			}
			for _, override := range []struct {
				names []string
				level lint.Level
			}{
				{allow, lint.LevelAllow},
				{warn, lint.LevelWarn},
				{deny, lint.LevelDeny},
			} {
				for _, name := range override.names {
					if err := levels.Set(name, override.level); err != nil {
						return err
					}
				}
			}

			var renderer render.Renderer
			switch outputFormat {
			case "text":
				renderer = render.NewTextRenderer(os.Stdout)
			case "json":
				renderer = render.NewJSONRenderer(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			var summary render.Summary
			for _, path := range args {
				u, err := unit.Load(path)
				if err != nil {
					return err
				}
				log.Infof("checking %s", u.File.Name)
				diags := unit.Check(u, levels)
				summary.Add(diags)
				if err := renderer.Render(u.File, diags); err != nil {
					return err
				}
			}
			if err := renderer.Close(summary); err != nil {
				return err
			}

			if summary.Failed() {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return errChecksFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "text", "output format: text or json")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a lint level config file")
	cmd.Flags().StringArrayVarP(&allow, "allow", "A", nil, "set a lint to allow")
	cmd.Flags().StringArrayVarP(&warn, "warn", "W", nil, "set a lint to warn")
	cmd.Flags().StringArrayVarP(&deny, "deny", "D", nil, "set a lint to deny")

	return cmd
}
