package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	var (
		configPath string
		width      int
	)

	cmd := &cobra.Command{
		Use:   "ask <prompt>...",
		Short: "Run a single compare cycle for one prompt and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if width > 0 {
				cfg.Display.Width = width
			}

			buildLoop(cfg).Once(cmd.Context(), strings.Join(args, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "column width for the report")
	return cmd
}
