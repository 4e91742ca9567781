package main

import (
	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	var (
		configPath string
		width      int
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start the interactive compare session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if width > 0 {
				cfg.Display.Width = width
			}

			return buildLoop(cfg).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "column width for the report")
	return cmd
}
