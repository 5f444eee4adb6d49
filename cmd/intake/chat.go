package main

import (
	"github.com/spf13/cobra"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/session"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/tui"
)

func chatCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Drive an intake session interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			svc, closer, err := buildService(cfg)
			if err != nil {
				return err
			}
			defer closer()

			if sessionID == "" {
				sessionID = session.NewSessionID()
			}
			return tui.Run(svc, sessionID)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session id (default: generate a new one)")
	return cmd
}
