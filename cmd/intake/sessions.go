package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect live sessions",
		Long: `Sessions operate on this process's in-memory registry. A standalone
invocation starts with an empty registry, so these commands are most useful
when the intake service is embedded in a long-running host.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List live sessions with their funnel state",
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

			ids := svc.Sessions()
			if len(ids) == 0 {
				fmt.Println("no live sessions")
				return nil
			}
			for _, id := range ids {
				prospect, err := svc.GetProspect(id)
				if err != nil {
					continue
				}
				fmt.Printf("%s  stage=%s lead=%d turns=%d\n",
					id, prospect.CurrentStage, prospect.Qualification.LeadScore, prospect.Engagement.MessageCount)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "evict",
		Short: "Evict sessions inactive beyond the configured TTL",
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

			evicted := svc.EvictStale(cfg.SessionTTL)
			fmt.Printf("evicted %d session(s) older than %s\n", evicted, cfg.SessionTTL)
			return nil
		},
	})

	return cmd
}
