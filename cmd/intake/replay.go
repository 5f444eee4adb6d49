package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/common"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/session"
)

func replayCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "replay <transcript-file>",
		Short: "Feed a saved transcript through the funnel",
		Long: `Replay reads a transcript file (one utterance per line, blank lines
ignored) and processes each line as a conversation turn. Extraction and
scoring are deterministic, so replaying the same transcript always produces
the same funnel outcome.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			svc, closer, err := buildService(cfg)
			if err != nil {
				return err
			}
			defer closer()

			file, err := os.Open(args[0])
			if err != nil {
				return common.NewUserError("could not open transcript file", err)
			}
			defer func() { _ = file.Close() }()

			var utterances []string
			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				if line := strings.TrimSpace(scanner.Text()); line != "" {
					utterances = append(utterances, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read transcript: %w", err)
			}
			if len(utterances) == 0 {
				return fmt.Errorf("transcript is empty")
			}

			if sessionID == "" {
				sessionID = session.NewSessionID()
			}

			bar := progressbar.Default(int64(len(utterances)), "replaying")
			ctx := context.Background()
			var history []string
			for _, utterance := range utterances {
				result, err := svc.ProcessTurn(ctx, sessionID, utterance, history)
				if err != nil {
					return fmt.Errorf("turn failed: %w", err)
				}
				history = append(history, utterance)
				_ = bar.Add(1)

				if result.Package != nil {
					fmt.Printf("\nhandoff issued: %s (priority %s, respond %s)\n",
						result.Package.ID, result.Package.Priority, result.Package.ResponseTime)
				}
			}

			prospect, err := svc.GetProspect(sessionID)
			if err != nil {
				return err
			}
			fmt.Printf("\nsession %s finished in stage %q with lead score %d after %d turns\n",
				sessionID, prospect.CurrentStage, prospect.Qualification.LeadScore, prospect.Engagement.MessageCount)
			if v := prospect.Qualification.Validation; v != nil {
				fmt.Printf("validation: overall %d, risk %s, confidence %s, ready=%v\n",
					v.Overall, v.Risk, v.Confidence, v.IsReadyForProject)
				for _, blocker := range v.Blockers {
					fmt.Printf("  blocker: %s\n", blocker)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session id (default: generate a new one)")
	return cmd
}
