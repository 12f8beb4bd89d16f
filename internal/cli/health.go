package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour/internal/api/response"
)

// healthPollInterval is how often --wait retries
const healthPollInterval = 200 * time.Millisecond

func newHealthCmd() *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Long: `Check server health and report the number of games and the last
event sequence number.

With --wait, retry until the server answers or the duration elapses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Health

			deadline := time.Now().Add(wait)
			for {
				err := client.Get("/api/v1/health", &result)
				if err == nil {
					break
				}
				if time.Now().After(deadline) {
					if wait > 0 {
						return fmt.Errorf("server not healthy after %s: %w", wait, err)
					}
					return err
				}
				time.Sleep(healthPollInterval)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep retrying for up to this long")
	return cmd
}
