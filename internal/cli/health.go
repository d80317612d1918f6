package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const healthRetryInterval = 250 * time.Millisecond

func newHealthCmd() *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Long: `Check that the server is up.

With --wait, keep retrying until the server answers or the duration runs out.
This is useful in scripts that start a server and then play against it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := checkHealth(wait)
			if err != nil {
				return err
			}
			newOutput(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep retrying for up to this long")
	return cmd
}

func checkHealth(wait time.Duration) (HealthResult, error) {
	deadline := time.Now().Add(wait)
	for {
		var result HealthResult
		err := client.Get("/api/v1/health", &result)
		if err == nil {
			return result, nil
		}
		if time.Now().Add(healthRetryInterval).After(deadline) {
			if wait > 0 {
				return result, fmt.Errorf("server not healthy after %s: %w", wait, err)
			}
			return result, err
		}
		time.Sleep(healthRetryInterval)
	}
}
