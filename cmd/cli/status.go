package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

const pollInterval = 250 * time.Millisecond

// waitForService polls the health endpoint until it answers or wait elapses.
func waitForService(baseURL string, wait time.Duration) error {
	deadline := time.Now().Add(wait)
	for {
		var health map[string]string
		err := getJSON(baseURL+"/api/health", &health)
		if err == nil {
			if health["status"] != "ok" {
				return fmt.Errorf("service is unhealthy (status=%q)", health["status"])
			}
			return nil
		}
		if time.Now().Add(pollInterval).After(deadline) {
			return err
		}
		time.Sleep(pollInterval)
	}
}

func newStatusCmd() *cobra.Command {
	var serviceURL string
	var wait time.Duration
	var quiet bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check the status of the service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL := resolveServiceURL(serviceURL)

			var s *spinner.Spinner
			if wait > 0 && !quiet {
				s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				s.Suffix = fmt.Sprintf(" Waiting for %s (up to %s)...", baseURL, wait)
				s.Start()
			}

			err := waitForService(baseURL, wait)

			if s != nil {
				s.Stop()
			}
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Hint: chartkit-service might not be running or is currently starting.")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Service is running at %s\n", baseURL)
			return nil
		},
	}
	cmd.Flags().StringVar(&serviceURL, "url", "", "Service base URL (default: from config)")
	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep polling for this long before giving up")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Disable progress spinner")
	return cmd
}
