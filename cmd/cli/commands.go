package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/mauv0809/league-standings/internal/refresh"
	"github.com/spf13/cobra"
)

var asJSON bool

func init() {
	standingsCmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON response")
	standingsCmd.Flags().Bool("refresh", false, "Recompute instead of serving the retained table")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(leaguesCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(performRequest(http.MethodGet, "/health", nil))
	},
}

var leaguesCmd = &cobra.Command{
	Use:   "leagues",
	Short: "List the leagues in the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(performRequest(http.MethodGet, "/leagues", nil))
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings <league-id>",
	Short: "Show a league table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/leagues/" + url.PathEscape(args[0]) + "/standings"
		if forced, _ := cmd.Flags().GetBool("refresh"); forced {
			endpoint += "?refresh=true"
		}
		status, body, stale, err := performRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}
		if asJSON || status != http.StatusOK {
			return printResponse(status, body, stale, nil)
		}

		var snap refresh.Snapshot
		if err := json.Unmarshal(body, &snap); err != nil {
			return fmt.Errorf("failed to decode standings: %w", err)
		}
		fmt.Println(renderTable(snap, stale))
		return nil
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh <league-id>",
	Short: "Trigger a recompute of a league table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(performRequest(http.MethodPost, "/leagues/"+url.PathEscape(args[0])+"/refresh", nil))
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <league-id> <matches.json>",
	Short: `Upload results from a JSON file of the form {"matches": [...]}`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[1], err)
		}
		return printResponse(performRequest(http.MethodPost, "/leagues/"+url.PathEscape(args[0])+"/matches", data))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(performRequest(http.MethodGet, "/metrics", nil))
	},
}

func performRequest(method, endpoint string, payload []byte) (int, []byte, bool, error) {
	target := host + endpoint
	if dryRun {
		sep := "?"
		if bytes.ContainsRune([]byte(endpoint), '?') {
			sep = "&"
		}
		target += sep + "dry_run=true"
	}
	fmt.Printf("Making request to %s\n", target)

	req, err := http.NewRequest(method, target, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, false, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, nil, false, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, false, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, body, resp.Header.Get("X-Standings-Stale") == "true", nil
}

func printResponse(status int, body []byte, stale bool, err error) error {
	if err != nil {
		return err
	}
	fmt.Printf("Status Code: %d\n", status)
	if stale {
		fmt.Println("Warning: the server could not refresh; showing the last good table")
	}
	fmt.Println("Response Body:")
	fmt.Println(string(body))
	return nil
}
