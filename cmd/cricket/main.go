// Command cricket is the live-match CLI.
//
// Usage:
//
//	cricket matches
//	cricket matches --url http://localhost:9999/feed.xml --compact
//	cricket raw
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/scorewire/cricketscores/internal/config"
	"github.com/scorewire/cricketscores/internal/feed"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "cricket",
		Short: "Live cricket match feed CLI",
	}

	root.AddCommand(matchesCmd())
	root.AddCommand(rawCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// matches command
// --------------------------------------------------------------------------

func matchesCmd() *cobra.Command {
	var (
		feedURL string
		compact bool
	)
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Fetch the live feed and print normalized match records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed(feedURL, func(ctx context.Context, svc *feed.Service) error {
				matches, err := svc.LiveMatches(ctx)
				if err != nil {
					return err
				}
				logger.Info("Feed normalized", "matches", len(matches))

				enc := json.NewEncoder(os.Stdout)
				if !compact {
					enc.SetIndent("", "  ")
				}
				return enc.Encode(matches)
			})
		},
	}
	cmd.Flags().StringVar(&feedURL, "url", "", "Feed URL (default: configured provider endpoint)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Print one-line JSON instead of indented")
	return cmd
}

// --------------------------------------------------------------------------
// raw command
// --------------------------------------------------------------------------

func rawCmd() *cobra.Command {
	var feedURL string
	cmd := &cobra.Command{
		Use:   "raw",
		Short: "Dump the raw feed XML for debugging",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeed(feedURL, func(ctx context.Context, svc *feed.Service) error {
				body, err := svc.Client().Fetch(ctx)
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(body)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&feedURL, "url", "", "Feed URL (default: configured provider endpoint)")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runFeed handles config loading, client construction, and context
// cancellation.
func runFeed(urlOverride string, fn func(ctx context.Context, svc *feed.Service) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	feedURL := cfg.FeedURL
	if urlOverride != "" {
		feedURL = urlOverride
	}

	client := feed.NewClient(feedURL, cfg.FeedRequestsPerMinute, cfg.FeedTimeout, logger)
	return fn(ctx, feed.NewService(client, logger))
}
