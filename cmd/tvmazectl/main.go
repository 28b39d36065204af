// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bingefriend/tvmaze-client-go/internal/config"
	"github.com/bingefriend/tvmaze-client-go/internal/log"
	"github.com/bingefriend/tvmaze-client-go/internal/telemetry"
	"github.com/bingefriend/tvmaze-client-go/tvmaze"
)

var (
	showID   = flag.Int("show", 0, "Fetch details for a single show ID")
	seasons  = flag.Bool("seasons", false, "With -show: fetch seasons instead of details")
	episodes = flag.Bool("episodes", false, "With -show: fetch episodes instead of details")
	cast     = flag.Bool("cast", false, "With -show: fetch cast instead of details")
	page     = flag.Int("page", -1, "Fetch one page of the show index")
	search   = flag.String("search", "", "Fuzzy-search shows by name")
	updates  = flag.String("updates", "", "Fetch show updates since 'day', 'week', 'month' or 'all'")
	baseURL  = flag.String("base-url", "", "Override TVMAZE_BASE_URL")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tvmazectl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.WithComponent("tvmazectl")
	logger.Debug().Str(log.FieldBaseURL, cfg.BaseURL).Msg("client configured")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.ContextWithRequestID(ctx, fmt.Sprintf("tvmazectl-%d", time.Now().UnixNano()))

	provider, err := telemetry.NewProvider(ctx, cfg.TelemetryConfig("tvmazectl"))
	if err != nil {
		return fmt.Errorf("telemetry init: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("telemetry shutdown failed")
		}
	}()

	client := tvmaze.NewWithOptions(cfg.BaseURL, cfg.ClientOptions())

	switch {
	case *showID > 0 && *seasons:
		result, err := client.Seasons(ctx, *showID)
		if err != nil {
			return err
		}
		return printJSON(result)

	case *showID > 0 && *episodes:
		result, err := client.Episodes(ctx, *showID)
		if err != nil {
			return err
		}
		return printJSON(result)

	case *showID > 0 && *cast:
		result, err := client.Cast(ctx, *showID)
		if err != nil {
			return err
		}
		return printJSON(result)

	case *showID > 0:
		result, err := client.Show(ctx, *showID)
		if err != nil {
			return err
		}
		return printJSON(result)

	case *page >= 0:
		result, err := client.ShowIndex(ctx, *page)
		if err != nil {
			return err
		}
		return printJSON(result)

	case *search != "":
		result, err := client.SearchShows(ctx, *search)
		if err != nil {
			return err
		}
		return printJSON(result)

	case *updates != "":
		period := tvmaze.UpdatePeriod(*updates)
		if *updates == "all" {
			period = tvmaze.PeriodAll
		}
		result, err := client.Updates(ctx, period)
		if err != nil {
			return err
		}
		return printJSON(result)

	default:
		flag.Usage()
		return fmt.Errorf("nothing to do: pass -show, -page, -search or -updates")
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
