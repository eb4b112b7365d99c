package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/soniCaH/pokemon-go-leekduck/internal/calendar"
	"github.com/soniCaH/pokemon-go-leekduck/internal/config"
	"github.com/soniCaH/pokemon-go-leekduck/internal/event"
	"github.com/soniCaH/pokemon-go-leekduck/internal/fetch"
	"github.com/soniCaH/pokemon-go-leekduck/internal/logger"
	"github.com/soniCaH/pokemon-go-leekduck/internal/scraper"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNoEvents = 2
)

var (
	flagConfig   string
	flagOutput   string
	flagTimezone string
	flagFormat   string
	flagDelayMS  int
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leekduck-calendar",
		Short: "Generate an iCalendar file from LeekDuck Pokémon GO events",
		Long: `A CLI tool that scrapes Pokémon GO events from LeekDuck and writes
them to an iCalendar (.ics) file, with one categorized entry per event.`,
		RunE: runScrape,
	}

	// Define flags
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Output .ics file path (default: events.ics)")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "", "IANA reference timezone (default: Europe/Brussels)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().IntVar(&flagDelayMS, "delay-ms", -1, "Delay in ms before each detail-page fetch (default: 500)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	// Load configuration; flags override file values.
	conf, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagOutput != "" {
		conf.Output = flagOutput
	}
	if flagTimezone != "" {
		conf.Timezone = flagTimezone
	}
	if flagDelayMS >= 0 {
		conf.FetchDelayMS = flagDelayMS
	}

	loc, err := time.LoadLocation(conf.Timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", conf.Timezone, err)
	}

	// Wire up the pipeline.
	sc := scraper.New(fetch.New(), event.NewParser(loc))
	if err := sc.SetListingURL(conf.URL); err != nil {
		return err
	}
	sc.SetDelay(conf.FetchDelay())

	logger.Info("Scraping events", logger.Fields{
		"url":      conf.URL,
		"timezone": conf.Timezone,
	})

	events, err := sc.FetchEvents(cmd.Context())
	if err != nil {
		return fmt.Errorf("scraping events: %w", err)
	}

	// Generate and save the calendar.
	cal := calendar.Build(events, conf.Timezone)
	if err := calendar.Write(cal, conf.Output); err != nil {
		return err
	}

	logger.Info("Calendar saved", logger.Fields{
		"path":        conf.Output,
		"event_count": len(events),
	})

	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		OutputPath:  conf.Output,
		EventCount:  len(events),
		Events:      events,
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(events) == 0 {
		os.Exit(ExitNoEvents)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
