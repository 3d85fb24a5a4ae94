package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"shinbukan-ics/internal/calendar"
	"shinbukan-ics/internal/config"
	"shinbukan-ics/internal/fetch"
	"shinbukan-ics/internal/schedule"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitMonthErrors = 2
)

var (
	flagMonths      int
	flagBack        int
	flagConcurrency int
	flagOutput      string
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shinbukan-ics",
		Short: "Export the Shinbukan monthly schedule as an iCalendar feed",
		Long: `Fetches the venue's hand-authored monthly schedule pages, extracts their
events and writes a single iCalendar (ICS) feed to stdout. Parse problems
in individual months are reported on stderr without dropping the months
that parsed cleanly.`,
		RunE:          runExport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&flagMonths, "months", 14, "Number of months to export")
	cmd.Flags().IntVar(&flagBack, "back", 2, "Months before the current one to start at")
	cmd.Flags().IntVar(&flagConcurrency, "concurrency", 16, "Maximum concurrent month fetches")
	cmd.Flags().StringVar(&flagOutput, "output", "-", "Output file ('-' for stdout)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.JSONFormatter{})
	if flagVerbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	log := logger.WithField("component", "shinbukan-ics")

	if flagMonths < 1 {
		return fmt.Errorf("--months must be at least 1")
	}
	if flagConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	client := fetch.New(log.WithField("component", "fetch"), fetch.Config{
		BaseURL:  cfg.BaseURL,
		Username: cfg.RemoteUser,
		Password: cfg.RemotePass,
	})

	window := calendar.Window(time.Now().UTC(), flagBack, flagMonths)
	months := exportMonths(context.Background(), client, window, flagConcurrency)

	now := time.Now().UTC()
	var body strings.Builder
	hadErrors := false
	for _, m := range months {
		body.WriteString(calendar.EventsICS(m.Events, m.Year, m.Month, now, client.PageURL(m.Year, m.Month)))
		for _, e := range m.Errors {
			log.WithFields(logrus.Fields{
				"year":  m.Year,
				"month": int(m.Month),
			}).WithError(e).Error("error while processing the online calendar")
			hadErrors = true
		}
	}

	out, closeOut, err := openOutput(flagOutput)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, calendar.Envelope(body.String())); err != nil {
		closeOut()
		return fmt.Errorf("writing calendar: %w", err)
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	if hadErrors {
		os.Exit(ExitMonthErrors)
	}
	return nil
}

// exportMonths fetches and parses every month of the window with bounded
// concurrency. Results come back in window order regardless of completion
// order, so output stays stable. Fetch and parse problems are recorded on
// the month itself, never returned: one bad month must not cancel the rest.
func exportMonths(ctx context.Context, client *fetch.Client, window []calendar.YearMonth, concurrency int) []*schedule.Month {
	months := make([]*schedule.Month, len(window))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, ym := range window {
		i, ym := i, ym
		g.Go(func() error {
			m := schedule.New(ym.Year, ym.Month)
			months[i] = m

			page, err := client.FetchMonth(ctx, ym.Year, ym.Month)
			if err != nil {
				m.AddError(err)
				return nil
			}
			if err := schedule.Parse(m, strings.NewReader(page)); err != nil {
				m.AddError(err)
			}
			return nil
		})
	}
	// The goroutines report through their Month, never through the group.
	_ = g.Wait()

	return months
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
