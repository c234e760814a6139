package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/docinventory"
	"github.com/fwojciec/docinventory/fs"
	"github.com/fwojciec/docinventory/git"
	dihttp "github.com/fwojciec/docinventory/http"
	"github.com/fwojciec/docinventory/ratelimit"
	dislog "github.com/fwojciec/docinventory/slog"
	"github.com/fwojciec/docinventory/source"
	"github.com/fwojciec/docinventory/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now returns the report date. Defaults to time.Now.
	Now func() time.Time

	// Strategies overrides the upstream strategies, for end-to-end testing.
	// When nil, Run builds the ArduPilot, iNav and Betaflight strategies.
	Strategies func(kw docinventory.Keywords, fetcher docinventory.Fetcher, cloner docinventory.Cloner) []docinventory.Strategy

	// Writer returns the writer that persists the report at path.
	// Defaults to a file writer.
	Writer func(path string) docinventory.ReportWriter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now:        time.Now,
		Strategies: upstreamStrategies,
		Writer:     newFileWriter,
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output    string        `short:"o" default:"meta/doc_inventory.yaml" env:"DOCINVENTORY_OUTPUT" help:"Path of the generated inventory"`
	Keywords  string        `short:"k" type:"path" env:"DOCINVENTORY_KEYWORDS" help:"YAML file overriding the heading and label filters"`
	Timeout   time.Duration `short:"t" default:"30s" env:"DOCINVENTORY_TIMEOUT" help:"Timeout per HTTP request"`
	RPS       float64       `name:"rps" default:"0" env:"DOCINVENTORY_RPS" help:"Requests per second per host (0 disables throttling)"`
	UserAgent string        `name:"user-agent" default:"docinventory" env:"DOCINVENTORY_USER_AGENT" help:"User-Agent header for HTTP requests"`
	Verbose   bool          `short:"v" help:"Log every fetch"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docinventory"),
		kong.Description("Aggregate flight controller, sensor and MCU inventories from ArduPilot, iNav and Betaflight documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	kw, err := yaml.LoadKeywords(cli.Keywords)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	// Wire dependencies
	var fetcher docinventory.Fetcher = dihttp.NewFetcher(
		dihttp.WithTimeout(cli.Timeout),
		dihttp.WithUserAgent(cli.UserAgent),
	)
	if cli.RPS > 0 {
		fetcher = ratelimit.NewFetcher(fetcher, cli.RPS)
	}
	fetcher = dislog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	cloner := dislog.NewLoggingCloner(git.NewCloner(), logger)

	var strategies []docinventory.Strategy
	for _, s := range m.Strategies(kw, fetcher, cloner) {
		strategies = append(strategies, dislog.NewLoggingStrategy(s, logger))
	}

	report, err := docinventory.Harvest(ctx, strategies, m.Now())
	if err != nil {
		return err
	}

	if err := m.Writer(cli.Output).WriteReport(ctx, report); err != nil {
		return fmt.Errorf("failed to write %q: %w", cli.Output, err)
	}

	fmt.Fprintf(stdout, "Wrote %s\n", cli.Output)
	return nil
}

// upstreamStrategies returns the production strategies in output order.
func upstreamStrategies(kw docinventory.Keywords, fetcher docinventory.Fetcher, cloner docinventory.Cloner) []docinventory.Strategy {
	return []docinventory.Strategy{
		source.NewArduPilot(fetcher, kw),
		source.NewINav(fetcher, kw),
		source.NewBetaflight(cloner, kw),
	}
}

func newFileWriter(path string) docinventory.ReportWriter {
	return fs.NewReportWriter(path)
}

// newLogger returns a slog.Logger backed by a charmbracelet/log handler.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "docinventory",
	})
	return slog.New(handler)
}
