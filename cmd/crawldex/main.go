package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/crawldex/crawldex"
	"github.com/crawldex/crawldex/crawl"
	"github.com/crawldex/crawldex/goquery"
	crawldexhttp "github.com/crawldex/crawldex/http"
	crawldexslog "github.com/crawldex/crawldex/slog"
	"github.com/crawldex/crawldex/snowball"
	"github.com/crawldex/crawldex/sqlite"
	"github.com/crawldex/crawldex/trafilatura"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RunService crawldex.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("crawldex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'crawldex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CRAWLDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.RunService = sqlite.NewRunService(m.DB)
	deps.DB = m.DB
	deps.Runs = m.RunService

	// Wire crawl-specific dependencies
	if cmd == "crawl" {
		var opts []crawldexhttp.Option
		if cli.Crawl.RPS > 0 {
			opts = append(opts, crawldexhttp.WithLimiter(crawl.NewDomainLimiter(cli.Crawl.RPS)))
		}

		var fetcher crawldex.PageFetcher = crawldexhttp.NewFetcher(opts...)
		if cli.Crawl.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = crawldexslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()

		var extractor crawldex.TextExtractor
		switch cli.Crawl.Extractor {
		case "trafilatura":
			extractor = trafilatura.NewExtractor()
		default:
			extractor = goquery.NewExtractor()
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:    fetcher,
			Extractor:  extractor,
			Normalizer: snowball.New(),
			Capacity:   cli.Crawl.MaxURLs,
			MaxDepth:   cli.Crawl.MaxDepth,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CRAWLDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "crawldex.db"
	}
	dir := filepath.Join(home, ".crawldex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "crawldex.db")
}
