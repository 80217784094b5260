package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/serprank"
	"github.com/fwojciec/serprank/cache"
	serprankhttp "github.com/fwojciec/serprank/http"
	"github.com/fwojciec/serprank/naver"
	"github.com/fwojciec/serprank/rank"
	"github.com/fwojciec/serprank/rod"
	serprankslog "github.com/fwojciec/serprank/slog"
	"github.com/fwojciec/serprank/sqlite"
	"github.com/fwojciec/serprank/xlsx"
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
	// Database path. Set before calling Run(); --db overrides it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	EntityService serprank.EntityService
	RunService    serprank.RunService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("serprank"),
		kong.Description("Track where businesses rank on Naver search"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'serprank --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	if dir := filepath.Dir(m.DBPath); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SERPRANK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.EntityService = sqlite.NewEntityService(m.DB)
	m.RunService = serprankslog.NewLoggingRunService(sqlite.NewRunService(m.DB), deps.Logger)
	deps.Entities = m.EntityService
	deps.Runs = m.RunService

	if cmd == "check" {
		closeFetchers, err := wireChecker(deps, &cli.Check)
		if err != nil {
			return err
		}
		defer closeFetchers()
	}

	return kongCtx.Run(deps)
}

// wireChecker builds the acquisition stack for the check command:
// fetchers, rate limiting and retries, logging, the page cache, and the
// report writer. The returned func closes the fetchers.
func wireChecker(deps *Dependencies, c *CheckCmd) (func(), error) {
	logger := deps.Logger

	httpFetcher := serprankhttp.NewFetcher(
		serprankhttp.WithTimeout(c.Timeout),
		serprankhttp.WithUserAgent(c.UserAgent),
	)
	fetchers := []serprank.Fetcher{httpFetcher}

	source := &rank.Source{
		URLs:        naver.Endpoint{},
		Fetcher:     httpFetcher,
		RateLimiter: rank.NewDomainLimiter(c.Delay),
		Logf: func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		},
	}

	if c.Browser {
		opts := []rod.Option{
			rod.WithFetchTimeout(c.Timeout),
			rod.WithRecycleAfter(c.MaxPages),
			rod.WithBrowserLogger(logger),
		}
		if c.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(c.UserAgent))
		}
		browser, err := rod.NewFetcher(opts...)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed, or omit --browser")
			_ = httpFetcher.Close()
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		source.PlaceFetcher = rod.NewLoggingFetcher(browser, logger)
		fetchers = append(fetchers, browser)
	}

	pages := cache.NewPageSource(serprankslog.NewLoggingPageSource(source, logger), c.CacheTTL)

	deps.Checker = &rank.Checker{
		Source:      pages,
		Rules:       naver.Rules(),
		Concurrency: c.Concurrency,
	}
	deps.Reports = serprankslog.NewLoggingReportWriter(xlsx.NewReportWriter(c.OutputDir, c.Prefix), logger)

	return func() {
		for _, f := range fetchers {
			_ = f.Close()
		}
	}, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("SERPRANK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "serprank.db"
	}
	return filepath.Join(home, ".serprank", "serprank.db")
}
