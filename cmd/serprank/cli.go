package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/serprank"
	"github.com/fwojciec/serprank/rank"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Entities serprank.EntityService
	Runs     serprank.RunService
	Checker  *rank.Checker
	Reports  serprank.ReportWriter

	// Now defaults to time.Now.
	Now func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"SERPRANK_DB" help:"Database path"`
	Verbose bool   `short:"v" help:"Log fetches and storage calls to stderr"`

	Add     AddCmd     `cmd:"" help:"Register an entity and its search keywords"`
	List    ListCmd    `cmd:"" help:"List registered entities"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an entity"`
	Import  ImportCmd  `cmd:"" help:"Import entities from a JSON file"`
	Check   CheckCmd   `cmd:"" help:"Check search ranks for registered entities"`
	History HistoryCmd `cmd:"" help:"Show past ranks for an entity"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name     string   `arg:"" help:"Entity name as it appears in search results"`
	Keywords []string `short:"k" name:"keyword" required:"" sep:"none" help:"Search keyword (repeatable)"`
	Address  string   `short:"a" help:"Street address"`
	Phone    string   `help:"Phone number"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Entity name"`
	Force bool   `help:"Confirm deletion"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"JSON array of {name, address, phone, keywords}"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Names       []string      `arg:"" optional:"" help:"Entities to check (default: all)"`
	Sections    []string      `short:"s" name:"section" help:"Section to check: blog-popular, blog-general, web, place (repeatable, default: all)"`
	Keywords    []string      `short:"k" name:"keyword" sep:"none" help:"Check these keywords instead of the stored ones (repeatable)"`
	Delay       time.Duration `default:"2s" env:"SERPRANK_DELAY" help:"Minimum delay between requests to the search host"`
	UserAgent   string        `name:"user-agent" env:"SERPRANK_USER_AGENT" help:"User-Agent header for search requests"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"1" help:"Entities checked concurrently"`
	Browser     bool          `help:"Render place results with a headless browser"`
	MaxPages    int           `name:"browser-max-pages" default:"75" env:"SERPRANK_BROWSER_MAX_PAGES" help:"Pages rendered before the browser is restarted"`
	CacheTTL    time.Duration `name:"cache-ttl" default:"10m" help:"How long fetched pages are reused within the run"`
	OutputDir   string        `name:"output-dir" default:"data" help:"Directory for xlsx reports"`
	Prefix      string        `default:"rankings_" help:"Report file name prefix"`
	NoReport    bool          `name:"no-report" help:"Skip writing the xlsx report"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Name  string `arg:"" help:"Entity name"`
	Limit int    `short:"n" default:"5" help:"Number of runs to show"`
}
