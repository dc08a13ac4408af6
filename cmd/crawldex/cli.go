package main

import (
	"context"
	"io"

	"github.com/crawldex/crawldex"
	"github.com/crawldex/crawldex/crawl"
	"github.com/crawldex/crawldex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Runs    crawldex.RunService
	Crawler *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Crawl CrawlCmd `cmd:"" help:"Crawl depth-first from a seed URL and index the pages"`
	Stats StatsCmd `cmd:"" help:"Show stored crawl runs"`
	Terms TermsCmd `cmd:"" help:"Show a run's most widespread terms"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL       string  `arg:"" help:"Seed URL"`
	MaxURLs   int     `name:"max-urls" default:"500" help:"Total URLs admitted to the frontier, seed included"`
	MaxDepth  int     `name:"max-depth" default:"10" help:"Skip links more than this many hops from the seed (0 = unlimited)"`
	Extractor string  `default:"goquery" enum:"goquery,trafilatura" help:"Text extraction strategy"`
	RPS       float64 `name:"rps" default:"1" help:"Max requests per second per domain (0 = unpaced)"`
	Preview   bool    `short:"p" help:"Probe the seed's links without crawling"`
	Verbose   bool    `short:"v" help:"Log each fetch"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	ID string `arg:"" optional:"" help:"Run ID (omit to list all runs)"`
}

// TermsCmd is the "terms" subcommand.
type TermsCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Limit int    `short:"n" default:"20" help:"Number of terms to show"`
}
