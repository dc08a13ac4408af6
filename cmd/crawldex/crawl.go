package main

import (
	"fmt"

	"github.com/crawldex/crawldex"
	"github.com/crawldex/crawldex/crawl"
	crawldexhttp "github.com/crawldex/crawldex/http"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if c.Preview {
		return c.preview(deps)
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case crawl.ProgressCapacityReached:
			fmt.Fprintf(deps.Stdout, "  Frontier capacity reached; draining remaining queue\n")
		}
	}

	result, err := deps.Crawler.Run(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	if err := deps.Runs.CreateRun(deps.Ctx, result.Run, result.Documents, result.Index); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	run := result.Run
	fmt.Fprintf(deps.Stdout, "Crawled %s: %d pages indexed, %d failed, %d URLs admitted (%s)\n",
		run.SeedURL, run.Documents, run.Failed, run.Admitted, run.Outcome)
	fmt.Fprintf(deps.Stdout, "  %d unique terms in %s\n", run.UniqueTerms, run.FinishedAt.Sub(run.StartedAt).Round(timePrecision))
	fmt.Fprintf(deps.Stdout, "  Saved run %s\n", run.ID)

	return nil
}

// preview fetches the seed page and probes its outbound links with HEAD
// requests, without crawling or persisting anything.
func (c *CrawlCmd) preview(deps *Dependencies) error {
	seed, err := crawldex.NormalizeURL(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	html, err := deps.Crawler.Fetcher.Fetch(deps.Ctx, seed)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	extracted, err := deps.Crawler.Extractor.Extract(html, seed)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	var crawlable []string
	for _, raw := range extracted.Links {
		norm, err := crawldex.NormalizeURL(raw)
		if err != nil || !crawldex.IsCrawlable(norm) {
			continue
		}
		crawlable = append(crawlable, norm)
	}

	if len(crawlable) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawlable links found.")
		return nil
	}

	results := crawldexhttp.ProbeLinks(deps.Ctx, nil, crawlable, 0)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stdout, "ERR    %s  (%v)\n", r.URL, r.Err)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%-6d %s\n", r.Status, r.URL)
	}

	return nil
}
