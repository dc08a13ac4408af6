package main

import (
	"fmt"
	"time"

	"github.com/crawldex/crawldex"
)

const timePrecision = 10 * time.Millisecond

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	if c.ID != "" {
		return c.showRun(deps)
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'crawldex crawl' to create one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d pages  %s  %s\n",
			r.ID, r.SeedURL, r.Documents, r.Outcome, r.StartedAt.Format(time.RFC3339))
	}

	return nil
}

func (c *StatsCmd) showRun(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run %s\n", run.ID)
	fmt.Fprintf(deps.Stdout, "  Seed:         %s\n", run.SeedURL)
	fmt.Fprintf(deps.Stdout, "  Outcome:      %s\n", run.Outcome)
	fmt.Fprintf(deps.Stdout, "  Capacity:     %d (admitted %d)\n", run.Capacity, run.Admitted)
	fmt.Fprintf(deps.Stdout, "  Max depth:    %d\n", run.MaxDepth)
	fmt.Fprintf(deps.Stdout, "  Pages:        %d indexed, %d failed\n", run.Documents, run.Failed)
	fmt.Fprintf(deps.Stdout, "  Unique terms: %d\n", run.UniqueTerms)
	fmt.Fprintf(deps.Stdout, "  Duration:     %s\n", run.FinishedAt.Sub(run.StartedAt).Round(timePrecision))

	return nil
}
