package main

import (
	"fmt"

	"github.com/crawldex/crawldex"
)

// Run executes the terms command.
func (c *TermsCmd) Run(deps *Dependencies) error {
	counts, err := deps.Runs.TermCounts(deps.Ctx, c.ID, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crawldex.ErrorMessage(err))
		return err
	}

	if len(counts) == 0 {
		fmt.Fprintln(deps.Stdout, "No terms recorded for this run.")
		return nil
	}

	for _, tc := range counts {
		fmt.Fprintf(deps.Stdout, "%6d  %s\n", tc.Docs, tc.Term)
	}

	return nil
}
