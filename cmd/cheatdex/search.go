package main

import (
	"fmt"
	"strings"

	"github.com/cheatdex/cheatdex"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	resp, err := deps.Index.Search(deps.Ctx, query, c.Lang, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}

	if resp.Total == 0 {
		fmt.Fprintln(deps.Stdout, "No results. Use 'cheatdex import' or 'cheatdex learn' to add cheatsheets.")
		return nil
	}

	for _, r := range resp.Results {
		fmt.Fprintf(deps.Stdout, "%-20s [%s/%s]  %s\n", r.Name, r.Lang, r.Category, r.Description)
	}
	fmt.Fprintf(deps.Stdout, "\n%d results in %dms\n", resp.Total, resp.TookMS)

	return nil
}
