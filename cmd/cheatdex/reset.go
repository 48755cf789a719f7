package main

import (
	"fmt"

	"github.com/cheatdex/cheatdex"
)

// Run executes the reset command.
func (c *ResetCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return cheatdex.Errorf(cheatdex.EINVALID, "use --force to confirm deletion")
	}

	// Store and index are cleared together so an empty store never faces a
	// stale index.
	if err := deps.Commands.DeleteAllCommands(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}
	if err := deps.Index.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Deleted all cheatsheets and cleared the search index.")
	return nil
}
