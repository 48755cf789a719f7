package main

import (
	"fmt"
	"strings"

	"github.com/cheatdex/cheatdex"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	count, err := deps.Commands.CountCommands(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}

	meta, err := deps.Metadata.FindMetadata(deps.Ctx)
	if cheatdex.ErrorCode(err) == cheatdex.ENOTFOUND {
		fmt.Fprintf(deps.Stdout, "Commands stored: %d\nNo dataset imported yet. Use 'cheatdex import' to load one.\n", count)
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Commands stored: %d\n", count)
	fmt.Fprintf(deps.Stdout, "Dataset version: %s\n", meta.Version)
	fmt.Fprintf(deps.Stdout, "Languages:       %s\n", strings.Join(meta.Languages, ", "))
	fmt.Fprintf(deps.Stdout, "Last update:     %s\n", meta.LastUpdate.Format("2006-01-02 15:04:05 MST"))
	return nil
}
