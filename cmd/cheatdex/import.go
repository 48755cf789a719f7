package main

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/cheatdex/cheatdex"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	cmds, stats, err := deps.Importer.ImportPath(deps.Ctx, c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}
	if len(cmds) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no cheatsheets found in %q\n", c.Path)
		return cheatdex.Errorf(cheatdex.EINVALID, "no cheatsheets found in %q", c.Path)
	}

	if err := deps.Commands.SaveCommands(deps.Ctx, cmds); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}

	// Rebuild from everything stored, not just this batch, so records from
	// earlier imports and learned commands stay searchable.
	all, err := deps.Commands.FindCommands(deps.Ctx, cheatdex.CommandFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}
	if err := deps.Index.Rebuild(deps.Ctx, all); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}

	if err := deps.Metadata.SaveMetadata(deps.Ctx, &cheatdex.Metadata{
		Version:      c.versionLabel(),
		CommandCount: len(all),
		LastUpdate:   time.Now().UTC(),
		Languages:    languages(all),
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d cheatsheets (%d files, %d skipped). Index holds %d.\n",
		stats.Imported, stats.Files, stats.Skipped, len(all))
	return nil
}

func (c *ImportCmd) versionLabel() string {
	if c.Version != "" {
		return c.Version
	}
	return filepath.Base(c.Path)
}

// languages returns the sorted set of languages present in cmds.
func languages(cmds []*cheatdex.Command) []string {
	seen := make(map[string]struct{})
	var langs []string
	for _, cmd := range cmds {
		if _, ok := seen[cmd.Lang]; ok {
			continue
		}
		seen[cmd.Lang] = struct{}{}
		langs = append(langs, cmd.Lang)
	}
	sort.Strings(langs)
	return langs
}
