package main

import (
	"fmt"

	"github.com/cheatdex/cheatdex"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	cmd, err := c.find(deps)
	if err != nil {
		if cheatdex.ErrorCode(err) == cheatdex.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no cheatsheet for %q. Try 'cheatdex import' or 'cheatdex learn %s'.\n", c.Name, c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s - %s\n", cmd.Name, cmd.Description)
	if len(cmd.Examples) > 0 {
		fmt.Fprintln(deps.Stdout)
		for _, ex := range cmd.Examples {
			fmt.Fprintf(deps.Stdout, "  # %s\n  %s\n\n", ex.Description, ex.Code)
		}
	}

	return nil
}

// find resolves the requested name: exact key first, then the hyphenated
// form of a multi-word name ("git commit" -> "git-commit"), then a search
// against the index, preferring an exact-name hit among the results.
func (c *ShowCmd) find(deps *Dependencies) (*cheatdex.Command, error) {
	cmd, err := deps.Commands.FindCommand(deps.Ctx, c.Lang, c.Name)
	if err == nil || cheatdex.ErrorCode(err) != cheatdex.ENOTFOUND {
		return cmd, err
	}

	if normalized := cheatdex.NormalizeName(c.Name); normalized != c.Name {
		cmd, err = deps.Commands.FindCommand(deps.Ctx, c.Lang, normalized)
		if err == nil || cheatdex.ErrorCode(err) != cheatdex.ENOTFOUND {
			return cmd, err
		}
	}

	resp, serr := deps.Index.Search(deps.Ctx, c.Name, c.Lang, 5)
	if serr != nil {
		return nil, serr
	}
	normalized := cheatdex.NormalizeName(c.Name)
	for _, exactOnly := range []bool{true, false} {
		for _, r := range resp.Results {
			if exact := r.Name == c.Name || r.Name == normalized; exact != exactOnly {
				continue
			}
			found, ferr := deps.Commands.FindCommand(deps.Ctx, r.Lang, r.Name)
			if ferr != nil {
				continue
			}
			return found, nil
		}
	}

	return nil, cheatdex.Errorf(cheatdex.ENOTFOUND, "no cheatsheet for %q", c.Name)
}
