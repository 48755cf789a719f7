package main

import (
	"fmt"
	"strings"

	"github.com/cheatdex/cheatdex"
)

// Run executes the learn-all command.
func (c *LearnAllCmd) Run(deps *Dependencies) error {
	candidates, err := c.candidates(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}

	var learned, skipped, failed int
	for _, cand := range candidates {
		if err := deps.Ctx.Err(); err != nil {
			return err
		}
		if c.Limit > 0 && learned >= c.Limit {
			break
		}
		name := cheatdex.NormalizeName(cand.Name)
		if c.Prefix != "" && !strings.HasPrefix(name, c.Prefix) {
			continue
		}

		if !c.Force {
			if _, err := deps.Commands.FindCommand(deps.Ctx, "local", name); err == nil {
				skipped++
				continue
			}
		}

		// A single command that refuses to produce help must not abort the
		// sweep; count it and keep going.
		if _, err := learnOne(deps, name); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", name, cheatdex.ErrorMessage(err))
			continue
		}
		learned++
	}

	fmt.Fprintf(deps.Stdout, "Learned %d commands (%d already known, %d failed)\n", learned, skipped, failed)
	return nil
}

// candidates picks the listing source: "man" or "path" explicitly, or the
// first source that yields anything in "auto" mode.
func (c *LearnAllCmd) candidates(deps *Dependencies) ([]cheatdex.Candidate, error) {
	if c.Source != "auto" {
		for _, l := range deps.Listers {
			if l.Source() == c.Source {
				return l.List(deps.Ctx)
			}
		}
		return nil, cheatdex.Errorf(cheatdex.EINVALID, "unknown candidate source %q", c.Source)
	}

	var lastErr error
	for _, l := range deps.Listers {
		candidates, err := l.List(deps.Ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "no learnable commands found on this system")
}
