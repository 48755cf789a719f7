package main

import (
	"fmt"

	"github.com/cheatdex/cheatdex"
	"github.com/cheatdex/cheatdex/help"
)

// Run executes the learn command.
func (c *LearnCmd) Run(deps *Dependencies) error {
	name := cheatdex.NormalizeName(c.Name)

	if !c.Force {
		if _, err := deps.Commands.FindCommand(deps.Ctx, "local", name); err == nil {
			fmt.Fprintf(deps.Stdout, "%q is already learned. Use --force to relearn.\n", name)
			return nil
		} else if cheatdex.ErrorCode(err) != cheatdex.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
			return err
		}
	}

	cmd, err := learnOne(deps, name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cheatdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Learned %q: %s (%d examples)\n", cmd.Name, cmd.Description, len(cmd.Examples))
	return nil
}

// learnOne captures help for one command, stores the parsed record, and
// indexes it incrementally.
func learnOne(deps *Dependencies, name string) (*cheatdex.Command, error) {
	out, err := help.Capture(deps.Ctx, name, deps.Strategies)
	if err != nil {
		return nil, err
	}

	cmd := help.Parse(name, out)
	if err := deps.Commands.SaveCommand(deps.Ctx, cmd); err != nil {
		return nil, err
	}
	if err := deps.Index.Upsert(deps.Ctx, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}
