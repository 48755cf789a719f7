package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheatdex/cheatdex"
	main "github.com/cheatdex/cheatdex/cmd/cheatdex"
	"github.com/cheatdex/cheatdex/mock"
)

func helpStrategy(name, text string, err error) *mock.HelpStrategy {
	return &mock.HelpStrategy{
		NameFn: func() string { return name },
		AttemptFn: func(context.Context, string) (*cheatdex.HelpOutput, error) {
			if err != nil {
				return nil, err
			}
			return &cheatdex.HelpOutput{Text: text, Source: name}, nil
		},
	}
}

func notFound(lang, name string) error {
	return cheatdex.Errorf(cheatdex.ENOTFOUND, "command not found: %s:%s", lang, name)
}

func TestLearnCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("captures, saves, and indexes a command", func(t *testing.T) {
		t.Parallel()

		var saved, upserted *cheatdex.Command
		commands := &mock.CommandService{
			FindCommandFn: func(_ context.Context, lang, name string) (*cheatdex.Command, error) {
				return nil, notFound(lang, name)
			},
			SaveCommandFn: func(_ context.Context, cmd *cheatdex.Command) error {
				saved = cmd
				return nil
			},
		}
		index := &mock.Index{
			UpsertFn: func(_ context.Context, cmd *cheatdex.Command) error {
				upserted = cmd
				return nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Commands = commands
		deps.Index = index
		deps.Strategies = []cheatdex.HelpStrategy{
			helpStrategy("--help", "mycmd - A test command\n\nUsage: mycmd [OPTIONS]\n", nil),
		}

		cmd := &main.LearnCmd{Name: "mycmd"}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, "mycmd", saved.Name)
		assert.Equal(t, "A test command", saved.Description)
		assert.Equal(t, "local", saved.Lang)
		assert.Equal(t, saved, upserted)
		assert.Contains(t, stdout.String(), "Learned \"mycmd\"")
	})

	t.Run("skips already learned commands without force", func(t *testing.T) {
		t.Parallel()

		commands := &mock.CommandService{
			FindCommandFn: func(_ context.Context, lang, name string) (*cheatdex.Command, error) {
				return &cheatdex.Command{Name: name, Lang: lang}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Commands = commands

		cmd := &main.LearnCmd{Name: "tar"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "already learned")
	})

	t.Run("force relearns an existing command", func(t *testing.T) {
		t.Parallel()

		var saved *cheatdex.Command
		commands := &mock.CommandService{
			SaveCommandFn: func(_ context.Context, cmd *cheatdex.Command) error {
				saved = cmd
				return nil
			},
		}
		index := &mock.Index{
			UpsertFn: func(context.Context, *cheatdex.Command) error { return nil },
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Commands = commands
		deps.Index = index
		deps.Strategies = []cheatdex.HelpStrategy{
			helpStrategy("man", "NAME\ntar - an archiving utility\n", nil),
		}

		cmd := &main.LearnCmd{Name: "tar", Force: true}
		require.NoError(t, cmd.Run(deps))
		require.NotNil(t, saved)
		assert.Equal(t, "an archiving utility", saved.Description)
	})

	t.Run("reports when every strategy fails", func(t *testing.T) {
		t.Parallel()

		commands := &mock.CommandService{
			FindCommandFn: func(_ context.Context, lang, name string) (*cheatdex.Command, error) {
				return nil, notFound(lang, name)
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Commands = commands
		deps.Strategies = []cheatdex.HelpStrategy{
			helpStrategy("--help", "", cheatdex.Errorf(cheatdex.EUNAVAILABLE, "exit status 127")),
		}

		cmd := &main.LearnCmd{Name: "ghost"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, cheatdex.EUNAVAILABLE, cheatdex.ErrorCode(err))
		assert.Contains(t, stderr.String(), "exit status 127")
	})

	t.Run("normalizes multi-word names", func(t *testing.T) {
		t.Parallel()

		var looked string
		commands := &mock.CommandService{
			FindCommandFn: func(_ context.Context, lang, name string) (*cheatdex.Command, error) {
				looked = name
				return &cheatdex.Command{Name: name, Lang: lang}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Commands = commands

		cmd := &main.LearnCmd{Name: "git commit"}
		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "git-commit", looked)
	})
}
