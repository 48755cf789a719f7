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

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	tarCmd := &cheatdex.Command{
		Name:        "tar",
		Description: "Archiving utility",
		Lang:        "en",
		Examples: []cheatdex.Example{
			{Description: "Create archive", Code: "tar -cvf archive.tar files"},
		},
	}

	t.Run("shows exact match", func(t *testing.T) {
		t.Parallel()

		commands := &mock.CommandService{
			FindCommandFn: func(_ context.Context, lang, name string) (*cheatdex.Command, error) {
				require.Equal(t, "en", lang)
				require.Equal(t, "tar", name)
				return tarCmd, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Commands = commands

		cmd := &main.ShowCmd{Name: "tar", Lang: "en"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "tar - Archiving utility")
		assert.Contains(t, output, "# Create archive")
		assert.Contains(t, output, "tar -cvf archive.tar files")
	})

	t.Run("falls back to hyphenated name", func(t *testing.T) {
		t.Parallel()

		commands := &mock.CommandService{
			FindCommandFn: func(_ context.Context, lang, name string) (*cheatdex.Command, error) {
				if name == "git-commit" {
					return &cheatdex.Command{Name: "git-commit", Description: "Record changes", Lang: "en"}, nil
				}
				return nil, cheatdex.Errorf(cheatdex.ENOTFOUND, "command not found: %s:%s", lang, name)
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Commands = commands

		cmd := &main.ShowCmd{Name: "git commit", Lang: "en"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "git-commit - Record changes")
	})

	t.Run("falls back to index search", func(t *testing.T) {
		t.Parallel()

		commands := &mock.CommandService{
			FindCommandFn: func(_ context.Context, lang, name string) (*cheatdex.Command, error) {
				if name == "docker-compose" {
					return &cheatdex.Command{Name: "docker-compose", Description: "Multi-container apps", Lang: "en"}, nil
				}
				return nil, cheatdex.Errorf(cheatdex.ENOTFOUND, "command not found: %s:%s", lang, name)
			},
		}
		index := &mock.Index{
			SearchFn: func(_ context.Context, query, lang string, limit int) (*cheatdex.SearchResponse, error) {
				return &cheatdex.SearchResponse{
					Total:   1,
					Results: []*cheatdex.SearchResult{{Name: "docker-compose", Lang: "en"}},
				}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Commands = commands
		deps.Index = index

		cmd := &main.ShowCmd{Name: "compose", Lang: "en"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "docker-compose - Multi-container apps")
	})

	t.Run("prefers the exact-name hit over a higher-ranked one", func(t *testing.T) {
		t.Parallel()

		// The stored record lives under "en"; asking for "zh" forces the
		// direct lookups to miss and resolution to go through the index.
		commands := &mock.CommandService{
			FindCommandFn: func(_ context.Context, lang, name string) (*cheatdex.Command, error) {
				if lang == "en" {
					switch name {
					case "git-commit":
						return &cheatdex.Command{Name: "git-commit", Description: "Record changes", Lang: "en"}, nil
					case "git-commit-tree":
						return &cheatdex.Command{Name: "git-commit-tree", Description: "Create a commit object", Lang: "en"}, nil
					}
				}
				return nil, cheatdex.Errorf(cheatdex.ENOTFOUND, "command not found: %s:%s", lang, name)
			},
		}
		index := &mock.Index{
			SearchFn: func(_ context.Context, query, lang string, limit int) (*cheatdex.SearchResponse, error) {
				return &cheatdex.SearchResponse{
					Total: 2,
					Results: []*cheatdex.SearchResult{
						{Name: "git-commit-tree", Lang: "en", Score: 2.0},
						{Name: "git-commit", Lang: "en", Score: 1.0},
					},
				}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Commands = commands
		deps.Index = index

		cmd := &main.ShowCmd{Name: "git commit", Lang: "zh"}
		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "git-commit - Record changes")
	})

	t.Run("suggests learn when nothing matches", func(t *testing.T) {
		t.Parallel()

		commands := &mock.CommandService{
			FindCommandFn: func(_ context.Context, lang, name string) (*cheatdex.Command, error) {
				return nil, cheatdex.Errorf(cheatdex.ENOTFOUND, "command not found: %s:%s", lang, name)
			},
		}
		index := &mock.Index{
			SearchFn: func(_ context.Context, _, _ string, _ int) (*cheatdex.SearchResponse, error) {
				return &cheatdex.SearchResponse{}, nil
			},
		}

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Commands = commands
		deps.Index = index

		cmd := &main.ShowCmd{Name: "ghost", Lang: "en"}
		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, cheatdex.ENOTFOUND, cheatdex.ErrorCode(err))
		assert.Contains(t, stderr.String(), "cheatdex learn ghost")
	})
}
