package help_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheatdex/cheatdex"
	"github.com/cheatdex/cheatdex/help"
	"github.com/cheatdex/cheatdex/mock"
)

func TestCapture(t *testing.T) {
	t.Parallel()

	t.Run("returns first successful strategy", func(t *testing.T) {
		t.Parallel()
		failing := &mock.HelpStrategy{
			NameFn: func() string { return "--help" },
			AttemptFn: func(ctx context.Context, command string) (*cheatdex.HelpOutput, error) {
				return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "exit status 1")
			},
		}
		succeeding := &mock.HelpStrategy{
			NameFn: func() string { return "man" },
			AttemptFn: func(ctx context.Context, command string) (*cheatdex.HelpOutput, error) {
				return &cheatdex.HelpOutput{Text: "TAR(1)\n\nNAME\ntar - an archiving utility", Source: "man"}, nil
			},
		}

		out, err := help.Capture(context.Background(), "tar",
			[]cheatdex.HelpStrategy{failing, succeeding})
		require.NoError(t, err)
		assert.Equal(t, "man", out.Source)
	})

	t.Run("does not try later strategies after success", func(t *testing.T) {
		t.Parallel()
		succeeding := &mock.HelpStrategy{
			NameFn: func() string { return "--help" },
			AttemptFn: func(ctx context.Context, command string) (*cheatdex.HelpOutput, error) {
				return &cheatdex.HelpOutput{Text: "Usage: tar", Source: "--help"}, nil
			},
		}
		var called bool
		later := &mock.HelpStrategy{
			NameFn: func() string { return "man" },
			AttemptFn: func(ctx context.Context, command string) (*cheatdex.HelpOutput, error) {
				called = true
				return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "unreachable")
			},
		}

		_, err := help.Capture(context.Background(), "tar",
			[]cheatdex.HelpStrategy{succeeding, later})
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("aggregates every failure reason", func(t *testing.T) {
		t.Parallel()
		strategy := func(name, reason string) *mock.HelpStrategy {
			return &mock.HelpStrategy{
				NameFn: func() string { return name },
				AttemptFn: func(ctx context.Context, command string) (*cheatdex.HelpOutput, error) {
					return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "%s", reason)
				},
			}
		}

		_, err := help.Capture(context.Background(), "ghost", []cheatdex.HelpStrategy{
			strategy("--help", "not found"),
			strategy("man", "no manual entry"),
		})
		require.Error(t, err)
		assert.Equal(t, cheatdex.EUNAVAILABLE, cheatdex.ErrorCode(err))
		assert.Contains(t, cheatdex.ErrorMessage(err), "--help: not found")
		assert.Contains(t, cheatdex.ErrorMessage(err), "man: no manual entry")
	})
}

func TestDefaultStrategies(t *testing.T) {
	t.Parallel()

	strategies := help.DefaultStrategies()
	require.NotEmpty(t, strategies)
	assert.Equal(t, "--help", strategies[0].Name())
	assert.Equal(t, "-h", strategies[1].Name())
}
