package gse_test

import (
	"strings"
	"testing"

	"github.com/cheatdex/cheatdex/gse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenizer(t *testing.T) *gse.Tokenizer {
	t.Helper()
	tok, err := gse.NewTokenizer()
	require.NoError(t, err)
	return tok
}

func TestTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	tok := newTokenizer(t)

	t.Run("latin words pass through", func(t *testing.T) {
		assert.Equal(t, "docker", tok.Tokenize("docker"))
	})

	t.Run("segments contiguous CJK text", func(t *testing.T) {
		tokens := strings.Fields(tok.Tokenize("复制文件"))
		assert.GreaterOrEqual(t, len(tokens), 2)
	})

	t.Run("mixed latin and CJK", func(t *testing.T) {
		out := tok.Tokenize("tar 压缩文件")
		assert.Contains(t, out, "tar")
		tokens := strings.Fields(out)
		assert.GreaterOrEqual(t, len(tokens), 3)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", tok.Tokenize(""))
	})

	t.Run("whitespace only", func(t *testing.T) {
		assert.Equal(t, "", tok.Tokenize("   \t\n"))
	})
}

func TestTokenizer_TokenizeQuery(t *testing.T) {
	t.Parallel()

	tok := newTokenizer(t)

	t.Run("plain word is unchanged", func(t *testing.T) {
		assert.Equal(t, "docker", tok.TokenizeQuery("docker"))
	})

	t.Run("escapes hyphens and braces", func(t *testing.T) {
		out := tok.TokenizeQuery("docker ps -a --format '{{.Names}}'")

		assert.NotContains(t, out, " -a")
		assert.Contains(t, out, `\-`)
		assert.Contains(t, out, `\{`)
		assert.Contains(t, out, `\}`)
		// No unescaped special survives.
		for i := 0; i < len(out); i++ {
			switch out[i] {
			case '-', '{', '}', '*', '?', ':':
				require.Greater(t, i, 0, "special at start must be escaped")
				assert.Equal(t, byte('\\'), out[i-1], "unescaped %q at %d in %q", out[i], i, out)
			}
		}
	})

	t.Run("escapes every character in the fixed set", func(t *testing.T) {
		for _, c := range `+-!(){}[]^"~*?:\/` {
			out := tok.TokenizeQuery("a" + string(c) + "b")
			assert.Contains(t, out, `\`+string(c), "character %q", c)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", tok.TokenizeQuery(""))
	})

	t.Run("all-special input", func(t *testing.T) {
		out := tok.TokenizeQuery(`*?:\`)
		for i := 0; i < len(out); i++ {
			if out[i] != '\\' && out[i] != ' ' {
				assert.Equal(t, byte('\\'), out[i-1])
			}
		}
	})
}
