package goldmark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheatdex/cheatdex"
	"github.com/cheatdex/cheatdex/goldmark"
)

func TestParser_ParseSheet(t *testing.T) {
	t.Parallel()

	t.Run("parses a canonical cheatsheet", func(t *testing.T) {
		t.Parallel()
		src := "# tar\n> Archive files.\n\n- Create archive:\n\n`tar -cvf {{file}}`\n"

		cmd, err := goldmark.NewParser().ParseSheet([]byte(src), "tar", "en", "common")
		require.NoError(t, err)

		assert.Equal(t, "tar", cmd.Name)
		assert.Equal(t, "Archive files.", cmd.Description)
		assert.Equal(t, "en", cmd.Lang)
		assert.Equal(t, "common", cmd.Platform)
		require.Len(t, cmd.Examples, 1)
		assert.Equal(t, "Create archive", cmd.Examples[0].Description)
		assert.Equal(t, "tar -cvf {{file}}", cmd.Examples[0].Code)
		assert.Equal(t, src, cmd.Content)
	})

	t.Run("joins multiple description lines with a space", func(t *testing.T) {
		t.Parallel()
		src := "# curl\n> Transfers data from or to a server.\n> Supports most protocols.\n"

		cmd, err := goldmark.NewParser().ParseSheet([]byte(src), "curl", "en", "common")
		require.NoError(t, err)
		assert.Equal(t, "Transfers data from or to a server. Supports most protocols.", cmd.Description)
	})

	t.Run("excludes more-information links from description", func(t *testing.T) {
		t.Parallel()
		src := "# docker\n> Manage containers.\n> More information: <https://docs.docker.com>.\n\n- List running containers:\n\n`docker ps`\n"

		cmd, err := goldmark.NewParser().ParseSheet([]byte(src), "docker", "en", "common")
		require.NoError(t, err)
		assert.Equal(t, "Manage containers.", cmd.Description)
	})

	t.Run("no fragment of a link line leaks into the description", func(t *testing.T) {
		t.Parallel()
		// The link line parses into text, autolink, and trailing-period
		// nodes; exclusion must drop the whole line, not just the part
		// carrying the keyword.
		src := "# docker\n> Manage containers.\n> More information: <https://docs.docker.com>.\n> <https://example.com>\n\n- List running containers:\n\n`docker ps`\n"

		cmd, err := goldmark.NewParser().ParseSheet([]byte(src), "docker", "en", "common")
		require.NoError(t, err)
		assert.Equal(t, "Manage containers.", cmd.Description)
	})

	t.Run("excludes chinese more-information links", func(t *testing.T) {
		t.Parallel()
		src := "# docker\n> 管理容器。\n> 更多信息：<https://docs.docker.com>.\n"

		cmd, err := goldmark.NewParser().ParseSheet([]byte(src), "docker", "zh", "common")
		require.NoError(t, err)
		assert.Equal(t, "管理容器。", cmd.Description)
	})

	t.Run("pairs each list item with the following code span", func(t *testing.T) {
		t.Parallel()
		src := "# git\n> Version control.\n\n- Clone a repository:\n\n`git clone {{url}}`\n\n- Show status:\n\n`git status`\n"

		cmd, err := goldmark.NewParser().ParseSheet([]byte(src), "git", "en", "common")
		require.NoError(t, err)
		require.Len(t, cmd.Examples, 2)
		assert.Equal(t, "Clone a repository", cmd.Examples[0].Description)
		assert.Equal(t, "git clone {{url}}", cmd.Examples[0].Code)
		assert.Equal(t, "Show status", cmd.Examples[1].Description)
		assert.Equal(t, "git status", cmd.Examples[1].Code)
	})

	t.Run("falls back to name when no description present", func(t *testing.T) {
		t.Parallel()
		src := "# mystery\n\n- Run it:\n\n`mystery --go`\n"

		cmd, err := goldmark.NewParser().ParseSheet([]byte(src), "mystery", "en", "linux")
		require.NoError(t, err)
		assert.Equal(t, "mystery", cmd.Description)
	})

	t.Run("accepts fenced code blocks", func(t *testing.T) {
		t.Parallel()
		src := "# make\n> Build automation.\n\n- Run default target:\n\n```\nmake\n```\n"

		cmd, err := goldmark.NewParser().ParseSheet([]byte(src), "make", "en", "common")
		require.NoError(t, err)
		require.Len(t, cmd.Examples, 1)
		assert.Equal(t, "Run default target", cmd.Examples[0].Description)
		assert.Equal(t, "make", cmd.Examples[0].Code)
	})

	t.Run("returns EINVALID for unrecognizable input", func(t *testing.T) {
		t.Parallel()
		_, err := goldmark.NewParser().ParseSheet([]byte("just some prose with nothing structured\n"), "x", "en", "common")
		require.Error(t, err)
		assert.Equal(t, cheatdex.EINVALID, cheatdex.ErrorCode(err))
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()
		_, err := goldmark.NewParser().ParseSheet(nil, "x", "en", "common")
		require.Error(t, err)
		assert.Equal(t, cheatdex.EINVALID, cheatdex.ErrorCode(err))
	})
}
