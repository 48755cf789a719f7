// Package archive imports cheatsheet pages from tldr-style archives and
// local files into command records.
package archive

import (
	"path"
	"strings"
)

// ClassifyPath derives (lang, platform, name) from an archive entry path
// following the convention ".../pages[.{lang}]/{platform}/{name}.md".
// A "pages" segment without a language suffix implies "en". Paths not
// matching the convention report ok=false; callers skip those entries.
func ClassifyPath(p string) (lang, platform, name string, ok bool) {
	segments := strings.Split(strings.ReplaceAll(p, `\`, "/"), "/")

	for i, seg := range segments {
		if seg != "pages" && !strings.HasPrefix(seg, "pages.") {
			continue
		}
		if i+2 >= len(segments) {
			return "", "", "", false
		}

		lang = "en"
		if rest := strings.TrimPrefix(seg, "pages"); strings.HasPrefix(rest, ".") {
			lang = rest[1:]
		}
		platform = segments[i+1]

		last := segments[len(segments)-1]
		name = strings.TrimSuffix(last, path.Ext(last))
		if lang == "" || platform == "" || name == "" {
			return "", "", "", false
		}
		return lang, platform, name, true
	}
	return "", "", "", false
}
