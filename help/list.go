package help

import (
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cheatdex/cheatdex"
)

// Ensure listers implement interface.
var _ cheatdex.CandidateLister = (*ManLister)(nil)
var _ cheatdex.CandidateLister = (*PathLister)(nil)

// ManLister enumerates learnable commands from the system manual index.
type ManLister struct {
	Section string // manual section to list, e.g. "1"
}

func (l *ManLister) Source() string { return "man" }

// List runs "man -k" (falling back to the macOS form and then apropos) and
// parses the index lines for the configured section.
func (l *ManLister) List(ctx context.Context) ([]cheatdex.Candidate, error) {
	out, err := manIndex(ctx, l.Section)
	if err != nil {
		return nil, err
	}

	var candidates []cheatdex.Candidate
	seen := make(map[string]struct{})
	for _, line := range strings.Split(out, "\n") {
		name, desc, ok := ParseManListLine(line, l.Section)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		candidates = append(candidates, cheatdex.Candidate{Name: name, Description: desc})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Name < candidates[j].Name })
	return candidates, nil
}

// manIndex captures the manual keyword index, tolerating the flag
// differences between Linux and macOS man implementations.
func manIndex(ctx context.Context, section string) (string, error) {
	// Linux man supports section filtering directly.
	if out, err := exec.CommandContext(ctx, "man", "-k", "-s", section, ".").Output(); err == nil && len(out) > 0 {
		return string(out), nil
	}

	// macOS man has no -s for -k; list everything and filter while parsing.
	if out, err := exec.CommandContext(ctx, "man", "-k", ".").Output(); err == nil && len(out) > 0 {
		return string(out), nil
	}

	out, err := exec.CommandContext(ctx, "apropos", ".").Output()
	if err != nil {
		return "", cheatdex.Errorf(cheatdex.EUNAVAILABLE, "failed to list manual pages: %v", err)
	}
	return string(out), nil
}

// ParseManListLine parses a manual index line of the form
// "command (1) - description", keeping only entries in the given section.
func ParseManListLine(line, section string) (name, desc string, ok bool) {
	if !strings.Contains(line, "("+section+")") && !strings.Contains(line, "("+section+",") {
		return "", "", false
	}

	// The name is the first token, up to a space, comma, or the section
	// marker ("command, alias (1) - description" lists aliases).
	name = strings.TrimSpace(line)
	if i := strings.IndexAny(name, "(, "); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "", "", false
	}

	if _, after, found := strings.Cut(line, " - "); found {
		desc = strings.TrimSpace(after)
	}
	return name, desc, true
}

// PathLister enumerates learnable commands by scanning the directories in
// PATH for executables.
type PathLister struct{}

func (l *PathLister) Source() string { return "path" }

func (l *PathLister) List(ctx context.Context) ([]cheatdex.Candidate, error) {
	seen := make(map[string]struct{})
	var candidates []cheatdex.Candidate

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // missing or unreadable PATH entries are common
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil || !executable(info) {
				continue
			}
			name := entry.Name()
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			candidates = append(candidates, cheatdex.Candidate{Name: name})
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Name < candidates[j].Name })
	return candidates, nil
}

func executable(info fs.FileInfo) bool {
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
