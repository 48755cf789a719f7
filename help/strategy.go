// Package help captures help text for locally installed commands and parses
// it into command records with best-effort heuristics.
package help

import (
	"context"
	"os/exec"
	"regexp"
	"runtime"
	"strings"

	"github.com/cheatdex/cheatdex"
)

// Ensure strategies implement interface.
var _ cheatdex.HelpStrategy = (*HelpFlag)(nil)
var _ cheatdex.HelpStrategy = (*ManualPage)(nil)
var _ cheatdex.HelpStrategy = (*PowerShellHelp)(nil)
var _ cheatdex.HelpStrategy = (*ConsoleHelp)(nil)

// HelpFlag captures help by invoking the command with a help flag
// (typically "--help" or "-h").
type HelpFlag struct {
	Flag string
}

func (s *HelpFlag) Name() string { return s.Flag }

func (s *HelpFlag) Attempt(ctx context.Context, command string) (*cheatdex.HelpOutput, error) {
	// Help text often goes to stderr, and some tools exit non-zero even
	// when they print usable usage, so capture both streams and judge the
	// text rather than the exit status.
	out, err := exec.CommandContext(ctx, command, s.Flag).CombinedOutput()
	text := strings.TrimSpace(string(out))
	if !IsValidHelp(text) {
		if err != nil {
			return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "%s %s: %v", command, s.Flag, err)
		}
		return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "%s %s: output failed validity check", command, s.Flag)
	}
	return &cheatdex.HelpOutput{Text: text, Source: s.Flag}, nil
}

// ManualPage captures help from the system manual, rendered as plain text.
type ManualPage struct {
	Section string // optional manual section, e.g. "1"
}

func (s *ManualPage) Name() string { return "man" }

func (s *ManualPage) Attempt(ctx context.Context, command string) (*cheatdex.HelpOutput, error) {
	args := []string{}
	if s.Section != "" {
		args = append(args, s.Section)
	}
	args = append(args, command)

	cmd := exec.CommandContext(ctx, "man", args...)
	cmd.Env = append(cmd.Environ(),
		"MANPAGER=cat",
		"MANWIDTH=80",
		"GROFF_NO_SGR=1",
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "man %s: %v", command, err)
	}

	text := strings.TrimSpace(stripOverstrike(stripANSI(string(out))))
	if !IsValidHelp(text) {
		return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "man %s: output failed validity check", command)
	}
	return &cheatdex.HelpOutput{Text: text, Source: "man"}, nil
}

// PowerShellHelp captures cmdlet help via Get-Help on Windows.
type PowerShellHelp struct{}

func (s *PowerShellHelp) Name() string { return "Get-Help" }

func (s *PowerShellHelp) Attempt(ctx context.Context, command string) (*cheatdex.HelpOutput, error) {
	out, err := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command",
		"Get-Help "+command+" -Detailed").CombinedOutput()
	if err != nil {
		return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "Get-Help %s: %v", command, err)
	}
	text := strings.TrimSpace(string(out))
	if !IsValidHelp(text) {
		return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "Get-Help %s: output failed validity check", command)
	}
	return &cheatdex.HelpOutput{Text: text, Source: "Get-Help"}, nil
}

// ConsoleHelp captures built-in console help via "help <command>" on Windows.
type ConsoleHelp struct{}

func (s *ConsoleHelp) Name() string { return "help" }

func (s *ConsoleHelp) Attempt(ctx context.Context, command string) (*cheatdex.HelpOutput, error) {
	out, err := exec.CommandContext(ctx, "cmd", "/c", "help", command).CombinedOutput()
	if err != nil {
		return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "help %s: %v", command, err)
	}
	text := strings.TrimSpace(string(out))
	if !IsValidHelp(text) {
		return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE, "help %s: output failed validity check", command)
	}
	return &cheatdex.HelpOutput{Text: text, Source: "help"}, nil
}

// DefaultStrategies returns the acquisition fallback chain for the current
// platform, probing at runtime for available tooling.
func DefaultStrategies() []cheatdex.HelpStrategy {
	strategies := []cheatdex.HelpStrategy{
		&HelpFlag{Flag: "--help"},
		&HelpFlag{Flag: "-h"},
	}
	if runtime.GOOS == "windows" {
		strategies = append(strategies, &HelpFlag{Flag: "/?"})
		if _, err := exec.LookPath("powershell"); err == nil {
			strategies = append(strategies, &PowerShellHelp{})
		}
		strategies = append(strategies, &ConsoleHelp{})
		return strategies
	}
	if _, err := exec.LookPath("man"); err == nil {
		strategies = append(strategies, &ManualPage{})
	}
	return strategies
}

// Capture tries each strategy in order and returns the first valid output.
// When every strategy fails it returns EUNAVAILABLE with each strategy's
// failure reason for diagnostics.
func Capture(ctx context.Context, command string, strategies []cheatdex.HelpStrategy) (*cheatdex.HelpOutput, error) {
	var reasons []string
	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out, err := s.Attempt(ctx, command)
		if err != nil {
			reasons = append(reasons, s.Name()+": "+cheatdex.ErrorMessage(err))
			continue
		}
		return out, nil
	}
	return nil, cheatdex.Errorf(cheatdex.EUNAVAILABLE,
		"no help available for %q (%s)", command, strings.Join(reasons, "; "))
}

// IsValidHelp reports whether captured text looks like real help output:
// it mentions a usage/help keyword, or is long enough to be substantive.
func IsValidHelp(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range []string{"usage", "options", "help", "commands", "synopsis", "description"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return len(text) > 50
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape sequences from terminal output.
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// stripOverstrike removes the backspace bold/underline idiom ("x\bx",
// "_\bx") that man pages emit for dumb pagers.
func stripOverstrike(s string) string {
	if !strings.ContainsRune(s, '\b') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) && runes[i+1] == '\b' {
			// Drop the overstruck character and the backspace; the
			// character that follows wins.
			i++
			continue
		}
		if runes[i] == '\b' {
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
