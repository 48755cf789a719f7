package help

import (
	"runtime"
	"strings"

	"github.com/cheatdex/cheatdex"
)

const (
	maxDescriptionLines = 20
	maxDescriptionLen   = 200
	maxExamples         = 10
	maxOptionExamples   = 5
)

// Parse converts captured help text into a command record. It is a total
// function: every input yields a usable record, falling back to a synthetic
// description when nothing in the text qualifies.
func Parse(name string, out *cheatdex.HelpOutput) *cheatdex.Command {
	lines := strings.Split(out.Text, "\n")
	return &cheatdex.Command{
		Name:        name,
		Description: extractDescription(lines, name),
		Category:    "local",
		Platform:    Platform(),
		Lang:        "local",
		Examples:    extractExamples(lines, name),
		Content:     "Source: " + out.Source + "\n\n" + out.Text,
	}
}

// Platform returns the coarse platform tag for the running system.
func Platform() string {
	switch runtime.GOOS {
	case "windows":
		return "windows"
	case "darwin":
		return "osx"
	default:
		return "linux"
	}
}

// extractDescription scans the opening lines of help output for something
// that reads like a summary. A manual-page "name - description" line wins
// immediately; otherwise consecutive prose lines are collected.
func extractDescription(lines []string, name string) string {
	var desc strings.Builder
	seen := 0

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if desc.Len() > 0 {
				break
			}
			continue
		}
		seen++
		if seen > maxDescriptionLines {
			break
		}

		if strings.HasPrefix(strings.ToLower(line), "usage") {
			continue
		}

		// Manual-page idiom: "command - description".
		if strings.HasPrefix(line, name) && strings.Contains(line, " - ") {
			if _, after, ok := strings.Cut(line, " - "); ok {
				if after = strings.TrimSpace(after); after != "" {
					return after
				}
			}
		}

		// Skip flag-looking lines.
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "[") || strings.Contains(line, "--") {
			continue
		}

		if desc.Len() > 0 {
			desc.WriteByte(' ')
		}
		desc.WriteString(line)
		if desc.Len() > maxDescriptionLen {
			break
		}
	}

	if desc.Len() == 0 {
		return cheatdex.SyntheticDescription(name)
	}
	return strings.TrimSpace(strings.ReplaceAll(desc.String(), "  ", " "))
}

// extractExamples finds invocation lines anywhere in the text, pairing each
// with the nearest preceding short prose line. When none exist, common
// options are converted into synthetic examples instead.
func extractExamples(lines []string, name string) []cheatdex.Example {
	var examples []cheatdex.Example
	var pendingDesc string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		// A "name - description" line is a manual-page summary, not an
		// invocation.
		case strings.HasPrefix(trimmed, name+" - "):
			pendingDesc = ""

		case strings.HasPrefix(trimmed, name) || strings.HasPrefix(trimmed, "$ "+name):
			code := strings.TrimPrefix(trimmed, "$ ")
			desc := pendingDesc
			pendingDesc = ""
			if desc == "" {
				desc = inlineDescription(trimmed)
			}
			examples = append(examples, cheatdex.Example{Description: desc, Code: code})
			if len(examples) >= maxExamples {
				return examples
			}

		case trimmed != "" && !strings.HasPrefix(trimmed, "-") &&
			!strings.HasPrefix(trimmed, "[") && len(trimmed) < 100:
			pendingDesc = strings.TrimSuffix(trimmed, ":")
		}
	}

	if len(examples) == 0 {
		examples = optionExamples(lines, name)
	}
	return examples
}

// optionExamples converts flag lines from an Options/Flags section into
// synthetic "name --flag" examples.
func optionExamples(lines []string, name string) []cheatdex.Example {
	var examples []cheatdex.Example
	inOptions := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if strings.HasPrefix(lower, "options") || strings.HasPrefix(lower, "flags") {
			inOptions = true
			continue
		}
		if !inOptions || !strings.HasPrefix(trimmed, "-") {
			continue
		}

		flag, desc, ok := ParseOptionLine(trimmed)
		if !ok {
			continue
		}
		examples = append(examples, cheatdex.Example{
			Description: desc,
			Code:        name + " " + flag,
		})
		if len(examples) >= maxOptionExamples {
			break
		}
	}
	return examples
}

// ParseOptionLine splits an option line of the form
// "-v, --verbose  Enable verbose mode" into its flag and description,
// preferring the long-form flag when one exists.
func ParseOptionLine(line string) (flag, desc string, ok bool) {
	flags, rest, found := strings.Cut(line, "  ")
	if !found {
		return "", "", false
	}
	flags, desc = strings.TrimSpace(flags), strings.TrimSpace(rest)
	if flags == "" || desc == "" {
		return "", "", false
	}

	parts := strings.Split(flags, ",")
	flag = strings.TrimSpace(parts[0])
	for _, p := range parts {
		if p = strings.TrimSpace(p); strings.HasPrefix(p, "--") {
			flag = p
			break
		}
	}
	if flag == "" {
		return "", "", false
	}
	return flag, desc, true
}

// inlineDescription pulls a trailing "# comment" off an example line, or
// falls back to a generic label.
func inlineDescription(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		if s := strings.TrimSpace(line[i+1:]); s != "" {
			return s
		}
	}
	return "Example usage"
}
