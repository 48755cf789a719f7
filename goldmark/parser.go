// Package goldmark parses cheatsheet markdown into command records using
// the goldmark markdown parser.
package goldmark

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/cheatdex/cheatdex"
)

// Ensure parser implements interface.
var _ cheatdex.SheetParser = (*Parser)(nil)

// Parser parses the cheatsheet markdown dialect: a level-1 heading holds
// the command name (ignored, the caller supplies it from the path), block
// quotes hold the description, and list items paired with the following
// code span form examples.
type Parser struct {
	md goldmark.Markdown
}

// NewParser returns a new instance of Parser.
func NewParser() *Parser {
	return &Parser{md: goldmark.New()}
}

// ParseSheet parses markdown source into a command. Returns EINVALID when
// the source contains nothing recognizable as a cheatsheet, so callers can
// skip the file rather than fail an import.
func (p *Parser) ParseSheet(src []byte, name, lang, platform string) (*cheatdex.Command, error) {
	doc := p.md.Parser().Parse(text.NewReader(src))

	var (
		sawHeading  bool
		descLines   []string
		pendingDesc string
		examples    []cheatdex.Example
	)

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := n.(type) {
		case *ast.Heading:
			if n.Level == 1 {
				sawHeading = true
			}
			return ast.WalkSkipChildren, nil

		case *ast.Blockquote:
			for _, line := range blockLines(n, src) {
				if !descriptionLine(line) {
					continue
				}
				descLines = append(descLines, line)
			}
			return ast.WalkSkipChildren, nil

		case *ast.ListItem:
			if desc := itemText(n, src); desc != "" {
				pendingDesc = strings.TrimSuffix(desc, ":")
			}
			// Keep walking: the item may carry its code span inline.
			return ast.WalkContinue, nil

		case *ast.CodeSpan:
			code := strings.TrimSpace(nodeText(n, src))
			if code != "" && pendingDesc != "" {
				examples = append(examples, cheatdex.Example{Description: pendingDesc, Code: code})
				pendingDesc = ""
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			code := strings.TrimSpace(codeBlockText(n, src))
			if code == "" {
				return ast.WalkSkipChildren, nil
			}
			desc := pendingDesc
			if desc == "" {
				desc = "Example"
			}
			examples = append(examples, cheatdex.Example{Description: desc, Code: code})
			pendingDesc = ""
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to walk markdown: %v", err)
	}

	description := strings.Join(descLines, " ")
	if !sawHeading && description == "" && len(examples) == 0 {
		return nil, cheatdex.Errorf(cheatdex.EINVALID, "not a recognizable cheatsheet")
	}
	if description == "" {
		description = name
	}

	return &cheatdex.Command{
		Name:        name,
		Description: description,
		Category:    platform,
		Platform:    platform,
		Lang:        lang,
		Examples:    examples,
		Content:     string(src),
	}, nil
}

// descriptionLine reports whether a block-quote line belongs in the
// description. "More information" link lines and bare URL lines do not.
func descriptionLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "<") {
		return false
	}
	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "more information") || strings.Contains(trimmed, "更多信息") {
		return false
	}
	return true
}

// blockLines returns the raw source lines of a block quote, one entry per
// line. Exclusion rules apply to whole lines, so a line mixing text and a
// link ("More information: <url>.") is kept or dropped as a unit rather
// than leaking its fragments around the link.
func blockLines(n ast.Node, src []byte) []string {
	var lines []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() != ast.TypeBlock {
			continue
		}
		segs := c.Lines()
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			if s := strings.TrimSpace(string(seg.Value(src))); s != "" {
				lines = append(lines, s)
			}
		}
	}
	return lines
}

// itemText returns the text of a list item up to its first code span.
func itemText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := c.(*ast.CodeSpan); ok {
			return ast.WalkStop, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// nodeText returns the concatenated text content of a node's subtree.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(src))
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// codeBlockText returns the raw lines of a fenced code block.
func codeBlockText(n *ast.FencedCodeBlock, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}
