// Package gse implements language-aware tokenization on the gse segmenter.
// The same segmentation is applied when building index documents and when
// compiling queries, keeping indexed terms and query terms comparable.
package gse

import (
	"strings"

	"github.com/cheatdex/cheatdex"
	"github.com/go-ego/gse"
)

// Ensure Tokenizer implements cheatdex.Tokenizer at compile time.
var _ cheatdex.Tokenizer = (*Tokenizer)(nil)

// querySpecials are the characters with syntactic meaning in the index's
// query grammar. Each occurrence is backslash-prefixed once per token at
// query time so that any user-supplied string compiles into a valid query.
const querySpecials = `+-!(){}[]^"~*?:\/`

// Tokenizer segments mixed Latin/CJK text using a dictionary-driven
// segmenter. Each instance carries its own dictionary; construct fresh
// instances in tests for isolation.
type Tokenizer struct {
	seg gse.Segmenter
}

// NewTokenizer creates a Tokenizer with the embedded dictionary loaded.
func NewTokenizer() (*Tokenizer, error) {
	t := &Tokenizer{}
	if err := t.seg.LoadDict(); err != nil {
		return nil, err
	}
	return t, nil
}

// Tokenize segments text into space-separated tokens. Contiguous CJK runs
// are split into dictionary words rather than kept as multi-character blobs;
// Latin words pass through unchanged. Lower-casing is left to the index's
// analyzer.
func (t *Tokenizer) Tokenize(text string) string {
	return strings.Join(t.cut(text), " ")
}

// TokenizeQuery segments like Tokenize and escapes every syntactically
// significant character in each token.
func (t *Tokenizer) TokenizeQuery(text string) string {
	tokens := t.cut(text)
	escaped := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		escaped = append(escaped, escapeToken(tok))
	}
	return strings.Join(escaped, " ")
}

// cut segments text and drops whitespace-only tokens.
func (t *Tokenizer) cut(text string) []string {
	var tokens []string
	for _, tok := range t.seg.Cut(text, true) {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// escapeToken backslash-prefixes each special character. Applied once per
// token: existing backslashes are escaped like any other special, so the
// result never grows recursively within a single call.
func escapeToken(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for _, r := range s {
		if strings.ContainsRune(querySpecials, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
