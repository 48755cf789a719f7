package mock

import (
	"context"

	"github.com/cheatdex/cheatdex"
)

var _ cheatdex.Index = (*Index)(nil)

// Index is a mock implementation of cheatdex.Index.
type Index struct {
	RebuildFn func(ctx context.Context, cmds []*cheatdex.Command) error
	UpsertFn  func(ctx context.Context, cmd *cheatdex.Command) error
	ClearFn   func(ctx context.Context) error
	SearchFn  func(ctx context.Context, query, lang string, limit int) (*cheatdex.SearchResponse, error)
	ReloadFn  func() error
	CloseFn   func() error
}

func (ix *Index) Rebuild(ctx context.Context, cmds []*cheatdex.Command) error {
	return ix.RebuildFn(ctx, cmds)
}

func (ix *Index) Upsert(ctx context.Context, cmd *cheatdex.Command) error {
	return ix.UpsertFn(ctx, cmd)
}

func (ix *Index) Clear(ctx context.Context) error {
	return ix.ClearFn(ctx)
}

func (ix *Index) Search(ctx context.Context, query, lang string, limit int) (*cheatdex.SearchResponse, error) {
	return ix.SearchFn(ctx, query, lang, limit)
}

func (ix *Index) Reload() error {
	if ix.ReloadFn == nil {
		return nil
	}
	return ix.ReloadFn()
}

func (ix *Index) Close() error {
	if ix.CloseFn == nil {
		return nil
	}
	return ix.CloseFn()
}

var _ cheatdex.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of cheatdex.Tokenizer.
type Tokenizer struct {
	TokenizeFn      func(text string) string
	TokenizeQueryFn func(text string) string
}

func (t *Tokenizer) Tokenize(text string) string {
	return t.TokenizeFn(text)
}

func (t *Tokenizer) TokenizeQuery(text string) string {
	return t.TokenizeQueryFn(text)
}
