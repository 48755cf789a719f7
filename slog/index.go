// Package slog provides logging decorators for cheatdex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheatdex/cheatdex"
)

// Ensure LoggingIndex implements cheatdex.Index.
var _ cheatdex.Index = (*LoggingIndex)(nil)

// LoggingIndex wraps an Index with logging for mutations and searches.
type LoggingIndex struct {
	next   cheatdex.Index
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next cheatdex.Index, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Rebuild logs the document count and duration of a full rebuild.
func (ix *LoggingIndex) Rebuild(ctx context.Context, cmds []*cheatdex.Command) error {
	begin := time.Now()
	err := ix.next.Rebuild(ctx, cmds)
	ix.logger.Info("index rebuild",
		"documents", len(cmds),
		"duration", time.Since(begin),
		"err", err,
	)
	return err
}

// Upsert logs the key of the indexed command.
func (ix *LoggingIndex) Upsert(ctx context.Context, cmd *cheatdex.Command) error {
	begin := time.Now()
	err := ix.next.Upsert(ctx, cmd)
	ix.logger.Debug("index upsert",
		"key", cmd.Key(),
		"duration", time.Since(begin),
		"err", err,
	)
	return err
}

// Clear logs that the index was emptied.
func (ix *LoggingIndex) Clear(ctx context.Context) error {
	begin := time.Now()
	err := ix.next.Clear(ctx)
	ix.logger.Info("index clear",
		"duration", time.Since(begin),
		"err", err,
	)
	return err
}

// Search logs the query, result count, and duration.
func (ix *LoggingIndex) Search(ctx context.Context, query, lang string, limit int) (*cheatdex.SearchResponse, error) {
	begin := time.Now()
	resp, err := ix.next.Search(ctx, query, lang, limit)
	total := 0
	if resp != nil {
		total = resp.Total
	}
	ix.logger.Debug("index search",
		"query", query,
		"lang", lang,
		"limit", limit,
		"total", total,
		"duration", time.Since(begin),
		"err", err,
	)
	return resp, err
}

// Reload delegates to the wrapped index.
func (ix *LoggingIndex) Reload() error {
	return ix.next.Reload()
}

// Close delegates to the wrapped index.
func (ix *LoggingIndex) Close() error {
	return ix.next.Close()
}
