// Package bleve implements the command search index on the bleve full-text
// engine. One Index owns the persistent index directory; mutating calls take
// the writer lock, searches share the reader lock, and every mutation is
// applied as a single batch so readers observe either the old or the fully
// new snapshot.
package bleve

import (
	"context"
	"strings"
	"sync"
	"time"

	bleve "github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/cheatdex/cheatdex"
)

// Ensure Index implements cheatdex.Index at compile time.
var _ cheatdex.Index = (*Index)(nil)

// Index is the searchable inverted index over commands, backed by a
// persistent directory. The tokenizer is injected and shared by the index
// and query paths so both sides segment text identically.
type Index struct {
	mu        sync.RWMutex
	idx       bleve.Index
	tokenizer cheatdex.Tokenizer
}

// Open opens the index at path, creating it if the directory does not hold
// an index yet.
func Open(path string, tokenizer cheatdex.Tokenizer) (*Index, error) {
	idx, err := bleve.Open(path)
	if err == bleve.ErrorIndexPathDoesNotExist {
		m, merr := buildMapping()
		if merr != nil {
			return nil, merr
		}
		idx, err = bleve.New(path, m)
	}
	if err != nil {
		return nil, err
	}
	return &Index{idx: idx, tokenizer: tokenizer}, nil
}

// textAnalyzer is the free-text analyzer: unicode word segmentation plus
// lower-casing. It keeps alphanumeric runs whole, so terms like "base64"
// and "7z" survive as single tokens.
const textAnalyzer = "alnum"

// buildMapping defines the index schema: free-text fields analyzed with the
// alphanumeric analyzer, exact-match facets with the keyword analyzer.
// Facets are excluded from the composite field so free-text queries only
// hit name, description, and content.
func buildMapping() (mapping.IndexMapping, error) {
	m := bleve.NewIndexMapping()
	if err := m.AddCustomAnalyzer(textAnalyzer, map[string]any{
		"type":          custom.Name,
		"tokenizer":     unicode.Name,
		"token_filters": []string{lowercase.Name},
	}); err != nil {
		return nil, err
	}

	text := bleve.NewTextFieldMapping()
	text.Analyzer = textAnalyzer

	content := bleve.NewTextFieldMapping()
	content.Analyzer = textAnalyzer
	content.Store = false

	exact := bleve.NewTextFieldMapping()
	exact.Analyzer = keyword.Name
	exact.IncludeInAll = false

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("name", text)
	doc.AddFieldMappingsAt("description", text)
	doc.AddFieldMappingsAt("content", content)
	doc.AddFieldMappingsAt("category", exact)
	doc.AddFieldMappingsAt("lang", exact)

	m.DefaultMapping = doc
	m.DefaultAnalyzer = textAnalyzer
	return m, nil
}

// document builds the index document for a command. The free-text fields
// are pre-segmented with the shared tokenizer; the snapshot is a copy, so
// later record mutations stay invisible until the caller re-indexes.
func (ix *Index) document(cmd *cheatdex.Command) map[string]any {
	return map[string]any{
		"name":        ix.tokenizer.Tokenize(cmd.Name),
		"description": ix.tokenizer.Tokenize(cmd.Description),
		"content":     ix.tokenizer.Tokenize(cmd.Content),
		"category":    cmd.Category,
		"lang":        cmd.Lang,
	}
}

// Rebuild replaces the entire index contents with one document per command.
// The deletes and adds are applied as one batch, so a concurrent reader sees
// either the old snapshot or the fully new one.
func (ix *Index) Rebuild(ctx context.Context, cmds []*cheatdex.Command) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	batch := ix.idx.NewBatch()

	ids, err := ix.allDocIDs(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		batch.Delete(id)
	}

	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := batch.Index(cmd.Key(), ix.document(cmd)); err != nil {
			return err
		}
	}

	return ix.idx.Batch(batch)
}

// Upsert indexes a single command. The document ID is the (lang, name)
// identity key, so a prior document with the same key is replaced rather
// than duplicated.
func (ix *Index) Upsert(ctx context.Context, cmd *cheatdex.Command) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return ix.idx.Index(cmd.Key(), ix.document(cmd))
}

// Clear deletes all documents, leaving an empty but valid index.
func (ix *Index) Clear(ctx context.Context) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ids, err := ix.allDocIDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	batch := ix.idx.NewBatch()
	for _, id := range ids {
		batch.Delete(id)
	}
	return ix.idx.Batch(batch)
}

// Search runs a ranked full-text query over name, description, and content.
// The raw query is segmented and escaped first, so adversarial input
// compiles instead of raising a syntax error. A non-empty lang is conjoined
// as an exact-match clause.
func (ix *Index) Search(ctx context.Context, rawQuery, lang string, limit int) (*cheatdex.SearchResponse, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	start := time.Now()

	q := ix.compileQuery(rawQuery)
	if lang != "" {
		langQuery := bleve.NewTermQuery(lang)
		langQuery.SetField("lang")
		q = bleve.NewConjunctionQuery(q, langQuery)
	}

	req := bleve.NewSearchRequestOptions(q, limit, 0, false)
	req.Fields = []string{"description", "category"}

	res, err := ix.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}

	results := make([]*cheatdex.SearchResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		// The stored name field is tokenized; the document ID carries the
		// exact (lang, name) key, so results resolve back to store lookups.
		lang, name, _ := strings.Cut(hit.ID, ":")
		results = append(results, &cheatdex.SearchResult{
			Name:        name,
			Description: fieldString(hit.Fields, "description"),
			Category:    fieldString(hit.Fields, "category"),
			Lang:        lang,
			Score:       hit.Score,
		})
	}

	return &cheatdex.SearchResponse{
		Total:   len(results),
		Results: results,
		TookMS:  time.Since(start).Milliseconds(),
	}, nil
}

// compileQuery turns the raw query into an executable query. An empty
// sanitized query matches nothing. If the escaped string still fails the
// query-string grammar, the query falls back to plain term matching so the
// valid-compile guarantee holds for every input.
func (ix *Index) compileQuery(rawQuery string) query.Query {
	sanitized := ix.tokenizer.TokenizeQuery(rawQuery)
	if strings.TrimSpace(sanitized) == "" {
		return bleve.NewMatchNoneQuery()
	}

	qs := bleve.NewQueryStringQuery(sanitized)
	if parsed, err := qs.Parse(); err == nil {
		return parsed
	}
	return bleve.NewMatchQuery(sanitized)
}

// DocCount returns the number of documents visible to readers.
func (ix *Index) DocCount() (uint64, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.idx.DocCount()
}

// Reload refreshes the reader-visible snapshot. Batches are visible once a
// mutating call returns, so this only revalidates the reader path; it exists
// for callers sharing the directory with another writer.
func (ix *Index) Reload() error {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	_, err := ix.idx.DocCount()
	return err
}

// Close releases the underlying index.
func (ix *Index) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.idx.Close()
}

// allDocIDs lists every document ID currently in the index. Callers hold
// the writer lock.
func (ix *Index) allDocIDs(ctx context.Context) ([]string, error) {
	count, err := ix.idx.DocCount()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	req := bleve.NewSearchRequestOptions(bleve.NewMatchAllQuery(), int(count), 0, false)
	res, err := ix.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(res.Hits))
	for _, hit := range res.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}

// fieldString extracts a stored string field from a hit.
func fieldString(fields map[string]any, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}
	return ""
}
