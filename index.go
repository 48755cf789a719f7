package cheatdex

import "context"

// SearchResult is one scored hit from the index.
type SearchResult struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Lang        string  `json:"lang"`
	Score       float64 `json:"score"`
}

// SearchResponse holds the results of a single search call. Total equals
// len(Results); there is no separate count beyond what was retrieved.
type SearchResponse struct {
	Total   int             `json:"total"`
	Results []*SearchResult `json:"results"`
	TookMS  int64           `json:"took_ms"`
}

// Index owns the searchable inverted index over commands.
//
// Mutating operations (Rebuild, Upsert, Clear) require exclusive access and
// make their changes visible to readers before returning. Search requires
// only shared access and observes the snapshot committed by the most recent
// mutation. No two mutating operations may run concurrently against the
// same index directory; one owning process is assumed.
type Index interface {
	// Rebuild replaces the entire index contents with one document per
	// command. Atomic per call: readers observe either the old or the
	// fully new snapshot, never a partially-rebuilt state.
	Rebuild(ctx context.Context, cmds []*Command) error

	// Upsert indexes a single command. A prior document with the same
	// (lang, name) key is replaced.
	Upsert(ctx context.Context, cmd *Command) error

	// Clear deletes all documents, leaving an empty but valid index.
	Clear(ctx context.Context) error

	// Search runs a ranked full-text query. lang, when non-empty, is
	// conjoined as an exact-match filter. At most limit results are
	// returned, ordered by descending relevance score.
	Search(ctx context.Context, query, lang string, limit int) (*SearchResponse, error)

	// Reload refreshes the reader-visible snapshot. Mutating operations
	// reload implicitly before returning; Reload exists for callers that
	// share the index directory with another writer.
	Reload() error

	// Close releases the underlying index resources.
	Close() error
}

// Tokenizer segments text for indexing and sanitizes raw query strings.
// The same segmentation is applied at index time and query time so that
// indexed terms and query terms stay comparable.
type Tokenizer interface {
	// Tokenize segments text into space-separated tokens, splitting
	// contiguous CJK runs into meaningful sub-tokens.
	Tokenize(text string) string

	// TokenizeQuery segments like Tokenize and additionally escapes every
	// character with syntactic meaning in the index's query grammar, so
	// that any user-supplied string compiles into a valid query. Escaping
	// is applied once per token, never recursively.
	TokenizeQuery(text string) string
}

// SheetParser parses canonical cheatsheet markdown into a command record.
// The name is supplied by the caller (from the archive path or filename);
// a level-1 heading in the source is ignored.
type SheetParser interface {
	// ParseSheet returns EINVALID if the source is not recognizably a
	// cheatsheet. Callers treat that as "skip and count", not as fatal.
	ParseSheet(src []byte, name, lang, platform string) (*Command, error)
}
