package cheatdex

import (
	"context"
	"strings"
	"time"
)

// Command is one cheatsheet entry: a CLI command's purpose and example
// invocations. The pair (Lang, Name) is the identity under which a record
// is stored and indexed; saving a record with an existing key overwrites it.
type Command struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Platform    string    `json:"platform"`
	Lang        string    `json:"lang"`
	Examples    []Example `json:"examples"`
	Content     string    `json:"content"`
}

// Example is a single usage example paired with its description.
type Example struct {
	Description string `json:"description"`
	Code        string `json:"code"`
}

// Key returns the identity key "lang:name" under which the command is
// stored and indexed.
func (c *Command) Key() string {
	return c.Lang + ":" + c.Name
}

// Validate returns an error if the command contains invalid fields.
func (c *Command) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "command name required")
	}
	if c.Lang == "" {
		return Errorf(EINVALID, "command language required")
	}
	return nil
}

// Synthetic reports whether the description is the heuristic parser's
// fallback rather than text extracted from the source. Strict callers
// can use this to detect low-confidence records.
func (c *Command) Synthetic() bool {
	return c.Description == SyntheticDescription(c.Name)
}

// SyntheticDescription is the description the heuristic parser supplies
// when nothing in the captured text qualifies.
func SyntheticDescription(name string) string {
	return name + " command (learned from local system)"
}

// NormalizeName converts a user-typed command name to the archive naming
// convention: trimmed, with spaces replaced by hyphens. Callers normalize;
// parsers never do.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "-")
}

// CommandService is the record store for commands, keyed by (lang, name).
type CommandService interface {
	// SaveCommand persists a single command. An existing record with the
	// same (lang, name) key is overwritten.
	SaveCommand(ctx context.Context, cmd *Command) error

	// SaveCommands persists a batch of commands in one transaction.
	SaveCommands(ctx context.Context, cmds []*Command) error

	// FindCommand retrieves a command by its (lang, name) key.
	// Returns ENOTFOUND if no such record exists.
	FindCommand(ctx context.Context, lang, name string) (*Command, error)

	// FindCommands retrieves commands matching the filter.
	FindCommands(ctx context.Context, filter CommandFilter) ([]*Command, error)

	// DeleteAllCommands removes every stored command. It does not touch
	// the search index; callers clear both together to avoid divergence.
	DeleteAllCommands(ctx context.Context) error

	// CountCommands returns the number of stored commands.
	CountCommands(ctx context.Context) (int, error)
}

// CommandFilter represents a filter for FindCommands.
type CommandFilter struct {
	Lang *string `json:"lang"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Metadata describes the currently imported dataset.
type Metadata struct {
	Version      string    `json:"version"`
	CommandCount int       `json:"commandCount"`
	LastUpdate   time.Time `json:"lastUpdate"`
	Languages    []string  `json:"languages"`
}

// MetadataService persists dataset metadata alongside the command records.
type MetadataService interface {
	// SaveMetadata stores the metadata record, replacing any previous one.
	SaveMetadata(ctx context.Context, meta *Metadata) error

	// FindMetadata retrieves the metadata record.
	// Returns ENOTFOUND if none has been stored yet.
	FindMetadata(ctx context.Context) (*Metadata, error)
}
