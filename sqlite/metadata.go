package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/cheatdex/cheatdex"
)

// Ensure service implements interface.
var _ cheatdex.MetadataService = (*MetadataService)(nil)

// MetadataService persists dataset metadata in a single-row table.
type MetadataService struct {
	db *DB
}

// NewMetadataService returns a new instance of MetadataService.
func NewMetadataService(db *DB) *MetadataService {
	return &MetadataService{db: db}
}

// SaveMetadata stores the metadata record, replacing any previous one.
func (s *MetadataService) SaveMetadata(ctx context.Context, meta *cheatdex.Metadata) error {
	languages, err := json.Marshal(meta.Languages)
	if err != nil {
		return cheatdex.Errorf(cheatdex.EINTERNAL, "failed to encode languages: %v", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO metadata (id, version, command_count, last_update, languages)
		VALUES (1, ?, ?, ?, ?)
	`, meta.Version, meta.CommandCount, meta.LastUpdate.UTC().Format(time.RFC3339), string(languages))
	if err != nil {
		return cheatdex.Errorf(cheatdex.EINTERNAL, "failed to save metadata: %v", err)
	}
	return nil
}

// FindMetadata retrieves the metadata record.
func (s *MetadataService) FindMetadata(ctx context.Context) (*cheatdex.Metadata, error) {
	var meta cheatdex.Metadata
	var lastUpdate, languages string
	err := s.db.QueryRowContext(ctx, `
		SELECT version, command_count, last_update, languages
		FROM metadata WHERE id = 1
	`).Scan(&meta.Version, &meta.CommandCount, &lastUpdate, &languages)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cheatdex.Errorf(cheatdex.ENOTFOUND, "metadata not found")
	} else if err != nil {
		return nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to find metadata: %v", err)
	}

	if meta.LastUpdate, err = time.Parse(time.RFC3339, lastUpdate); err != nil {
		return nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to parse last update: %v", err)
	}
	if err := json.Unmarshal([]byte(languages), &meta.Languages); err != nil {
		return nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to decode languages: %v", err)
	}
	return &meta, nil
}
