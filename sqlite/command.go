package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/cheatdex/cheatdex"
)

// Ensure service implements interface.
var _ cheatdex.CommandService = (*CommandService)(nil)

// CommandService represents a service for managing commands backed by SQLite.
type CommandService struct {
	db *DB
}

// NewCommandService returns a new instance of CommandService.
func NewCommandService(db *DB) *CommandService {
	return &CommandService{db: db}
}

// SaveCommand persists a single command, overwriting any existing record
// with the same (lang, name) key.
func (s *CommandService) SaveCommand(ctx context.Context, cmd *cheatdex.Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	examples, err := json.Marshal(cmd.Examples)
	if err != nil {
		return cheatdex.Errorf(cheatdex.EINTERNAL, "failed to encode examples: %v", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO commands (lang, name, description, category, platform, examples, content, content_hash, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, cmd.Lang, cmd.Name, cmd.Description, cmd.Category, cmd.Platform,
		string(examples), cmd.Content, hashContent(cmd.Content),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return cheatdex.Errorf(cheatdex.EINTERNAL, "failed to save command: %v", err)
	}
	return nil
}

// SaveCommands persists a batch of commands in one transaction. Later
// commands in the batch overwrite earlier ones with the same key.
func (s *CommandService) SaveCommands(ctx context.Context, cmds []*cheatdex.Command) error {
	for _, cmd := range cmds {
		if err := cmd.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return cheatdex.Errorf(cheatdex.EINTERNAL, "failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO commands (lang, name, description, category, platform, examples, content, content_hash, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return cheatdex.Errorf(cheatdex.EINTERNAL, "failed to prepare statement: %v", err)
	}
	defer stmt.Close()

	savedAt := time.Now().UTC().Format(time.RFC3339)
	for _, cmd := range cmds {
		examples, err := json.Marshal(cmd.Examples)
		if err != nil {
			return cheatdex.Errorf(cheatdex.EINTERNAL, "failed to encode examples: %v", err)
		}
		if _, err := stmt.ExecContext(ctx, cmd.Lang, cmd.Name, cmd.Description,
			cmd.Category, cmd.Platform, string(examples), cmd.Content,
			hashContent(cmd.Content), savedAt); err != nil {
			return cheatdex.Errorf(cheatdex.EINTERNAL, "failed to save command %q: %v", cmd.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return cheatdex.Errorf(cheatdex.EINTERNAL, "failed to commit transaction: %v", err)
	}
	return nil
}

// FindCommand retrieves a command by its (lang, name) key.
func (s *CommandService) FindCommand(ctx context.Context, lang, name string) (*cheatdex.Command, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT lang, name, description, category, platform, examples, content
		FROM commands
		WHERE lang = ? AND name = ?
	`, lang, name)

	cmd, err := scanCommand(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cheatdex.Errorf(cheatdex.ENOTFOUND, "command not found: %s:%s", lang, name)
	} else if err != nil {
		return nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to find command: %v", err)
	}
	return cmd, nil
}

// FindCommands retrieves commands matching the filter, ordered by key.
func (s *CommandService) FindCommands(ctx context.Context, filter cheatdex.CommandFilter) ([]*cheatdex.Command, error) {
	where, args := []string{"1 = 1"}, []any{}
	if v := filter.Lang; v != nil {
		where, args = append(where, "lang = ?"), append(args, *v)
	}
	if v := filter.Name; v != nil {
		where, args = append(where, "name = ?"), append(args, *v)
	}

	query := `
		SELECT lang, name, description, category, platform, examples, content
		FROM commands
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY lang, name
	` + formatLimitOffset(filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to query commands: %v", err)
	}
	defer rows.Close()

	var cmds []*cheatdex.Command
	for rows.Next() {
		cmd, err := scanCommand(rows)
		if err != nil {
			return nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to scan command: %v", err)
		}
		cmds = append(cmds, cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to iterate commands: %v", err)
	}
	return cmds, nil
}

// DeleteAllCommands removes every stored command.
func (s *CommandService) DeleteAllCommands(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM commands`); err != nil {
		return cheatdex.Errorf(cheatdex.EINTERNAL, "failed to delete commands: %v", err)
	}
	return nil
}

// CountCommands returns the number of stored commands.
func (s *CommandService) CountCommands(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM commands`).Scan(&n); err != nil {
		return 0, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to count commands: %v", err)
	}
	return n, nil
}

// scanner abstracts sql.Row and sql.Rows for scanCommand.
type scanner interface {
	Scan(dest ...any) error
}

func scanCommand(row scanner) (*cheatdex.Command, error) {
	var cmd cheatdex.Command
	var examples string
	if err := row.Scan(&cmd.Lang, &cmd.Name, &cmd.Description, &cmd.Category,
		&cmd.Platform, &examples, &cmd.Content); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(examples), &cmd.Examples); err != nil {
		return nil, fmt.Errorf("failed to decode examples: %w", err)
	}
	return &cmd, nil
}

// formatLimitOffset returns a SQL LIMIT/OFFSET clause, or an empty string
// if no limit is set.
func formatLimitOffset(limit, offset int) string {
	if limit > 0 && offset > 0 {
		return fmt.Sprintf("LIMIT %d OFFSET %d", limit, offset)
	} else if limit > 0 {
		return fmt.Sprintf("LIMIT %d", limit)
	} else if offset > 0 {
		return fmt.Sprintf("LIMIT -1 OFFSET %d", offset)
	}
	return ""
}

// hashContent returns a stable hash of the command's content, stored for
// cheap change detection between imports.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
