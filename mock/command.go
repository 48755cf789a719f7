// Package mock provides mock implementations of cheatdex interfaces for
// testing.
package mock

import (
	"context"

	"github.com/cheatdex/cheatdex"
)

var _ cheatdex.CommandService = (*CommandService)(nil)

// CommandService is a mock implementation of cheatdex.CommandService.
type CommandService struct {
	SaveCommandFn       func(ctx context.Context, cmd *cheatdex.Command) error
	SaveCommandsFn      func(ctx context.Context, cmds []*cheatdex.Command) error
	FindCommandFn       func(ctx context.Context, lang, name string) (*cheatdex.Command, error)
	FindCommandsFn      func(ctx context.Context, filter cheatdex.CommandFilter) ([]*cheatdex.Command, error)
	DeleteAllCommandsFn func(ctx context.Context) error
	CountCommandsFn     func(ctx context.Context) (int, error)
}

func (s *CommandService) SaveCommand(ctx context.Context, cmd *cheatdex.Command) error {
	return s.SaveCommandFn(ctx, cmd)
}

func (s *CommandService) SaveCommands(ctx context.Context, cmds []*cheatdex.Command) error {
	return s.SaveCommandsFn(ctx, cmds)
}

func (s *CommandService) FindCommand(ctx context.Context, lang, name string) (*cheatdex.Command, error) {
	return s.FindCommandFn(ctx, lang, name)
}

func (s *CommandService) FindCommands(ctx context.Context, filter cheatdex.CommandFilter) ([]*cheatdex.Command, error) {
	return s.FindCommandsFn(ctx, filter)
}

func (s *CommandService) DeleteAllCommands(ctx context.Context) error {
	return s.DeleteAllCommandsFn(ctx)
}

func (s *CommandService) CountCommands(ctx context.Context) (int, error) {
	return s.CountCommandsFn(ctx)
}

var _ cheatdex.MetadataService = (*MetadataService)(nil)

// MetadataService is a mock implementation of cheatdex.MetadataService.
type MetadataService struct {
	SaveMetadataFn func(ctx context.Context, meta *cheatdex.Metadata) error
	FindMetadataFn func(ctx context.Context) (*cheatdex.Metadata, error)
}

func (s *MetadataService) SaveMetadata(ctx context.Context, meta *cheatdex.Metadata) error {
	return s.SaveMetadataFn(ctx, meta)
}

func (s *MetadataService) FindMetadata(ctx context.Context) (*cheatdex.Metadata, error) {
	return s.FindMetadataFn(ctx)
}
