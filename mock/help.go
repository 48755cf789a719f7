package mock

import (
	"context"

	"github.com/cheatdex/cheatdex"
)

var _ cheatdex.HelpStrategy = (*HelpStrategy)(nil)

// HelpStrategy is a mock implementation of cheatdex.HelpStrategy.
type HelpStrategy struct {
	NameFn    func() string
	AttemptFn func(ctx context.Context, command string) (*cheatdex.HelpOutput, error)
}

func (s *HelpStrategy) Name() string {
	return s.NameFn()
}

func (s *HelpStrategy) Attempt(ctx context.Context, command string) (*cheatdex.HelpOutput, error) {
	return s.AttemptFn(ctx, command)
}

var _ cheatdex.CandidateLister = (*CandidateLister)(nil)

// CandidateLister is a mock implementation of cheatdex.CandidateLister.
type CandidateLister struct {
	SourceFn func() string
	ListFn   func(ctx context.Context) ([]cheatdex.Candidate, error)
}

func (l *CandidateLister) Source() string {
	return l.SourceFn()
}

func (l *CandidateLister) List(ctx context.Context) ([]cheatdex.Candidate, error) {
	return l.ListFn(ctx)
}

var _ cheatdex.SheetParser = (*SheetParser)(nil)

// SheetParser is a mock implementation of cheatdex.SheetParser.
type SheetParser struct {
	ParseSheetFn func(src []byte, name, lang, platform string) (*cheatdex.Command, error)
}

func (p *SheetParser) ParseSheet(src []byte, name, lang, platform string) (*cheatdex.Command, error) {
	return p.ParseSheetFn(src, name, lang, platform)
}
