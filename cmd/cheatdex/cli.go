package main

import (
	"context"
	"io"

	"github.com/cheatdex/cheatdex"
	"github.com/cheatdex/cheatdex/archive"
	"github.com/cheatdex/cheatdex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Commands   cheatdex.CommandService
	Metadata   cheatdex.MetadataService
	Index      cheatdex.Index
	Importer   *archive.Importer
	Strategies []cheatdex.HelpStrategy
	Listers    []cheatdex.CandidateLister
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Search   SearchCmd   `cmd:"" help:"Search cheatsheets by keyword"`
	Show     ShowCmd     `cmd:"" help:"Show the cheatsheet for a command"`
	Import   ImportCmd   `cmd:"" help:"Import cheatsheets from an archive or directory"`
	Learn    LearnCmd    `cmd:"" help:"Learn a command from its local help output"`
	LearnAll LearnAllCmd `cmd:"" name:"learn-all" help:"Learn every command discovered on this system"`
	Info     InfoCmd     `cmd:"" help:"Show dataset information"`
	Reset    ResetCmd    `cmd:"" help:"Delete all stored cheatsheets and the search index"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search keywords"`
	Lang  string   `short:"l" help:"Restrict results to a language"`
	Limit int      `short:"n" default:"10" help:"Maximum number of results"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Command name"`
	Lang string `short:"l" default:"en" help:"Cheatsheet language"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Path    string `arg:"" help:"Archive file (.zip, .tar, .tar.gz) or pages directory"`
	Version string `help:"Dataset version label to record"`
}

// LearnCmd is the "learn" subcommand.
type LearnCmd struct {
	Name  string `arg:"" help:"Command to learn"`
	Force bool   `short:"f" help:"Relearn even if the command is already stored"`
}

// LearnAllCmd is the "learn-all" subcommand.
type LearnAllCmd struct {
	Source string `default:"auto" enum:"auto,man,path" help:"Candidate source (auto, man, path)"`
	Prefix string `help:"Only learn commands with this name prefix"`
	Limit  int    `default:"0" help:"Stop after learning this many commands (0 = no limit)"`
	Force  bool   `short:"f" help:"Relearn commands that are already stored"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}

// ResetCmd is the "reset" subcommand.
type ResetCmd struct {
	Force bool `help:"Confirm deletion"`
}
