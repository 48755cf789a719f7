package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/cheatdex/cheatdex"
	"github.com/cheatdex/cheatdex/archive"
	"github.com/cheatdex/cheatdex/bleve"
	"github.com/cheatdex/cheatdex/goldmark"
	"github.com/cheatdex/cheatdex/gse"
	"github.com/cheatdex/cheatdex/help"
	cheatslog "github.com/cheatdex/cheatdex/slog"
	"github.com/cheatdex/cheatdex/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Data directory holding the database and index. Set before calling Run().
	DataDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Search index. Exposed for end-to-end testing.
	Index cheatdex.Index

	// Services for end-to-end testing.
	CommandService  cheatdex.CommandService
	MetadataService cheatdex.MetadataService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DataDir: defaultDataDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Index != nil {
		if err := m.Index.Close(); err != nil {
			return err
		}
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cheatdex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cheatdex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(filepath.Join(m.DataDir, "cheatdex.db"))
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CHEATDEX_DATA to use a different data directory\n")
		return fmt.Errorf("failed to open database in %q: %w", m.DataDir, err)
	}
	defer m.Close()

	// Open tokenizer and search index
	tokenizer, err := gse.NewTokenizer()
	if err != nil {
		return fmt.Errorf("failed to load tokenizer dictionary: %w", err)
	}
	index, err := bleve.Open(filepath.Join(m.DataDir, "index.bleve"), tokenizer)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: run 'cheatdex reset --force' if the index is corrupted\n")
		return fmt.Errorf("failed to open search index in %q: %w", m.DataDir, err)
	}
	m.Index = cheatslog.NewLoggingIndex(index, logger)

	// Wire core services into dependencies
	m.CommandService = sqlite.NewCommandService(m.DB)
	m.MetadataService = sqlite.NewMetadataService(m.DB)
	deps.DB = m.DB
	deps.Commands = m.CommandService
	deps.Metadata = m.MetadataService
	deps.Index = m.Index
	deps.Importer = archive.NewImporter(goldmark.NewParser())
	deps.Strategies = help.DefaultStrategies()
	deps.Listers = []cheatdex.CandidateLister{
		&help.ManLister{Section: "1"},
		&help.PathLister{},
	}

	return kongCtx.Run(deps)
}

func defaultDataDir() string {
	if dir := os.Getenv("CHEATDEX_DATA"); dir != "" {
		_ = os.MkdirAll(dir, 0755)
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	dir := filepath.Join(home, ".cheatdex")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
