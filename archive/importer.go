package archive

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cheatdex/cheatdex"
)

// Stats summarizes one import run. Files counts markdown entries seen,
// Imported the records successfully parsed, Skipped the entries rejected
// by path classification or the parser.
type Stats struct {
	Files    int
	Imported int
	Skipped  int
}

// Importer converts archives and local markdown files into command records.
// Container-level failures (unreadable archive, I/O error) abort the whole
// import; per-entry failures only increment Stats.Skipped.
type Importer struct {
	Parser cheatdex.SheetParser
}

// NewImporter returns a new instance of Importer.
func NewImporter(parser cheatdex.SheetParser) *Importer {
	return &Importer{Parser: parser}
}

// ImportArchive extracts command records from archive data, accepting zip,
// gzip-compressed tar, and plain tar containers.
func (im *Importer) ImportArchive(ctx context.Context, data []byte) ([]*cheatdex.Command, *Stats, error) {
	if zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		return im.importZip(ctx, zr)
	}
	if gz, err := gzip.NewReader(bytes.NewReader(data)); err == nil {
		defer gz.Close()
		cmds, stats, _, err := im.importTar(ctx, tar.NewReader(gz))
		return cmds, stats, err
	}
	// Plain tar has no magic header, so arbitrary bytes may parse as an
	// empty archive. Accept the result only when at least one real entry
	// was read; an entry-less tar is still a valid, merely empty, archive.
	if cmds, stats, entries, err := im.importTar(ctx, tar.NewReader(bytes.NewReader(data))); err == nil && entries > 0 {
		return cmds, stats, nil
	}
	return nil, nil, cheatdex.Errorf(cheatdex.EINVALID, "unrecognized archive format")
}

// ImportPath imports from a filesystem path: a directory is walked for
// markdown pages, an archive file is extracted, and a single markdown file
// is imported directly.
func (im *Importer) ImportPath(ctx context.Context, path string) ([]*cheatdex.Command, *Stats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, cheatdex.Errorf(cheatdex.ENOTFOUND, "failed to read %q: %v", path, err)
	}
	if info.IsDir() {
		return im.importDir(ctx, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".tar", ".gz", ".tgz":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to read %q: %v", path, err)
		}
		return im.ImportArchive(ctx, data)
	case ".md":
		stats := &Stats{}
		cmd, err := im.importFile(path, stats)
		if err != nil {
			return nil, nil, err
		}
		var cmds []*cheatdex.Command
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return cmds, stats, nil
	default:
		return nil, nil, cheatdex.Errorf(cheatdex.EINVALID, "unsupported file type: %q", path)
	}
}

func (im *Importer) importZip(ctx context.Context, zr *zip.Reader) ([]*cheatdex.Command, *Stats, error) {
	var cmds []*cheatdex.Command
	stats := &Stats{}

	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if f.FileInfo().IsDir() || !strings.HasSuffix(f.Name, ".md") {
			continue
		}
		stats.Files++

		rc, err := f.Open()
		if err != nil {
			return nil, nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to open archive entry %q: %v", f.Name, err)
		}
		src, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to read archive entry %q: %v", f.Name, err)
		}

		if cmd := im.parseEntry(f.Name, src, stats); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds, stats, nil
}

// importTar also reports the number of tar headers read, markdown or not,
// so callers can tell a valid empty archive from bytes that merely decode
// as zero entries.
func (im *Importer) importTar(ctx context.Context, tr *tar.Reader) ([]*cheatdex.Command, *Stats, int, error) {
	var cmds []*cheatdex.Command
	stats := &Stats{}
	entries := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, entries, err
		}
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return cmds, stats, entries, nil
		} else if err != nil {
			return nil, nil, entries, cheatdex.Errorf(cheatdex.EINVALID, "failed to read tar archive: %v", err)
		}
		entries++
		if hdr.Typeflag != tar.TypeReg || !strings.HasSuffix(hdr.Name, ".md") {
			continue
		}
		stats.Files++

		src, err := io.ReadAll(tr)
		if err != nil {
			return nil, nil, entries, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to read archive entry %q: %v", hdr.Name, err)
		}
		if cmd := im.parseEntry(hdr.Name, src, stats); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
}

func (im *Importer) importDir(ctx context.Context, dir string) ([]*cheatdex.Command, *Stats, error) {
	var cmds []*cheatdex.Command
	stats := &Stats{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		cmd, ferr := im.importFile(path, stats)
		if ferr != nil {
			return ferr
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return nil
	})
	if err != nil {
		return nil, nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to walk %q: %v", dir, err)
	}
	return cmds, stats, nil
}

// importFile imports a single markdown file. Files inside a pages tree keep
// their classified identity; loose files default to ("en", "local").
func (im *Importer) importFile(path string, stats *Stats) (*cheatdex.Command, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, cheatdex.Errorf(cheatdex.EINTERNAL, "failed to read %q: %v", path, err)
	}
	stats.Files++

	lang, platform, name, ok := ClassifyPath(path)
	if !ok {
		lang, platform = "en", "local"
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	cmd, err := im.Parser.ParseSheet(src, name, lang, platform)
	if err != nil {
		if cheatdex.ErrorCode(err) == cheatdex.EINVALID {
			stats.Skipped++
			return nil, nil
		}
		return nil, err
	}
	stats.Imported++
	return cmd, nil
}

// parseEntry classifies and parses one archive entry, counting skips.
func (im *Importer) parseEntry(entryPath string, src []byte, stats *Stats) *cheatdex.Command {
	lang, platform, name, ok := ClassifyPath(entryPath)
	if !ok {
		stats.Skipped++
		return nil
	}
	cmd, err := im.Parser.ParseSheet(src, name, lang, platform)
	if err != nil {
		stats.Skipped++
		return nil
	}
	stats.Imported++
	return cmd
}
