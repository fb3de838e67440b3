package scaffold

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/tilingwm/wmgen/internal/templates"
)

// Modes used when Options leaves them unset.
const (
	DefaultDirMode  os.FileMode = 0755
	DefaultFileMode os.FileMode = 0644
)

// Options controls how files are created. Zero modes fall back to
// DefaultDirMode and DefaultFileMode. The zero Logger discards output.
type Options struct {
	DirMode  os.FileMode
	FileMode os.FileMode
	Logger   zerolog.Logger
}

func (o Options) withDefaults() Options {
	if o.DirMode == 0 {
		o.DirMode = DefaultDirMode
	}
	if o.FileMode == 0 {
		o.FileMode = DefaultFileMode
	}
	return o
}

// Result holds the outcome of a scaffold run.
type Result struct {
	Root  string
	Files []string // Catalog paths written, in order
}

// Generate writes every catalog entry under root, in catalog order.
//
// On failure the returned Result lists the entries written before the
// failing one and the error is an *IOError. A catalog that breaks the path
// rules is rejected with a *templates.InvalidEntryError before anything is
// written.
func Generate(fsys afero.Fs, root string, catalog templates.Catalog, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	result := &Result{Root: root}

	for _, entry := range catalog {
		outPath := filepath.Join(root, filepath.FromSlash(entry.Path))
		log := opts.Logger.With().Str("entry", entry.Path).Str("path", outPath).Logger()

		dir := filepath.Dir(outPath)
		log.Debug().Str("op", "mkdir").Str("dir", dir).Msg("Ensuring directory")
		if err := fsys.MkdirAll(dir, opts.DirMode); err != nil {
			return result, newIOError("mkdir", dir, entry.Path, err)
		}

		log.Debug().Str("op", "write").Int("bytes", len(entry.Content)).Msg("Writing file")
		if err := writeFile(fsys, outPath, entry, opts.FileMode); err != nil {
			return result, err
		}

		result.Files = append(result.Files, entry.Path)
	}

	opts.Logger.Info().Str("root", root).Int("files", len(result.Files)).Msg("Scaffold complete")
	return result, nil
}

// writeFile truncates or creates path and writes the entry content. mode
// (less the umask) applies only to new files; an overwritten file keeps its
// permissions. The file is closed on every return path; a close error is
// reported only when the write itself succeeded.
func writeFile(fsys afero.Fs, path string, entry templates.Entry, mode os.FileMode) (err error) {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return newIOError("open", path, entry.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newIOError("close", path, entry.Path, cerr)
		}
	}()

	n, err := io.WriteString(f, entry.Content)
	if err == nil && n < len(entry.Content) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return newIOError("write", path, entry.Path, err)
	}
	return nil
}
