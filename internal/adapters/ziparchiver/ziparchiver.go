// Package ziparchiver provides an archiver adapter using the archive/zip package.
package ziparchiver

import (
	"archive/zip"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/jmcdonald/jarls/internal/ports"
)

// ZipArchiver implements ports.Archiver using archive/zip.
type ZipArchiver struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a ZipArchiver reading from the OS filesystem.
func New(logger zerolog.Logger) *ZipArchiver {
	return NewWithFs(afero.NewOsFs(), logger)
}

// NewWithFs creates a ZipArchiver reading from the given afero.Fs.
func NewWithFs(fs afero.Fs, logger zerolog.Logger) *ZipArchiver {
	return &ZipArchiver{fs: fs, logger: logger}
}

// Names returns the entry names from the archive's central directory in stored order.
// Only the central directory is read; entry contents are never decompressed.
func (a *ZipArchiver) Names(path string) ([]string, error) {
	file, err := a.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, zip.ErrFormat)
	}

	a.logger.Debug().Str("path", path).Int64("size", info.Size()).Msg("Reading central directory")

	r, err := zip.NewReader(file, info.Size())
	// ErrInsecurePath still yields a usable reader; names are only printed, never extracted.
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("reading central directory of %s: %w", path, err)
	}

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}

	a.logger.Debug().Str("path", path).Int("entries", len(names)).Msg("Read central directory")
	return names, nil
}

// Compile-time check that ZipArchiver implements ports.Archiver.
var _ ports.Archiver = (*ZipArchiver)(nil)
