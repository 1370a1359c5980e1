// Package lister previews the entry names of a zip archive and reports the total entry count.
package lister

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/jmcdonald/jarls/internal/ports"
)

// DefaultLimit is the number of entry names shown when no limit is configured.
const DefaultLimit = 50

// NoLimit disables truncation of the preview.
const NoLimit = -1

// Listing is the result of listing an archive.
type Listing struct {
	Preview []string // first min(limit, Total) names, in central directory order
	Total   int      // number of entries in the archive
}

// Lister reads archive indexes through a ports.Archiver.
type Lister struct {
	archiver ports.Archiver
	logger   zerolog.Logger
}

// New creates a Lister backed by the given archiver.
func New(archiver ports.Archiver, logger zerolog.Logger) *Lister {
	return &Lister{archiver: archiver, logger: logger}
}

// ListEntries reads every entry name of the archive at path and returns the
// first limit names along with the total count. Pass NoLimit to keep all names.
func (l *Lister) ListEntries(path string, limit int) (Listing, error) {
	if limit < 0 && limit != NoLimit {
		return Listing{}, &InvalidLimitError{Limit: limit}
	}

	names, err := l.archiver.Names(path)
	if err != nil {
		l.logger.Debug().Err(err).Str("path", path).Msg("Listing failed")
		return Listing{}, classify(path, err)
	}

	total := len(names)
	n := total
	if limit != NoLimit && limit < total {
		n = limit
	}

	preview := make([]string, n)
	copy(preview, names[:n])

	l.logger.Debug().Str("path", path).Int("total", total).Int("shown", n).Msg("Listed archive")
	return Listing{Preview: preview, Total: total}, nil
}

// classify maps an archiver error onto the lister's error types.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &NotFoundError{Path: path, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &PermissionError{Path: path, Err: err}
	case errors.Is(err, zip.ErrFormat),
		errors.Is(err, zip.ErrAlgorithm),
		errors.Is(err, zip.ErrChecksum),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return &FormatError{Path: path, Err: err}
	default:
		return fmt.Errorf("listing %s: %w", path, err)
	}
}

// Print writes each preview name on its own line, a blank line, and the total.
func Print(w io.Writer, l Listing) error {
	for _, name := range l.Preview {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal entries: %d\n", l.Total)
	return err
}
