package lister

import "fmt"

// NotFoundError reports that the archive path does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

var _ error = (*NotFoundError)(nil)

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("archive not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// PermissionError reports that the archive exists but cannot be read.
type PermissionError struct {
	Path string
	Err  error
}

var _ error = (*PermissionError)(nil)

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied reading archive: %s", e.Path)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// FormatError reports that the file is not a readable zip archive, or that its
// central directory is corrupt or truncated.
type FormatError struct {
	Path string
	Err  error
}

var _ error = (*FormatError)(nil)

func (e *FormatError) Error() string {
	return fmt.Sprintf("not a valid zip archive: %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// InvalidLimitError reports a negative preview limit.
type InvalidLimitError struct {
	Limit int
}

var _ error = (*InvalidLimitError)(nil)

func (e *InvalidLimitError) Error() string {
	return fmt.Sprintf("invalid limit %d: must be zero or greater", e.Limit)
}
