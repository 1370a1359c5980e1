// Package ports defines interfaces (contracts) for external dependencies.
// These enable dependency injection and testability via mock implementations.
package ports

// Archiver abstracts zip archive reads for testability.
// Production code uses ZipArchiver adapter; tests use MockArchiver.
type Archiver interface {
	// Names returns every entry name recorded in the archive's central
	// directory, in stored order. The archive is closed before returning.
	Names(path string) ([]string, error)
}
