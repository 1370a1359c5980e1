package ziparchiver

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// zipBytes builds an in-memory zip archive containing the given entry names.
func zipBytes(t *testing.T, names []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range names {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create entry %s: %v", name, err)
		}
		if strings.HasSuffix(name, "/") {
			continue
		}
		if _, err := fw.Write([]byte("content of " + name)); err != nil {
			t.Fatalf("Failed to write entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	return buf.Bytes()
}

func newMemArchiver(t *testing.T, files map[string][]byte) *ZipArchiver {
	t.Helper()
	memFs := afero.NewMemMapFs()
	for path, data := range files {
		if err := afero.WriteFile(memFs, path, data, 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
	return NewWithFs(memFs, zerolog.Nop())
}

func TestNamesPreservesCentralDirectoryOrder(t *testing.T) {
	// Deliberately not sorted
	want := []string{
		"META-INF/",
		"META-INF/MANIFEST.MF",
		"org/gradle/wrapper/",
		"org/gradle/wrapper/WrapperMain.class",
		"gradle-wrapper-classpath.properties",
		"org/gradle/cli/",
		"org/gradle/cli/CommandLineParser.class",
	}
	a := newMemArchiver(t, map[string][]byte{"/w/gradle-wrapper.jar": zipBytes(t, want)})

	names, err := a.Names("/w/gradle-wrapper.jar")
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) != len(want) {
		t.Fatalf("got %d names, expected %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, expected %q", i, names[i], want[i])
		}
	}
}

func TestNamesEmptyArchive(t *testing.T) {
	a := newMemArchiver(t, map[string][]byte{"/empty.zip": zipBytes(t, nil)})

	names, err := a.Names("/empty.zip")
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("got %d names, expected 0", len(names))
	}
}

func TestNamesLargeArchive(t *testing.T) {
	var want []string
	for i := 0; i < 1000; i++ {
		want = append(want, fmt.Sprintf("entries/file-%04d.txt", i))
	}
	a := newMemArchiver(t, map[string][]byte{"/big.zip": zipBytes(t, want)})

	names, err := a.Names("/big.zip")
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) != 1000 {
		t.Fatalf("got %d names, expected 1000", len(names))
	}
	if names[0] != want[0] || names[999] != want[999] {
		t.Errorf("unexpected boundary names: %q, %q", names[0], names[999])
	}
}

func TestNamesErrors(t *testing.T) {
	valid := zipBytes(t, []string{"a.txt", "b.txt"})

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", "/missing.zip", fs.ErrNotExist},
		{"not a zip", "/notes.txt", zip.ErrFormat},
		{"empty file", "/zero.zip", zip.ErrFormat},
		{"truncated archive", "/truncated.zip", zip.ErrFormat},
		{"directory", "/dir", zip.ErrFormat},
	}

	a := newMemArchiver(t, map[string][]byte{
		"/notes.txt":     []byte("this is plainly not a zip archive"),
		"/zero.zip":      {},
		"/truncated.zip": valid[:len(valid)-10],
	})
	if err := a.fs.MkdirAll("/dir", 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names, err := a.Names(tt.path)
			if err == nil {
				t.Fatalf("expected error, got names %v", names)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, expected it to wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestNamesOSFilesystem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gradle-wrapper.jar")
	if err := os.WriteFile(path, zipBytes(t, []string{"META-INF/", "META-INF/MANIFEST.MF"}), 0644); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}

	names, err := New(zerolog.Nop()).Names(path)
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) != 2 || names[1] != "META-INF/MANIFEST.MF" {
		t.Errorf("names = %v, expected [META-INF/ META-INF/MANIFEST.MF]", names)
	}
}

func TestNamesPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files regardless of mode")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "locked.jar")
	if err := os.WriteFile(path, zipBytes(t, []string{"a.txt"}), 0000); err != nil {
		t.Fatalf("Failed to write archive: %v", err)
	}

	_, err := New(zerolog.Nop()).Names(path)
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("error = %v, expected permission error", err)
	}
}
