// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Input pages, output files, the config file and logs all go through afero so that
// tests can run against an in-memory backend.
package filesystem

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// SetFs installs an arbitrary afero backend, e.g. a read-only wrapper in tests.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// WriteAtomic streams write's output into a sibling temporary file and renames it over path
// once write and close both succeed. On failure the temporary file is removed and path is untouched.
func WriteAtomic(path string, write func(w io.Writer) error) error {
	fs := API()
	tmp := path + ".tmp"

	f, err := fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		_ = fs.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("close %s: %w", tmp, err)
	}

	if err := fs.Rename(tmp, path); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	return nil
}
