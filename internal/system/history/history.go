// Released under an MIT license. See LICENSE.

// Package history saves and restores console history.
package history

import (
	"io"
	"os"
	"path/filepath"
)

const basename = ".ren_history"

// Load reads saved history with the function read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path())
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		return err
	}

	return f.Close()
}

// Save writes current history with the function write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path())
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		return err
	}

	return f.Close()
}

func path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return filepath.Join(home, basename)
}
