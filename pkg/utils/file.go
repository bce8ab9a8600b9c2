package utils

import (
	"github.com/spf13/afero"
)

// Exists reports whether name can be stat'ed on fs. Any stat error, not
// only a missing file, counts as absent.
func Exists(fs afero.Fs, name string) bool {
	_, err := fs.Stat(name)
	return err == nil
}

// FileSize returns the size of a regular file on fs.
func FileSize(fs afero.Fs, name string) (int64, error) {
	fi, err := fs.Stat(name)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
