// Package walk expands command line paths into the regular files below them.
package walk

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sort"

	"github.com/OpenListTeam/gofile-uploader/internal/errs"
	"github.com/maruel/natural"
	"github.com/spf13/afero"
)

// Files yields every regular file under paths, depth first, in input order.
// Directories are descended into and never yielded, their entries in natural
// order ("part2" before "part10"). A path that cannot be read is yielded
// together with its error and the walk goes on.
func Files(fsys afero.Fs, paths []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range paths {
			if p == "" {
				if !yield(p, errs.EmptyPath) {
					return
				}
				continue
			}
			info, err := lstatIfPossible(fsys, p)
			if err != nil {
				if !yield(p, err) {
					return
				}
				continue
			}
			if !walk(fsys, p, info, yield) {
				return
			}
		}
	}
}

// walk reports false once yield asked to stop. Symlinks are followed, a
// dangling one is yielded with its error.
func walk(fsys afero.Fs, path string, info fs.FileInfo, yield func(string, error) bool) bool {
	if info.Mode()&fs.ModeSymlink != 0 {
		target, err := fsys.Stat(path)
		if err != nil {
			return yield(path, err)
		}
		info = target
	}
	if !info.IsDir() {
		if info.Mode().IsRegular() {
			return yield(path, nil)
		}
		return true
	}
	names, err := readDirNames(fsys, path)
	if err != nil {
		return yield(path, err)
	}
	for _, name := range names {
		p := filepath.Join(path, name)
		fi, err := lstatIfPossible(fsys, p)
		if err != nil {
			if !yield(p, err) {
				return false
			}
			continue
		}
		if !walk(fsys, p, fi, yield) {
			return false
		}
	}
	return true
}

func readDirNames(fsys afero.Fs, dir string) ([]string, error) {
	f, err := fsys.Open(dir)
	if err != nil {
		return nil, err
	}
	names, err := f.Readdirnames(-1)
	_ = f.Close()
	if err != nil {
		return nil, err
	}
	sort.Slice(names, func(i, j int) bool {
		return natural.Less(names[i], names[j])
	})
	return names, nil
}

func lstatIfPossible(fsys afero.Fs, path string) (os.FileInfo, error) {
	if lfs, ok := fsys.(afero.Lstater); ok {
		fi, _, err := lfs.LstatIfPossible(path)
		return fi, err
	}
	return fsys.Stat(path)
}
