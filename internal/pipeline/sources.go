package pipeline

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Sources yields the files to check for the given path arguments.
//
// A file argument is yielded as-is, whatever its extension. A directory
// argument is walked recursively, yielding files whose extension is in exts
// and skipping any directory below it whose name starts with a dot. Errors
// are yielded alongside the offending path and the walk continues.
//
// The sequence is lazy and can be ranged over more than once.
func Sources(roots []string, exts []string) iter.Seq2[string, error] {
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}

	return func(yield func(string, error) bool) {
		for _, root := range roots {
			info, err := os.Stat(root)
			if err != nil {
				if !yield(root, err) {
					return
				}
				continue
			}

			if !info.IsDir() {
				if !yield(root, nil) {
					return
				}
				continue
			}

			stopped := false
			_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					if !yield(path, err) {
						stopped = true
						return filepath.SkipAll
					}
					return nil
				}

				if d.IsDir() {
					if path != root && strings.HasPrefix(d.Name(), ".") {
						return filepath.SkipDir
					}
					return nil
				}

				if !allowed[strings.ToLower(filepath.Ext(path))] {
					return nil
				}

				if !yield(path, nil) {
					stopped = true
					return filepath.SkipAll
				}
				return nil
			})
			if stopped {
				return
			}
		}
	}
}

// IsSource reports whether path has one of the recognized extensions
func IsSource(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
