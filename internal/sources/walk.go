package sources

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Walk lists files under Root as slash-separated relative paths. When Suffix
// is set only names ending in it (case-insensitive) are kept.
type Walk struct {
	Root   string
	Suffix string
}

func (w Walk) Candidates() ([]string, error) {
	var paths []string
	suffix := strings.ToLower(w.Suffix)

	err := filepath.WalkDir(w.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		if suffix != "" && !strings.HasSuffix(strings.ToLower(d.Name()), suffix) {
			return nil
		}

		rel, err := filepath.Rel(w.Root, path)
		if err != nil {
			return fmt.Errorf("rel path: %w", err)
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", w.Root, err)
	}
	return paths, nil
}
