package rotator

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveImages expands glob patterns (with ** support) against fsys and
// returns image references in pattern order. Within one pattern, matches are
// sorted. A pattern without glob metacharacters is kept as-is even when the
// file does not exist, so the list can name assets served elsewhere.
// Duplicates are dropped.
func ResolveImages(fsys fs.FS, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var images []string

	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			images = append(images, name)
		}
	}

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid image pattern %q", pattern)
		}
		if !hasMeta(pattern) {
			add(pattern)
			continue
		}
		if fsys == nil {
			continue
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	if len(images) == 0 {
		return nil, ErrNoImages
	}
	return images, nil
}

func hasMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[', '{', '\\':
			return true
		}
	}
	return false
}
