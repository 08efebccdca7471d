package yamlinc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// wildcardPattern matches pathnames containing glob metacharacters: *, ?,
// and bracket character classes like [abc] or [!abc].
var wildcardPattern = regexp.MustCompile(`[*?]|\[!?[^\]]+\]`)

// hasWildcard reports whether pathname is a glob pattern rather than the
// name of a single file.
func hasWildcard(pathname string) bool {
	return wildcardPattern.MatchString(pathname)
}

// expandPattern enumerates the regular files matching pattern. When
// recursive is true, ** spans zero or more directory levels; otherwise * is
// confined to a single path segment. Matches are yielded in filesystem
// enumeration order. Zero matches is valid and yields an empty slice.
func expandPattern(pattern string, recursive bool) ([]string, error) {
	var matches []string
	var err error
	if recursive {
		matches, err = doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	} else {
		matches, err = filepath.Glob(pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to expand pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			// Entry vanished between enumeration and stat; skip it.
			continue
		}
		if info.Mode().IsRegular() {
			files = append(files, path)
		}
	}
	return files, nil
}
