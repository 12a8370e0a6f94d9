package reader

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// maxLineSize caps how long a single log line may grow before the
// scanner gives up on it.
const maxLineSize = 1024 * 1024

// ExpandPatterns resolves glob patterns (including recursive ** forms)
// to the files they match, preserving pattern order. Literal paths pass
// through unchanged when they exist. A pattern with no matches is an
// error rather than a silent skip.
func ExpandPatterns(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern,
			doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
		if err != nil {
			return nil, fmt.Errorf("expand pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// Lines calls fn for every newline-delimited line of r with the trailing
// newline stripped. Invalid UTF-8 bytes are replaced with U+FFFD instead
// of failing the read.
func Lines(r io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	for sc.Scan() {
		line := sc.Text()
		if !utf8.ValidString(line) {
			line = strings.ToValidUTF8(line, "�")
		}
		fn(line)
	}
	return sc.Err()
}
