package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/ppiankov/commentspell/internal/extract"
)

// ErrFileTooLarge indicates a source file exceeds the configured read limit
var ErrFileTooLarge = errors.New("file too large")

// ReadSource reads a whole source file, refusing files above maxBytes and
// content that is not UTF-8. A maxBytes of zero or less disables the limit.
func ReadSource(path string, maxBytes int64) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	if maxBytes > 0 {
		// One extra byte tells an exact fit from an overflow
		r = io.LimitReader(file, maxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrFileTooLarge, maxBytes)
	}

	if !utf8.Valid(data) {
		return nil, extract.ErrNotText
	}

	return data, nil
}
