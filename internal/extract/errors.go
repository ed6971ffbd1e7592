package extract

import "errors"

var (
	// ErrNotText indicates the source could not be decoded as UTF-8 text
	ErrNotText = errors.New("source is not valid UTF-8 text")

	// ErrMalformedSource indicates the tokenizer could not produce a well-formed stream
	ErrMalformedSource = errors.New("malformed source")
)
