package extract

import (
	"context"
	"strings"

	"github.com/ppiankov/commentspell/internal/model"
)

// scanState remembers the category of the previous token
type scanState int

const (
	stateAfterIndent scanState = iota
	stateAfterOther
)

// PythonComments extracts docstrings and comments from Python source.
// A string literal is a docstring only when it directly follows an
// indentation marker (or opens the file). Comments starting with the
// bypass prefix are commented-out code and are dropped.
func PythonComments(ctx context.Context, file string, src []byte, cfg *model.PythonConfig) ([]model.Comment, error) {
	tokens, err := TokenizePython(ctx, src)
	if err != nil {
		return nil, err
	}

	bypass := ""
	if cfg != nil {
		bypass = cfg.BypassPrefix
	}
	return commentsFromTokens(file, tokens, bypass), nil
}

// commentsFromTokens runs the two-state scan over an already built stream
func commentsFromTokens(file string, tokens []Token, bypass string) []model.Comment {
	var comments []model.Comment

	state := stateAfterIndent
	for _, tok := range tokens {
		switch {
		case tok.Kind == TokenString && state == stateAfterIndent:
			comments = append(comments, model.Comment{
				File: file,
				Text: tok.Text,
				Line: tok.Line,
				Kind: model.KindDocstring,
			})
		case tok.Kind == TokenComment:
			if bypass == "" || !strings.HasPrefix(tok.Text, bypass) {
				comments = append(comments, model.Comment{
					File: file,
					Text: tok.Text,
					Line: tok.Line,
					Kind: model.KindComment,
				})
			}
		}

		if tok.Kind == TokenIndent {
			state = stateAfterIndent
		} else {
			state = stateAfterOther
		}
	}

	return comments
}
