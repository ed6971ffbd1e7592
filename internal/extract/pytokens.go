package extract

import (
	"context"
	"fmt"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// TokenKind is the coarse category of a Python token
type TokenKind int

const (
	TokenOther   TokenKind = iota // Any token without special meaning here
	TokenIndent                   // Start of an indented block
	TokenString                   // String literal, including prefix and quotes
	TokenComment                  // Trailing "#" comment
)

// String returns the token kind name
func (k TokenKind) String() string {
	switch k {
	case TokenIndent:
		return "INDENT"
	case TokenString:
		return "STRING"
	case TokenComment:
		return "COMMENT"
	default:
		return "OTHER"
	}
}

// Token is one element of the flattened Python token stream
type Token struct {
	Kind TokenKind
	Text string
	Line int // 1-based start line
}

// TokenizePython parses src with tree-sitter and flattens the syntax tree
// into an ordered token stream.
//
// tree-sitter keeps indentation tokens hidden, so an INDENT is synthesised
// before the first non-comment token of every block that starts on a line
// after its header. Comments preceding that token do not consume it, which
// matches where a line tokenizer places INDENT.
//
// Grammar errors do not stop the walk: the leaves under ERROR nodes are
// emitted like any other. Only lexical failures, an unterminated string or
// end of input inside an open bracket, return ErrMalformedSource. Blank
// lines ahead of the first token are reported as one OTHER token.
func TokenizePython(ctx context.Context, src []byte) ([]Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("tokenize canceled: %w", err)
	}

	if !utf8.Valid(src) {
		return nil, ErrNotText
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("%w: empty syntax tree", ErrMalformedSource)
	}

	t := &tokenizer{src: src, lastRow: -1}
	t.visit(root)

	if t.unterminated > 0 {
		return nil, fmt.Errorf("%w: unterminated string at line %d", ErrMalformedSource, t.unterminated)
	}
	if t.depth > 0 {
		return nil, fmt.Errorf("%w: end of input inside open bracket", ErrMalformedSource)
	}

	if len(t.tokens) > 0 && t.tokens[0].Line > 1 {
		t.tokens = append([]Token{{Kind: TokenOther, Text: "\n", Line: 1}}, t.tokens...)
	}

	return t.tokens, nil
}

type tokenizer struct {
	src    []byte
	tokens []Token

	lastRow    int  // end row of the last non-comment token
	pending    bool // a block was entered and its INDENT is not placed yet
	pendingRow int  // lastRow when the block was entered

	depth        int // open brackets among the emitted leaves
	unterminated int // line of the first string missing its closing quote
}

func (t *tokenizer) visit(n *sitter.Node) {
	switch n.Type() {
	case "comment":
		t.emit(TokenComment, n)
		return
	case "string":
		if !closed(n) {
			t.fail(n)
		}
		t.significant(n)
		t.emit(TokenString, n)
		return
	case "block":
		t.pending = true
		t.pendingRow = t.lastRow
		t.children(n)
		t.pending = false
		return
	}

	if n.ChildCount() == 0 {
		if n.StartByte() == n.EndByte() {
			return
		}
		t.leaf(n)
		t.significant(n)
		t.emit(TokenOther, n)
		return
	}

	t.children(n)
}

func (t *tokenizer) children(n *sitter.Node) {
	for i := 0; i < int(n.ChildCount()); i++ {
		t.visit(n.Child(i))
	}
}

// leaf tracks bracket depth and stray string delimiters
func (t *tokenizer) leaf(n *sitter.Node) {
	switch n.Type() {
	case "(", "[", "{":
		t.depth++
	case ")", "]", "}":
		if t.depth > 0 {
			t.depth--
		}
	case "string_start":
		t.fail(n)
	default:
		if text := n.Content(t.src); text[0] == '"' || text[0] == '\'' {
			t.fail(n)
		}
	}
}

func (t *tokenizer) fail(n *sitter.Node) {
	if t.unterminated == 0 {
		t.unterminated = int(n.StartPoint().Row) + 1
	}
}

// closed reports whether a string node ends with a real closing delimiter
func closed(n *sitter.Node) bool {
	count := int(n.ChildCount())
	if count == 0 {
		return true
	}
	last := n.Child(count - 1)
	return last.Type() == "string_end" && !last.IsMissing()
}

// significant places a pending INDENT before n and records its end row
func (t *tokenizer) significant(n *sitter.Node) {
	if t.pending {
		t.pending = false
		if int(n.StartPoint().Row) > t.pendingRow {
			t.tokens = append(t.tokens, Token{
				Kind: TokenIndent,
				Line: int(n.StartPoint().Row) + 1,
			})
		}
	}
	t.lastRow = int(n.EndPoint().Row)
}

func (t *tokenizer) emit(kind TokenKind, n *sitter.Node) {
	t.tokens = append(t.tokens, Token{
		Kind: kind,
		Text: n.Content(t.src),
		Line: int(n.StartPoint().Row) + 1,
	})
}
