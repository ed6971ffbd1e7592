package model

// CommentKind classifies how a comment was recognized in the source
type CommentKind string

const (
	KindDocstring CommentKind = "DOCSTRING" // String literal opening a block
	KindComment   CommentKind = "COMMENT"   // Line or block comment
)

// Comment is one recognized span of prose extracted from a source file.
// Extractors create it once and nothing mutates it afterwards.
type Comment struct {
	File string      `json:"file" yaml:"file"`
	Text string      `json:"text" yaml:"text"` // Raw text as captured, not yet filtered
	Line int         `json:"line" yaml:"line"` // 1-based line of the match start
	Kind CommentKind `json:"kind" yaml:"kind"`
}

// CheckedComment pairs a comment with the candidate words classified from it
type CheckedComment struct {
	Comment Comment  `yaml:"comment"`
	Words   []string `yaml:"words,flow"`
}

// FileComments holds everything extracted from a single source file, in
// source order. Err is set when the file could not be read or parsed.
type FileComments struct {
	Path     string           `yaml:"path"`
	Comments []CheckedComment `yaml:"comments"`
	Err      error            `yaml:"-"`
}

// WordCount returns the number of candidate words across all comments
func (f FileComments) WordCount() int {
	n := 0
	for _, c := range f.Comments {
		n += len(c.Words)
	}
	return n
}
