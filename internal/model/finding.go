package model

import (
	"fmt"
	"strings"
)

// Finding is a single unknown word reported against a source location
type Finding struct {
	File        string   `json:"file"`
	Line        int      `json:"line"`
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// String renders the diagnostic line: <file>:<line>: <word>, suggest (<list>)
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d: %s, suggest (%s)", f.File, f.Line, f.Word, strings.Join(f.Suggestions, " "))
}

// Summary counts what a run processed
type Summary struct {
	Files    int `json:"files"`
	Failed   int `json:"failed"`
	Comments int `json:"comments"`
	Words    int `json:"words"`   // Candidate words considered
	Unknown  int `json:"unknown"` // Diagnostics emitted
}

// Add accumulates another summary into s
func (s *Summary) Add(o Summary) {
	s.Files += o.Files
	s.Failed += o.Failed
	s.Comments += o.Comments
	s.Words += o.Words
	s.Unknown += o.Unknown
}
