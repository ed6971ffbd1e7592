package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWord(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"Hello", true},
		{"hello", true},
		{"a", true},
		{"A", true},
		{"NASA", true},
		{"don't", true},
		{"naïve", true},
		{"", false},
		{"42", false},
		{"...", false},
		{"v2", false},
		{"v2.0", false},
		{"StructRNA", false},
		{"camelCase", false},
		{"aB", false},
		{"--debug", false},
		{"+flag", false},
		{"%s", false},
		{`\n`, false},
		{"@param", false},
		{"foo()", false},
		{"a.b", false},
		{"snake_case", false},
		{"<b>", false},
		{"x[i]", false},
		{"{x}", false},
		{"a&b", false},
		{"ptr*", false},
		{`dir\file`, false},
		{"key:value", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWord(tt.word))
		})
	}
}

func TestWords_TrailingComment(t *testing.T) {
	got := Words("# This is a tset of teh thing")
	assert.Equal(t, []string{"This", "is", "a", "tset", "of", "teh", "thing"}, got)
}

func TestWords_Docstring(t *testing.T) {
	got := Words(`"""Return the value, or None."""`)
	assert.Equal(t, []string{"Return", "the", "value", "or", "None"}, got)
}

func TestWords_Separators(t *testing.T) {
	got := Words("read/write and well-known,values")
	assert.Equal(t, []string{"read", "write", "and", "well", "known", "values"}, got)
}

func TestWords_TrimsPunctuation(t *testing.T) {
	got := Words("Really?! `quoted` 'single' \"double\" end.")
	assert.Equal(t, []string{"Really", "quoted", "single", "double", "end"}, got)
}

func TestWords_DropsCode(t *testing.T) {
	got := Words("call foo_bar() with ptr->next and 0x10 bytes, see BKE_deform.h")
	// "ptr->next" splits into "ptr" and ">next"; the latter looks like code
	assert.Equal(t, []string{"call", "with", "ptr", "and", "bytes", "see"}, got)
}

func TestWords_PreservesDuplicates(t *testing.T) {
	got := Words("the the the")
	assert.Equal(t, []string{"the", "the", "the"}, got)
}

func TestWords_Empty(t *testing.T) {
	assert.Empty(t, Words(""))
	assert.Empty(t, Words("#"))
	assert.Empty(t, Words("  \n\t "))
}

func TestWords_Idempotent(t *testing.T) {
	texts := []string{
		"# This is a tset of teh thing",
		"Use StructRNA pointers - see rna_access.c, line 42.",
		"\n * Multi line block\n * with \\param name and <tags>\n",
		`"""Docstring: 'quoted', ` + "`code`" + `, and -flags."""`,
	}

	for _, text := range texts {
		first := Words(text)
		second := Words(strings.Join(first, " "))
		assert.Equal(t, first, second, "classifying survivors must be stable for %q", text)
		for _, w := range first {
			assert.True(t, IsWord(w), "survivor %q must pass the predicate", w)
		}
	}
}
