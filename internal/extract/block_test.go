package extract

import (
	"testing"

	"github.com/ppiankov/commentspell/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBlock() *model.BlockConfig {
	return &model.DefaultConfig().Block
}

func TestBlockComments_Basic(t *testing.T) {
	text := "int x;\n\n/*\n * Hello there.\n */\nint y;\n"

	comments := BlockComments("a.c", text, defaultBlock())

	require.Len(t, comments, 1)
	c := comments[0]
	assert.Equal(t, "a.c", c.File)
	assert.Equal(t, 3, c.Line)
	assert.Equal(t, model.KindComment, c.Kind)
	assert.Equal(t, "\n Hello there.", c.Text)
	assert.Equal(t, []string{"Hello", "there"}, Words(c.Text))
}

func TestBlockComments_RejectsMisaligned(t *testing.T) {
	text := "" +
		"  /*\n" +
		"   * misaligned first\n" +
		"     * block\n" +
		"   */\n" +
		"void f(void);\n" +
		"  /*\n" +
		"   * aligned second\n" +
		"   * block\n" +
		"   */\n"

	comments := BlockComments("a.c", text, defaultBlock())

	require.Len(t, comments, 1)
	assert.Equal(t, 6, comments[0].Line)
	assert.Equal(t, "\n aligned second\n block", comments[0].Text)
}

func TestBlockComments_IndentationBelongsToBlock(t *testing.T) {
	text := "{\n\t/*\n\t *\tTabbed\ttext.\n\t */\n}\n"

	comments := BlockComments("a.c", text, defaultBlock())

	require.Len(t, comments, 1)
	assert.Equal(t, 2, comments[0].Line)
	assert.Equal(t, []string{"Tabbed", "text"}, Words(comments[0].Text))
}

func TestBlockComments_SingleLine(t *testing.T) {
	text := "int x; /* trailing note */\n"

	assert.Empty(t, BlockComments("a.c", text, defaultBlock()))

	cfg := defaultBlock()
	cfg.SingleLine = true
	comments := BlockComments("a.c", text, cfg)
	require.Len(t, comments, 1)
	assert.Equal(t, 1, comments[0].Line)
	assert.Equal(t, []string{"trailing", "note"}, Words(comments[0].Text))
}

func TestBlockComments_SkipList(t *testing.T) {
	text := "" +
		"/*\n" +
		" * ***** BEGIN GPL LICENSE BLOCK *****\n" +
		" * This program is free software.\n" +
		" */\n" +
		"\n" +
		"/*\n" +
		" * Real prose.\n" +
		" */\n"

	comments := BlockComments("a.c", text, defaultBlock())

	require.Len(t, comments, 1)
	assert.Equal(t, 6, comments[0].Line)
}

func TestBlockComments_MissingEndStopsScan(t *testing.T) {
	text := "" +
		"/*\n" +
		" * First.\n" +
		" */\n" +
		"/*\n" +
		" * never closed\n" +
		"int x;\n"

	comments := BlockComments("a.c", text, defaultBlock())

	require.Len(t, comments, 1)
	assert.Equal(t, 1, comments[0].Line)
}

func TestBlockComments_NoBlocks(t *testing.T) {
	assert.Empty(t, BlockComments("a.c", "", defaultBlock()))
	assert.Empty(t, BlockComments("a.c", "int main(void) { return 0; }\n", defaultBlock()))
	assert.Empty(t, BlockComments("a.c", "x = a */ b;\n", defaultBlock()))
}

func TestBlockComments_OrderAndLines(t *testing.T) {
	text := "" +
		"/*\n" +
		" * one\n" +
		" */\n" +
		"int a;\n" +
		"/*\n" +
		" * two\n" +
		" */\n" +
		"\n" +
		"/*\n" +
		" * three\n" +
		" */\n"

	comments := BlockComments("a.c", text, defaultBlock())

	require.Len(t, comments, 3)
	assert.Equal(t, []int{1, 5, 9}, []int{comments[0].Line, comments[1].Line, comments[2].Line})
	assert.Equal(t, []string{"one"}, Words(comments[0].Text))
	assert.Equal(t, []string{"two"}, Words(comments[1].Text))
	assert.Equal(t, []string{"three"}, Words(comments[2].Text))
}

func TestBlockComments_StripsDirectives(t *testing.T) {
	text := "" +
		"/**\n" +
		" * \\param totvert the number of vertices\n" +
		" * \\ingroup bke\n" +
		" */\n"

	comments := BlockComments("a.c", text, defaultBlock())

	require.Len(t, comments, 1)
	assert.Equal(t, []string{"the", "number", "of", "vertices"}, Words(comments[0].Text))

	cfg := defaultBlock()
	cfg.StripDirectives = false
	comments = BlockComments("a.c", text, cfg)
	require.Len(t, comments, 1)
	assert.Equal(t, []string{"totvert", "the", "number", "of", "vertices", "bke"}, Words(comments[0].Text))
}

func TestStripDirectives(t *testing.T) {
	directives := defaultBlock().Directives

	tests := []struct {
		name string
		line string
		want string
	}{
		{"argument blanked", `\param foo description here`, `\param   description here`},
		{"only the argument token", ` * \param foo foobar foo`, ` * \param   foobar foo`},
		{"directive at end of line", ` * see \param`, ` * see \param`},
		{"not a whole token", ` * \params foo`, ` * \params foo`},
		{"no directive", ` * plain text`, ` * plain text`},
		{"two directives", `\ingroup bke \param x`, `\ingroup   \param  `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripDirectives(tt.line, directives))
		})
	}
}

func TestExpandTabs(t *testing.T) {
	assert.Equal(t, "    x", expandTabs("\tx", 4))
	assert.Equal(t, "ab  x", expandTabs("ab\tx", 4))
	assert.Equal(t, "abcd    x", expandTabs("abcd\tx", 4))
	assert.Equal(t, "no tabs", expandTabs("no tabs", 4))
}

func TestAlignment(t *testing.T) {
	col, ok := alignment([]string{"  /*", "   * a", "   */"}, "*")
	assert.True(t, ok)
	assert.Equal(t, 3, col)

	_, ok = alignment([]string{"  /*", "   * a", "     * b", "   */"}, "*")
	assert.False(t, ok)

	_, ok = alignment([]string{"/*", " no marker", " */"}, "*")
	assert.False(t, ok)
}

func TestBlockComments_RuneColumns(t *testing.T) {
	text := "/*\né* naïve note\n */\n"

	comments := BlockComments("a.c", text, defaultBlock())

	require.Len(t, comments, 1)
	assert.Equal(t, "\n naïve note", comments[0].Text)

	col, ok := alignment([]string{"/*", "é* x", " */"}, "*")
	assert.True(t, ok)
	assert.Equal(t, 1, col)
	assert.Equal(t, "x", dropRunes("é* x", 3))
}
