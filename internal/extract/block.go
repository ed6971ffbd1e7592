package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/commentspell/internal/model"
)

// BlockComments extracts aligned block comments such as
//
//	/*
//	 * Prose, with the continuation markers lined up.
//	 */
//
// Blocks that are single-line (unless enabled), contain a skip-list entry,
// or have misaligned markers are dropped. Scanning stops at the first begin
// marker with no matching end marker.
func BlockComments(file, text string, cfg *model.BlockConfig) []model.Comment {
	if cfg == nil {
		cfg = &model.DefaultConfig().Block
	}
	if cfg.Begin == "" || cfg.End == "" || cfg.Marker == "" {
		return nil
	}

	var comments []model.Comment

	i := 0
	for {
		begin := strings.Index(text[i:], cfg.Begin)
		if begin < 0 {
			break
		}
		begin += i

		// the end marker may overlap the begin marker ("/*/") but never start on it
		end := strings.Index(text[begin+1:], cfg.End)
		if end < 0 {
			break
		}
		end += begin + 1

		start := begin
		for start > 0 && (text[start-1] == ' ' || text[start-1] == '\t') {
			start--
		}

		block := text[start : end+len(cfg.End)]
		if body, ok := cleanBlock(block, cfg); ok {
			comments = append(comments, model.Comment{
				File: file,
				Text: body,
				Line: 1 + strings.Count(text[:start], "\n"),
				Kind: model.KindComment,
			})
		}

		i = end
	}

	return comments
}

// cleanBlock validates a raw block and strips its alignment prefix and end
// marker. ok is false when the block must be skipped.
func cleanBlock(block string, cfg *model.BlockConfig) (string, bool) {
	if !cfg.SingleLine && !strings.Contains(block, "\n") {
		return "", false
	}

	for _, skip := range cfg.Skip {
		if skip != "" && strings.Contains(block, skip) {
			return "", false
		}
	}

	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = expandTabs(l, cfg.TabSize)
	}

	col, ok := alignment(lines, cfg.Marker)
	if !ok {
		return "", false
	}

	if cfg.StripDirectives {
		for i, l := range lines {
			lines[i] = stripDirectives(l, cfg.Directives)
		}
	}

	for i, l := range lines {
		lines[i] = dropRunes(l, col+1)
	}

	body := strings.Join(lines, "\n")
	if len(body) < len(cfg.End) {
		return "", true
	}
	return body[:len(body)-len(cfg.End)], true
}

// alignment returns the column shared by the first marker of every line.
// Columns count runes, like expandTabs. A line without a marker counts as
// column -1.
func alignment(lines []string, marker string) (int, bool) {
	col := column(lines[0], marker)
	for _, l := range lines[1:] {
		if column(l, marker) != col {
			return 0, false
		}
	}
	return col, true
}

func column(line, marker string) int {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return -1
	}
	return utf8.RuneCountInString(line[:idx])
}

// dropRunes removes the first n runes of s
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

// stripDirectives blanks the argument that follows each directive keyword,
// e.g. the parameter name in "\param name description". The keyword and the
// rest of the line are kept.
func stripDirectives(line string, directives []string) string {
	for _, directive := range directives {
		if directive == "" || !strings.Contains(line, directive) {
			continue
		}

		spans := fieldSpans(line)
		for k, s := range spans {
			if line[s[0]:s[1]] != directive {
				continue
			}
			if k+1 < len(spans) {
				arg := spans[k+1]
				line = line[:arg[0]] + " " + line[arg[1]:]
			}
			break
		}
	}
	return line
}

// fieldSpans returns the byte ranges of the whitespace separated fields of s
func fieldSpans(s string) [][2]int {
	var spans [][2]int
	start := -1
	for i, r := range s {
		space := r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
		switch {
		case space && start >= 0:
			spans = append(spans, [2]int{start, i})
			start = -1
		case !space && start < 0:
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, [2]int{start, len(s)})
	}
	return spans
}

// expandTabs replaces tabs with spaces up to the next multiple of size
func expandTabs(s string, size int) string {
	if size <= 0 || !strings.Contains(s, "\t") {
		return s
	}

	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := size - col%size
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}
