package spell

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/ppiankov/commentspell/internal/model"
)

// ReporterOptions tunes which words a Reporter flags
type ReporterOptions struct {
	Custom     []string // Project words accepted in addition to the dictionary
	Ignore     []string // Words never reported
	ReportOnce bool     // Report each word form once per run
}

// Reporter checks candidate words against a Dictionary and writes one
// diagnostic line per unknown word.
type Reporter struct {
	dict   Dictionary
	seen   *Seen
	custom map[string]struct{}
	ignore map[string]struct{}
	once   bool
	out    io.Writer

	mu      sync.Mutex
	summary model.Summary
}

// NewReporter creates a reporter writing to out. seen may be shared between
// reporters; a nil seen gets a private set.
func NewReporter(dict Dictionary, seen *Seen, out io.Writer, opts ReporterOptions) *Reporter {
	if seen == nil {
		seen = NewSeen()
	}

	return &Reporter{
		dict:   dict,
		seen:   seen,
		custom: lowerSet(opts.Custom),
		ignore: lowerSet(opts.Ignore),
		once:   opts.ReportOnce,
		out:    out,
	}
}

// Report checks every word of fc in order and returns what was reported.
// A file that failed extraction is counted and otherwise skipped.
func (r *Reporter) Report(fc model.FileComments) []model.Finding {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.summary.Files++
	if fc.Err != nil {
		r.summary.Failed++
		return nil
	}

	var findings []model.Finding
	for _, c := range fc.Comments {
		r.summary.Comments++

		for _, word := range c.Words {
			r.summary.Words++

			lower := strings.ToLower(word)
			if _, ok := r.custom[lower]; ok {
				continue
			}
			if _, ok := r.ignore[lower]; ok {
				continue
			}
			if r.dict.Check(word) {
				continue
			}
			if r.once && !r.seen.Mark(lower) {
				continue
			}

			finding := model.Finding{
				File:        c.Comment.File,
				Line:        c.Comment.Line,
				Word:        word,
				Suggestions: r.dict.Suggest(word),
			}
			if _, err := fmt.Fprintln(r.out, finding.String()); err != nil {
				slog.Warn("failed to write finding", slog.String("error", err.Error()))
			}

			findings = append(findings, finding)
			r.summary.Unknown++
		}
	}

	return findings
}

// Summary returns the counts accumulated so far
func (r *Reporter) Summary() model.Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.summary
}

func lowerSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
