package spell

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// WordListOption configures a WordList
type WordListOption func(*WordList)

// WithMaxSuggestions caps the number of suggestions returned
func WithMaxSuggestions(n int) WordListOption {
	return func(d *WordList) {
		if n > 0 {
			d.maxSuggestions = n
		}
	}
}

// WithMaxDistance sets the largest edit distance a suggestion may have
func WithMaxDistance(n int) WordListOption {
	return func(d *WordList) {
		if n > 0 {
			d.maxDistance = n
		}
	}
}

// WordList is a Dictionary backed by plain word lists, one word per line,
// such as /usr/share/dict/words. It is read-only after construction and
// safe for concurrent use.
type WordList struct {
	locale         string
	words          map[string]struct{}
	byLength       map[int][]string // lowercase entries keyed by rune count
	original       map[string]string
	maxSuggestions int
	maxDistance    int
}

// NewWordList builds a dictionary from words
func NewWordList(locale string, words []string, opts ...WordListOption) *WordList {
	d := &WordList{
		locale:         locale,
		words:          make(map[string]struct{}, len(words)),
		byLength:       make(map[int][]string),
		original:       make(map[string]string),
		maxSuggestions: 10,
		maxDistance:    2,
	}

	for _, opt := range opts {
		opt(d)
	}

	for _, w := range words {
		d.add(w)
	}

	return d
}

// LoadWordList reads every readable file in paths. Missing files are
// skipped; if none could be read ErrNoDictionary is returned.
func LoadWordList(locale string, paths []string, opts ...WordListOption) (*WordList, error) {
	d := NewWordList(locale, nil, opts...)

	loaded := 0
	for _, path := range paths {
		n, err := d.loadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				slog.Debug("word list not found", slog.String("path", path))
				continue
			}
			return nil, fmt.Errorf("load word list %s: %w", path, err)
		}
		slog.Debug("loaded word list", slog.String("path", path), slog.Int("words", n))
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w: none of %v could be read", ErrNoDictionary, paths)
	}

	return d, nil
}

func (d *WordList) loadFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = file.Close() }()

	n := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		d.add(line)
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("scan file: %w", err)
	}

	return n, nil
}

func (d *WordList) add(w string) {
	if w == "" {
		return
	}
	if _, ok := d.words[w]; ok {
		return
	}
	d.words[w] = struct{}{}

	lower := strings.ToLower(w)
	if _, ok := d.original[lower]; !ok {
		n := utf8.RuneCountInString(lower)
		d.byLength[n] = append(d.byLength[n], lower)
		d.original[lower] = w
	}
}

// Locale returns the locale the list was built for
func (d *WordList) Locale() string {
	return d.locale
}

// Len returns the number of distinct entries
func (d *WordList) Len() int {
	return len(d.words)
}

// Check accepts exact entries, plus capitalised or upper case forms of
// lower case entries ("The", "THE" for "the") and upper case forms of
// capitalised entries ("PARIS" for "Paris").
func (d *WordList) Check(word string) bool {
	if d.has(word) {
		return true
	}

	lower := strings.ToLower(word)
	upper := isAllUpper(word)
	if (upper || isCapitalized(word)) && d.has(lower) {
		return true
	}
	if upper && d.has(capitalize(lower)) {
		return true
	}

	return false
}

// Suggest returns entries within the maximum edit distance of word, nearest
// first. Suggestions are capitalised when word is.
func (d *WordList) Suggest(word string) []string {
	lower := strings.ToLower(word)
	n := utf8.RuneCountInString(lower)

	type candidate struct {
		word     string
		distance int
	}
	var candidates []candidate

	for l := n - d.maxDistance; l <= n+d.maxDistance; l++ {
		for _, entry := range d.byLength[l] {
			dist := levenshtein.ComputeDistance(lower, entry)
			if dist <= d.maxDistance {
				candidates = append(candidates, candidate{word: d.original[entry], distance: dist})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].word < candidates[j].word
	})

	capital := isCapitalized(word) || isAllUpper(word)
	suggestions := make([]string, 0, d.maxSuggestions)
	for _, c := range candidates {
		if len(suggestions) == d.maxSuggestions {
			break
		}
		s := c.word
		if capital {
			s = capitalize(s)
		}
		if s == word {
			continue
		}
		suggestions = append(suggestions, s)
	}

	return suggestions
}

func (d *WordList) has(w string) bool {
	_, ok := d.words[w]
	return ok
}

func isCapitalized(w string) bool {
	first, size := utf8.DecodeRuneInString(w)
	return unicode.IsUpper(first) && w[size:] == strings.ToLower(w[size:])
}

func isAllUpper(w string) bool {
	return strings.IndexFunc(w, unicode.IsLetter) >= 0 && w == strings.ToUpper(w)
}

func capitalize(w string) string {
	first, size := utf8.DecodeRuneInString(w)
	if first == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(first)) + w[size:]
}
