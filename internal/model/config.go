package model

import "time"

// Config is the complete commentspell configuration
type Config struct {
	Words       WordsConfig       `yaml:"words" mapstructure:"words"`
	Dictionary  DictionaryConfig  `yaml:"dictionary" mapstructure:"dictionary"`
	Block       BlockConfig       `yaml:"block" mapstructure:"block"`
	Python      PythonConfig      `yaml:"python" mapstructure:"python"`
	Sources     SourcesConfig     `yaml:"sources" mapstructure:"sources"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Watch       WatchConfig       `yaml:"watch" mapstructure:"watch"`
}

// WordsConfig lists words that are never reported. Both lists are compared
// case-insensitively.
type WordsConfig struct {
	Custom []string `yaml:"custom" mapstructure:"custom"` // Project vocabulary
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // Known noise (abbreviations, names)
}

// DictionaryConfig selects the word lists backing the spelling check
type DictionaryConfig struct {
	Locale         string   `yaml:"locale" mapstructure:"locale"`
	WordLists      []string `yaml:"word_lists" mapstructure:"word_lists"`
	MaxSuggestions int      `yaml:"max_suggestions" mapstructure:"max_suggestions"`
	MaxDistance    int      `yaml:"max_distance" mapstructure:"max_distance"`
}

// BlockConfig drives the bracket-delimited block comment extractor
type BlockConfig struct {
	Begin           string   `yaml:"begin" mapstructure:"begin"`
	End             string   `yaml:"end" mapstructure:"end"`
	Marker          string   `yaml:"marker" mapstructure:"marker"`     // Continuation character aligned down the block
	TabSize         int      `yaml:"tab_size" mapstructure:"tab_size"` // Tab stop used before alignment checks
	SingleLine      bool     `yaml:"single_line" mapstructure:"single_line"`
	StripDirectives bool     `yaml:"strip_directives" mapstructure:"strip_directives"`
	Directives      []string `yaml:"directives" mapstructure:"directives"` // Keywords whose next token is blanked
	Skip            []string `yaml:"skip" mapstructure:"skip"`             // Substrings that disqualify a whole block
}

// PythonConfig drives the token-stream extractor
type PythonConfig struct {
	BypassPrefix string `yaml:"bypass_prefix" mapstructure:"bypass_prefix"` // Marks commented-out code
}

// SourcesConfig controls file discovery and reading
type SourcesConfig struct {
	Extensions   []string `yaml:"extensions" mapstructure:"extensions"`
	MaxFileBytes int64    `yaml:"max_file_bytes" mapstructure:"max_file_bytes"`
}

// CacheConfig controls the suggestion cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"` // Empty keeps the cache in memory only
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
	CheckSize int           `yaml:"check_size" mapstructure:"check_size"` // Entries in the check result LRU
}

// ConcurrencyConfig controls parallel extraction
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls reporting
type OutputConfig struct {
	ReportOnce    bool `yaml:"report_once" mapstructure:"report_once"`
	Summary       bool `yaml:"summary" mapstructure:"summary"`
	FailOnUnknown bool `yaml:"fail_on_unknown" mapstructure:"fail_on_unknown"`
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
}

// WatchConfig controls the watch command
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Words: WordsConfig{
			Custom: []string{},
			Ignore: []string{},
		},
		Dictionary: DictionaryConfig{
			Locale:         "en_US",
			WordLists:      []string{"/usr/share/dict/words"},
			MaxSuggestions: 10,
			MaxDistance:    2,
		},
		Block: BlockConfig{
			Begin:           "/*",
			End:             "*/",
			Marker:          "*",
			TabSize:         4,
			SingleLine:      false,
			StripDirectives: true,
			Directives: []string{
				`\section`,
				`\subsection`,
				`\subsubsection`,
				`\ingroup`,
				`\param`,
				`\page`,
			},
			Skip: []string{
				"BEGIN GPL LICENSE BLOCK",
			},
		},
		Python: PythonConfig{
			BypassPrefix: "#~",
		},
		Sources: SourcesConfig{
			Extensions:   []string{".c", ".inl", ".cpp", ".cxx", ".hpp", ".hxx", ".h", ".py"},
			MaxFileBytes: 8 << 20,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: time.Hour,
			DiskTTL:   7 * 24 * time.Hour,
			CheckSize: 65536,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 1,
		},
		Output: OutputConfig{
			ReportOnce: true,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}
