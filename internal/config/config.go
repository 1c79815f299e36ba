package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/encoding/htmlindex"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "czwords"

	// DefaultProjectRoot is the directory scanned when --project-root is not given.
	// It is resolved against the current working directory.
	DefaultProjectRoot = "src"

	// DefaultEncoding is the text encoding used to decode source files.
	DefaultEncoding = "utf-8"

	// DefaultLanguageName is the vocabulary language printed in the report footer.
	DefaultLanguageName = "Czech"

	// LogFormatText writes log records as key=value text.
	LogFormatText = "text"

	// LogFormatJSON writes log records as JSON objects.
	LogFormatJSON = "json"
)

// DefaultExtensions lists the file suffixes scanned when --extensions is not given.
// Matching is a case-sensitive suffix match on the file name.
var DefaultExtensions = []string{
	".c",
	".cc",
	".cpp",
	".cxx",
	".h",
	".hh",
	".hpp",
	".hxx",
	".inl",
	".rc",
	".rc2",
	".rh",
}

// Config holds all configuration options for a czwords run.
// It is populated from the configuration file and CLI flags and passed
// through the application rather than kept as global state.
type Config struct {
	// ProjectRoot is the directory to scan.
	ProjectRoot string

	// Extensions are the accepted file suffixes. Must not be empty.
	Extensions []string

	// NameFilters are optional glob patterns. When set, a file must match at
	// least one pattern by its root-relative path or by its bare file name.
	NameFilters []string

	// NoRecursion restricts the scan to the files directly inside ProjectRoot.
	NoRecursion bool

	// ExcludePatterns are glob patterns for directories (and files) to skip.
	ExcludePatterns []string

	// ExcludeVendor skips vendored third-party paths such as vendor/ or node_modules/.
	ExcludeVendor bool

	// RespectGitignore skips paths ignored by .gitignore files below ProjectRoot.
	RespectGitignore bool

	// Encoding is the WHATWG label of the encoding used to decode files.
	Encoding string

	// StripMarkup tokenizes only text and comments of HTML/XML files.
	StripMarkup bool

	// SplitCamelCase splits identifiers such as "pocetSouboru" before lookup.
	SplitCamelCase bool

	// WordsFile replaces the embedded target-language word list.
	WordsFile string

	// OtherWordsFile replaces the embedded word list of the codebase language.
	OtherWordsFile string

	// KeepSharedWords keeps words present in both vocabularies in the known set.
	KeepSharedWords bool

	// LanguageName is the vocabulary language shown in the report.
	LanguageName string

	// JSONReport enables JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// OutputFile is the report destination. Empty means stdout.
	OutputFile string

	// SaveHistory records the run in the SQLite history database.
	SaveHistory bool

	// DBDir is the directory holding the history database.
	// Defaults to the XDG data directory (~/.local/share/czwords on Linux).
	DBDir string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the current directory, the home directory
	// and the XDG config directory.
	ConfigFilePath string

	// Verbose enables debug logging.
	Verbose bool

	// LogFormat selects the log record format: LogFormatText or LogFormatJSON.
	LogFormat string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	extensions := make([]string, len(DefaultExtensions))
	copy(extensions, DefaultExtensions)

	return &Config{
		ProjectRoot:  DefaultProjectRoot,
		Extensions:   extensions,
		Encoding:     DefaultEncoding,
		LanguageName: DefaultLanguageName,
		DBDir:        XDGDataDir(),
		LogFormat:    LogFormatText,
	}
}

// XDGDataDir returns the XDG data directory for czwords.
// On Linux: ~/.local/share/czwords
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for czwords.
// On Linux: ~/.config/czwords
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return ErrNoExtensions
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	for _, pattern := range c.NameFilters {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
	}
	for _, pattern := range c.ExcludePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
		}
	}

	if _, err := htmlindex.Get(c.Encoding); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownEncoding, c.Encoding)
	}

	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, c.LogFormat)
	}

	return nil
}
