package config

// File represents the structure of the .czwords configuration file.
// Every field is optional; zero values leave the built-in defaults untouched.
type File struct {
	// ProjectRoot is the directory to scan, relative paths are resolved
	// against the current working directory.
	ProjectRoot string `yaml:"projectRoot,omitempty"`

	// Extensions replaces the default extension list.
	Extensions []string `yaml:"extensions,omitempty"`

	// NameFilters are glob patterns restricting which files qualify.
	NameFilters []string `yaml:"nameFilter,omitempty"`

	// NoRecursion disables descending into subdirectories.
	NoRecursion bool `yaml:"noRecursion,omitempty"`

	// Exclude lists glob patterns of directories and files to skip.
	Exclude []string `yaml:"exclude,omitempty"`

	// ExcludeVendor skips vendored third-party paths.
	ExcludeVendor bool `yaml:"excludeVendor,omitempty"`

	// RespectGitignore skips paths ignored by .gitignore files.
	RespectGitignore bool `yaml:"respectGitignore,omitempty"`

	// Encoding is the WHATWG label used to decode files (e.g. windows-1250).
	Encoding string `yaml:"encoding,omitempty"`

	// StripMarkup tokenizes only the text content of HTML/XML files.
	StripMarkup bool `yaml:"stripMarkup,omitempty"`

	// SplitCamelCase splits camelCase identifiers before lookup.
	SplitCamelCase bool `yaml:"splitCamelCase,omitempty"`

	// Vocabulary configures the word lists.
	Vocabulary VocabularyFile `yaml:"vocabulary,omitempty"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"logFormat,omitempty"`
}

// VocabularyFile holds the vocabulary section of the configuration file.
type VocabularyFile struct {
	// Language is the name printed in the report footer.
	Language string `yaml:"language,omitempty"`

	// Words is the path of the target-language word list.
	Words string `yaml:"words,omitempty"`

	// OtherWords is the path of the word list of the codebase language.
	OtherWords string `yaml:"otherWords,omitempty"`

	// KeepShared keeps words that appear in both lists.
	KeepShared bool `yaml:"keepShared,omitempty"`
}

// Apply copies every value set in the file onto cfg.
// CLI flags are applied afterwards and win over file values.
func (cf *File) Apply(cfg *Config) {
	if cf.ProjectRoot != "" {
		cfg.ProjectRoot = cf.ProjectRoot
	}
	if len(cf.Extensions) > 0 {
		cfg.Extensions = cf.Extensions
	}
	if len(cf.NameFilters) > 0 {
		cfg.NameFilters = cf.NameFilters
	}
	if cf.NoRecursion {
		cfg.NoRecursion = true
	}
	if len(cf.Exclude) > 0 {
		cfg.ExcludePatterns = cf.Exclude
	}
	if cf.ExcludeVendor {
		cfg.ExcludeVendor = true
	}
	if cf.RespectGitignore {
		cfg.RespectGitignore = true
	}
	if cf.Encoding != "" {
		cfg.Encoding = cf.Encoding
	}
	if cf.StripMarkup {
		cfg.StripMarkup = true
	}
	if cf.SplitCamelCase {
		cfg.SplitCamelCase = true
	}
	if cf.Vocabulary.Language != "" {
		cfg.LanguageName = cf.Vocabulary.Language
	}
	if cf.Vocabulary.Words != "" {
		cfg.WordsFile = cf.Vocabulary.Words
	}
	if cf.Vocabulary.OtherWords != "" {
		cfg.OtherWordsFile = cf.Vocabulary.OtherWords
	}
	if cf.Vocabulary.KeepShared {
		cfg.KeepSharedWords = true
	}
	if cf.LogFormat != "" {
		cfg.LogFormat = cf.LogFormat
	}
}
