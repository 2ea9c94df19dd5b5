package fontcss

// FontFile is a single recognized font file inside a family directory.
type FontFile struct {
	Name      string // "Roboto-Regular.ttf"
	Extension string // "ttf" (no leading dot)
	Index     int    // 0-based position among recognized files in the family
}

// FontFamily is one immediate subdirectory of the fonts root.
type FontFamily struct {
	Name  string // directory name, e.g. "Roboto"
	Path  string // as constructed from the fonts root
	Files []FontFile
}

// Rule is one generated @font-face declaration.
type Rule struct {
	Family string // generated label, e.g. "Roboto-0"
	URL    string // web-usable path, forward slashes only
	Format string // stylesheet format keyword, e.g. "truetype"
}

// Config holds generator configuration
type Config struct {
	FontsDir   string   // root directory containing one subdirectory per family
	OutputFile string   // destination stylesheet path
	Includes   []string // filename patterns for recognized files (default: *.ttf, *.otf, *.woff, *.woff2)
	Verbose    bool     // Enable debug logging
}

// GenerateResult contains generation stats
type GenerateResult struct {
	OutputPath     string // absolute path of the written stylesheet
	FamiliesFound  int
	FilesScanned   int
	RulesGenerated int
	Warnings       []string // one entry per family skipped for having no recognized files
}

// LintConfig holds stylesheet linting configuration
type LintConfig struct {
	Stylesheet string // path to the stylesheet to lint
	RootDir    string // base directory for resolving url() targets (default: ".")
	Verbose    bool
	Strict     bool // any issue fails, not just errors

	PrintLinterName bool // show (fontlint) suffix (default: true)
	UseColors       bool // enable color output (default: auto-detect)
}

// LintResult contains linting analysis results
type LintResult struct {
	Issues       []Issue
	RulesChecked int // @font-face rules inspected
	ErrorCount   int
	WarningCount int
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
