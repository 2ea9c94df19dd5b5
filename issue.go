package fontcss

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter string   `json:"FromLinter"` // "fontlint"
	Text       string   `json:"Text"`       // "font file \"web/fonts/Roboto/x.ttf\" referenced by rule does not exist"
	Severity   string   `json:"Severity"`   // "warning", "error"
	Pos        IssuePos `json:"Pos"`        // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/fonts/fonts.css"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message templates matching linter categories
const (
	IssueMissingFont    = "font file %q referenced by src does not exist"
	IssueFormatMismatch = "format keyword %q does not match extension of %q (expected %q)"
	IssueUnknownFormat  = "unknown format keyword %q"
	IssueMissingSrc     = "@font-face rule %q has no src declaration"
	IssueMissingFamily  = "@font-face rule has no font-family declaration"
)
