package fontcss

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// fontFaceRule is one parsed @font-face rule pending checks.
type fontFaceRule struct {
	family    string
	url       string
	format    string
	srcSeen   bool
	offset    int // byte offset of the rule start
	srcOffset int // byte offset of the src declaration
}

// Lint parses a stylesheet and verifies every @font-face rule against
// the filesystem: the src url target must exist under config.RootDir and
// the format keyword must agree with the target's extension.
func Lint(config LintConfig) (*LintResult, error) {
	if config.RootDir == "" {
		config.RootDir = "."
	}

	data, err := os.ReadFile(config.Stylesheet)
	if err != nil {
		return nil, fmt.Errorf("reading stylesheet: %w", err)
	}

	in := parse.NewInputBytes(data)
	p := css.NewParser(in, false)

	result := &LintResult{}
	var rule *fontFaceRule

	for {
		offset := in.Offset()
		gt, _, gd := p.Next()
		if gt == css.ErrorGrammar {
			if perr := p.Err(); perr != io.EOF {
				return nil, fmt.Errorf("parsing %s: %w", config.Stylesheet, perr)
			}
			break
		}

		switch gt {
		case css.BeginAtRuleGrammar:
			if isFontFace(gd) {
				rule = &fontFaceRule{offset: offset}
			}
		case css.EndAtRuleGrammar:
			if rule != nil {
				result.RulesChecked++
				checkRule(rule, config, in, result)
				rule = nil
			}
		case css.DeclarationGrammar:
			if rule == nil {
				continue
			}
			switch string(gd) {
			case "font-family":
				rule.family = firstStringValue(p.Values())
			case "src":
				rule.srcSeen = true
				rule.srcOffset = offset
				rule.url, rule.format = parseSrcValue(p.Values())
			}
		}
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

// isFontFace matches the at-rule keyword, tolerating the leading '@'.
func isFontFace(data []byte) bool {
	return strings.EqualFold(strings.TrimPrefix(string(data), "@"), "font-face")
}

// checkRule appends issues for one completed @font-face rule.
func checkRule(rule *fontFaceRule, config LintConfig, in *parse.Input, result *LintResult) {
	add := func(offset int, severity, text string) {
		line, col, _ := parse.Position(bytes.NewReader(in.Bytes()), offset)
		result.Issues = append(result.Issues, Issue{
			FromLinter: "fontlint",
			Text:       text,
			Severity:   severity,
			Pos: IssuePos{
				Filename: config.Stylesheet,
				Line:     line,
				Column:   col,
			},
		})
	}

	if rule.family == "" {
		add(rule.offset, SeverityWarning, IssueMissingFamily)
	}
	if !rule.srcSeen {
		add(rule.offset, SeverityWarning, fmt.Sprintf(IssueMissingSrc, rule.family))
		return
	}
	if rule.url == "" {
		return
	}

	target := filepath.FromSlash(rule.url)
	if !filepath.IsAbs(target) {
		target = filepath.Join(config.RootDir, target)
	}
	if _, err := os.Stat(target); err != nil {
		add(rule.srcOffset, SeverityError, fmt.Sprintf(IssueMissingFont, rule.url))
	}

	if rule.format == "" {
		return
	}
	ext := strings.TrimPrefix(filepath.Ext(rule.url), ".")
	if _, known := extensionForKeyword(rule.format); !known {
		add(rule.srcOffset, SeverityWarning, fmt.Sprintf(IssueUnknownFormat, rule.format))
	} else if expected, ok := FormatKeyword(ext); ok && expected != rule.format {
		add(rule.srcOffset, SeverityError, fmt.Sprintf(IssueFormatMismatch, rule.format, rule.url, expected))
	}
}

// firstStringValue extracts the first string or ident value of a
// declaration, with surrounding quotes stripped.
func firstStringValue(values []css.Token) string {
	for _, v := range values {
		switch v.TokenType {
		case css.StringToken:
			return trimQuotes(string(v.Data))
		case css.IdentToken:
			return string(v.Data)
		}
	}
	return ""
}

// parseSrcValue extracts the url target and the format() keyword from a
// src declaration value.
func parseSrcValue(values []css.Token) (url, format string) {
	for i, v := range values {
		switch v.TokenType {
		case css.URLToken:
			raw := strings.TrimSuffix(strings.TrimPrefix(string(v.Data), "url("), ")")
			url = trimQuotes(strings.TrimSpace(raw))
		case css.FunctionToken:
			name := strings.TrimSuffix(string(v.Data), "(")
			switch {
			case strings.EqualFold(name, "format"):
				format = firstArgument(values[i+1:])
			case strings.EqualFold(name, "url") && url == "":
				// quoted urls may lex as a function instead of a url token
				url = firstArgument(values[i+1:])
			}
		}
	}
	return url, format
}

// firstArgument returns the first string or ident argument before the
// closing parenthesis, quotes stripped.
func firstArgument(values []css.Token) string {
	for _, v := range values {
		switch v.TokenType {
		case css.StringToken, css.IdentToken:
			return trimQuotes(string(v.Data))
		case css.RightParenthesisToken:
			return ""
		}
	}
	return ""
}

// trimQuotes strips one layer of single or double quotes.
func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
