package main

import (
	"fmt"
	"os"

	fontcss "github.com/alanhenriquez/geminis-front"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint an @font-face stylesheet against the filesystem",
	Long: `Check that every @font-face rule in a stylesheet points at a font file
that exists and that its format keyword matches the file's extension.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		stylesheet := getStringWithFallback("stylesheet", "lint.stylesheet", "web/fonts/fonts.css")
		return runLint(stylesheet)
	},
}

func init() {
	f := lintCmd.Flags()
	f.String("stylesheet", "web/fonts/fonts.css", "Stylesheet to lint")
	f.String("root", ".", "Base directory for resolving url() targets")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|json")
	f.Bool("print-linter-name", true, "Show (fontlint) suffix on issues")
}

// runLint is shared between `fontcss lint` and `fontcss generate --lint`.
func runLint(stylesheet string) error {
	lintConfig := buildLintConfig(stylesheet)

	lintResult, err := fontcss.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := fontcss.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		fontcss.WriteOutput(os.Stdout, lintResult, format, lintConfig)
	}

	// Exit code logic - "Soft Gate" approach
	strict := getBoolWithFallback("strict", "lint.strict", false)
	if strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(lintResult.Issues) > 0 {
			os.Exit(1)
		}
	} else if lintResult.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
