package main

import (
	"fmt"
	"os"

	fontcss "github.com/alanhenriquez/geminis-front"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate an @font-face stylesheet from a fonts folder",
	Long: `Scan the fonts folder one level deep and emit one @font-face rule per
recognized font file (ttf, otf, woff, woff2). Family labels carry the file's
position within its folder: Roboto/Roboto-Bold.woff2 becomes 'Roboto-1'.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", "web/fonts", "Fonts directory, one subdirectory per family")
	f.String("output", "web/fonts/fonts.css", "Destination stylesheet path")
	f.StringSlice("include", nil, "Filename patterns for font files to include")
	f.Bool("lint", false, "Lint the stylesheet after generating")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	quiet := getBoolWithFallback("quiet", "quiet", false)

	result, err := fontcss.Generate(config)
	if err != nil {
		if result != nil && !quiet {
			for _, w := range result.Warnings {
				fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
			}
		}
		return err
	}

	if !quiet {
		fmt.Printf("Stylesheet written to %s\n", result.OutputPath)
		fmt.Printf("  Families found: %d\n", result.FamiliesFound)
		fmt.Printf("  Rules generated: %d\n", result.RulesGenerated)

		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
	}

	// Run lint after generate if --lint flag set
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		return runLint(config.OutputFile)
	}

	return nil
}
