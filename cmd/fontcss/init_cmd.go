package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .fontcss.yaml config file",
	Long:  `Create a .fontcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".fontcss.yaml"); err == nil && !force {
			return fmt.Errorf(".fontcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".fontcss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .fontcss.yaml")
		return nil
	},
}

const defaultConfig = `# fontcss configuration

# Shared settings
verbose: false

# Generation settings
generate:
  source: web/fonts
  output: web/fonts/fonts.css
  include:
    - "*.ttf"
    - "*.otf"
    - "*.woff"
    - "*.woff2"

# Linting settings
lint:
  stylesheet: web/fonts/fonts.css
  root: .
  strict: false
  output-format: issues    # issues | json
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
