// Package fontcss generates @font-face stylesheets from a directory tree of
// font files and lints the stylesheets it produces.
//
// # Generation
//
// Each immediate subdirectory of the fonts root is treated as one font family.
// Every recognized font file (ttf, otf, woff, woff2) inside a family becomes
// one @font-face rule:
//
//	config := fontcss.Config{
//		FontsDir:   "web/fonts",
//		OutputFile: "web/fonts/fonts.css",
//	}
//	result, err := fontcss.Generate(config)
//
// # Linting
//
// Lint an existing stylesheet against the filesystem:
//
//	lintConfig := fontcss.LintConfig{
//		Stylesheet: "web/fonts/fonts.css",
//		RootDir:    ".",
//	}
//	result, err := fontcss.Lint(lintConfig)
//
// # CLI Tool
//
// fontcss also provides a CLI tool. Install with:
//
//	go install github.com/alanhenriquez/geminis-front/cmd/fontcss@latest
package fontcss
