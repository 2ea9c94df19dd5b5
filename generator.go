package fontcss

import (
	"fmt"
	"os"
	"path/filepath"
)

// Generate is the main entry point. It scans the fonts directory one
// level deep, builds one @font-face rule per recognized font file, and
// writes the stylesheet in a single all-or-nothing step. On any failure
// the output file is left untouched.
func Generate(config Config) (*GenerateResult, error) {
	result := &GenerateResult{}

	fontsDir := filepath.Clean(config.FontsDir)

	// 1. The fonts root must exist before anything is attempted.
	if _, err := os.Stat(fontsDir); err != nil {
		return nil, &SourceNotFoundError{Path: fontsDir}
	}

	// 2. Enumerate families and their recognized files.
	families, err := ScanFamilies(fontsDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	if len(families) == 0 {
		return nil, &NoFamiliesError{Path: fontsDir}
	}
	result.FamiliesFound = len(families)

	if config.Verbose {
		fmt.Printf("Found %d font families in %s\n", len(families), fontsDir)
	}

	// 3. Build rules in family-then-file order. Empty families are
	// skipped with a warning, never fatal.
	var rules []Rule
	for _, family := range families {
		if len(family.Files) == 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("no font files found in family folder %q", family.Name))
			continue
		}

		for _, file := range family.Files {
			rules = append(rules, buildRule(family, file))
			result.FilesScanned++
		}

		if config.Verbose {
			fmt.Printf("Family %s: %d files\n", family.Name, len(family.Files))
		}
	}

	// 4. Zero rules is fatal; the output file is not touched. The
	// partial result is still returned so callers can surface the
	// per-family warnings alongside the error.
	if len(rules) == 0 {
		return result, &NoRulesError{Path: fontsDir}
	}
	result.RulesGenerated = len(rules)

	// 5. Render fully in memory, then write.
	stylesheet := RenderStylesheet(rules)
	if err := writeAtomic(config.OutputFile, []byte(stylesheet)); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	absOut, err := filepath.Abs(config.OutputFile)
	if err != nil {
		absOut = config.OutputFile
	}
	result.OutputPath = absOut

	return result, nil
}

// buildRule derives the rule for one font file. The family label carries
// the file's 0-based index, and the url path uses forward slashes
// regardless of the host separator.
func buildRule(family FontFamily, file FontFile) Rule {
	keyword, _ := FormatKeyword(file.Extension)
	return Rule{
		Family: fmt.Sprintf("%s-%d", family.Name, file.Index),
		URL:    filepath.ToSlash(filepath.Join(family.Path, file.Name)),
		Format: keyword,
	}
}

// writeAtomic writes content via a temp file in the destination
// directory and renames it into place, so the destination never holds a
// partial stylesheet.
func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".fonts-*.css")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
