package fontcss

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// defaultIncludes covers the recognized font extensions. Matching is
// case-sensitive, so FONT.TTF is not picked up.
var defaultIncludes = []string{"*.ttf", "*.otf", "*.woff", "*.woff2"}

// loadGitIgnore loads <root>/.gitignore if present.
// Gracefully degrades when there is none.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// ScanFamilies enumerates the immediate subdirectories of root as font
// families and the recognized font files directly inside each. Nested
// subdirectories are not descended into. Entries matched by a .gitignore
// at the fonts root are skipped.
//
// os.ReadDir returns entries sorted by filename, so family order and the
// per-family file indices are stable across platforms and runs.
func ScanFamilies(root string, includes []string) ([]FontFamily, error) {
	if len(includes) == 0 {
		includes = defaultIncludes
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	gi := loadGitIgnore(root)

	var families []FontFamily
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if gi != nil && gi.MatchesPath(name+"/") {
			continue
		}

		familyPath := filepath.Join(root, name)
		files, err := scanFamilyFiles(familyPath, name, includes, gi)
		if err != nil {
			return nil, err
		}

		families = append(families, FontFamily{
			Name:  name,
			Path:  familyPath,
			Files: files,
		})
	}

	return families, nil
}

// scanFamilyFiles lists the recognized files directly inside one family
// directory. Index is assigned after filtering, so skipped entries never
// leave holes in the numbering.
func scanFamilyFiles(familyPath, familyName string, includes []string, gi *ignore.GitIgnore) ([]FontFile, error) {
	entries, err := os.ReadDir(familyPath)
	if err != nil {
		return nil, err
	}

	var files []FontFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if gi != nil && gi.MatchesPath(familyName+"/"+name) {
			continue
		}
		if !matchesInclude(name, includes) {
			continue
		}

		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		if _, ok := FormatKeyword(ext); !ok {
			continue
		}

		files = append(files, FontFile{
			Name:      name,
			Extension: ext,
			Index:     len(files),
		})
	}

	return files, nil
}

// matchesInclude reports whether a filename matches any include pattern.
func matchesInclude(name string, includes []string) bool {
	for _, pattern := range includes {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
