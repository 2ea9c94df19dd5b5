package fontcss

import "fmt"

// SourceNotFoundError reports a fonts root that does not exist on disk.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("fonts directory %q does not exist", e.Path)
}

// NoFamiliesError reports a fonts root with no subdirectories.
type NoFamiliesError struct {
	Path string
}

func (e *NoFamiliesError) Error() string {
	return fmt.Sprintf("no font family directories found inside %q", e.Path)
}

// NoRulesError reports a run where every family was skipped and zero
// rules were produced. The output file is left untouched.
type NoRulesError struct {
	Path string
}

func (e *NoRulesError) Error() string {
	return fmt.Sprintf("no @font-face rules generated from %q: check the folder and file structure", e.Path)
}
