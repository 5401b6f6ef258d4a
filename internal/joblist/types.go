package joblist

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Job is one render request parsed from a job list.
type Job struct {
	Name   string // output base name, unique within a list
	Scene  string // preset name or scene file path
	Format string // optional output format override, e.g. "webp"
}

// ValidName reports an error when a slash-separated job name would not stay
// inside the output directory once joined to it.
func ValidName(name string) error {
	p := filepath.Clean(filepath.FromSlash(name))
	switch {
	case name == "" || p == ".":
		return fmt.Errorf("empty job name %q", name)
	case filepath.IsAbs(p) || strings.HasPrefix(name, "/") || filepath.VolumeName(p) != "":
		return fmt.Errorf("job name %q is an absolute path", name)
	case p == ".." || strings.HasPrefix(p, ".."+string(filepath.Separator)):
		return fmt.Errorf("job name %q leaves the output directory", name)
	}
	return nil
}
