package ingest

import (
	"path/filepath"
	"strings"

	"github.com/fiscaldata/nf-extractor/constants"
)

// AllowedExt reports whether ext names an ingestible format (pdf or zip).
func AllowedExt(ext string) bool {
	_, ok := constants.AllowedExtensions[constants.NormalizeExt(ext)]
	return ok
}

// IsHidden reports whether the path's base name starts with a dot.
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}
