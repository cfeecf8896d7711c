// Package datatable is the public entry point: load a table from a file,
// save one back. The format is selected by file extension (.json and .xml
// read/write, .xlsx read-only); anything else is ErrUnsupportedFormat.
package datatable

import (
	"github.com/fieldline/datatable/internal/format"
	"github.com/fieldline/datatable/pkg/table"
)

// Version is the release version, set at build time via -ldflags.
var Version = "dev"

// Load reads and decodes the table stored at path.
func Load(path string) (*table.Table, error) {
	return format.Load(path)
}

// Save encodes t and writes it to path, replacing any existing file.
func Save(t *table.Table, path string) error {
	return format.Save(t, path)
}
