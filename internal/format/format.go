// Package format implements the persistence adapters for tables and the
// file-extension dispatch between them. Each adapter is a parse/render pair
// over whole-file byte slices; file I/O happens only in Load and Save.
package format

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fieldline/datatable/pkg/table"
)

// Decoder turns file bytes into a table.
type Decoder interface {
	Decode(data []byte) (*table.Table, error)
}

// Encoder turns a table into file bytes.
type Encoder interface {
	Encode(t *table.Table) ([]byte, error)
}

// The adapter sets are closed: extensions map to adapters here and nowhere
// else. The spreadsheet format is import-only, so it appears in decoders but
// not in encoders and saving to it fails like any unknown extension.
var (
	decoders = map[string]Decoder{
		".json": jsonAdapter{},
		".xml":  xmlAdapter{},
		".xlsx": xlsxAdapter{},
	}
	encoders = map[string]Encoder{
		".json": jsonAdapter{},
		".xml":  xmlAdapter{},
	}
)

// Load reads the file at path and decodes it with the adapter selected by
// the (case-insensitive) file extension.
func Load(path string) (*table.Table, error) {
	dec, ok := decoders[extOf(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", table.ErrUnsupportedFormat, extOf(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return dec.Decode(data)
}

// Save encodes t with the adapter selected by the file extension and writes
// the result to path atomically.
func Save(t *table.Table, path string) error {
	enc, ok := encoders[extOf(path)]
	if !ok {
		return fmt.Errorf("%w: %q", table.ErrUnsupportedFormat, extOf(path))
	}
	data, err := enc.Encode(t)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// writeFileAtomic writes data to path using the temp-file, fsync, rename
// pattern so a failed save never leaves a truncated file behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".datatable-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// sortedColumns returns a row's column names in lexical order. Go maps have
// no iteration order, so both text encoders emit columns sorted to keep
// output bytes deterministic.
func sortedColumns(row table.Row) []string {
	cols := make([]string, 0, len(row))
	for name := range row {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	return cols
}
