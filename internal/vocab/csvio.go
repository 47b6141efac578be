package vocab

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mesh-intelligence/vocabdedup/pkg/types"
)

// Column counts of the current and the legacy file layout.
const (
	columnsCurrent = 3
	columnsLegacy  = 2
)

// utf8BOM is dropped from the start of a file; spreadsheet exports often
// carry one.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readRows parses a headerless comma-delimited file. Every row must have the
// same number of fields, and that number must be 2 or 3.
func readRows(path, name string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrFileRead, path, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = 0
	rows, err := r.ReadAll()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &types.ParseError{File: name, Line: pe.Line, Err: pe.Err}
		}
		return nil, &types.ParseError{File: name, Err: err}
	}

	if len(rows) > 0 {
		if n := len(rows[0]); n != columnsCurrent && n != columnsLegacy {
			return nil, &types.ParseError{
				File: name,
				Line: 1,
				Err:  fmt.Errorf("expected %d or %d fields, got %d", columnsLegacy, columnsCurrent, n),
			}
		}
	}
	return rows, nil
}

// writeRecords overwrites path with every record as key, value, tags, each
// field quoted. The existing file mode is kept.
func writeRecords(path string, records []types.Record) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	var buf bytes.Buffer
	for _, rec := range records {
		buf.WriteString(quoteField(rec.Key))
		buf.WriteByte(',')
		buf.WriteString(quoteField(rec.Value))
		buf.WriteByte(',')
		buf.WriteString(quoteField(rec.Tags))
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(path, buf.Bytes(), mode); err != nil {
		return fmt.Errorf("%w: %s: %w", types.ErrFileWrite, path, err)
	}
	return nil
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
