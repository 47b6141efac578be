package vocab

import (
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/vocabdedup/pkg/types"
)

// RecordTable holds the rows of one data file in memory. Every record's File
// equals the table name.
type RecordTable struct {
	name     string
	path     string
	records  []types.Record
	migrated bool
}

// ReadTable parses the data file at path. A legacy two-column file gets
// default tags and is marked as migrated, but nothing is written.
func ReadTable(path string) (*RecordTable, error) {
	name := filepath.Base(path)
	rows, err := readRows(path, name)
	if err != nil {
		return nil, err
	}

	t := &RecordTable{
		name:    name,
		path:    path,
		records: make([]types.Record, 0, len(rows)),
	}
	for _, row := range rows {
		rec := types.Record{Key: row[0], Value: row[1], File: name}
		if len(row) == columnsLegacy {
			rec.Tags = LegacyTag(name)
			t.migrated = true
		} else {
			rec.Tags = row[2]
		}
		t.records = append(t.records, rec)
	}
	return t, nil
}

// LoadTable reads the data file at path and, when it was in the legacy
// two-column layout, writes the upgraded three-column form back immediately.
func LoadTable(path string) (*RecordTable, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if t.migrated {
		if err := t.Save(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// LegacyTag derives the default tag of a legacy file from its name: the base
// name without extension, with whitespace runs replaced by underscores so it
// stays a single tag token.
func LegacyTag(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return strings.Join(strings.Fields(base), "_")
}

// Name returns the base name of the data file.
func (t *RecordTable) Name() string { return t.name }

// Path returns the path the table was read from and is saved to.
func (t *RecordTable) Path() string { return t.path }

// Len returns the number of rows.
func (t *RecordTable) Len() int { return len(t.records) }

// Migrated reports whether the file was in the legacy two-column layout.
func (t *RecordTable) Migrated() bool { return t.migrated }

// Records returns a copy of the rows in file order.
func (t *RecordTable) Records() []types.Record {
	out := make([]types.Record, len(t.records))
	copy(out, t.records)
	return out
}

// FindByKey returns copies of every row whose key matches, in file order.
func (t *RecordTable) FindByKey(key string) []types.Record {
	var out []types.Record
	for _, rec := range t.records {
		if rec.Key == key {
			out = append(out, rec)
		}
	}
	return out
}

// SetTags overwrites the tags of every row matching key. It reports whether
// any row changed; when none did the table is left untouched.
func (t *RecordTable) SetTags(key, tags string) bool {
	changed := false
	for i := range t.records {
		if t.records[i].Key == key && t.records[i].Tags != tags {
			t.records[i].Tags = tags
			changed = true
		}
	}
	return changed
}

// Save overwrites the data file with the current rows. There is no temp
// file and no backup.
func (t *RecordTable) Save() error {
	return writeRecords(t.path, t.records)
}
