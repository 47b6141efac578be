// Package vocab loads a directory of vocabulary CSV files and reconciles the
// tags of words that appear in more than one place.
//
// A Catalog owns one RecordTable per data file plus a combined snapshot of
// every record. The snapshot is taken once at load time and drives both the
// iteration order and the tag arithmetic; it is not refreshed when tables are
// rewritten.
package vocab

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/vocabdedup/internal/logging"
	"github.com/mesh-intelligence/vocabdedup/pkg/types"
)

// Catalog holds every table of a vocabulary directory.
type Catalog struct {
	config types.Config
	tables []*RecordTable
	view   *view
}

// Load reads every data file directly inside cfg.Directory, in file name
// order, and builds the combined view. Legacy files are upgraded on disk only
// once every file has parsed, so a failed load leaves the directory untouched.
func Load(ctx context.Context, cfg types.Config) (*Catalog, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	entries, err := os.ReadDir(cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrDirectory, cfg.Directory, err)
	}

	c := &Catalog{config: cfg}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), cfg.Extension) {
			continue
		}
		path := filepath.Join(cfg.Directory, e.Name())

		t, err := ReadTable(path)
		if err != nil {
			return nil, err
		}
		c.tables = append(c.tables, t)
	}

	for _, t := range c.tables {
		if !t.Migrated() {
			continue
		}
		if !cfg.ReadOnly {
			if err := t.Save(); err != nil {
				return nil, err
			}
		}
		log.Info().
			Str("file", t.Name()).
			Str("tags", LegacyTag(t.Name())).
			Bool("written", !cfg.ReadOnly).
			Msg("Upgraded legacy two-column file")
	}

	v, err := newView(ctx, c.tables)
	if err != nil {
		return nil, err
	}
	c.view = v

	log.Debug().
		Str("directory", cfg.Directory).
		Int("tables", len(c.tables)).
		Msg("Loaded vocabulary")
	return c, nil
}

// Close releases the combined view. Queries on a closed Catalog return
// types.ErrCatalogClosed.
func (c *Catalog) Close() error {
	if c.view == nil {
		return nil
	}
	err := c.view.close()
	c.view = nil
	return err
}

// Config returns the effective configuration.
func (c *Catalog) Config() types.Config { return c.config }

// Tables returns the loaded tables in load order.
func (c *Catalog) Tables() []*RecordTable {
	out := make([]*RecordTable, len(c.tables))
	copy(out, c.tables)
	return out
}

// FindDuplicateKeys returns every key that occurs on more than one record of
// the combined view, once each, in the order the keys are first met as
// duplicates.
func (c *Catalog) FindDuplicateKeys(ctx context.Context) ([]string, error) {
	return c.view.duplicateKeys(ctx)
}

// Files returns the names of the files containing key, in view order.
func (c *Catalog) Files(ctx context.Context, key string) ([]string, error) {
	return c.view.files(ctx, key)
}

// MergedTags computes the tag string for key from the combined view.
func (c *Catalog) MergedTags(ctx context.Context, key string) (string, error) {
	tags, err := c.view.tags(ctx, key)
	if err != nil {
		return "", err
	}
	return MergeTags(tags...), nil
}

// CheckTranslationConsistency returns the distinct translations of key and
// warns when there is more than one. Nothing is modified.
func (c *Catalog) CheckTranslationConsistency(ctx context.Context, key string) ([]string, bool, error) {
	values, err := c.view.values(ctx, key)
	if err != nil {
		return nil, false, err
	}
	consistent := len(values) <= 1
	if !consistent {
		logging.FromContext(ctx).Warn().
			Str("key", key).
			Strs("values", values).
			Msg("Translations are not consistent")
	}
	return values, consistent, nil
}

// ReconcileKey applies the merged tags of key to every table containing it
// and saves each table whose tags changed.
func (c *Catalog) ReconcileKey(ctx context.Context, key string) (KeyReport, error) {
	log := logging.FromContext(ctx)
	kr := KeyReport{Key: key}

	merged, err := c.MergedTags(ctx, key)
	if err != nil {
		return kr, err
	}
	kr.MergedTags = merged

	for _, t := range c.tables {
		matches := len(t.FindByKey(key))
		if matches == 0 {
			continue
		}

		if t.SetTags(key, merged) {
			if !c.config.ReadOnly {
				if err := t.Save(); err != nil {
					return kr, err
				}
			}
			kr.Fixed = append(kr.Fixed, t.Name())
			log.Info().
				Str("key", key).
				Str("file", t.Name()).
				Str("tags", merged).
				Bool("written", !c.config.ReadOnly).
				Msg("Fixed tags")
		} else {
			kr.Unchanged = append(kr.Unchanged, t.Name())
			log.Info().
				Str("key", key).
				Str("file", t.Name()).
				Msg("No changes")
		}

		if matches > 1 {
			kr.Anomalies = append(kr.Anomalies, t.Name())
			log.Warn().
				Str("key", key).
				Str("file", t.Name()).
				Int("rows", matches).
				Msg("Key appears on several rows of one file")
		}
	}
	return kr, nil
}

// Run reconciles every duplicate key: it announces the files involved,
// checks translation consistency, and unifies the tags.
func (c *Catalog) Run(ctx context.Context) (*Report, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating run id: %w", err)
	}
	ctx = logging.WithRunID(ctx, id.String())
	log := logging.FromContext(ctx)

	records, err := c.view.count(ctx)
	if err != nil {
		return nil, err
	}
	report := &Report{
		RunID:   id.String(),
		Tables:  len(c.tables),
		Records: records,
	}
	for _, t := range c.tables {
		if t.Migrated() {
			report.Migrated = append(report.Migrated, t.Name())
		}
	}

	keys, err := c.FindDuplicateKeys(ctx)
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		files, err := c.Files(ctx, key)
		if err != nil {
			return report, err
		}
		log.Info().Str("key", key).Strs("files", files).Msg("Found duplicates")

		values, consistent, err := c.CheckTranslationConsistency(ctx, key)
		if err != nil {
			return report, err
		}

		kr, err := c.ReconcileKey(ctx, key)
		if err != nil {
			return report, err
		}
		kr.Files = files
		kr.Values = values
		kr.Consistent = consistent
		report.Keys = append(report.Keys, kr)
	}

	log.Info().
		Int("tables", report.Tables).
		Int("duplicates", len(report.Keys)).
		Int("fixed", report.FixedFiles()).
		Int("mismatches", report.Mismatches()).
		Int("anomalies", report.Anomalies()).
		Msg("Reconciliation complete")
	return report, nil
}
