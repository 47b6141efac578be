package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vocabdedup/internal/vocab"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List duplicate words without changing any file",
		Args:  cobra.NoArgs,
		RunE:  runScan,
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := active.config
	cfg.ReadOnly = true
	ctx := cmd.Context()

	catalog, err := vocab.Load(ctx, cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	rows, err := scanRows(ctx, catalog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No duplicate words found")
		return nil
	}
	return renderScan(out, rows)
}

// scanRows describes every duplicate key as key, files, translations,
// merged tags, and status.
func scanRows(ctx context.Context, c *vocab.Catalog) ([][]string, error) {
	keys, err := c.FindDuplicateKeys(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		files, err := c.Files(ctx, key)
		if err != nil {
			return nil, err
		}
		values, consistent, err := c.CheckTranslationConsistency(ctx, key)
		if err != nil {
			return nil, err
		}
		merged, err := c.MergedTags(ctx, key)
		if err != nil {
			return nil, err
		}

		var status []string
		if !consistent {
			status = append(status, "mismatch")
		}
		for _, t := range c.Tables() {
			if len(t.FindByKey(key)) > 1 {
				status = append(status, "repeated in "+t.Name())
			}
		}
		if len(status) == 0 {
			status = append(status, "ok")
		}

		rows = append(rows, []string{
			key,
			strings.Join(files, ", "),
			strings.Join(values, " | "),
			merged,
			strings.Join(status, "; "),
		})
	}
	return rows, nil
}

func renderScan(w io.Writer, rows [][]string) error {
	table := tablewriter.NewTable(w)
	table.Header("Word", "Files", "Translations", "Merged Tags", "Status")
	for _, row := range rows {
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := table.Append(rowData...); err != nil {
			return err
		}
	}
	return table.Render()
}
