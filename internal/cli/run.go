package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vocabdedup/internal/vocab"
)

func newRunCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Unify the tags of duplicate words",
		Long: `Load every data file of the vocabulary directory, find words present in
more than one row, and write the union of their tags to every file that holds
them. Files are rewritten in place; there is no backup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd, dryRun)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report the fixes without writing any file")
	return cmd
}

func runReconcile(cmd *cobra.Command, dryRun bool) error {
	cfg := active.config
	cfg.ReadOnly = dryRun
	ctx := cmd.Context()

	catalog, err := vocab.Load(ctx, cfg)
	if err != nil {
		return err
	}
	defer catalog.Close()

	report, err := catalog.Run(ctx)
	if err != nil {
		return err
	}

	verb := "fixed"
	if dryRun {
		verb = "to fix"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d duplicate words in %d files, %d files %s, %d translation mismatches\n",
		len(report.Keys), report.Tables, report.FixedFiles(), verb, report.Mismatches())
	return nil
}
