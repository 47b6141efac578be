package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release of the vocabdedup binary.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/vocabdedup"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the vocabdedup version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "vocabdedup v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
