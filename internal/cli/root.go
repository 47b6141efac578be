// Package cli implements the vocabdedup command-line interface.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/vocabdedup/internal/logging"
	"github.com/mesh-intelligence/vocabdedup/internal/paths"
	"github.com/mesh-intelligence/vocabdedup/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dir       string
	extension string
	logLevel  string
	logFormat string
	noColor   bool
}

var flags rootFlags

// active holds the settings resolved by the root PersistentPreRunE.
var active settings

// NewRootCmd creates the top-level "vocabdedup" command with global flags
// and all subcommands registered. Without a subcommand it runs the
// reconciliation.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vocabdedup",
		Short: "Reconcile duplicate vocabulary entries across CSV files",
		Long: `vocabdedup finds words that appear in more than one vocabulary CSV file,
unions their tags, writes the unified tags back to every file containing the
word, and warns when the translations disagree.`,
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd, false)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&flags.dir, "dir", "", "vocabulary directory (default: ./vocab)")
	pf.StringVar(&flags.extension, "ext", "", "data file extension (default: .csv)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: auto, console, json")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable coloured console output")

	root.AddCommand(newRunCmd())
	root.AddCommand(newScanCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps I/O and data errors to exitSysError and everything else,
// flag and argument mistakes included, to exitUserError.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrDirectory),
		errors.Is(err, types.ErrFileRead),
		errors.Is(err, types.ErrFileWrite),
		errors.Is(err, types.ErrParse):
		return exitSysError
	default:
		return exitUserError
	}
}

// setup loads configuration and installs the logger on the command context.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return err
	}

	v, err := loadConfig(configDir, cmd.Flags())
	if err != nil {
		return err
	}

	s, err := resolveSettings(v)
	if err != nil {
		return err
	}
	s.configDir = configDir
	s.log.Output = cmd.ErrOrStderr()
	active = s

	logger := logging.New(s.log)
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), &logger))
	return nil
}
