package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Directory string    `yaml:"directory"`
	Extension string    `yaml:"extension"`
	Log       logConfig `yaml:"log"`
}

type logConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration file and vocabulary directory",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	s := active

	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(s.configDir, configFileExt)
	written, err := writeConfigIfMissing(configPath, s)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if err := os.MkdirAll(s.config.Directory, 0o755); err != nil {
		return fmt.Errorf("create vocabulary directory: %w", err)
	}

	out := cmd.OutOrStdout()
	if written {
		fmt.Fprintf(out, "Wrote %s\n", configPath)
	} else {
		fmt.Fprintf(out, "Kept existing %s\n", configPath)
	}
	fmt.Fprintf(out, "Vocabulary directory: %s\n", s.config.Directory)
	return nil
}

// writeConfigIfMissing creates config.yaml from the resolved settings. An
// existing file is left as is.
func writeConfigIfMissing(path string, s settings) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	cfg := configFile{
		Directory: s.config.Directory,
		Extension: s.config.Extension,
		Log: logConfig{
			Level:  s.log.Level,
			Format: s.log.Format,
		},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	return true, os.WriteFile(path, data, 0o644)
}
