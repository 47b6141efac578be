// Package paths resolves the configuration and vocabulary directory
// locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user configuration directory.
const appName = "vocabdedup"

// DefaultVocabDirName is the CWD-relative vocabulary directory used when no
// override is active.
const DefaultVocabDirName = "vocab"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "VOCABDEDUP_CONFIG_DIR"
	EnvVocabDir  = "VOCABDEDUP_DIRECTORY"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/vocabdedup (fallback ~/.config/vocabdedup)
// macOS:   ~/Library/Application Support/vocabdedup
// Windows: %APPDATA%/vocabdedup
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > VOCABDEDUP_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveVocabDir returns the vocabulary directory following the precedence
// chain: flag > config.yaml directory > VOCABDEDUP_DIRECTORY env > $(CWD)/vocab.
func ResolveVocabDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvVocabDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultVocabDirName), nil
}
