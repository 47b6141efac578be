package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/vocabdedup/internal/logging"
	"github.com/mesh-intelligence/vocabdedup/internal/paths"
	"github.com/mesh-intelligence/vocabdedup/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "VOCABDEDUP"

	cfgKeyDirectory = "directory"
	cfgKeyExtension = "extension"
	cfgKeyLogLevel  = "log.level"
	cfgKeyLogFormat = "log.format"
	cfgKeyNoColor   = "log.no_color"
)

// flagKeys binds command-line flags to config keys. The directory is not
// bound here because it follows the paths precedence chain instead.
var flagKeys = map[string]string{
	"ext":        cfgKeyExtension,
	"log-level":  cfgKeyLogLevel,
	"log-format": cfgKeyLogFormat,
	"no-color":   cfgKeyNoColor,
}

// settings is the resolved configuration of one invocation.
type settings struct {
	configDir string
	config    types.Config
	log       logging.Config
}

// loadConfig reads config.yaml from configDir using Viper. A missing
// config.yaml is not an error. Precedence per key: flag > env > file > default.
func loadConfig(configDir string, fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyExtension, types.DefaultExtension)
	v.SetDefault(cfgKeyLogLevel, "info")
	v.SetDefault(cfgKeyLogFormat, "auto")
	v.SetDefault(cfgKeyNoColor, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range flagKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolveSettings turns the loaded configuration into engine and logger
// settings.
func resolveSettings(v *viper.Viper) (settings, error) {
	dir, err := paths.ResolveVocabDir(flags.dir, v.GetString(cfgKeyDirectory))
	if err != nil {
		return settings{}, fmt.Errorf("resolve vocabulary directory: %w", err)
	}

	cfg := types.Config{
		Directory: dir,
		Extension: v.GetString(cfgKeyExtension),
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return settings{
		config: cfg,
		log: logging.Config{
			Level:   v.GetString(cfgKeyLogLevel),
			Format:  v.GetString(cfgKeyLogFormat),
			NoColor: v.GetBool(cfgKeyNoColor) || os.Getenv("NO_COLOR") != "",
		},
	}, nil
}
