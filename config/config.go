// Package config loads checkthat settings from checkthat.toml, CHECKTHAT_*
// environment variables and defaults, in that order of precedence from
// highest to lowest: env, file, defaults.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/isti03/checkthat-generator/descriptor"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// FileName is looked up in the working directory when no path is given.
const FileName = "checkthat.toml"

const EnvPrefix = "CHECKTHAT"

type Config struct {
	Output   string         `mapstructure:"output"`
	Indent   string         `mapstructure:"indent"`
	Format   string         `mapstructure:"format"`
	Verify   bool           `mapstructure:"verify"`
	Log      LogConfig      `mapstructure:"log"`
	Resolver ResolverConfig `mapstructure:"resolver"`
}

type LogConfig struct {
	Verbosity int    `mapstructure:"verbosity"`
	File      string `mapstructure:"file"`
}

type ResolverConfig struct {
	// KnownImports replaces the built-in list of types imported by short
	// name, e.g. "List" -> java.util.List.
	KnownImports []string `mapstructure:"known_imports"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", ".")
	v.SetDefault("indent", "    ")
	v.SetDefault("format", "java")
	v.SetDefault("verify", false)

	v.SetDefault("log.verbosity", 0)
	v.SetDefault("log.file", "")

	v.SetDefault("resolver.known_imports", descriptor.DefaultKnownImports)
}

// New returns a viper instance reading files from fs, with defaults and
// environment binding in place.
func New(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load reads the configuration. An explicit path must exist; without one
// FileName is used if present and defaults otherwise.
func Load(fs afero.Fs, path string) (*Config, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	v := New(fs)

	if path == "" {
		if ok, _ := afero.Exists(fs, FileName); ok {
			path = FileName
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return &cfg, nil
}
