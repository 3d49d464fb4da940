package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/stencil/pkg/errors"
	"github.com/arthur-debert/stencil/pkg/logging"
	"github.com/arthur-debert/stencil/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys
const EnvPrefix = "STENCIL_"

// ToolOwnedSections may only be set by user config, environment or flags
var ToolOwnedSections = []string{"self", "template"}

// Config is the complete stencil configuration
type Config struct {
	Self     SelfConfig     `koanf:"self" toml:"self"`
	Template TemplateConfig `koanf:"template" toml:"template"`
	Prompt   PromptConfig   `koanf:"prompt" toml:"prompt"`
	Output   OutputConfig   `koanf:"output" toml:"output"`
}

// SelfConfig describes how projects refer to stencil
type SelfConfig struct {
	Name string `koanf:"name" toml:"name"`
}

// TemplateConfig locates the canonical package template
type TemplateConfig struct {
	Dir         string `koanf:"dir" toml:"dir"`
	Target      string `koanf:"target" toml:"target"`
	OverrideDir string `koanf:"override_dir" toml:"override_dir"`
}

// PromptConfig controls the dependency update prompt
type PromptConfig struct {
	Select bool `koanf:"select" toml:"select"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// Default returns the embedded defaults
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("embedded defaults.toml is invalid: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("embedded defaults.toml is invalid: " + err.Error())
	}
	return cfg
}

// Load builds the configuration for the project described by p
func Load(p *paths.Paths) (*Config, error) {
	return LoadWithOverrides(p, nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, typically
// command line flags, that beat every other source
func LoadWithOverrides(p *paths.Paths, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, MsgErrDefaults)
	}

	// 2. User config
	if err := loadFileIfExists(k, p.UserConfigPath()); err != nil {
		return nil, err
	}

	// 3. Project config, first match wins
	for _, path := range p.ProjectConfigCandidates() {
		if _, err := os.Stat(path); err == nil {
			if err := loadProjectConfig(k, path); err != nil {
				return nil, err
			}
			logger.Debug().Str("path", path).Msg("loaded project config")
			break
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrEnv)
	}

	// 5. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrOverrides)
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would make reconciliation meaningless
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Self.Name) == "" {
		return errors.New(errors.ErrConfigParse, MsgErrEmptySelf)
	}
	if strings.TrimSpace(c.Template.Dir) == "" || strings.TrimSpace(c.Template.Target) == "" {
		return errors.New(errors.ErrConfigParse, MsgErrEmptyTemplate)
	}
	return nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, MsgErrLoadFile, path).WithDetail("path", path)
	}
	return nil
}

// loadProjectConfig merges a project's config file into k without the
// tool-owned sections: the project being checked never chooses the template
// it is checked against.
func loadProjectConfig(k *koanf.Koanf, path string) error {
	pk := koanf.New(".")
	if err := loadFileIfExists(pk, path); err != nil {
		return err
	}

	for _, section := range ToolOwnedSections {
		if pk.Exists(section) {
			logger := logging.GetLogger("config")
			logger.Warn().
				Str("path", path).
				Str("section", section).
				Msg("ignoring tool-owned section in project config")
			pk.Delete(section)
		}
	}

	if err := k.Merge(pk); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, MsgErrLoadFile, path).WithDetail("path", path)
	}
	return nil
}

// envKey maps STENCIL_TEMPLATE_OVERRIDE_DIR to template.override_dir
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, MsgErrUnmarshal)
	}
	return &cfg, nil
}
