package config

import (
	"github.com/arthur-debert/stencil/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Generate renders cfg as a TOML document suitable for .stencil.toml
func Generate(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, MsgErrGenerate)
	}
	return append([]byte(MsgGeneratedHeader), data...), nil
}

// GenerateDefault renders the default configuration
func GenerateDefault() ([]byte, error) {
	return Generate(Default())
}

// projectConfig is the part of Config a project file may set
type projectConfig struct {
	Prompt PromptConfig `toml:"prompt"`
	Output OutputConfig `toml:"output"`
}

// GenerateProject renders the project-level sections of cfg for .stencil.toml
func GenerateProject(cfg *Config) ([]byte, error) {
	data, err := toml.Marshal(projectConfig{Prompt: cfg.Prompt, Output: cfg.Output})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, MsgErrGenerate)
	}
	return append([]byte(MsgGeneratedProjectHeader), data...), nil
}
