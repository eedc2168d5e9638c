package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up under the project root. An absent file means
// defaults; a malformed one aborts the run.
const ConfigFileName = "rust-project-gen.yaml"

// fileConfig is the YAML shape of the optional override file. Zero values
// leave the corresponding default untouched.
type fileConfig struct {
	ExercisesGlob string `yaml:"exercises_glob"`
	OutputPath    string `yaml:"output_path"`
	Edition       string `yaml:"edition"`
	TokioVersion  string `yaml:"tokio_version"`
	RegistryIndex string `yaml:"registry_index"`
	AsyncPrefix   string `yaml:"async_prefix"`
	CheckContent  *bool  `yaml:"check_content"`
}

// LoadOptions reads the optional config file under root and applies it on
// top of DefaultOptions.
func LoadOptions(root string) (Options, error) {
	opts := DefaultOptions()
	opts.ProjectRoot = root

	raw, err := os.ReadFile(filepath.Join(root, ConfigFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return opts, nil
	}
	if err != nil {
		return opts, fmt.Errorf("read %s: %w", ConfigFileName, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return opts, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}

	if cfg.ExercisesGlob != "" {
		opts.ExercisesGlob = cfg.ExercisesGlob
	}
	if cfg.OutputPath != "" {
		opts.OutputPath = cfg.OutputPath
	}
	if cfg.Edition != "" {
		opts.Edition = cfg.Edition
	}
	if cfg.TokioVersion != "" {
		opts.TokioVersion = cfg.TokioVersion
	}
	if cfg.RegistryIndex != "" {
		opts.RegistryIndex = cfg.RegistryIndex
	}
	if cfg.AsyncPrefix != "" {
		opts.AsyncPrefix = cfg.AsyncPrefix
	}
	if cfg.CheckContent != nil {
		opts.CheckContent = *cfg.CheckContent
	}
	return opts, nil
}
