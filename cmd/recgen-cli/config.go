package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config supplies CLI defaults so repeated invocations can share settings.
type Config struct {
	Source string `yaml:"source"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// defaultConfigPath is probed when no -config flag is given.
const defaultConfigPath = ".recgen.yml"

func loadConfig(path string) (Config, error) {
	probe := path
	if probe == "" {
		probe = defaultConfigPath
	}

	data, err := os.ReadFile(probe)
	if err != nil {
		if os.IsNotExist(err) && path == "" {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config %q: %w", probe, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", probe, err)
	}
	return cfg, nil
}
