package entity

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Filename string
	Distro   string      `yaml:"distro"`
	Version  string      `yaml:"version"`
	Packages PackageSpec `yaml:"package"`
	Python   []PythonPkg `yaml:"python"`
	Source   Source      `yaml:"source"`
	Settings Settings    `yaml:"settings"`
}

type PackageSpec struct {
	System []string `yaml:"system"`
	Vision []string `yaml:"vision"`
}

func UnmarshalConfig(filename string) (Config, error) {
	var config Config

	content, err := os.ReadFile(filename)
	if err != nil {
		return config, fmt.Errorf("error reading config file %s: %v", filename, err)
	}

	err = yaml.Unmarshal(content, &config)
	if err != nil {
		return config, fmt.Errorf("error deserializing config from %s: %v", filename, err)
	}

	config.Filename = filename
	return config, nil
}
