package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds everything the command can be told, from a YAML file and
// flags. Flags win over the file.
type Config struct {
	Delaunay bool     `yaml:"delaunay"`
	Batch    bool     `yaml:"batch"`
	SVG      string   `yaml:"svg"`
	Remove   []string `yaml:"remove"`
	Out      string   `yaml:"out"`
	Scale    float64  `yaml:"scale"`
	Labels   bool     `yaml:"labels"`
	Imgcat   bool     `yaml:"imgcat"`
	Dump     bool     `yaml:"dump"`
	Verbose  bool     `yaml:"verbose"`

	Tolerances struct {
		Alignment float64 `yaml:"alignment"`
		Circle    float64 `yaml:"circle"`
	} `yaml:"tolerances"`
}

func LoadConfig(path string) (Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %q", path)
	}
	return config, nil
}

// Overlay the values set on the command line. Booleans can only be switched
// on; empty strings and zero numbers mean "not given".
func (c Config) Merge(flags Config) Config {
	c.Delaunay = c.Delaunay || flags.Delaunay
	c.Batch = c.Batch || flags.Batch
	c.Labels = c.Labels || flags.Labels
	c.Imgcat = c.Imgcat || flags.Imgcat
	c.Dump = c.Dump || flags.Dump
	c.Verbose = c.Verbose || flags.Verbose
	if flags.SVG != "" {
		c.SVG = flags.SVG
	}
	if flags.Out != "" {
		c.Out = flags.Out
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	c.Remove = append(c.Remove, flags.Remove...)
	if flags.Tolerances.Alignment > 0 {
		c.Tolerances.Alignment = flags.Tolerances.Alignment
	}
	if flags.Tolerances.Circle > 0 {
		c.Tolerances.Circle = flags.Tolerances.Circle
	}
	return c
}
