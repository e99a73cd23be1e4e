package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig supplies defaults for flags that were not set on the command
// line. Explicit flags always win.
type fileConfig struct {
	Sheet  string `yaml:"sheet"`
	Output string `yaml:"output"`
	Pretty *bool  `yaml:"pretty"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &fileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyConfig(cmd *cobra.Command, cfg *fileConfig) {
	if cfg.Sheet != "" && !cmd.Flags().Changed("sheet") {
		sheetName = cfg.Sheet
	}
	if cfg.Output != "" && !cmd.Flags().Changed("output") {
		outputPath = cfg.Output
	}
	if cfg.Pretty != nil && !cmd.Flags().Changed("pretty") {
		pretty = *cfg.Pretty
	}
}
