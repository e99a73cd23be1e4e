// Package main provides the CLI entry point for harmonogram.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjazdy/harmonogram/pkg/harmonogram"
)

var (
	configPath string
	outputPath string
	sheetName  string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "harmonogram [input.xlsx]",
		Short: "Convert a schedule workbook into normalized calendar events",
		Long: `harmonogram reads a session-grid XLSX workbook and emits the extracted
events as a sorted JSON collection.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: first sheet)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file supplying flag defaults")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		applyConfig(cmd, cfg)
	}

	schedule, err := harmonogram.Extract(inputPath, harmonogram.Options{Sheet: sheetName})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(schedule, "", "  ")
	} else {
		data, err = json.Marshal(schedule)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d events to %s\n", len(schedule.Events), outputPath)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
