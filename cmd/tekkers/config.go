package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tekkers/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective physics tuning",
	Long: `Print the tuning the game would run with, as YAML.

The result reflects --config, ~/.tekkers/config.yaml, ./configs/tekkers.yaml
and the built-in defaults, in that order, plus --difficulty and --input.
Save the output and edit it to make your own tuning.

Examples:
  tekkers config
  tekkers config --difficulty hard > hard.yaml
  tekkers play --config hard.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(tuning)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
