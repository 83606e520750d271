package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall-jump/internal/config"
	"github.com/vovakirdan/wall-jump/internal/games/walljump"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective config as YAML",
	Long: `Print the tuning a run would use, after the --config file and the
--difficulty preset are applied. Save the output as a starting point for
a custom config.

Examples:
  walljump config > my-walljump.yaml
  walljump config --difficulty hard
  walljump config --defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file instead")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	if flagConfig != "" {
		// LoadConfig falls back to defaults; surface a broken file here.
		if _, err := config.LoadFile(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	data, err := config.Marshal(walljump.LoadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
