package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pearldive/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration",
	Long: `Print the configuration in effect after the config file search path,
.env files and PEARLDIVE_* environment variables are applied.

With --defaults the built-in config file is printed instead, ready to be
copied to ~/.pearldive/pearldive.yaml.

Examples:
  pearldive config
  pearldive config --defaults > ~/.pearldive/pearldive.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if flagDefaults {
			os.Stdout.Write(config.DefaultYAML())
			return
		}
		if err := printConfig(os.Stdout, loadConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in config file")
}

// printConfig writes cfg as YAML.
func printConfig(w io.Writer, cfg config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	return enc.Close()
}
