package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/peri/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration peri would use, as YAML.

Search order:
  --config <path>
  ~/.peri/config.yaml
  ./configs/peri.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("encoding config", err)
	}
	fmt.Fprint(os.Stdout, string(data))
}
