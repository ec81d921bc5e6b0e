package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shutterplan/pkg/config"
	"shutterplan/pkg/logging"
	"shutterplan/pkg/version"
)

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "shutterplan",
	Short:   "Generate location-aware daily photography practice tasks",
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logging.Init(&cfg.Log)
		return nil
	},
	SilenceUsage: true,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.GenerateDefault(configPath); err != nil {
			return fmt.Errorf("generating config: %w", err)
		}
		fmt.Printf("Config file generated: %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/shutterplan.yaml", "Path to configuration file")
	rootCmd.AddCommand(initCmd)
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
