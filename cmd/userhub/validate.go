package main

import (
	"fmt"

	"github.com/artpar/userhub/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		fmt.Printf("Configuration OK: listening on %s\n", cfg.Server.Addr())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
