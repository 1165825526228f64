package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "userhub",
	Short: "In-memory user registry with a REST API",
	Long: `Userhub serves CRUD operations over a single User collection.

State lives in process memory and is lost on restart. Configuration comes
from a YAML file, USERHUB_* environment variables, or built-in defaults.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "userhub.yaml", "path to configuration file")
}
