package main

import (
	"github.com/spf13/cobra"

	"github.com/fieldline/datatable/pkg/datatable"
)

// configFile is set by the --config flag.
var configFile string

var rootCmd = &cobra.Command{
	Use:     "dtab",
	Short:   "dtab converts and transforms table files",
	Version: datatable.Version,
	Long: `dtab works with table files in three formats, selected by extension:
.json and .xml are read/write, .xlsx is import-only. Values keep their
types (numbers, booleans, timestamps) across conversions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(configFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: .dtab.yaml in the working directory)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(columnCmd)
}
