// Version command for the dtab CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldline/datatable/pkg/datatable"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dtab version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("dtab", datatable.Version)
	},
}
