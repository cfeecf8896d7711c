// Convert command: load a table file and save it in another format.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldline/datatable/pkg/datatable"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a table file between formats",
	Long: `Convert loads a table from the input file and saves it to the output
file. Both formats are selected by file extension.

Example:
  dtab convert people.xlsx people.json
  dtab convert orders.json orders.xml`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	t, err := datatable.Load(input)
	if err != nil {
		return fmt.Errorf("loading %s: %w", input, err)
	}
	if err := datatable.Save(t, output); err != nil {
		return fmt.Errorf("saving %s: %w", output, err)
	}

	fmt.Printf("Converted %s -> %s (%d rows)\n", input, output, len(t.Rows))
	return nil
}
