// Show command: print a table file as JSON on stdout.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldline/datatable/pkg/datatable"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a table file as JSON",
	Long: `Show loads a table from any supported format and prints it as JSON.
Output is indented unless the config sets pretty: false.

Example:
  dtab show people.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := datatable.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}

	doc := map[string]any{"rows": t.Rows}
	if t.Name != "" {
		doc["name"] = t.Name
	}

	var output []byte
	if cfg.GetBool(cfgKeyPretty) {
		output, err = json.MarshalIndent(doc, "", cfg.GetString(cfgKeyIndent))
	} else {
		output, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("marshal table: %w", err)
	}

	fmt.Println(string(output))
	return nil
}
