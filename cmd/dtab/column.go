// Column commands: drop or rename a column across every row of a table file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldline/datatable/pkg/datatable"
)

// flagOutput redirects the result; empty means rewrite the input file.
var flagOutput string

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Transform columns of a table file",
}

var columnDropCmd = &cobra.Command{
	Use:   "drop <file> <column>",
	Short: "Remove a column from every row",
	Long: `Drop removes the named column from every row and saves the table back.

Example:
  dtab column drop people.json internal_id
  dtab column drop people.json internal_id --output trimmed.json`,
	Args: cobra.ExactArgs(2),
	RunE: runColumnDrop,
}

var columnRenameCmd = &cobra.Command{
	Use:   "rename <file> <old> <new>",
	Short: "Rename a column in every row that has it",
	Long: `Rename moves each row's value from the old column name to the new one.
Rows without the old column are untouched.

Example:
  dtab column rename people.json fullname name`,
	Args: cobra.ExactArgs(3),
	RunE: runColumnRename,
}

func init() {
	columnCmd.PersistentFlags().StringVar(&flagOutput, "output", "", "write the result here instead of rewriting the input")
	columnCmd.AddCommand(columnDropCmd)
	columnCmd.AddCommand(columnRenameCmd)
}

func runColumnDrop(cmd *cobra.Command, args []string) error {
	path, column := args[0], args[1]

	t, err := datatable.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	t.RemoveColumn(column)

	out := outputPath(path)
	if err := datatable.Save(t, out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	fmt.Printf("Dropped column %q from %d rows -> %s\n", column, len(t.Rows), out)
	return nil
}

func runColumnRename(cmd *cobra.Command, args []string) error {
	path, oldName, newName := args[0], args[1], args[2]

	t, err := datatable.Load(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	t.RenameColumn(oldName, newName)

	out := outputPath(path)
	if err := datatable.Save(t, out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	fmt.Printf("Renamed column %q to %q -> %s\n", oldName, newName, out)
	return nil
}

func outputPath(input string) string {
	if flagOutput != "" {
		return flagOutput
	}
	return input
}
