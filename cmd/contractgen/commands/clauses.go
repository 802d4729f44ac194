package commands

import (
	"fmt"

	"github.com/AnTengye/contratos/generator"
	"github.com/spf13/cobra"
)

func clausesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clauses",
		Short: "List the standard clause catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, def := range generator.Catalog() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %-18s %s\n", def.Number, def.Label, def.Title)
			}
			return nil
		},
	}
}

func filenameCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "filename",
		Short: "Print the suggested PDF file name for a contract aggregate",
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := readAggregate(cmd, input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), generator.SuggestFilename(agg))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "aggregate JSON file, - for stdin")
	return cmd
}
