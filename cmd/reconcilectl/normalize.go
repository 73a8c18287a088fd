package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fr0stylo/quoterecon/internal/productcode"
)

func normalizeCmd() *cobra.Command {
	var listCodes bool
	cmd := &cobra.Command{
		Use:   "normalize [name...]",
		Short: "Print the product code each name normalizes to",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if listCodes {
				for _, code := range productcode.Codes() {
					fmt.Fprintln(out, code)
				}
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("at least one product name is required")
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, name := range args {
				fmt.Fprintf(w, "%q\t%s\n", name, productcode.Normalize(name))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&listCodes, "codes", false, "List the canonical product codes instead")
	return cmd
}
