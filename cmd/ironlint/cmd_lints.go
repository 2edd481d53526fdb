package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ironlint/lint"

	_ "github.com/dhamidi/ironlint/borrow"
	_ "github.com/dhamidi/ironlint/parens"
)

func newLintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lints",
		Short: "List registered lints and their default levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tLEVEL\tDESCRIPTION")
			for _, l := range lint.All() {
				level := l.Default.String()
				if l.Hard {
					level = "error"
					if l.Code != "" {
						level = "error[" + l.Code + "]"
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", l.Name, level, l.Doc)
			}
			return w.Flush()
		},
	}
}
