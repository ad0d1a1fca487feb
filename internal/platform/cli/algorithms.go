package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hashcrack/internal/core/digest"
	"hashcrack/internal/core/domain"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List supported hash algorithms and charsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ALGORITHM\tHEX LENGTH")
			for _, alg := range digest.Algorithms() {
				p, err := digest.Lookup(alg)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\n", alg, p.HexLength())
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "CHARSET\tSIZE")
			for _, name := range domain.CharsetNames() {
				cs, err := domain.Charset(name, "")
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\n", name, len([]rune(cs)))
			}
			return w.Flush()
		},
	}
}
