package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hashcrack/internal/core/digest"
	"hashcrack/internal/core/domain"
)

func newHashCmd(a *app) *cobra.Command {
	var alg string

	cmd := &cobra.Command{
		Use:   "hash <text>...",
		Short: "Print the digest of each argument",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyStringDefault(cmd.Flags(), "algorithm", a.cfg.Algorithm, &alg)
			for _, text := range args {
				d, err := digest.Compute(text, domain.HashAlgorithm(alg))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&alg, "algorithm", string(domain.DefaultAlgorithm), "hash algorithm")
	return cmd
}
