package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hashcrack/internal/core/digest"
	"hashcrack/internal/core/domain"
	"hashcrack/internal/pkg/metrics"
	"hashcrack/internal/utils/random"
)

const benchmarkWordLength = 8

func newBenchmarkCmd(a *app) *cobra.Command {
	var (
		count int
		algs  []string
	)

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Measure hashing throughput per algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			selected := digest.Algorithms()
			if len(algs) > 0 {
				selected = selected[:0]
				for _, name := range algs {
					selected = append(selected, domain.HashAlgorithm(name))
				}
			}

			words := make([]string, count)
			for i := range words {
				words[i] = random.GenerateRandomString(domain.CharsetAlnum, benchmarkWordLength)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ALGORITHM\tHASHES\tTIME\tH/S\tALLOCS/OP")
			for _, alg := range selected {
				p, err := digest.Lookup(alg)
				if err != nil {
					return err
				}
				perf := metrics.CapturePerformance(func() int64 {
					for _, word := range words {
						p.Digest(word)
					}
					return int64(len(words))
				})
				a.logger.Debug("benchmark done",
					zap.String("algorithm", string(alg)),
					zap.Int64("hashes", perf.Operations),
					zap.Duration("duration", perf.Duration),
					zap.Uint64("bytes_allocated", perf.MemoryUsage),
					zap.Uint32("gc_cycles", perf.GCCycles),
				)
				fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%.1f\n", alg, formatCount(perf.Operations),
					perf.Duration.Round(time.Microsecond), perf.OpsPerSecond(), perf.AllocsPerOp())
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 100_000, "hashes per algorithm")
	cmd.Flags().StringSliceVar(&algs, "algorithm", nil, "algorithms to measure (default all)")
	return cmd
}
