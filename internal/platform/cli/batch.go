package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"hashcrack/internal/core/algorithm"
	"hashcrack/internal/core/domain"
	"hashcrack/internal/core/service"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		flags      attackFlags
		hashesFile string
		workers    int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Attack every digest in a file with the same mode",
		Long: `batch reads one target digest per line and runs an independent attack for
each, several at a time. Blank lines are skipped.`,
		Example: `  hashcrack batch --hashes leaked.txt -w rockyou.txt --workers 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.applyConfigDefaults(cmd.Flags(), a.cfg)
			targets, err := readTargets(hashesFile)
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				return fmt.Errorf("%w: no digests in %s", domain.ErrEmptyTarget, hashesFile)
			}

			cfgs := make([]domain.AttackConfig, len(targets))
			for i, target := range targets {
				if cfgs[i], err = flags.build(target); err != nil {
					return err
				}
			}

			var opts []service.Option
			if workers > 0 {
				opts = append(opts, service.WithWorkers(workers))
			}
			svc, closeReport, err := a.newService(flags.reportFile, opts...)
			if err != nil {
				return err
			}
			defer closeReport()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			results, runErr := svc.CrackAll(ctx, cfgs)
			out := cmd.OutOrStdout()
			if asJSON {
				if err := writeJSON(out, results, runErr); err != nil {
					return err
				}
			} else {
				printBatchResults(out, results)
			}

			if runErr != nil {
				return runErr
			}
			for _, r := range results {
				if !r.Outcome.Found() {
					return errNotCracked
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&hashesFile, "hashes", "", "file with one target digest per line")
	_ = cmd.MarkFlagRequired("hashes")
	flags.register(cmd.Flags())
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent attacks (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the results as JSON")

	return cmd
}

// readTargets reads digests with the wordlist reader, which already skips
// blank lines and trims whitespace.
func readTargets(path string) ([]string, error) {
	src, err := algorithm.NewDictionary(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var targets []string
	for src.Next() {
		targets = append(targets, src.Candidate())
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}

func printBatchResults(out io.Writer, results []domain.CrackResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDIGEST\tSTATUS\tPASSWORD\tATTEMPTS\tTIME")

	var found int
	for i, r := range results {
		status := formatStatusWithColor(r.Outcome.Status)
		if r.Error != "" {
			status = colorError("error")
		}
		if r.Outcome.Found() {
			found++
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", i+1, shortDigest(r.Config.TargetDigest), status,
			r.Outcome.Candidate, formatCount(r.Outcome.Attempts), r.Outcome.Elapsed.Round(time.Millisecond))
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\n%s Cracked %d/%d\n", colorInfo("[*]"), found, len(results))
	for i, r := range results {
		if r.Error != "" {
			fmt.Fprintf(out, "%s #%d: %s\n", colorError("[-]"), i+1, r.Error)
		}
	}
}

func shortDigest(d string) string {
	if len(d) <= 16 {
		return d
	}
	return d[:16] + "..."
}
