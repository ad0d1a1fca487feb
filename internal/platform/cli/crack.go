package cli

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hashcrack/internal/core/digest"
	"hashcrack/internal/core/domain"
	"hashcrack/internal/port"
)

func newCrackCmd(a *app) *cobra.Command {
	var (
		flags      attackFlags
		target     string
		noProgress bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Attack a single digest",
		Example: `  hashcrack crack -H 5d41402abc4b2a76b9719d911017c592 -w rockyou.txt
  hashcrack crack -H <sha256> --algorithm sha256 -b --charset lower --max-length 5
  hashcrack crack -H <md5> -m "?u?l?l?l?d?d"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.applyConfigDefaults(cmd.Flags(), a.cfg)
			attackCfg, err := flags.build(target)
			if err != nil {
				return err
			}

			svc, closeReport, err := a.newService(flags.reportFile)
			if err != nil {
				return err
			}
			defer closeReport()

			attack, err := svc.Prepare(attackCfg)
			if err != nil {
				if asJSON {
					_ = writeJSON(cmd.OutOrStdout(), nil, err)
				}
				return err
			}

			out := cmd.OutOrStdout()
			if !digest.LooksLikeDigest(len(target)) {
				cmd.PrintErrf("%s Hash length %d does not match any common algorithm\n", colorWarn("[!]"), len(target))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var (
				sink    port.StatsSink
				printer *progressPrinter
			)
			showProgress := a.cfg.Progress && !noProgress && !asJSON
			if !asJSON {
				total, known := attack.Total()
				printHeader(out, attackCfg, total, known)
			}
			if showProgress {
				printer = newProgressPrinter(cmd.ErrOrStderr(), attack.Engine().Snapshot, svc.Collector().Sample)
				printer.Start()
				sink = printer
			}

			a.logger.Debug("starting attack", zap.String("id", attack.ID), zap.String("mode", string(attackCfg.Mode)))
			result, err := attack.Run(ctx, sink)
			if printer != nil {
				printer.Stop()
			}

			return reportRun(out, result, err, asJSON)
		},
	}

	cmd.Flags().StringVarP(&target, "hash", "H", "", "target digest (hex)")
	_ = cmd.MarkFlagRequired("hash")
	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress line")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

// reportRun prints a finished run and maps it to the command's error. A run
// aborted by a read error still shows its partial statistics.
func reportRun(out io.Writer, result domain.CrackResult, runErr error, asJSON bool) error {
	if asJSON {
		if err := writeJSON(out, result, runErr); err != nil {
			return err
		}
	} else {
		printOutcome(out, result.Outcome)
	}
	if runErr != nil {
		return runErr
	}
	if !result.Outcome.Found() {
		return errNotCracked
	}
	return nil
}

var _ port.StatsSink = (*progressPrinter)(nil)
