package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hashcrack/internal/config"
	"hashcrack/internal/core/digest"
	"hashcrack/internal/core/service"
	"hashcrack/internal/pkg/metrics"
)

// errNotCracked marks a run that finished normally without a match. It only
// sets the exit status; the reason has already been printed.
var errNotCracked = errors.New("password not found")

type app struct {
	v        *viper.Viper
	cfgFile  string
	logLevel string
	verbose  bool

	cfg    *config.Config
	logger *zap.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "hashcrack",
		Short: "Recover plaintexts from unsalted digests by dictionary, brute force or mask attack",
		Long: `hashcrack enumerates candidate strings, hashes each one and compares it with a
target digest. Use it only against digests you are authorised to audit.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.hashcrack.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "human-readable debug logging")

	rootCmd.AddCommand(newCrackCmd(a))
	rootCmd.AddCommand(newBatchCmd(a))
	rootCmd.AddCommand(newHashCmd(a))
	rootCmd.AddCommand(newAlgorithmsCmd())
	rootCmd.AddCommand(newBenchmarkCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (a *app) init(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := newLogger(level, a.verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("config loaded", zap.String("file", a.v.ConfigFileUsed()))
	return nil
}

func newLogger(level string, verbose bool, out io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encCfg)
	if verbose {
		lvl = zapcore.DebugLevel
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(out)), lvl)
	return zap.New(core), nil
}

// newService builds a service wired to the loaded config. The returned
// closer flushes the run report, if one was requested.
func (a *app) newService(reportFile string, opts ...service.Option) (*service.CrackingService, func() error, error) {
	closeFn := func() error { return nil }
	if reportFile == "" {
		reportFile = a.cfg.ReportFile
	}

	base := []service.Option{
		service.WithServiceLogger(a.logger),
		service.WithReportIntervals(a.cfg.Report.DictionaryInterval, a.cfg.Report.CombinatorialInterval),
		service.WithWorkers(a.cfg.Workers),
		service.WithCollector(metrics.NewCollector(service.MetricsUpdateInterval)),
	}
	if reportFile != "" {
		reporter, err := metrics.NewReporter(reportFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open report file: %w", err)
		}
		base = append(base, service.WithReporter(reporter))
		closeFn = reporter.Close
	}

	return service.NewCrackingService(digest.Registry{}, append(base, opts...)...), closeFn, nil
}

// Execute runs the root command and exits non-zero unless the command
// succeeded, which for attacks means the password was found.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNotCracked) {
			fmt.Fprintln(os.Stderr, colorError("Error:"), err)
		}
		os.Exit(1)
	}
}
