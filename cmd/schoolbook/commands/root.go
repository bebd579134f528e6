package commands

import (
	"github.com/spf13/cobra"

	"schoolbook/internal/app"
	"schoolbook/internal/logging"
	"schoolbook/internal/shell"
)

var (
	envFile   string
	currency  string
	logLevel  string
	logFormat string
	seed      bool

	registry *app.Registry
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "schoolbook",
		Short:         "School administration: classes, students, grades and tuition",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(envFile)
			if err != nil {
				return err
			}
			if currency != "" {
				cfg.Currency = currency
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}

			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			registry = app.NewRegistry(cfg, logger)
			logger.WithField("currency", registry.Currency).Debug("registry ready")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, false)
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default ./.env if present)")
	root.PersistentFlags().StringVar(&currency, "currency", "", "currency printed after amounts (default HTG)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (default text)")

	root.AddCommand(shellCmd(), demoCmd())
	return root
}

func runShell(cmd *cobra.Command, withSeed bool) error {
	if withSeed {
		if err := app.Seed(registry); err != nil {
			return err
		}
	}
	return shell.New(registry, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}
