package cmd

import (
	"context"

	"wtwm/internal/platform/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "wtwm",
		Short:         "Mention recognition for editorial comments",
		Long:          "Finds mentions of known staff, shows and broadcasters in comment text and emits one record per mention.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if logLevel == "" {
				return nil
			}
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			l := logger.Get().Level(lvl)
			logger.Replace(&l)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace|debug|info|warn|error|disabled); overrides LOG_LEVEL")

	root.AddCommand(newScanCmd())
	root.AddCommand(newVocabCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
