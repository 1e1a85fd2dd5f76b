package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/oopbasics/demo"
)

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run one or more demos in order (default: demo.default from config)",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = []string{a.cfg.Demo.Default}
			}

			reg := a.registry()
			for _, name := range names {
				if _, ok := reg.Get(name); !ok {
					return demo.UnknownDemoError{Name: name}
				}
			}

			// Errors are reported once by execute; the log only traces progress.
			logger := a.logger.With(zap.String("run_id", uuid.NewString()))
			for _, name := range names {
				logger.Debug("running demo", zap.String("demo", name))
				if err := reg.Run(name, cmd.OutOrStdout()); err != nil {
					logger.Debug("demo failed", zap.String("demo", name), zap.Error(err))
					return err
				}
				logger.Info("demo finished", zap.String("demo", name))
			}
			return nil
		},
	}
}
