package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/orient-research/fundscope/internal/config"
	"github.com/orient-research/fundscope/internal/server"
	"github.com/orient-research/fundscope/pkg/fundscope/metrics"
	"github.com/orient-research/fundscope/pkg/fundscope/session"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve [workbook.xlsx]",
		Short: "Start the dashboard API server",
		Long: `serve starts the HTTP API. When a workbook argument is given it is
loaded at startup; otherwise the configured workbook paths are tried in
order, and the server still starts empty if none is readable (a workbook
can be uploaded later).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv(configPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer log.Sync()

			sess := session.New()
			paths := cfg.WorkbookPaths()
			if len(args) == 1 {
				paths = []string{args[0]}
			}
			if wb, path, err := sess.LoadFromPaths(paths...); err != nil {
				log.Warn("no workbook loaded at startup; waiting for upload", zap.Error(err))
			} else {
				log.Info("workbook loaded",
					zap.String("path", path),
					zap.Int("sheets", wb.NumSheets()),
					zap.Int("records", metrics.TotalRecords(wb)),
				)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New(cfg, log, sess).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")
	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
