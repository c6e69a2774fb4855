package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultSyncCron = "0 */30 * * * *"

// RunWorker runs the schedule sync on a cron until SIGINT/SIGTERM.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	deps, err := connectInfra()
	if err != nil {
		return err
	}
	syncService := newSyncService(deps)

	runOnce := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		summary, err := syncService.Run(ctx)
		if err != nil {
			logger.Error("sync run failed", zap.Error(err))
			return
		}
		logger.Info("sync run finished",
			zap.Int("synced", summary.Synced),
			zap.Int("shadowed", summary.Shadowed),
			zap.Int("removed", summary.Removed),
			zap.Int("failed", summary.Failed),
			zap.Int("unresolved", summary.Unresolved),
		)
	}

	spec := os.Getenv("SYNC_CRON")
	if spec == "" {
		spec = defaultSyncCron
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(spec, runOnce); err != nil {
		return err
	}

	if os.Getenv("SYNC_RUN_AT_START") == "true" {
		runOnce()
	}

	c.Start()
	logger.Info("worker started", zap.String("cron", spec))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	<-c.Stop().Done()

	return nil
}
