package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/salesflow-backend/internal/platform/envutil"
	"github.com/yungbote/salesflow-backend/internal/platform/logger"
	"github.com/yungbote/salesflow-backend/internal/realtime"
	"github.com/yungbote/salesflow-backend/internal/realtime/bus"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print step events from the Redis channel",
	Long: `Subscribe to REDIS_CHANNEL on REDIS_ADDR and print each sales.step.generated event
as one JSON line until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		return err
	}
	defer log.Sync()

	b, err := bus.NewRedisBus(log, bus.RedisConfig{
		Addr:     envutil.String("REDIS_ADDR", ""),
		Password: envutil.String("REDIS_PASSWORD", ""),
		DB:       envutil.Int("REDIS_DB", 0),
		Channel:  envutil.String("REDIS_CHANNEL", ""),
	})
	if err != nil {
		return err
	}
	defer b.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	enc := json.NewEncoder(cmd.OutOrStdout())
	if err := b.StartForwarder(ctx, func(ev realtime.Event) {
		if err := enc.Encode(ev); err != nil {
			log.Warn("write event failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	<-ctx.Done()
	return nil
}
