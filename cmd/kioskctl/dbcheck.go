package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/kiosk/config"
	"github.com/Domenick1991/kiosk/internal/database"
	"github.com/Domenick1991/kiosk/internal/kafka"
	"github.com/Domenick1991/kiosk/internal/logging"
	"github.com/spf13/cobra"
)

var errCheckFailed = errors.New("connectivity check failed")

func newDBCheckCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "dbcheck",
		Short: "Check database and Kafka connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadConfig(path)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			return runDBCheck(ctx, cmd, cfg)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Overall check timeout")
	return cmd
}

func runDBCheck(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()
	logger := logging.New(cfg.Log.Level)
	failed := false

	db, err := database.New(ctx, cfg.Database, logger)
	switch {
	case err != nil:
		fmt.Fprintf(out, "postgres: %v\n", err)
		failed = true
	case !db.Configured():
		fmt.Fprintln(out, "postgres: not configured")
	case db.Ping(ctx):
		fmt.Fprintln(out, "postgres: ok")
	default:
		fmt.Fprintln(out, "postgres: unreachable")
		failed = true
	}
	db.Close()

	if len(cfg.Kafka.Brokers) == 0 {
		fmt.Fprintln(out, "kafka: not configured")
	} else {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, logger)
		defer producer.Close()
		if partitions, err := producer.CheckConnection(ctx); err != nil {
			fmt.Fprintf(out, "kafka: %v\n", err)
			failed = true
		} else {
			fmt.Fprintf(out, "kafka: ok (%d partitions)\n", partitions)
		}
	}

	if failed {
		return errCheckFailed
	}
	return nil
}
