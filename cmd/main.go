package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"turnos/queue-service/cmd/command"
	"turnos/queue-service/internal/config"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	const description = "Turnos Queue Server"
	root := &cobra.Command{Short: description}

	logger := log.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.WithContext(ctx).Fatal(err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithContext(ctx).Warnf("invalid log level %q, falling back to info", cfg.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	root.AddCommand(
		command.Server{Logger: logger}.Command(ctx, cfg),
		command.EventConsumerCommand{Logger: logger}.Command(ctx, cfg),
	)

	if err := root.Execute(); err != nil {
		logger.WithContext(ctx).Fatalf("failed to execute root command: \n%v", err)
	}
}
