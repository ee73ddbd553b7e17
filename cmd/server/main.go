// Command server runs the optimizer HTTP service standalone, without the
// CLI's run/retry subcommands. The deployable counterpart to
// cmd/optimizer's "serve" subcommand.
package main

import (
	"log"

	"go.uber.org/zap"

	"timetable-optimizer/internal/server"
	"timetable-optimizer/pkg/config"
	"timetable-optimizer/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	if err := server.Run(cfg, zapLogger, ""); err != nil {
		zapLogger.Fatal("server exited", zap.Error(err))
	}
}
