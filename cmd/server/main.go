package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/salachat/salachat-server/internal/app"
	"github.com/salachat/salachat-server/internal/config"
	"github.com/salachat/salachat-server/internal/log"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file")
		overrides  config.Config
	)
	flag.StringVar(&overrides.Addr, "addr", "", "HTTP listen address")
	flag.DurationVar(&overrides.ReadHeaderTimeout, "read-header-timeout", 0, "HTTP read header timeout")
	flag.DurationVar(&overrides.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")
	flag.StringVar(&overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flag.StringVar(&overrides.StaticDir, "static-dir", "", "directory with web client assets")
	flag.Parse()

	bootLogger := log.New(overrides.LogLevel)

	cfg, path, err := config.Load(bootLogger, *configPath)
	if err != nil {
		bootLogger.Fatal().Err(err).Str("path", path).Msg("load config")
	}
	cfg.UpdateFrom(overrides)

	logger := log.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := app.New(&cfg, logger)

	logger.Info().Str("addr", cfg.Addr).Str("default_room", cfg.DefaultRoom).Msg("starting salachat server")
	if err := application.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
	logger.Info().Msg("server stopped")
}
