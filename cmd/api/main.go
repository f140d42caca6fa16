package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"project-catalog/internal/config"
	"project-catalog/internal/logger"
	"project-catalog/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	ctx := context.Background()
	srv, err := server.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	defer srv.Pool.Close()

	go func() {
		log.Info().Str("addr", srv.HTTP.Addr).Msg("http server listening")
		if err := srv.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.GRPCPort)
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			log.Fatal().Err(err).Str("addr", addr).Msg("grpc listen error")
		}
		log.Info().Str("addr", addr).Msg("grpc server listening")
		if err := srv.GRPC.Serve(listener); err != nil {
			log.Fatal().Err(err).Msg("grpc server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTP.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	srv.GRPC.GracefulStop()

	log.Info().Msg("server exiting")
}
