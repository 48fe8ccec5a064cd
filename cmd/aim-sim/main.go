package main

import (
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/alovak/merchant-gateways/internal/aimsim"
	"github.com/alovak/merchant-gateways/internal/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout))

	if err := run(logger); err != nil {
		logger.Error("running aim-sim", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(logger))

	sim := aimsim.New(logger)
	sim.AppendRoutes(router)

	addr := getenv("HTTP_ADDR", "localhost:8090")

	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}

	logger.Info("aim-sim started", slog.String("addr", l.Addr().String()))

	return http.Serve(l, router)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
