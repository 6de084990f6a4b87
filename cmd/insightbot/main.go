package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"

	"insightbot/internal/app"
	"insightbot/internal/config"
	"insightbot/internal/logger"
	"insightbot/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Debug).With().Str("run_id", uuid.NewString()).Logger()

	if cfg.MonitoringEnabled {
		go startMonitoringServer(cfg.MonitoringPort)
	}

	if err := app.Run(context.Background(), cfg, log); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func startMonitoringServer(port int) {
	http.Handle("/metrics", metrics.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Best effort: the digest run does not depend on the monitoring server.
	_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
}
