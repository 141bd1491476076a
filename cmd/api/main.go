package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	adapter "pokereview/internal/adapter/http"
	coretel "pokereview/internal/core/telemetry"
	"pokereview/pkg/config"
	"pokereview/pkg/metrics"
	"pokereview/pkg/telemetry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()

	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	tel, err := telemetry.Init(telemetry.Config{
		ServiceName:    "pokereview",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Environment,
		MetricsPort:    "9091",
		OTLPEndpoint:   "localhost:4317",
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry: ", err)
	}

	defer tel.Shutdown(ctx)

	appMetrics := metrics.NewAppMetrics(tel.PrometheusRegistry)
	appMetrics.StartSystemMetrics(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := adapter.StartServer(cfg, appMetrics, coretel.NewOtelProbe("pokereview", appMetrics)); err != nil {
			log.Fatal("Server error: ", err)
		}
	}()

	<-c
}
