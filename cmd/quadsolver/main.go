package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quadsolver/internal/config"
	"quadsolver/internal/metrics"
	"quadsolver/internal/node"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.Default()
	flag.StringVar(&cfg.NodeID, "node-id", cfg.NodeID, "Node identifier used in logs")
	flag.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "gRPC listen address (host:port)")
	flag.StringVar(&cfg.MetricsAddr, "metrics-listen", cfg.MetricsAddr, "Prometheus metrics listen address; empty disables")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	err := serve(context.Background(), cfg, reg)
	if err == nil {
		return
	}
	var sigErr run.SignalError
	if errors.As(err, &sigErr) {
		log.Printf("[%s] Received %v, exiting", cfg.NodeID, sigErr.Signal)
		return
	}
	log.Fatalf("[%s] %v", cfg.NodeID, err)
}

// serve runs the gRPC node, the metrics endpoint and the signal handler
// until one of them returns, then stops the others.
func serve(ctx context.Context, cfg config.Config, reg *prometheus.Registry) error {
	n := node.NewNode(cfg.NodeID, cfg.ListenAddr, metrics.New(reg))

	g := &run.Group{}
	g.Add(func() error {
		return n.Start()
	}, func(error) {
		n.Stop()
	})

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Add(func() error {
			log.Printf("[%s] Serving metrics on %s", cfg.NodeID, cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		}, func(error) {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("[%s] Failed to stop metrics server: %v", cfg.NodeID, err)
			}
		})
	}

	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	return g.Run()
}
