package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sufield/idcheck/internal/config"
	"github.com/sufield/idcheck/internal/httpapi"
)

func serveCommand(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to idcheck config file (defaults apply when omitted)")

	fs.Usage = func() {
		fmt.Println(`Run the HTTP validation service

USAGE:
    idcheck serve [flags]

FLAGS:
    --config string   Path to idcheck config file

ENDPOINTS:
    POST /validate    JSON {"id": "..."} -> verdict with components
    GET  /healthz     Liveness probe
    GET  /version     Build version

CONFIGURATION (yaml):
    version: 1
    server:
      listen_addr: ":8080"
      read_timeout: "5s"
      write_timeout: "10s"
    limits:
      max_body_bytes: 65536
    compat:
      enabled: true

EXAMPLES:
    # Run with defaults (listens on :8080)
    idcheck serve

    # Run with a config file
    idcheck serve --config idcheck.yaml

    # Query the running service
    curl -s -X POST localhost:8080/validate -d '{"id": "spiffe://example.org/svc"}'`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg config.FileConfig
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	rt, err := config.Validate(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	srv := &http.Server{
		Addr:         rt.ListenAddr,
		Handler:      httpapi.NewRouter(rt, version),
		ReadTimeout:  rt.ReadTimeout,
		WriteTimeout: rt.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("idcheck validation service listening on %s", rt.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Block until interrupted or the listener fails
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	log.Printf("shutdown complete")
	return nil
}
