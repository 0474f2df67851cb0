// Package main - Entry point for the Tech Verdict API server
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	"tech-verdict/adapters/ai"
	"tech-verdict/api"
	"tech-verdict/core/knowledge"
	"tech-verdict/core/orchestrator"
	"tech-verdict/internal/config"
	"tech-verdict/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "Path to config file")
	addr := flag.String("addr", "", "Server address (overrides config)")
	flag.Parse()

	if err := run(*configPath, *addr); err != nil {
		fmt.Fprintf(os.Stderr, "tech-verdict: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	config.Set(cfg)
	if addr != "" {
		cfg.Server.Addr = addr
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	handler, err := buildHandler(cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info("server listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("version", api.Version),
			zap.String("ai_provider", cfg.AI.Provider))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildHandler wires the knowledge base, provider and API from configuration
func buildHandler(cfg *config.Config) (http.Handler, error) {
	kb := knowledge.Default()
	if cfg.Knowledge.CatalogPath != "" {
		loaded, err := knowledge.LoadCatalog(cfg.Knowledge.CatalogPath)
		if err != nil {
			return nil, err
		}
		kb = loaded
		logging.Info("catalog loaded",
			zap.String("path", cfg.Knowledge.CatalogPath),
			zap.Int("technologies", kb.Len()))
	}

	provider, err := ai.New(cfg.AI.Provider, ai.Config{
		GeminiAPIKey:   cfg.AI.GeminiAPIKey,
		GeminiEndpoint: cfg.AI.GeminiEndpoint,
		OllamaHost:     cfg.AI.OllamaHost,
		OllamaModel:    cfg.AI.OllamaModel,
	})
	if err != nil {
		return nil, err
	}

	var handler http.Handler = api.NewServer(orchestrator.New(kb, provider), api.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})
	if cfg.Server.Compress {
		handler = gzhttp.GzipHandler(handler)
	}
	return handler, nil
}
