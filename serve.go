package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anatolykoptev/netdata-mcp/internal/netdata"
	"github.com/anatolykoptev/netdata-mcp/internal/toolreg"
)

const serverVersion = "1.0.0"

// runServe starts the MCP server in HTTP or stdio mode.
func runServe(cfg netdata.Config, client *netdata.Client, registry *toolreg.Registry) {
	defer client.Close()
	stdio := hasFlag("--stdio")

	logWriter := os.Stdout
	if stdio {
		logWriter = os.Stderr
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: slog.LevelInfo})))

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "netdata-mcp",
		Version: serverVersion,
	}, nil)

	registerTools(server, registry)
	slog.Info("netdata MCP server",
		slog.Int("tools", len(registry.Names())),
		slog.String("agent", client.BaseURL()))

	if stdio {
		slog.Info("running in stdio mode")
		if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			slog.Error("stdio server failed", slog.Any("error", err))
			client.Close()
			os.Exit(1) //nolint:gocritic // explicit cleanup called before os.Exit
		}
		return
	}

	port := cfg.MCPPort
	if p := getFlagValue("--port"); p != "" {
		port = p
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{
		Stateless: true,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Handle("/mcp", handler)
	r.Handle("/mcp/*", handler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"netdata-mcp","version":"` + serverVersion + `"}`))
	})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	sigCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go func() {
		slog.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-sigCtx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
	slog.Info("stopped")
}
