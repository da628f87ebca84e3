// StratusCode server — drives agent turns against remote sandboxes and
// serves the HTTP/WebSocket API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stratuscode/stratuscode/pkg/api"
	"github.com/stratuscode/stratuscode/pkg/cleanup"
	"github.com/stratuscode/stratuscode/pkg/config"
	"github.com/stratuscode/stratuscode/pkg/database"
	"github.com/stratuscode/stratuscode/pkg/events"
	"github.com/stratuscode/stratuscode/pkg/llm"
	"github.com/stratuscode/stratuscode/pkg/orchestrator"
	"github.com/stratuscode/stratuscode/pkg/sandbox"
	"github.com/stratuscode/stratuscode/pkg/services"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting StratusCode", "http_port", cfg.HTTPPort)
	ctx := context.Background()

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Domain services
	sessionService := services.NewSessionService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	streamService := services.NewStreamService(dbClient.Client, dbClient.DB())
	agentStateService := services.NewAgentStateService(dbClient.Client)
	todoService := services.NewTodoService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// Sandbox manager
	sandboxCreds, err := sandbox.CredentialsFromEnv()
	if err != nil {
		slog.Error("Failed to load sandbox credentials", "error", err)
		os.Exit(1)
	}
	sandboxManager := sandbox.NewManager(
		sandbox.NewClient(sandboxCreds),
		sessionService,
		sandbox.GitIdentity{Login: cfg.GitLogin, UserID: cfg.GitUserID},
	)

	// Inference engine
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	engine, err := llm.NewGRPCEngine(cfg.LLMServiceAddr)
	if err != nil {
		slog.Error("Failed to initialize inference engine", "addr", cfg.LLMServiceAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := engine.Close(); err != nil {
			slog.Error("Error closing inference engine", "error", err)
		}
	}()
	slog.Info("Inference engine initialized", "addr", cfg.LLMServiceAddr)

	// Orchestrator and executor
	orch := orchestrator.New(orchestrator.Deps{
		Sessions:    sessionService,
		Messages:    messageService,
		Streams:     streamService,
		AgentState:  agentStateService,
		Todos:       todoService,
		Publisher:   eventPublisher,
		Sandboxes:   sandboxManager,
		Engine:      engine,
		GitHubToken: cfg.GitHubToken,
	})
	executor := orchestrator.NewExecutor(orch)

	// Background sweeper
	sweeperCtx, stopSweeper := context.WithCancel(ctx)
	defer stopSweeper()
	sweeper := cleanup.NewSweeper(sessionService, eventService, eventPublisher)
	go sweeper.Start(sweeperCtx)

	// HTTP server
	httpServer := api.NewServer(dbClient, sessionService, messageService, streamService, todoService, executor, connManager, eventPublisher)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("StratusCode started successfully")

	// Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop intake first, then drain turns.
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}

	stopSweeper()

	done := make(chan struct{})
	go func() {
		executor.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Executor stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Executor shutdown timeout exceeded")
	}

	slog.Info("StratusCode shut down")
}
