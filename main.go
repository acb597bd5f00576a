package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"fundvote/cliparse"
	"fundvote/contract"
	"fundvote/db"
	"fundvote/events"
	"fundvote/ledger"
	"fundvote/middleware"
	"fundvote/router"
)

func main() {
	// Load .env if present; real env vars win
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the contract state store
	store, err := db.Open(cfg)
	if err != nil {
		slog.Error("store open failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Contract store ready", "backend", cfg.DatabaseType)

	// The dev ledger lives in-process; a production deployment swaps in a
	// client for a real settlement ledger here.
	lgr := ledger.NewMemoryLedger()

	engine := contract.New(store, lgr, contract.SystemClock, events.LogEmitter{})

	// Create router
	mux := router.NewRouter(engine, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
