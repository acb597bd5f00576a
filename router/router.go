package router

import (
	"net/http"

	"fundvote/cliparse"
	"fundvote/contract"
	"fundvote/handlers"
	"fundvote/middleware"
)

func NewRouter(c *contract.Contract, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	adminHandler := handlers.NewAdminHandler(c, cfg)
	votingHandler := handlers.NewVotingHandler(c, cfg)
	resultsHandler := handlers.NewResultsHandler(c, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Contract lifecycle and admin operations
	mux.HandleFunc("POST /contract/initialize", middleware.WithLogging(adminHandler.Initialize))
	mux.HandleFunc("POST /admin/toggle-voting", middleware.WithLogging(adminHandler.ToggleVoting))
	mux.HandleFunc("POST /admin/options", middleware.WithLogging(adminHandler.AddOption))

	// Voting
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.Vote))

	// Read-only projections
	mux.HandleFunc("GET /options", middleware.WithLogging(resultsHandler.GetAllResults))
	mux.HandleFunc("GET /options/{id}", middleware.WithLogging(resultsHandler.GetOptionResults))
	mux.HandleFunc("GET /votes/{index}", middleware.WithLogging(resultsHandler.GetVoteRecord))
	mux.HandleFunc("GET /voters/{address}", middleware.WithLogging(resultsHandler.GetVoterStatus))
	mux.HandleFunc("GET /status", middleware.WithLogging(resultsHandler.GetStatus))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fundvote API v1"))
	})

	return mux
}
