// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/one-pick/cliparse"
	"github.com/danielhkuo/one-pick/handlers"
	"github.com/danielhkuo/one-pick/ledger"
	"github.com/danielhkuo/one-pick/middleware"
	"github.com/danielhkuo/one-pick/order"
	"github.com/danielhkuo/one-pick/period"
	"github.com/danielhkuo/one-pick/secrets"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Wire the core
	registry := period.NewRegistry(db)
	voteLedger := ledger.New(db, order.New(), secrets.New(cfg.BcryptCost), registry)

	voteHandler := handlers.NewVoteHandler(voteLedger)
	leaderboardHandler := handlers.NewLeaderboardHandler(db, registry)
	periodHandler := handlers.NewPeriodHandler(registry)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Vote lifecycle
	mux.HandleFunc("POST /api/one-pick/submit", middleware.WithLogging(voteHandler.Submit))
	mux.HandleFunc("POST /api/one-pick/change", middleware.WithLogging(voteHandler.Change))
	mux.HandleFunc("GET /api/one-pick/verify", middleware.WithLogging(voteHandler.Verify))

	// Aggregates (bypass the ledger)
	mux.HandleFunc("GET /api/one-pick/leaderboard", middleware.WithLogging(leaderboardHandler.Get))
	mux.HandleFunc("GET /api/one-pick/periods", middleware.WithLogging(periodHandler.List))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("one-pick API v1"))
	})

	// CORS wraps the whole surface: the identity cookie only travels
	// cross-origin when credentials are allowed.
	return middleware.CORS(mux)
}
