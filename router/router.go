// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/handlers"
	"github.com/pollbox/pollbox/middleware"
)

// Vote rate limit: sustained requests per minute per IP, with a small
// burst for legitimate rapid voting across different questions.
const (
	voteRatePerMin  = 60
	voteBurst       = 10
	voteLimiterIdle = 10 * time.Minute
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	apiHandler := handlers.NewAPIHandler(db, cfg)

	// One limiter shared by the HTML and JSON vote routes
	voteLimiter := middleware.NewIPRateLimiter(voteRatePerMin, voteBurst, voteLimiterIdle)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// HTML pages
	mux.HandleFunc("GET /polls", middleware.WithLogging(questionHandler.Index))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(questionHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(questionHandler.Results))
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(middleware.RateLimit(voteLimiter, voteHandler.Vote)))

	// JSON API
	mux.HandleFunc("GET /api/questions", middleware.WithLogging(apiHandler.ListQuestions))
	mux.HandleFunc("GET /api/questions/{id}", middleware.WithLogging(apiHandler.GetQuestion))
	mux.HandleFunc("GET /api/questions/{id}/results", middleware.WithLogging(apiHandler.GetResults))
	mux.HandleFunc("POST /api/questions", middleware.WithLogging(apiHandler.CreateQuestion))
	mux.HandleFunc("POST /api/questions/{id}/choices", middleware.WithLogging(apiHandler.AddChoice))
	mux.HandleFunc("POST /api/questions/{id}/vote", middleware.WithLogging(middleware.RateLimit(voteLimiter, apiHandler.Vote)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/polls", http.StatusMovedPermanently)
	})

	return mux
}
