// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Pollbox server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

HTML pages (public):

	GET  /polls               - List recent questions
	GET  /polls/{id}          - Question detail with vote form
	GET  /polls/{id}/results  - Vote counts per choice
	POST /polls/{id}/vote     - Submit a vote (form, rate limited)

JSON API:

	GET  /api/questions               - List recent questions
	GET  /api/questions/{id}          - Question with choices
	GET  /api/questions/{id}/results  - Vote counts and total
	POST /api/questions               - Create question
	POST /api/questions/{id}/choices  - Add choice
	POST /api/questions/{id}/vote     - Submit a vote (rate limited)

The root path redirects to /polls.

# Handler Initialization

The router creates handler instances with dependency injection:

	questionHandler := handlers.NewQuestionHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	apiHandler := handlers.NewAPIHandler(db, cfg)

All handlers receive the database connection and configuration. The two
vote routes share one per-IP token-bucket rate limiter.
*/
package router
