// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements HTTP request handlers for Pollbox.

# Handler Structure

Handlers are grouped by concern, each holding the database connection and
configuration injected at construction:

	questionHandler := handlers.NewQuestionHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	apiHandler := handlers.NewAPIHandler(db, cfg)

QuestionHandler serves the HTML pages (index, detail, results).
VoteHandler processes the detail page's vote form. APIHandler serves the
JSON API used to create questions and choices and to mirror the read pages.

# Visibility

Every read path goes through the same visibility predicate: a question is
shown only once its publication date has passed and it has at least one
choice. A question that fails the predicate is indistinguishable from one
that does not exist; detail, results, and vote all answer 404.

# Error Handling

HTML pages answer plain-text 404/500 via net/http helpers. API endpoints
answer JSON error bodies via middleware.ErrorResponse. Database errors are
logged with slog and surfaced as 500; sql.ErrNoRows becomes 404.
*/
package handlers
