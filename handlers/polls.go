// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/templates"
)

type QuestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg}
}

// Index handles GET /polls
// Lists the most recent visible questions; an empty list is still a 200.
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	questions, err := latestQuestions(h.db, now, indexPageSize)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page := models.IndexPage{}
	for _, q := range questions {
		page.Questions = append(page.Questions, models.IndexEntry{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			PublishedAgo: humanize.Time(q.PubDate),
			New:          q.WasPublishedRecently(now),
		})
	}

	templates.Render(w, http.StatusOK, "index.html", page)
}

// Detail handles GET /polls/{id}
// Renders the vote form; 404 for anything the visibility predicate rejects.
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	now := time.Now().UTC()

	question, err := visibleQuestion(h.db, id, now)
	if err == sql.ErrNoRows {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	choices, err := questionChoices(h.db, question.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	templates.Render(w, http.StatusOK, "detail.html", models.DetailPage{
		Question: question,
		Choices:  choices,
	})
}

// Results handles GET /polls/{id}/results
// Same visibility rule as Detail; shows per-choice vote counts.
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	now := time.Now().UTC()

	question, err := visibleQuestion(h.db, id, now)
	if err == sql.ErrNoRows {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	choices, err := questionChoices(h.db, question.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	total := 0
	for _, c := range choices {
		total += c.Votes
	}

	templates.Render(w, http.StatusOK, "results.html", models.ResultsPage{
		Question:   question,
		Choices:    choices,
		TotalVotes: total,
	})
}
