// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/db"
	"github.com/pollbox/pollbox/middleware"
	"github.com/pollbox/pollbox/models"
)

// APIHandler serves the JSON API: question and choice creation plus JSON
// mirrors of the three read pages, under the same visibility rules.
type APIHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAPIHandler(db *sql.DB, cfg cliparse.Config) *APIHandler {
	return &APIHandler{db: db, cfg: cfg}
}

// ListQuestions handles GET /api/questions
func (h *APIHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	questions, err := latestQuestions(h.db, now, indexPageSize)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.QuestionListResponse{Questions: []models.QuestionEntry{}}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, questionEntry(q, now))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetQuestion handles GET /api/questions/{id}
func (h *APIHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	now := time.Now().UTC()

	question, err := visibleQuestion(h.db, id, now)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	choices, err := questionChoices(h.db, question.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionDetailResponse{
		Question: questionEntry(question, now),
		Choices:  choices,
	})
}

// GetResults handles GET /api/questions/{id}/results
func (h *APIHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	now := time.Now().UTC()

	question, err := visibleQuestion(h.db, id, now)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	choices, err := questionChoices(h.db, question.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	total := 0
	for _, c := range choices {
		total += c.Votes
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Question:   questionEntry(question, now),
		Choices:    choices,
		TotalVotes: total,
	})
}

// CreateQuestion handles POST /api/questions
func (h *APIHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.QuestionText == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}

	pubDate := time.Now().UTC()
	if req.PubDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.PubDate)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "pub_date must be RFC 3339")
			return
		}
		pubDate = parsed
	}

	questionID := uuid.NewString()

	_, err := h.db.Exec(`
		INSERT INTO question (id, question_text, pub_date)
		VALUES ($1, $2, $3)
	`, questionID, req.QuestionText, db.ToMillis(pubDate))
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", questionID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: questionID,
	})
}

// AddChoice handles POST /api/questions/{id}/choices
// Creation only needs the question to exist, not to be visible: a fresh
// question necessarily has no choices yet.
func (h *APIHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ChoiceText == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_text is required")
		return
	}

	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM question WHERE id = $1)
	`, questionID).Scan(&exists)
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	choiceID := uuid.NewString()

	_, err = h.db.Exec(`
		INSERT INTO choice (id, question_id, choice_text, votes)
		VALUES ($1, $2, $3, 0)
	`, choiceID, questionID, req.ChoiceText)
	if err != nil {
		slog.Error("failed to insert choice", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", choiceID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddChoiceResponse{
		ChoiceID: choiceID,
	})
}

// Vote handles POST /api/questions/{id}/vote
func (h *APIHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	now := time.Now().UTC()

	question, err := visibleQuestion(h.db, id, now)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ChoiceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_id is required")
		return
	}

	res, err := h.db.Exec(`
		UPDATE choice SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, req.ChoiceID, question.ID)
	if err != nil {
		slog.Error("failed to record vote", "error", err, "question_id", question.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_id does not belong to this question")
		return
	}

	var votes int
	err = h.db.QueryRow(`
		SELECT votes FROM choice WHERE id = $1
	`, req.ChoiceID).Scan(&votes)
	if err != nil {
		slog.Error("failed to read vote count", "error", err, "choice_id", req.ChoiceID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "question_id", question.ID, "choice_id", req.ChoiceID)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		ChoiceID: req.ChoiceID,
		Votes:    votes,
	})
}

// questionEntry converts a domain question to its API shape.
func questionEntry(q models.Question, now time.Time) models.QuestionEntry {
	return models.QuestionEntry{
		ID:                   q.ID,
		QuestionText:         q.QuestionText,
		PubDate:              q.PubDate,
		WasPublishedRecently: q.WasPublishedRecently(now),
	}
}
