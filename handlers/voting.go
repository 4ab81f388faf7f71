// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/templates"
)

// noChoiceMessage is shown on the detail page when a vote arrives without
// a usable choice selection.
const noChoiceMessage = "You didn't select a choice."

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// Vote handles POST /polls/{id}/vote
// Expects a form-encoded body with choice=<choice_id>. On success the vote
// counter is incremented atomically and the client is redirected to the
// results page. A missing or unknown choice re-renders the vote form with
// an error message instead of failing the request.
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
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

	choiceID := r.FormValue("choice")
	if choiceID == "" {
		h.rerenderForm(w, question, noChoiceMessage)
		return
	}

	// The question_id guard keeps a forged form from voting on another
	// question's choice.
	res, err := h.db.Exec(`
		UPDATE choice SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, question.ID)
	if err != nil {
		slog.Error("failed to record vote", "error", err, "question_id", question.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read rows affected", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if affected == 0 {
		h.rerenderForm(w, question, noChoiceMessage)
		return
	}

	slog.Info("vote recorded", "question_id", question.ID, "choice_id", choiceID)

	// Redirect so a reload doesn't vote twice
	http.Redirect(w, r, "/polls/"+question.ID+"/results", http.StatusFound)
}

// rerenderForm shows the detail page again with an error message. Kept a
// 200 so the visitor can correct the form in place.
func (h *VoteHandler) rerenderForm(w http.ResponseWriter, question models.Question, message string) {
	choices, err := questionChoices(h.db, question.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	templates.Render(w, http.StatusOK, "detail.html", models.DetailPage{
		Question:     question,
		Choices:      choices,
		ErrorMessage: message,
	})
}
