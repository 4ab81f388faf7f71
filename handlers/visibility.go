// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"time"

	"github.com/pollbox/pollbox/db"
	"github.com/pollbox/pollbox/models"
)

// indexPageSize caps the listing at the five most recent questions.
const indexPageSize = 5

// visibleCondition is the one visibility predicate shared by every read
// path, page and API alike: a question is visible once its pub_date has
// passed and it has at least one choice. nowParam is the placeholder
// ($1, $2, ...) carrying the current time in epoch milliseconds.
//
// Placeholders must appear in ascending order within a query: lib/pq
// resolves $N by number, but sqlite numbers them by first occurrence.
func visibleCondition(nowParam string) string {
	return `q.pub_date <= ` + nowParam + ` AND EXISTS (
		SELECT 1 FROM choice c WHERE c.question_id = q.id
	)`
}

// latestQuestions returns up to limit visible questions, newest first.
func latestQuestions(dbc *sql.DB, now time.Time, limit int) ([]models.Question, error) {
	rows, err := dbc.Query(`
		SELECT q.id, q.question_text, q.pub_date
		FROM question q
		WHERE `+visibleCondition("$1")+`
		ORDER BY q.pub_date DESC
		LIMIT $2
	`, db.ToMillis(now), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		var pubMillis int64
		if err := rows.Scan(&q.ID, &q.QuestionText, &pubMillis); err != nil {
			return nil, err
		}
		q.PubDate = db.FromMillis(pubMillis)
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// visibleQuestion looks up one question by id through the visibility
// predicate. Missing, future-dated, and choice-less questions all come back
// as sql.ErrNoRows; callers collapse them into one indistinguishable 404.
func visibleQuestion(dbc *sql.DB, id string, now time.Time) (models.Question, error) {
	var q models.Question
	var pubMillis int64
	err := dbc.QueryRow(`
		SELECT q.id, q.question_text, q.pub_date
		FROM question q
		WHERE q.id = $1 AND `+visibleCondition("$2")+`
	`, id, db.ToMillis(now)).Scan(&q.ID, &q.QuestionText, &pubMillis)
	if err != nil {
		return models.Question{}, err
	}

	q.PubDate = db.FromMillis(pubMillis)
	return q, nil
}

// questionChoices returns a question's choices in a stable order.
func questionChoices(dbc *sql.DB, questionID string) ([]models.Choice, error) {
	rows, err := dbc.Query(`
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, err
		}
		choices = append(choices, c)
	}

	return choices, rows.Err()
}
