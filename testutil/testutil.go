// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/pollbox/pollbox/cliparse"
	"github.com/pollbox/pollbox/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Each test gets its own database; nothing persists between tests.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A second connection would see a second empty :memory: database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// CreateTestQuestion inserts a question and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, pubDate time.Time) string {
	t.Helper()

	questionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO question (id, question_text, pub_date)
		VALUES ($1, $2, $3)
	`, questionID, text, db.ToMillis(pubDate))
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return questionID
}

// AddTestChoice attaches a choice with zero votes and returns its ID
func AddTestChoice(t *testing.T, conn *sql.DB, questionID, text string) string {
	t.Helper()

	choiceID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO choice (id, question_id, choice_text, votes)
		VALUES ($1, $2, $3, 0)
	`, choiceID, questionID, text)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return choiceID
}

// SetTestVotes overwrites a choice's vote counter
func SetTestVotes(t *testing.T, conn *sql.DB, choiceID string, votes int) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE choice SET votes = $1 WHERE id = $2
	`, votes, choiceID)
	if err != nil {
		t.Fatalf("Failed to set test votes: %v", err)
	}
}

// GetTestVotes reads a choice's vote counter
func GetTestVotes(t *testing.T, conn *sql.DB, choiceID string) int {
	t.Helper()

	var votes int
	err := conn.QueryRow(`
		SELECT votes FROM choice WHERE id = $1
	`, choiceID).Scan(&votes)
	if err != nil {
		t.Fatalf("Failed to read test votes: %v", err)
	}

	return votes
}

// MakeRequest creates an HTTP test request with an optional JSON body
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	return req
}

// MakeFormRequest creates a form-encoded POST request, the shape the HTML
// vote form submits
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertBodyContains checks that the rendered body includes a fragment
func AssertBodyContains(t *testing.T, w *httptest.ResponseRecorder, fragment string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), fragment) {
		t.Errorf("Expected body to contain %q. Body: %s", fragment, w.Body.String())
	}
}

// AssertBodyNotContains checks that the rendered body excludes a fragment
func AssertBodyNotContains(t *testing.T, w *httptest.ResponseRecorder, fragment string) {
	t.Helper()
	if strings.Contains(w.Body.String(), fragment) {
		t.Errorf("Expected body not to contain %q. Body: %s", fragment, w.Body.String())
	}
}
