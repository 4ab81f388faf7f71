// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/pollbox/pollbox/testutil"
)

func TestVote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(conn, cfg)

	questionID := testutil.CreateTestQuestion(t, conn, "Best flavor?", time.Now().Add(-time.Hour))
	vanilla := testutil.AddTestChoice(t, conn, questionID, "Vanilla")
	chocolate := testutil.AddTestChoice(t, conn, questionID, "Chocolate")

	t.Run("successful vote increments and redirects", func(t *testing.T) {
		req := testutil.MakeFormRequest("/polls/"+questionID+"/vote", url.Values{"choice": {vanilla}})
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()

		handler.Vote(w, req)

		testutil.AssertStatus(t, w, http.StatusFound)
		if loc := w.Header().Get("Location"); loc != "/polls/"+questionID+"/results" {
			t.Errorf("Expected redirect to results page, got %q", loc)
		}
		if votes := testutil.GetTestVotes(t, conn, vanilla); votes != 1 {
			t.Errorf("Expected 1 vote, got %d", votes)
		}
		if votes := testutil.GetTestVotes(t, conn, chocolate); votes != 0 {
			t.Errorf("Expected other choice untouched, got %d votes", votes)
		}
	})

	t.Run("second vote accumulates", func(t *testing.T) {
		req := testutil.MakeFormRequest("/polls/"+questionID+"/vote", url.Values{"choice": {vanilla}})
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()

		handler.Vote(w, req)

		testutil.AssertStatus(t, w, http.StatusFound)
		if votes := testutil.GetTestVotes(t, conn, vanilla); votes != 2 {
			t.Errorf("Expected 2 votes, got %d", votes)
		}
	})

	t.Run("missing choice re-renders form", func(t *testing.T) {
		req := testutil.MakeFormRequest("/polls/"+questionID+"/vote", url.Values{})
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()

		handler.Vote(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertBodyContains(t, w, "You didn&#39;t select a choice.")
		testutil.AssertBodyContains(t, w, "Best flavor?")
	})

	t.Run("unknown choice re-renders form", func(t *testing.T) {
		req := testutil.MakeFormRequest("/polls/"+questionID+"/vote", url.Values{"choice": {"no-such-choice"}})
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()

		handler.Vote(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertBodyContains(t, w, "You didn&#39;t select a choice.")
	})

	t.Run("choice from another question is rejected", func(t *testing.T) {
		other := testutil.CreateTestQuestion(t, conn, "Other question?", time.Now().Add(-time.Hour))
		otherChoice := testutil.AddTestChoice(t, conn, other, "Elsewhere")

		req := testutil.MakeFormRequest("/polls/"+questionID+"/vote", url.Values{"choice": {otherChoice}})
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()

		handler.Vote(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		testutil.AssertBodyContains(t, w, "You didn&#39;t select a choice.")
		if votes := testutil.GetTestVotes(t, conn, otherChoice); votes != 0 {
			t.Errorf("Expected foreign choice untouched, got %d votes", votes)
		}
	})
}

func TestVoteOnInvisibleQuestion(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVoteHandler(conn, cfg)

	future := testutil.CreateTestQuestion(t, conn, "Future question?", time.Now().Add(time.Hour))
	futureChoice := testutil.AddTestChoice(t, conn, future, "Too soon")

	choiceless := testutil.CreateTestQuestion(t, conn, "Choiceless question?", time.Now().Add(-time.Hour))

	tests := []struct {
		name       string
		questionID string
		choiceID   string
	}{
		{"future question", future, futureChoice},
		{"question without choices", choiceless, ""},
		{"nonexistent question", "no-such-id", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeFormRequest("/polls/"+tt.questionID+"/vote", url.Values{"choice": {tt.choiceID}})
			req.SetPathValue("id", tt.questionID)
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)
		})
	}

	if votes := testutil.GetTestVotes(t, conn, futureChoice); votes != 0 {
		t.Errorf("Expected no votes on invisible question, got %d", votes)
	}
}
