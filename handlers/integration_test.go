// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pollbox/pollbox/models"
	"github.com/pollbox/pollbox/testutil"
)

// TestFullPollingWorkflow tests the complete end-to-end workflow:
// 1. Create a question over the API
// 2. Verify it stays invisible while it has no choices
// 3. Add choices
// 4. Verify it appears in the listing and on the detail page
// 5. Vote through the HTML form and the API
// 6. Verify results on both surfaces
func TestFullPollingWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	questionHandler := NewQuestionHandler(conn, cfg)
	voteHandler := NewVoteHandler(conn, cfg)
	apiHandler := NewAPIHandler(conn, cfg)

	// Step 1: Create a question
	req := testutil.MakeRequest("POST", "/api/questions",
		models.CreateQuestionRequest{QuestionText: "What's for lunch?"})
	w := httptest.NewRecorder()
	apiHandler.CreateQuestion(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create question failed: %d - %s", w.Code, w.Body.String())
	}

	var createResp models.CreateQuestionResponse
	testutil.AssertJSON(t, w, &createResp)
	questionID := createResp.QuestionID
	if questionID == "" {
		t.Fatal("Step 1 - Missing question_id")
	}
	t.Logf("Step 1 - Created question: %s", questionID)

	// Step 2: No choices yet, so every read path answers as if it
	// didn't exist
	req = httptest.NewRequest("GET", "/polls/"+questionID, nil)
	req.SetPathValue("id", questionID)
	w = httptest.NewRecorder()
	questionHandler.Detail(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Step 2 - Expected 404 before choices exist, got %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/polls", nil)
	w = httptest.NewRecorder()
	questionHandler.Index(w, req)
	testutil.AssertBodyContains(t, w, "No polls are available.")

	// Step 3: Add 3 choices
	choices := []string{"Pizza", "Sushi", "Tacos"}
	choiceIDs := make([]string, 0, len(choices))

	for _, text := range choices {
		req := testutil.MakeRequest("POST", "/api/questions/"+questionID+"/choices",
			models.AddChoiceRequest{ChoiceText: text})
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()
		apiHandler.AddChoice(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 3 - Add choice '%s' failed: %d - %s", text, w.Code, w.Body.String())
		}

		var choiceResp models.AddChoiceResponse
		testutil.AssertJSON(t, w, &choiceResp)
		choiceIDs = append(choiceIDs, choiceResp.ChoiceID)
	}
	t.Logf("Step 3 - Added %d choices", len(choiceIDs))

	// Step 4: The question is now visible everywhere
	req = httptest.NewRequest("GET", "/polls", nil)
	w = httptest.NewRecorder()
	questionHandler.Index(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBodyContains(t, w, "What&#39;s for lunch?")

	req = httptest.NewRequest("GET", "/polls/"+questionID, nil)
	req.SetPathValue("id", questionID)
	w = httptest.NewRecorder()
	questionHandler.Detail(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBodyContains(t, w, "Pizza")
	testutil.AssertBodyContains(t, w, "Tacos")

	// Step 5: One vote through the form, two through the API
	req = testutil.MakeFormRequest("/polls/"+questionID+"/vote", url.Values{"choice": {choiceIDs[0]}})
	req.SetPathValue("id", questionID)
	w = httptest.NewRecorder()
	voteHandler.Vote(w, req)
	testutil.AssertStatus(t, w, http.StatusFound)

	for i := 0; i < 2; i++ {
		req := testutil.MakeRequest("POST", "/api/questions/"+questionID+"/vote",
			models.VoteRequest{ChoiceID: choiceIDs[1]})
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()
		apiHandler.Vote(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}
	t.Log("Step 5 - Cast 3 votes")

	// Step 6: Results agree on both surfaces
	req = httptest.NewRequest("GET", "/polls/"+questionID+"/results", nil)
	req.SetPathValue("id", questionID)
	w = httptest.NewRecorder()
	questionHandler.Results(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertBodyContains(t, w, "Pizza: 1 vote")
	testutil.AssertBodyContains(t, w, "Sushi: 2 votes")
	testutil.AssertBodyContains(t, w, "3 votes total")

	req = testutil.MakeRequest("GET", "/api/questions/"+questionID+"/results", nil)
	req.SetPathValue("id", questionID)
	w = httptest.NewRecorder()
	apiHandler.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resultsResp models.ResultsResponse
	testutil.AssertJSON(t, w, &resultsResp)
	if resultsResp.TotalVotes != 3 {
		t.Errorf("Step 6 - Expected 3 total votes, got %d", resultsResp.TotalVotes)
	}
	for _, c := range resultsResp.Choices {
		switch c.ID {
		case choiceIDs[0]:
			if c.Votes != 1 {
				t.Errorf("Step 6 - Expected 1 vote for %s, got %d", c.ChoiceText, c.Votes)
			}
		case choiceIDs[1]:
			if c.Votes != 2 {
				t.Errorf("Step 6 - Expected 2 votes for %s, got %d", c.ChoiceText, c.Votes)
			}
		case choiceIDs[2]:
			if c.Votes != 0 {
				t.Errorf("Step 6 - Expected 0 votes for %s, got %d", c.ChoiceText, c.Votes)
			}
		}
	}
}
