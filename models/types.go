// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type CreateQuestionRequest struct {
	QuestionText string `json:"question_text"`
	// RFC 3339; empty means "published now"
	PubDate string `json:"pub_date,omitempty"`
}

type AddChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
}

type VoteRequest struct {
	ChoiceID string `json:"choice_id"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID string `json:"question_id"`
}

type AddChoiceResponse struct {
	ChoiceID string `json:"choice_id"`
}

type VoteResponse struct {
	ChoiceID string `json:"choice_id"`
	Votes    int    `json:"votes"`
}

type QuestionEntry struct {
	ID                   string    `json:"id"`
	QuestionText         string    `json:"question_text"`
	PubDate              time.Time `json:"pub_date"`
	WasPublishedRecently bool      `json:"was_published_recently"`
}

type QuestionListResponse struct {
	Questions []QuestionEntry `json:"questions"`
}

type QuestionDetailResponse struct {
	Question QuestionEntry `json:"question"`
	Choices  []Choice      `json:"choices"`
}

type ResultsResponse struct {
	Question   QuestionEntry `json:"question"`
	Choices    []Choice      `json:"choices"`
	TotalVotes int           `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Page view models (templates)

type IndexEntry struct {
	ID           string
	QuestionText string
	PublishedAgo string // humanized, e.g. "2 days ago"
	New          bool   // published within the last day
}

type IndexPage struct {
	Questions []IndexEntry
}

type DetailPage struct {
	Question     Question
	Choices      []Choice
	ErrorMessage string
}

type ResultsPage struct {
	Question   Question
	Choices    []Choice
	TotalVotes int
}
