// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, response, and page types.

# Domain Types

  - Question: poll prompt with publication timestamp; String() returns the
    question text and WasPublishedRecently() implements the trailing
    24-hour recency window
  - Choice: selectable option with an accumulated vote count; String()
    returns the choice text

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: question_text, optional pub_date (RFC 3339)
  - AddChoiceRequest: choice_text
  - VoteRequest: choice_id

# Response Types

Types for JSON responses:

  - CreateQuestionResponse: question_id
  - AddChoiceResponse: choice_id
  - VoteResponse: choice_id, votes
  - QuestionListResponse, QuestionDetailResponse, ResultsResponse
  - ErrorResponse: error, message

# Page View Models

Data passed to the embedded HTML templates:

  - IndexPage: listing entries with humanized publication age
  - DetailPage: question, choices, and an optional form error message
  - ResultsPage: question, choices with votes, and the total
*/
package models
