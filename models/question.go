// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Question is a poll prompt. It becomes visible to visitors once pub_date
// has passed and at least one choice exists.
type Question struct {
	ID           string    `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

func (q Question) String() string {
	return q.QuestionText
}

// WasPublishedRecently reports whether the question was published within
// the 24 hours ending at now. Future publication dates are not "recent".
func (q Question) WasPublishedRecently(now time.Time) bool {
	return q.PubDate.After(now.Add(-24*time.Hour)) && !q.PubDate.After(now)
}

// Choice is a selectable option belonging to one question.
type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

func (c Choice) String() string {
	return c.ChoiceText
}
