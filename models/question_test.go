// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"testing"
	"time"
)

func TestWasPublishedRecently(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name    string
		pubDate time.Time
		want    bool
	}{
		{
			name:    "future question",
			pubDate: now.Add(30 * 24 * time.Hour),
			want:    false,
		},
		{
			name:    "one second in the future",
			pubDate: now.Add(time.Second),
			want:    false,
		},
		{
			name:    "published right now",
			pubDate: now,
			want:    true,
		},
		{
			name:    "one second shy of a day old",
			pubDate: now.Add(-(23*time.Hour + 59*time.Minute + 59*time.Second)),
			want:    true,
		},
		{
			name:    "exactly a day old",
			pubDate: now.Add(-24 * time.Hour),
			want:    false,
		},
		{
			name:    "a day and a second old",
			pubDate: now.Add(-(24*time.Hour + time.Second)),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{QuestionText: "Recent?", PubDate: tt.pubDate}
			if got := q.WasPublishedRecently(now); got != tt.want {
				t.Errorf("WasPublishedRecently(%v) = %v, want %v", tt.pubDate, got, tt.want)
			}
		})
	}
}

func TestQuestionString(t *testing.T) {
	q := Question{QuestionText: "Test text", PubDate: time.Now()}
	if q.String() != "Test text" {
		t.Errorf("expected 'Test text', got '%s'", q.String())
	}
}

func TestChoiceString(t *testing.T) {
	c := Choice{ChoiceText: "Test text"}
	if c.String() != "Test text" {
		t.Errorf("expected 'Test text', got '%s'", c.String())
	}
}

func TestChoiceVotesDefaultToZero(t *testing.T) {
	c := Choice{ChoiceText: "Test text"}
	if c.Votes != 0 {
		t.Errorf("expected 0 votes, got %d", c.Votes)
	}

	c = Choice{ChoiceText: "Test text", Votes: 3}
	if c.Votes != 3 {
		t.Errorf("expected 3 votes, got %d", c.Votes)
	}
}
