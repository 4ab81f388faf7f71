// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pollbox/pollbox/cliparse"
)

// Open connects to the configured database. The matching driver must be
// registered by the caller (main blank-imports lib/pq and modernc.org/sqlite).
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		return sql.Open("postgres", cfg.DatabaseURL)
	case "sqlite":
		url := cfg.DatabaseURL
		// Cascading deletes need the foreign_keys pragma on every connection
		if !strings.Contains(url, "_pragma") {
			if strings.Contains(url, "?") {
				url += "&_pragma=foreign_keys(1)"
			} else {
				url += "?_pragma=foreign_keys(1)"
			}
		}
		return sql.Open("sqlite", url)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}

// ToMillis converts a time to the epoch-millisecond form stored in pub_date.
func ToMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

// FromMillis converts a stored pub_date back to a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
