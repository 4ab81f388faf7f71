// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database opening and schema creation.

# Opening a Database

Open connects to sqlite or postgres based on the parsed config:

	conn, err := db.Open(cfg)

The drivers themselves (modernc.org/sqlite, lib/pq) are registered by the
main package via blank imports.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - question: Poll prompt with publication timestamp
  - choice: Selectable options per question, each with a vote counter

# Relationships

	question 1──* choice

Foreign keys use ON DELETE CASCADE; a choice cannot outlive its question.

# Timestamps

pub_date is stored as epoch milliseconds (BIGINT) rather than a native
timestamp column so identical queries compare correctly on both backends.
ToMillis and FromMillis convert at the query boundary.

# Indexes

Performance indexes on:

  - question.pub_date (index ordering and visibility filtering)
  - choice.question_id
*/
package db
