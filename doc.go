// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollbox server.

Pollbox is a small polling service: visitors see a list of published
questions, open a question to vote on one of its choices, and view the
running results. Questions and choices are created over a JSON API.

# Starting the Server

The server runs against SQLite by default and needs no configuration:

	go run main.go

For PostgreSQL, point it at a database:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded at startup if present.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: pollbox.db for sqlite;
    required for postgres)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (question pages, voting, JSON API)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, rate limiting, CORS, JSON helpers
  - models: Domain entities and request/response types
  - templates: Embedded HTML pages
  - db: Database opening and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
