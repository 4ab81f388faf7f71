// Copyright (c) 2026 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package templates holds the embedded HTML pages and a render helper.

# Pages

  - index.html: listing of visible questions, or "No polls are available."
  - detail.html: a question's vote form
  - results.html: per-choice vote counts

# Rendering

Handlers render through a buffered helper:

	templates.Render(w, http.StatusOK, "index.html", page)

Pages are parsed once at init from the embedded filesystem; a bad template
fails at startup, not per request.
*/
package templates
