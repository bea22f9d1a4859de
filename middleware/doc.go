// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Logging

WithLogging wraps a handler with slog request start/completion lines,
including method, path, and duration.

# Envelope Writers

Every response goes through the uniform envelope:

	middleware.Success(w, http.StatusOK, payload)
	middleware.Error(w, http.StatusBadRequest, models.CodeInvalidOrderID, msg)

producing:

	{"success": true,  "data": {...}}
	{"success": false, "error": {"code": "...", "message": "..."}}

# Body Parsing

ParseJSONBody decodes the request body into a struct and closes it.

# CORS

CORS allows cross-origin requests with credentials (the PID cookie must
survive cross-origin fetches from the frontend) and answers preflights.
*/
package middleware
