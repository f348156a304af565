// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(logger, handler))

Logs request start at debug level and completion (method, path, status,
duration_ms) at info level through the injected zap logger.

# Admin Keys

Administrative routes carry the question id in the path and the admin key
returned at creation in the X-Admin-Key header:

	mux.HandleFunc("POST /questions/{id}/close",
		middleware.WithLogging(logger, middleware.RequireAdminKey(salt, h.Close)))

A missing header is 401; a key for a different question is 403.

# Voter Identity

WithVoter resolves X-Voter-Token to a voter and stores it in the request
context. Requests without the header stay anonymous; unknown tokens are 401.
RequireVoter additionally rejects anonymous requests.

	voter, ok := middleware.VoterFromContext(r.Context())

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PATCH, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Admin-Key, X-Voter-Token.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.RedirectResponse(w, "/questions", models.MessagePollEnded)

Parse JSON request bodies:

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.BodyErrorResponse(w, err, "Invalid JSON")
		return
	}

Bodies are capped at MaxBodyBytes; oversized requests get 413.

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr. The result is
hashed before it reaches the vote ledger.
*/
package middleware
