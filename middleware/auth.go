// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/polls"
)

// Header names
const (
	AdminKeyHeader   = "X-Admin-Key"
	VoterTokenHeader = "X-Voter-Token"
)

type voterKey struct{}

// VoterAuthenticator resolves a voter token to a voter
type VoterAuthenticator interface {
	Authenticate(ctx context.Context, token string) (polls.Voter, error)
}

// RequireAdminKey rejects requests whose X-Admin-Key does not match the
// question in the {id} path segment.
func RequireAdminKey(salt string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := auth.ValidateAdminKey(r.PathValue("id"), r.Header.Get(AdminKeyHeader), salt)
		switch {
		case errors.Is(err, auth.ErrMissingAdminKey):
			ErrorResponse(w, http.StatusUnauthorized, AdminKeyHeader+" header required")
			return
		case err != nil:
			ErrorResponse(w, http.StatusForbidden, "Invalid admin key")
			return
		}
		next(w, r)
	}
}

// WithVoter attaches the voter named by X-Voter-Token to the request context.
// Requests without the header pass through anonymously; unknown tokens are
// rejected.
func WithVoter(voters VoterAuthenticator, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(VoterTokenHeader)
		if token == "" {
			next(w, r)
			return
		}

		voter, err := voters.Authenticate(r.Context(), token)
		if errors.Is(err, polls.ErrVoterNotFound) {
			ErrorResponse(w, http.StatusUnauthorized, "Unknown voter token")
			return
		}
		if err != nil {
			zap.S().Errorw("failed to authenticate voter", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Failed to authenticate voter")
			return
		}

		next(w, r.WithContext(WithVoterContext(r.Context(), voter)))
	}
}

// RequireVoter is WithVoter for endpoints that make no sense anonymously
func RequireVoter(voters VoterAuthenticator, next http.HandlerFunc) http.HandlerFunc {
	return WithVoter(voters, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := VoterFromContext(r.Context()); !ok {
			ErrorResponse(w, http.StatusUnauthorized, VoterTokenHeader+" header required")
			return
		}
		next(w, r)
	})
}

// WithVoterContext returns a copy of ctx carrying voter
func WithVoterContext(ctx context.Context, voter polls.Voter) context.Context {
	return context.WithValue(ctx, voterKey{}, voter)
}

// VoterFromContext returns the authenticated voter, if any
func VoterFromContext(ctx context.Context) (polls.Voter, bool) {
	voter, ok := ctx.Value(voterKey{}).(polls.Voter)
	return voter, ok
}
