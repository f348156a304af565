// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/polls"
)

type VoterHandler struct {
	svc    *polls.Service
	logger *zap.SugaredLogger
}

func NewVoterHandler(svc *polls.Service, logger *zap.SugaredLogger) *VoterHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &VoterHandler{svc: svc, logger: logger}
}

// Register handles POST /voters/register
// Issues a new voter token; clients send it back as X-Voter-Token
func (h *VoterHandler) Register(w http.ResponseWriter, r *http.Request) {
	token, err := auth.GenerateVoterToken()
	if err != nil {
		h.logger.Errorw("failed to generate voter token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register voter")
		return
	}

	voter, err := h.svc.RegisterVoter(r.Context(), token)
	if err != nil {
		h.logger.Errorw("failed to register voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register voter")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		VoterID:    voter.ID,
		VoterToken: token,
	})
}

// GetMe handles GET /voters/me
// Must sit behind middleware.RequireVoter
func (h *VoterHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	voter, ok := middleware.VoterFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, middleware.VoterTokenHeader+" header required")
		return
	}

	votes, err := h.svc.VoterHistory(r.Context(), voter.ID)
	if err != nil {
		h.logger.Errorw("failed to count votes", "voter_id", voter.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterResponse{
		Voter:     voter,
		VoteCount: len(votes),
	})
}

// GetMyVotes handles GET /voters/me/votes
// Returns the caller's ledger entries, newest first
func (h *VoterHandler) GetMyVotes(w http.ResponseWriter, r *http.Request) {
	voter, ok := middleware.VoterFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, middleware.VoterTokenHeader+" header required")
		return
	}

	votes, err := h.svc.VoterHistory(r.Context(), voter.ID)
	if err != nil {
		h.logger.Errorw("failed to list votes", "voter_id", voter.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if votes == nil {
		votes = []polls.Vote{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoterVotesResponse{Votes: votes})
}
