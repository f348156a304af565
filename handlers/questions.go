// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/polls"
)

// ListingPath is where closed polls send voters back to.
const ListingPath = "/questions"

type QuestionHandler struct {
	svc    *polls.Service
	cfg    cliparse.Config
	logger *zap.SugaredLogger
}

func NewQuestionHandler(svc *polls.Service, cfg cliparse.Config, logger *zap.SugaredLogger) *QuestionHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &QuestionHandler{svc: svc, cfg: cfg, logger: logger}
}

func resultsPath(questionID string) string {
	return "/questions/" + questionID + "/results"
}

// List handles GET /questions
// Returns published questions, newest first
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.ListPublished(r.Context())
	if err != nil {
		h.logger.Errorw("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	now := h.svc.Now()
	summaries := make([]models.QuestionSummary, 0, len(questions))
	for _, q := range questions {
		summaries = append(summaries, models.QuestionSummary{
			Question:             q,
			Status:               q.Status(now),
			WasPublishedRecently: q.WasPublishedRecently(now),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionListResponse{Questions: summaries})
}

// Detail handles GET /questions/{id}
// Returns the question and its choices while voting is open
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	qc, err := h.svc.GetQuestion(r.Context(), id)
	switch {
	case errors.Is(err, polls.ErrQuestionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	case errors.Is(err, polls.ErrVotingClosed):
		middleware.RedirectResponse(w, ListingPath, models.MessagePollEnded)
		return
	case err != nil:
		h.logger.Errorw("failed to load question", "question_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionDetailResponse{
		Question: qc.Question,
		Choices:  qc.Choices,
		Status:   qc.Question.Status(h.svc.Now()),
	})
}

// Vote handles POST /questions/{id}/vote
// Accepts {"choice": "<id>"} or a form field named choice
func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	choiceID, err := readChoice(w, r)
	if err != nil {
		middleware.BodyErrorResponse(w, err, "Invalid request body")
		return
	}

	var voterID string
	if voter, ok := middleware.VoterFromContext(r.Context()); ok {
		voterID = voter.ID
	}

	vote, err := h.svc.CastVote(r.Context(), polls.Ballot{
		QuestionID: id,
		ChoiceID:   choiceID,
		Voter:      voterID,
		IPHash:     auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt),
	})
	switch {
	case errors.Is(err, polls.ErrQuestionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	case errors.Is(err, polls.ErrVotingClosed):
		middleware.RedirectResponse(w, ListingPath, models.MessagePollEnded)
		return
	case errors.Is(err, polls.ErrNoChoiceSelected):
		h.reprompt(w, r, id)
		return
	case errors.Is(err, polls.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, models.MessageAlreadyVoted)
		return
	case err != nil:
		h.logger.Errorw("failed to cast vote", "question_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	location := resultsPath(id)
	w.Header().Set("Location", location)
	middleware.JSONResponse(w, http.StatusSeeOther, models.VoteResponse{
		VoteID:     vote.ID,
		Message:    models.MessageVoted,
		ResultsURL: location,
	})
}

// reprompt answers a vote with no usable choice by sending the form back.
func (h *QuestionHandler) reprompt(w http.ResponseWriter, r *http.Request, id string) {
	resp := models.VoteErrorResponse{
		Error:   http.StatusText(http.StatusUnprocessableEntity),
		Message: models.MessageNoChoice,
	}
	if qc, err := h.svc.GetQuestion(r.Context(), id); err == nil {
		resp.Question = &qc
	} else {
		h.logger.Warnw("failed to reload question for re-prompt", "question_id", id, "error", err)
	}
	middleware.JSONResponse(w, http.StatusUnprocessableEntity, resp)
}

// readChoice extracts the selected choice id from a JSON, urlencoded or
// multipart body. An empty body is not an error; it is a vote with nothing
// selected.
func readChoice(w http.ResponseWriter, r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req models.VoteRequest
		err := middleware.ParseJSONBody(w, r, &req)
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		if err != nil {
			return "", err
		}
		return req.Choice, nil
	}

	middleware.LimitBody(w, r)
	err := r.ParseMultipartForm(middleware.MaxBodyBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		return "", err
	}
	return r.PostFormValue("choice"), nil
}

// Results handles GET /questions/{id}/results
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	results, err := h.svc.Results(r.Context(), id)
	if errors.Is(err, polls.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		h.logger.Errorw("failed to load results", "question_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
