// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/pollbooth/auth"
	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/models"
	"github.com/danielhkuo/pollbooth/polls"
)

// AdminHandler serves question management. Every route except Create sits
// behind middleware.RequireAdminKey.
type AdminHandler struct {
	svc    *polls.Service
	cfg    cliparse.Config
	logger *zap.SugaredLogger
}

func NewAdminHandler(svc *polls.Service, cfg cliparse.Config, logger *zap.SugaredLogger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AdminHandler{svc: svc, cfg: cfg, logger: logger}
}

// writeAdminError maps service errors to status codes
func (h *AdminHandler) writeAdminError(w http.ResponseWriter, op, id string, err error) {
	switch {
	case errors.Is(err, polls.ErrQuestionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
	case errors.Is(err, polls.ErrChoiceNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Choice not found")
	case errors.Is(err, polls.ErrInvalidQuestion),
		errors.Is(err, polls.ErrInvalidChoice),
		errors.Is(err, polls.ErrInvalidSchedule):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Errorw("failed to "+op, "question_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// Create handles POST /questions
// Returns the question id and its admin key; the key is not shown again
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.BodyErrorResponse(w, err, "Invalid JSON")
		return
	}

	if req.EndDate == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "end_date is required")
		return
	}

	pub := h.svc.Now()
	if req.PubDate != nil {
		pub = *req.PubDate
	}

	qc, err := h.svc.CreateQuestion(r.Context(), polls.NewQuestion{
		Text:    req.Text,
		PubDate: pub,
		EndDate: *req.EndDate,
		Choices: req.Choices,
	})
	if err != nil {
		h.writeAdminError(w, "create question", "", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: qc.Question.ID,
		AdminKey:   auth.GenerateAdminKey(qc.Question.ID, h.cfg.AdminKeySalt),
		Question:   qc.Question,
		Choices:    qc.Choices,
	})
}

// Show handles GET /questions/{id}/admin
// Returns the question with tallies regardless of its schedule
func (h *AdminHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	qc, err := h.svc.Load(r.Context(), id)
	if err != nil {
		h.writeAdminError(w, "load question", id, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionDetailResponse{
		Question: qc.Question,
		Choices:  qc.Choices,
		Status:   qc.Question.Status(h.svc.Now()),
	})
}

// Update handles PATCH /questions/{id}
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.BodyErrorResponse(w, err, "Invalid JSON")
		return
	}

	q, err := h.svc.UpdateQuestion(r.Context(), id, polls.QuestionUpdate{
		Text:    req.Text,
		PubDate: req.PubDate,
		EndDate: req.EndDate,
	})
	if err != nil {
		h.writeAdminError(w, "update question", id, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, q)
}

// Delete handles DELETE /questions/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.writeAdminError(w, "delete question", id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Publish handles POST /questions/{id}/publish
func (h *AdminHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	q, err := h.svc.Publish(r.Context(), id)
	if err != nil {
		h.writeAdminError(w, "publish question", id, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, q)
}

// Close handles POST /questions/{id}/close
func (h *AdminHandler) Close(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	q, err := h.svc.Close(r.Context(), id)
	if err != nil {
		h.writeAdminError(w, "close question", id, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, q)
}

// Reset handles POST /questions/{id}/reset
// Zeroes every tally and clears the question's ledger
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.svc.ResetVotes(r.Context(), id); err != nil {
		h.writeAdminError(w, "reset votes", id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddChoice handles POST /questions/{id}/choices
func (h *AdminHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.BodyErrorResponse(w, err, "Invalid JSON")
		return
	}

	c, err := h.svc.AddChoice(r.Context(), id, req.Text)
	if err != nil {
		h.writeAdminError(w, "add choice", id, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, c)
}

// DeleteChoice handles DELETE /questions/{id}/choices/{choiceID}
func (h *AdminHandler) DeleteChoice(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.svc.DeleteChoice(r.Context(), id, r.PathValue("choiceID")); err != nil {
		h.writeAdminError(w, "delete choice", id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
