// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/pollbooth/cliparse"
	"github.com/danielhkuo/pollbooth/handlers"
	"github.com/danielhkuo/pollbooth/middleware"
	"github.com/danielhkuo/pollbooth/polls"
)

func NewRouter(svc *polls.Service, cfg cliparse.Config, logger *zap.SugaredLogger) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(svc, cfg, logger)
	adminHandler := handlers.NewAdminHandler(svc, cfg, logger)
	voterHandler := handlers.NewVoterHandler(svc, logger)

	logged := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(logger, h)
	}
	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return logged(middleware.RequireAdminKey(cfg.AdminKeySalt, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting (public)
	mux.HandleFunc("GET /questions", logged(questionHandler.List))
	mux.HandleFunc("GET /questions/{id}", logged(questionHandler.Detail))
	mux.HandleFunc("POST /questions/{id}/vote", logged(middleware.WithVoter(svc, questionHandler.Vote)))
	mux.HandleFunc("GET /questions/{id}/results", logged(questionHandler.Results))

	// Question management
	mux.HandleFunc("POST /questions", logged(adminHandler.Create))
	mux.HandleFunc("GET /questions/{id}/admin", admin(adminHandler.Show))
	mux.HandleFunc("PATCH /questions/{id}", admin(adminHandler.Update))
	mux.HandleFunc("DELETE /questions/{id}", admin(adminHandler.Delete))
	mux.HandleFunc("POST /questions/{id}/choices", admin(adminHandler.AddChoice))
	mux.HandleFunc("DELETE /questions/{id}/choices/{choiceID}", admin(adminHandler.DeleteChoice))
	mux.HandleFunc("POST /questions/{id}/publish", admin(adminHandler.Publish))
	mux.HandleFunc("POST /questions/{id}/close", admin(adminHandler.Close))
	mux.HandleFunc("POST /questions/{id}/reset", admin(adminHandler.Reset))

	// Voter identity
	mux.HandleFunc("POST /voters/register", logged(voterHandler.Register))
	mux.HandleFunc("GET /voters/me", logged(middleware.RequireVoter(svc, voterHandler.GetMe)))
	mux.HandleFunc("GET /voters/me/votes", logged(middleware.RequireVoter(svc, voterHandler.GetMyVotes)))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollbooth API v1"))
	})

	return mux
}
