package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/haoyu/ai-notebook/internal/api/handlers"
	"github.com/haoyu/ai-notebook/internal/api/middleware"
	"github.com/haoyu/ai-notebook/internal/config"
	"github.com/haoyu/ai-notebook/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	noteHandler := handlers.NewNoteHandler(services.Note)
	todoHandler := handlers.NewTodoHandler(services.Todo)
	chatHandler := handlers.NewChatHandler(services.Chat)
	aiHandler := handlers.NewAIHandler(services.AI)

	// Public auth routes
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected account routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))
		r.Get("/me", authHandler.Me)
		r.Put("/me/preferences", authHandler.UpdatePreferences)
		r.Delete("/me", authHandler.DeleteAccount)
	})

	// Protected resource routes
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth))

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", noteHandler.List)
			r.Post("/", noteHandler.Create)
			r.Get("/{id}", noteHandler.Get)
			r.Put("/{id}", noteHandler.Update)
			r.Delete("/{id}", noteHandler.Delete)
		})

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", todoHandler.List)
			r.Post("/", todoHandler.Create)
			r.Put("/{id}", todoHandler.Update)
		})

		r.Post("/chat", chatHandler.Send)
		r.Route("/chat/history", func(r chi.Router) {
			r.Get("/", chatHandler.History)
			r.Delete("/", chatHandler.ClearHistory)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/polish", aiHandler.Polish)
			r.Post("/continue", aiHandler.Continue)
			r.Post("/insight", aiHandler.Insight)
		})
	})

	return r
}
