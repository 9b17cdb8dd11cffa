// Package handler implements the HTTP layer of the Bhandara API: routing,
// query-parameter validation, and request/response serialization. Range
// checks happen here so the service layer only ever sees well-formed input.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bhandara-web/backend/internal/domain"
)

// CampServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type CampServicer interface {
	Search(ctx context.Context, f domain.SearchFilter) ([]domain.Camp, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Camp, error)
	Create(ctx context.Context, camp domain.Camp) (domain.Camp, error)
}

// Server holds the handler dependencies. Methods live in domain-specific
// files (camp.go, health.go) but all operate on this struct.
type Server struct {
	camps CampServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(camps CampServicer) *Server {
	return &Server{camps: camps}
}

// RegisterRoutes attaches all API routes to the given router.
// The path layout mirrors the public API: /api/camps for search and create,
// /api/camps/{campID} for detail, /api/health for liveness.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/api/health", s.GetHealth)
	r.Get("/api/camps", s.ListCamps)
	r.Post("/api/camps", s.CreateCamp)
	r.Get("/api/camps/{campID}", s.GetCamp)
}
