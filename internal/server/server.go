// Package server exposes the advisory capabilities over HTTP. Routing is
// chi with permissive CORS for browser clients; every request gets an ID and
// a structured access log line.
package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/agrisense/agri-advisor/internal/advisor"
)

// Service is the capability surface the HTTP layer fronts.
type Service interface {
	AnalyzeMarket(ctx context.Context, cropName, region string) (*advisor.MarketAnalysis, error)
	AdviseIrrigation(ctx context.Context, cropName, region string) (*advisor.WeatherAdvice, error)
	MatchSchemes(ctx context.Context, req advisor.SchemeRequest) *advisor.SchemeAdvice
	PredictProfit(ctx context.Context, req advisor.ProfitRequest) *advisor.ProfitPrediction
	DiagnoseCrop(ctx context.Context, image []byte, mimeType string) (*advisor.CropDiagnosis, error)
}

// Server routes HTTP requests to the advisory service.
type Server struct {
	svc    Service
	router chi.Router
}

// New builds the router with its middleware chain and routes.
func New(svc Service) *Server {
	s := &Server{svc: svc}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(accessLog)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/crop-doctor", s.handleCropDoctor)
	r.Post("/smart-market", s.handleSmartMarket)
	r.Post("/weather-irrigation", s.handleWeatherIrrigation)
	r.Post("/govt-schemes", s.handleGovtSchemes)
	r.Post("/crop-profit", s.handleCropProfit)

	s.router = r
	return s
}

// Handler returns the root handler for mounting into an http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}
