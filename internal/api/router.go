package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ecakir/webhook-processor/internal/api/handlers"
	"github.com/ecakir/webhook-processor/internal/config"
	"github.com/ecakir/webhook-processor/internal/metrics"
	"github.com/ecakir/webhook-processor/internal/middleware"
	"github.com/ecakir/webhook-processor/internal/services"
)

func NewRouter(cfg config.Config, ts *services.TransactionService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", metrics.Handler())

	th := handlers.NewTransactionHandler(ts)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/webhooks/transactions", th.Receive)
		r.Get("/transactions/{transactionID}", th.Status)
	})

	return r
}
