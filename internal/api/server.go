package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"courier_oms/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server представляет HTTP-сервер.
type Server struct {
	port      string
	router    *chi.Mux
	svc       Service
	jwtSecret string
	http      *http.Server
}

// NewServer создает и настраивает новый экземпляр сервера.
func NewServer(port string, svc Service, jwtSecret string) *Server {
	server := &Server{
		port:      port,
		svc:       svc,
		jwtSecret: jwtSecret,
	}
	server.router = server.setupRouter()
	return server
}

// Run запускает HTTP-сервер и блокируется до его остановки.
func (s *Server) Run() error {
	address := fmt.Sprintf(":%s", s.port)
	s.http = &http.Server{
		Addr:    address,
		Handler: otelhttp.NewHandler(s.router, "http-server"),
	}
	log.Printf("HTTP-сервер запущен на http://localhost%s", address)

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown дожидается завершения активных запросов.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router отдает настроенный роутер (используется в тестах).
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter настраивает маршрутизацию.
func (s *Server) setupRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	h := NewHandler(s.svc)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		// Публичные маршруты
		r.Get("/orders/{id}/tracking", instrumented("GetTracking", h.GetTracking))
		r.Get("/track/{orderNumber}", instrumented("TrackOrder", h.TrackOrder))
		r.Post("/calculate-rate", instrumented("CalculateRate", h.CalculateRate))

		// Все остальное - только с токеном
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(s.jwtSecret))

			r.Get("/auth/user", instrumented("CurrentUser", h.CurrentUser))
			r.Get("/dashboard/stats", instrumented("Stats", h.Stats))

			r.Get("/customers", instrumented("ListCustomers", h.ListCustomers))
			r.Post("/customers", instrumented("CreateCustomer", h.CreateCustomer))
			r.Get("/customers/{id}", instrumented("GetCustomer", h.GetCustomer))
			r.Put("/customers/{id}", instrumented("UpdateCustomer", h.UpdateCustomer))
			r.Delete("/customers/{id}", instrumented("DeleteCustomer", h.DeleteCustomer))

			r.Get("/agents", instrumented("ListAgents", h.ListAgents))
			r.Post("/agents", instrumented("CreateAgent", h.CreateAgent))
			r.Get("/agents/{id}", instrumented("GetAgent", h.GetAgent))
			r.Put("/agents/{id}", instrumented("UpdateAgent", h.UpdateAgent))
			r.Delete("/agents/{id}", instrumented("DeleteAgent", h.DeleteAgent))

			r.Get("/orders", instrumented("ListOrders", h.ListOrders))
			r.Post("/orders", instrumented("CreateOrder", h.CreateOrder))
			r.Get("/orders/{id}", instrumented("GetOrder", h.GetOrder))
			r.Put("/orders/{id}", instrumented("UpdateOrder", h.UpdateOrder))
			r.Delete("/orders/{id}", instrumented("DeleteOrder", h.DeleteOrder))
			r.Post("/orders/{id}/tracking", instrumented("AddTracking", h.AddTracking))
		})
	})

	return router
}
