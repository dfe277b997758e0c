package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"courier_oms/internal/auth"
	"courier_oms/internal/database"
	"courier_oms/internal/metrics"
	"courier_oms/internal/model"
	"courier_oms/internal/rate"
	"courier_oms/internal/validator"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

//go:generate mockgen -source=handler.go -destination=./mocks/service_mock.go -package=mocks Service

// Service - операции, которые обслуживает HTTP-слой.
type Service interface {
	CreateOrder(ctx context.Context, draft *model.OrderDraft, source string) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, patch *model.OrderPatch, actor string) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ListOrders(ctx context.Context, filter model.OrderFilter) (*model.OrderList, error)
	GetOrder(ctx context.Context, id string) (*model.OrderWithDetails, error)
	TrackOrder(ctx context.Context, orderNumber string) (*model.PublicTracking, error)
	AddTracking(ctx context.Context, orderID string, in *model.TrackingInput, actor string) (*model.TrackingEvent, error)
	GetTracking(ctx context.Context, orderID string) ([]model.TrackingEvent, error)
	Stats(ctx context.Context) (*model.OrderStats, error)
	Quote(req *model.RateRequest) (rate.Quote, error)

	ListCustomers(ctx context.Context, query string) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, in *model.CustomerInput) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, patch *model.CustomerPatch) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	ListAgents(ctx context.Context, activeOnly bool) ([]model.DeliveryAgent, error)
	GetAgent(ctx context.Context, id string) (*model.DeliveryAgent, error)
	CreateAgent(ctx context.Context, in *model.AgentInput) (*model.DeliveryAgent, error)
	UpdateAgent(ctx context.Context, id string, patch *model.AgentPatch) (*model.DeliveryAgent, error)
	DeleteAgent(ctx context.Context, id string) error
}

// Handler обрабатывает HTTP-запросы к заказам, клиентам и агентам.
type Handler struct {
	svc Service // Используем интерфейс
}

// NewHandler создает новый экземпляр Handler.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Stats отдает сводку для дашборда.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		writeError(w, err, orderRes, "Failed to fetch dashboard stats")
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// CalculateRate - публичный калькулятор тарифа.
func (h *Handler) CalculateRate(w http.ResponseWriter, r *http.Request) {
	var req model.RateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, rateRes, "Failed to calculate rate")
		return
	}

	quote, err := h.svc.Quote(&req)
	if err != nil {
		writeError(w, err, rateRes, "Failed to calculate rate")
		return
	}
	respondWithJSON(w, http.StatusOK, quote)
}

// CurrentUser возвращает пользователя из токена.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.FromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"id": p.Subject, "name": p.Name})
}

// resource - тексты ответов для сущности.
type resource struct {
	invalid  string
	notFound string
}

var (
	orderRes    = resource{invalid: "Invalid order data", notFound: "Order not found"}
	trackingRes = resource{invalid: "Invalid tracking data", notFound: "Order not found"}
	customerRes = resource{invalid: "Invalid customer data", notFound: "Customer not found"}
	agentRes    = resource{invalid: "Invalid agent data", notFound: "Delivery agent not found"}
	rateRes     = resource{invalid: "Invalid rate request", notFound: "Not found"}
)

type errorResponse struct {
	Message string                 `json:"message"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
}

// writeError сопоставляет ошибку слоя сервиса с HTTP-статусом.
// Детали ошибок хранилища в ответ не попадают.
func writeError(w http.ResponseWriter, err error, res resource, failed string) {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Message: res.invalid, Errors: verr.Fields})
	case errors.Is(err, database.ErrNotFound):
		respondWithError(w, http.StatusNotFound, res.notFound)
	case errors.Is(err, database.ErrInvalidReference):
		respondWithJSON(w, http.StatusBadRequest, errorResponse{
			Message: res.invalid,
			Errors:  []validator.FieldError{{Field: "assignedAgentId", Message: "агент не найден"}},
		})
	case errors.Is(err, database.ErrConflict):
		respondWithError(w, http.StatusConflict, "Resource already exists")
	default:
		log.Printf("%s: %v", failed, err)
		respondWithError(w, http.StatusInternalServerError, failed)
	}
}

// decodeJSON читает тело запроса. Ошибки разбора возвращаются как ValidationError.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return validator.NewError(typeErr.Field, "неверный тип значения")
		}
		return validator.NewError("body", "некорректный JSON")
	}
	return nil
}

// respondWithJSON вспомогательная функция для отправки JSON-ответов.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Ошибка сериализации ответа: %v", err)
		code = http.StatusInternalServerError
		response = []byte(`{"message":"Internal server error"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, errorResponse{Message: message})
}

// instrumented считает запросы и их длительность по имени хэндлера.
func instrumented(handlerName string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
		defer timer.ObserveDuration()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.HttpRequestsTotal.WithLabelValues(handlerName, strconv.Itoa(status)).Inc()
	}
}
