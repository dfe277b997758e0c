package api

import (
	"net/http"
	"strconv"

	"courier_oms/internal/auth"
	"courier_oms/internal/model"
	"courier_oms/internal/service"
	"courier_oms/internal/validator"

	"github.com/go-chi/chi/v5"
)

// ListOrders - список заказов с фильтрами status, agentId, search и пагинацией page/limit.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := positiveInt(q.Get("page"), 1, "page")
	if err != nil {
		writeError(w, err, orderRes, "Failed to fetch orders")
		return
	}
	limit, err := positiveInt(q.Get("limit"), model.DefaultOrderLimit, "limit")
	if err != nil {
		writeError(w, err, orderRes, "Failed to fetch orders")
		return
	}

	filter := model.OrderFilter{
		Status:  q.Get("status"),
		AgentID: q.Get("agentId"),
		Search:  q.Get("search"),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	list, err := h.svc.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, err, orderRes, "Failed to fetch orders")
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

func positiveInt(raw string, def int, field string) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, validator.NewError(field, "ожидается целое число больше нуля")
	}
	return n, nil
}

// GetOrder возвращает заказ с агентом и историей.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, orderRes, "Failed to fetch order")
		return
	}
	respondWithJSON(w, http.StatusOK, order)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var draft model.OrderDraft
	if err := decodeJSON(r, &draft); err != nil {
		writeError(w, err, orderRes, "Failed to create order")
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), &draft, service.SourceAPI)
	if err != nil {
		writeError(w, err, orderRes, "Failed to create order")
		return
	}
	respondWithJSON(w, http.StatusCreated, order)
}

// UpdateOrder применяет частичное обновление от имени текущего пользователя.
func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var patch model.OrderPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err, orderRes, "Failed to update order")
		return
	}

	order, err := h.svc.UpdateOrder(r.Context(), chi.URLParam(r, "id"), &patch, auth.Actor(r.Context()))
	if err != nil {
		writeError(w, err, orderRes, "Failed to update order")
		return
	}
	respondWithJSON(w, http.StatusOK, order)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, orderRes, "Failed to delete order")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddTracking(w http.ResponseWriter, r *http.Request) {
	var in model.TrackingInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err, trackingRes, "Failed to add order tracking")
		return
	}

	event, err := h.svc.AddTracking(r.Context(), chi.URLParam(r, "id"), &in, auth.Actor(r.Context()))
	if err != nil {
		writeError(w, err, trackingRes, "Failed to add order tracking")
		return
	}
	respondWithJSON(w, http.StatusCreated, event)
}

// GetTracking - публичная история заказа по id.
func (h *Handler) GetTracking(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.GetTracking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, trackingRes, "Failed to fetch order tracking")
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

// TrackOrder - публичный трекинг по номеру заказа.
func (h *Handler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		respondWithError(w, http.StatusBadRequest, "Order number is required")
		return
	}

	tracking, err := h.svc.TrackOrder(r.Context(), orderNumber)
	if err != nil {
		writeError(w, err, orderRes, "Failed to track order")
		return
	}
	respondWithJSON(w, http.StatusOK, tracking)
}
