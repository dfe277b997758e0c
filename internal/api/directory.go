package api

import (
	"net/http"

	"courier_oms/internal/model"

	"github.com/go-chi/chi/v5"
)

// ListCustomers - все клиенты или поиск по ?search=.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err, customerRes, "Failed to fetch customers")
		return
	}
	respondWithJSON(w, http.StatusOK, customers)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.svc.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, customerRes, "Failed to fetch customer")
		return
	}
	respondWithJSON(w, http.StatusOK, customer)
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var in model.CustomerInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err, customerRes, "Failed to create customer")
		return
	}

	customer, err := h.svc.CreateCustomer(r.Context(), &in)
	if err != nil {
		writeError(w, err, customerRes, "Failed to create customer")
		return
	}
	respondWithJSON(w, http.StatusCreated, customer)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var patch model.CustomerPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err, customerRes, "Failed to update customer")
		return
	}

	customer, err := h.svc.UpdateCustomer(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeError(w, err, customerRes, "Failed to update customer")
		return
	}
	respondWithJSON(w, http.StatusOK, customer)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, customerRes, "Failed to delete customer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAgents - все агенты или только активные при ?active=true.
func (h *Handler) ListAgents(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	agents, err := h.svc.ListAgents(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err, agentRes, "Failed to fetch delivery agents")
		return
	}
	respondWithJSON(w, http.StatusOK, agents)
}

func (h *Handler) GetAgent(w http.ResponseWriter, r *http.Request) {
	agent, err := h.svc.GetAgent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err, agentRes, "Failed to fetch delivery agent")
		return
	}
	respondWithJSON(w, http.StatusOK, agent)
}

func (h *Handler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var in model.AgentInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err, agentRes, "Failed to create delivery agent")
		return
	}

	agent, err := h.svc.CreateAgent(r.Context(), &in)
	if err != nil {
		writeError(w, err, agentRes, "Failed to create delivery agent")
		return
	}
	respondWithJSON(w, http.StatusCreated, agent)
}

func (h *Handler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	var patch model.AgentPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, err, agentRes, "Failed to update delivery agent")
		return
	}

	agent, err := h.svc.UpdateAgent(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		writeError(w, err, agentRes, "Failed to update delivery agent")
		return
	}
	respondWithJSON(w, http.StatusOK, agent)
}

func (h *Handler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAgent(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err, agentRes, "Failed to delete delivery agent")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
