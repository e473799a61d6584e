package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/athena-hr/pto-backend-go/internal/domain/pto"
	"github.com/athena-hr/pto-backend-go/internal/handler/http/response"
	ptosvc "github.com/athena-hr/pto-backend-go/internal/service/pto"
	"github.com/go-chi/chi/v5"
)

type PTOHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type PTOHandlerImpl struct {
	ptoService *ptosvc.Service
}

func NewPTOHandler(ptoService *ptosvc.Service) PTOHandler {
	return &PTOHandlerImpl{ptoService: ptoService}
}

func (h *PTOHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req pto.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create PTO request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ptoService.CreateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Analysis.Message, result)
}

func (h *PTOHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.ptoService.ListRequests(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *PTOHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	req, err := h.ptoService.GetRequest(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, req)
}

func (h *PTOHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req pto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update PTO status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.ptoService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request status updated successfully", updated)
}
