package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/athena-hr/pto-backend-go/internal/domain/leave"
	"github.com/athena-hr/pto-backend-go/internal/handler/http/response"
	leavesvc "github.com/athena-hr/pto-backend-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	UpsertPolicy(w http.ResponseWriter, r *http.Request)
	ListPolicies(w http.ResponseWriter, r *http.Request)

	InitializeBalance(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	RecordUsage(w http.ResponseWriter, r *http.Request)
	ListBalances(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	ledgerService *leavesvc.LedgerService
}

func NewLeaveHandler(ledgerService *leavesvc.LedgerService) LeaveHandler {
	return &LeaveHandlerImpl{ledgerService: ledgerService}
}

// yearParam parses the optional ?year query parameter. Zero means the
// caller wants the current year.
func yearParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 0 {
		return 0, false
	}
	return year, true
}

func (h *LeaveHandlerImpl) UpsertPolicy(w http.ResponseWriter, r *http.Request) {
	var req leave.UpsertPolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert policy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	policy, err := h.ledgerService.UpsertPolicy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave policy saved successfully", policy)
}

func (h *LeaveHandlerImpl) ListPolicies(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Query parameter year must be a positive integer", nil)
		return
	}

	policies, err := h.ledgerService.ListPolicies(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policies)
}

func (h *LeaveHandlerImpl) InitializeBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	// An empty body means the current year.
	var req leave.InitializeBalanceRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Initialize balance decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	balance, err := h.ledgerService.InitializeBalance(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave balance initialized successfully", balance)
}

func (h *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Query parameter year must be a positive integer", nil)
		return
	}

	balance, err := h.ledgerService.GetBalance(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

func (h *LeaveHandlerImpl) RecordUsage(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req leave.RecordUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Record usage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	balance, err := h.ledgerService.RecordUsage(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave usage recorded successfully", balance)
}

func (h *LeaveHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Query parameter year must be a positive integer", nil)
		return
	}

	balances, err := h.ledgerService.ListBalances(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}
