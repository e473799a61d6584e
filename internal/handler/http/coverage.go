package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/athena-hr/pto-backend-go/internal/domain/coverage"
	"github.com/athena-hr/pto-backend-go/internal/handler/http/response"
	"github.com/athena-hr/pto-backend-go/internal/pkg/validator"
	coveragesvc "github.com/athena-hr/pto-backend-go/internal/service/coverage"
)

type CoverageHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	UpsertRule(w http.ResponseWriter, r *http.Request)
}

type CoverageHandlerImpl struct {
	coverageService *coveragesvc.Service
}

func NewCoverageHandler(coverageService *coveragesvc.Service) CoverageHandler {
	return &CoverageHandlerImpl{coverageService: coverageService}
}

func (h *CoverageHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")
	if team == "" {
		response.BadRequest(w, "Query parameter team is required", nil)
		return
	}

	from, ok := validator.IsValidDate(r.URL.Query().Get("from"))
	if !ok {
		response.BadRequest(w, "Query parameter from must be formatted YYYY-MM-DD", nil)
		return
	}
	to, ok := validator.IsValidDate(r.URL.Query().Get("to"))
	if !ok {
		response.BadRequest(w, "Query parameter to must be formatted YYYY-MM-DD", nil)
		return
	}
	if from.After(to) {
		response.BadRequest(w, "Query parameter to must not be before from", nil)
		return
	}

	report, err := h.coverageService.Report(r.Context(), team, from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

func (h *CoverageHandlerImpl) UpsertRule(w http.ResponseWriter, r *http.Request) {
	var req coverage.UpsertRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert coverage rule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rule, err := h.coverageService.UpsertRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Coverage rule saved successfully", rule)
}
