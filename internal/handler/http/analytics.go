package http

import (
	"net/http"

	"github.com/athena-hr/pto-backend-go/internal/handler/http/response"
	analyticssvc "github.com/athena-hr/pto-backend-go/internal/service/analytics"
)

type AnalyticsHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService *analyticssvc.Service
}

func NewAnalyticsHandler(analyticsService *analyticssvc.Service) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

func (h *AnalyticsHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		response.BadRequest(w, "Query parameter year must be a positive integer", nil)
		return
	}

	summary, err := h.analyticsService.Summary(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
