package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/athena-hr/pto-backend-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus"
)

type RouterDeps struct {
	Env string

	Employee  EmployeeHandler
	PTO       PTOHandler
	Coverage  CoverageHandler
	Leave     LeaveHandler
	Analytics AnalyticsHandler

	Metrics  *metrics.Manager
	Gatherer prometheus.Gatherer
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pto-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(deps.Metrics.Middleware)

	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Post("/", deps.Employee.Create)
			r.Get("/", deps.Employee.List)
			r.Get("/{id}", deps.Employee.Get)

			r.Post("/{id}/balance", deps.Leave.InitializeBalance)
			r.Get("/{id}/balance", deps.Leave.GetBalance)
			r.Post("/{id}/usage", deps.Leave.RecordUsage)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", deps.PTO.CreateRequest)
			r.Get("/", deps.PTO.ListRequests)
			r.Get("/{id}", deps.PTO.GetRequest)
			r.Patch("/{id}/status", deps.PTO.UpdateStatus)
		})

		r.Route("/coverage", func(r chi.Router) {
			r.Get("/", deps.Coverage.GetReport)
			r.Post("/rules", deps.Coverage.UpsertRule)
		})

		r.Route("/policies", func(r chi.Router) {
			r.Post("/", deps.Leave.UpsertPolicy)
			r.Get("/", deps.Leave.ListPolicies)
		})

		r.Get("/balances", deps.Leave.ListBalances)
		r.Get("/analytics", deps.Analytics.GetSummary)
	})

	return r
}
