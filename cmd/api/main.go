package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/athena-hr/pto-backend-go/internal/config"
	appHTTP "github.com/athena-hr/pto-backend-go/internal/handler/http"
	"github.com/athena-hr/pto-backend-go/internal/pkg/database"
	"github.com/athena-hr/pto-backend-go/internal/pkg/metrics"
	"github.com/athena-hr/pto-backend-go/internal/repository/postgresql"
	analyticsService "github.com/athena-hr/pto-backend-go/internal/service/analytics"
	coverageService "github.com/athena-hr/pto-backend-go/internal/service/coverage"
	employeeService "github.com/athena-hr/pto-backend-go/internal/service/employee"
	leaveService "github.com/athena-hr/pto-backend-go/internal/service/leave"
	ptoService "github.com/athena-hr/pto-backend-go/internal/service/pto"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	policyRepo := postgresql.NewLeavePolicyRepository(db)
	balanceRepo := postgresql.NewLeaveBalanceRepository(db)
	requestRepo := postgresql.NewPTORequestRepository(db)
	coverageRuleRepo := postgresql.NewCoverageRuleRepository(db)

	resolver := leaveService.NewPolicyResolver(policyRepo)
	ledgerSvc := leaveService.NewLedgerService(balanceRepo, employeeRepo, resolver, m)
	employeeSvc := employeeService.NewService(employeeRepo)
	coverageSvc := coverageService.NewService(coverageRuleRepo, employeeRepo, requestRepo)
	ptoSvc := ptoService.NewService(requestRepo, employeeRepo, coverageSvc, ledgerSvc, cfg.App.AdmissionRetries, m)
	analyticsSvc := analyticsService.NewService(balanceRepo, employeeRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Env:       cfg.App.Env,
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		PTO:       appHTTP.NewPTOHandler(ptoSvc),
		Coverage:  appHTTP.NewCoverageHandler(coverageSvc),
		Leave:     appHTTP.NewLeaveHandler(ledgerSvc),
		Analytics: appHTTP.NewAnalyticsHandler(analyticsSvc),
		Metrics:   m,
		Gatherer:  registry,
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
