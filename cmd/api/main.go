package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/vilochanaudantha15/hris-backend/internal/config"
	appHTTP "github.com/vilochanaudantha15/hris-backend/internal/handler/http"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/database"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/jwt"
	"github.com/vilochanaudantha15/hris-backend/internal/repository/postgresql"
	attendanceService "github.com/vilochanaudantha15/hris-backend/internal/service/attendance"
	serviceAuth "github.com/vilochanaudantha15/hris-backend/internal/service/auth"
	"github.com/vilochanaudantha15/hris-backend/internal/service/calendar"
	deductionService "github.com/vilochanaudantha15/hris-backend/internal/service/deduction"
	employeeService "github.com/vilochanaudantha15/hris-backend/internal/service/employee"
	holidayService "github.com/vilochanaudantha15/hris-backend/internal/service/holiday"
	leaveService "github.com/vilochanaudantha15/hris-backend/internal/service/leave"
	payrollService "github.com/vilochanaudantha15/hris-backend/internal/service/payroll"
	rosterService "github.com/vilochanaudantha15/hris-backend/internal/service/roster"
	summaryService "github.com/vilochanaudantha15/hris-backend/internal/service/summary"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level, _ := cfg.LogLevel()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-backend"),
		slog.String("version", version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	txManager := postgresql.NewTxManager(db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	plantRepo := postgresql.NewPlantRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	billRepo := postgresql.NewTelephoneBillRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)
	credentialRepo := postgresql.NewCredentialRepository(db)

	resolver := calendar.NewResolver(holidayRepo)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := serviceAuth.NewAuthService(credentialRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, plantRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, plantRepo, resolver)
	summarySvc := summaryService.NewSummaryService(
		txManager,
		summaryRepo,
		attendanceRepo,
		leaveRepo,
		employeeRepo,
		plantRepo,
		resolver,
		cfg.Payroll.ClampNegativeNoPay,
	)
	payrollSvc := payrollService.NewPayrollService(
		txManager,
		salaryRepo,
		loanRepo,
		billRepo,
		employeeRepo,
		payrollService.EngineOptions{ClampNegativeNetPay: cfg.Payroll.ClampNegativeNetPay},
	)
	deductionSvc := deductionService.NewDeductionService(loanRepo, billRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRepo, employeeRepo)
	rosterSvc := rosterService.NewRosterService(txManager, rosterRepo, employeeRepo, plantRepo)

	router := appHTTP.NewRouter(
		logger,
		cfg.App.AllowedOrigins,
		JWTService,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(authSvc),
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, cfg.Upload.MaxBytes),
			Summary:    appHTTP.NewSummaryHandler(summarySvc),
			Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
			Deduction:  appHTTP.NewDeductionHandler(deductionSvc, cfg.Upload.MaxBytes),
			Leave:      appHTTP.NewLeaveHandler(leaveSvc),
			Roster:     appHTTP.NewRosterHandler(rosterSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server running", "addr", "http://localhost"+server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
