package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/vilochanaudantha15/hris-backend/internal/handler/http/middleware"
	"github.com/vilochanaudantha15/hris-backend/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Holiday    HolidayHandler
	Attendance AttendanceHandler
	Summary    SummaryHandler
	Payroll    PayrollHandler
	Deduction  DeductionHandler
	Leave      LeaveHandler
	Roster     RosterHandler
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/plants", func(r chi.Router) {
				r.Get("/", h.Employee.ListPlants)
				r.Get("/{plantID}/executives", h.Employee.ListExecutives)
				r.Get("/{plantID}/non-executives", h.Employee.ListNonExecutives)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)
				r.Post("/", h.Holiday.Create)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Create)
				r.Post("/upload", h.Attendance.Upload)
				r.Get("/summary", h.Attendance.Summary)
			})

			r.Route("/executive-attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.CreateExecutive)
				r.Post("/upload", h.Attendance.UploadExecutive)
				r.Get("/summary", h.Attendance.ExecutiveSummary)
			})

			r.Route("/labourer-attendance", func(r chi.Router) {
				r.Post("/bulk", h.Attendance.CreateBulk)
				r.Get("/roster", h.Roster.Estimate)
				r.Get("/summary", h.Attendance.Summary)
			})

			r.Route("/executive-summary", func(r chi.Router) {
				r.Get("/", h.Summary.ExecutiveSummary)
				r.Post("/approve", h.Summary.SaveExecutiveSummary)
			})

			r.Route("/non-executive-summary", func(r chi.Router) {
				r.Get("/", h.Summary.NonExecutiveSummary)
				r.Post("/approve", h.Summary.SaveNonExecutiveSummary)
			})

			r.Route("/final-attendance", func(r chi.Router) {
				r.Get("/executive", h.Summary.ListFinalExecutive)
				r.Post("/executive/approve", h.Summary.ApproveFinalExecutive)
				r.Get("/non-executive", h.Summary.ListFinalNonExecutive)
				r.Post("/non-executive/approve", h.Summary.ApproveFinalNonExecutive)
			})

			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Get("/reconciliation", h.Summary.Reconcile)
				r.Get("/leaves", h.Leave.ListByEmployee)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/", h.Payroll.Compute)
				r.Post("/approve", h.Payroll.Approve)
				r.Get("/approved", h.Payroll.ListApproved)
				r.Get("/employees/{employeeID}/loan", h.Payroll.EmployeeLoan)
			})

			r.Route("/loans", func(r chi.Router) {
				r.Post("/upload", h.Deduction.UploadLoans)
				r.Get("/", h.Deduction.ListLoans)
			})

			r.Route("/telephone-bills", func(r chi.Router) {
				r.Post("/upload", h.Deduction.UploadTelephoneBills)
				r.Get("/", h.Deduction.ListTelephoneBills)
			})

			r.Post("/leaves", h.Leave.Create)

			r.Route("/rosters", func(r chi.Router) {
				r.Get("/", h.Roster.List)
				r.Post("/", h.Roster.Upsert)
				r.Get("/plants", h.Roster.ListPlants)
				r.Get("/employees", h.Roster.ListStaff)
				r.Get("/laborer-hours", h.Roster.LaborerHours)
			})
		})
	})
	return r
}
