package http

import (
	"log/slog"
	"os"

	"github.com/facetrack-hrm/attendance-backend-go/internal/handler/http/middleware"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env            string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	holidayHandler HolidayHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.Env),
	)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Devices post clock events without a token.
		r.Post("/attendance", attendanceHandler.Mark)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListByDay)
				r.Get("/all", attendanceHandler.ListAll)
				r.Get("/{employeeID}", attendanceHandler.ListByEmployee)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Post("/import", employeeHandler.ImportCSV)
				r.Get("/import/template", employeeHandler.ExportTemplate)
				r.Get("/export", employeeHandler.ExportCSV)

				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Put("/schedule", employeeHandler.UpdateSchedule)
					r.Delete("/", employeeHandler.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)
				r.Post("/", holidayHandler.Create)
				r.Post("/bulk", holidayHandler.BulkCreate)
				r.Get("/check", holidayHandler.IsHoliday)
				r.Get("/range", holidayHandler.ListRangeDates)
				r.Get("/year/{year}", holidayHandler.ListYearDates)

				r.Route("/{holidayID}", func(r chi.Router) {
					r.Get("/", holidayHandler.Get)
					r.Put("/", holidayHandler.Update)
					r.Delete("/", holidayHandler.Delete)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/daily", reportHandler.GetDailyReport)
				r.Get("/monthly", reportHandler.GetMonthlyReport)
				r.Post("/monthly/generate", reportHandler.GenerateMonthlyReport)
				r.Get("/monthly/export/csv", reportHandler.ExportMonthlyCSV)
				r.Get("/monthly/export/pdf", reportHandler.ExportMonthlyPDF)
			})
		})
	})
	return r
}
