package main

import (
	"fmt"
	"net/http"

	"github.com/facetrack-hrm/attendance-backend-go/internal/config"
	appHTTP "github.com/facetrack-hrm/attendance-backend-go/internal/handler/http"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/database"
	"github.com/facetrack-hrm/attendance-backend-go/internal/pkg/jwt"
	"github.com/facetrack-hrm/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/facetrack-hrm/attendance-backend-go/internal/service/attendance"
	authService "github.com/facetrack-hrm/attendance-backend-go/internal/service/auth"
	employeeService "github.com/facetrack-hrm/attendance-backend-go/internal/service/employee"
	holidayService "github.com/facetrack-hrm/attendance-backend-go/internal/service/holiday"
	reportService "github.com/facetrack-hrm/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	reportRepo := postgresql.NewSalaryReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo, reportRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	reportSvc := reportService.NewReportService(db, employeeRepo, attendanceRepo, holidayRepo, reportRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewHolidayHandler(holidaySvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
