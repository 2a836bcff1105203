package main

import (
	"fmt"
	"net/http"

	"github.com/kerjahub/hrm-backend-go/internal/config"
	appHTTP "github.com/kerjahub/hrm-backend-go/internal/handler/http"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/database"
	"github.com/kerjahub/hrm-backend-go/internal/pkg/jwt"
	"github.com/kerjahub/hrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kerjahub/hrm-backend-go/internal/service/attendance"
	leaveService "github.com/kerjahub/hrm-backend-go/internal/service/leave"
	payrollService "github.com/kerjahub/hrm-backend-go/internal/service/payroll"
	profileService "github.com/kerjahub/hrm-backend-go/internal/service/profile"
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

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo)
	profileSvc := profileService.NewProfileService(userRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	profileHandler := appHTTP.NewProfileHandler(profileSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		profileHandler,
		appHTTP.RouterOptions{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
