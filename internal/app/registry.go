package app

import (
	"os"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/attendance"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/auth"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/middleware"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/notify"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/repair"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/request"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shift"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/syncer"

	"github.com/gin-gonic/gin"
)

func registerModules(router *gin.Engine, deps Deps) error {
	// --- Repositories ---
	staffRepo := staff.NewRepository(deps.DB)
	shiftRepo := shift.NewRepository(deps.DB)

	// --- Services ---
	directory := staff.NewDirectory(staffRepo)
	authService := auth.NewService(staffRepo)
	notifier := notify.NewWebhookNotifier(os.Getenv("NOTIFY_WEBHOOK_URL"))
	requestService := request.NewService(shiftRepo, directory, notifier)
	attendanceService := attendance.NewService(shiftRepo, directory)
	repairService := repair.NewService(staffRepo, shiftRepo)
	syncService := newSyncService(deps)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	staffHandler := staff.NewHandler(directory)
	requestHandler := request.NewHandler(requestService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	repairHandler := repair.NewHandler(repairService)
	syncHandler := syncer.NewHandler(syncService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		request.RegisterRoutes(api, requestHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		staff.RegisterRoutes(api, staffHandler)
		syncer.RegisterRoutes(api, syncHandler)
		repair.RegisterRoutes(api, repairHandler)
	}

	return nil
}
