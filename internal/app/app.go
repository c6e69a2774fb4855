package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/schedule"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shared/connection"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shift"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/syncer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps holds the shared infrastructure both the API and the worker build on.
type Deps struct {
	DB    *gorm.DB
	Redis *redis.Client
	Sites []schedule.Site
}

func connectInfra() (Deps, error) {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return Deps{}, err
	}

	if err := db.AutoMigrate(&staff.StaffMember{}, &shift.Shift{}); err != nil {
		return Deps{}, fmt.Errorf("migrate: %w", err)
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return Deps{}, err
	}

	sites, err := schedule.ParseSites(os.Getenv("SYNC_SITES"))
	if err != nil {
		return Deps{}, fmt.Errorf("SYNC_SITES: %w", err)
	}

	return Deps{DB: db, Redis: rdb, Sites: sites}, nil
}

func newSyncService(deps Deps) syncer.Service {
	windowDays := 0
	if raw := os.Getenv("SYNC_WINDOW_DAYS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			windowDays = n
		}
	}

	return syncer.NewService(syncer.Config{
		Sites:      deps.Sites,
		Source:     schedule.NewHTTPSource(15 * time.Second),
		Directory:  staff.NewDirectory(staff.NewRepository(deps.DB)),
		Shifts:     shift.NewRepository(deps.DB),
		Redis:      deps.Redis,
		WindowDays: windowDays,
	})
}

// BuildApp connects the infrastructure and registers every module on the
// router. Called once from cmd/api.
func BuildApp(router *gin.Engine) error {
	deps, err := connectInfra()
	if err != nil {
		return err
	}

	return registerModules(router, deps)
}
