package syncer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/schedule"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shift"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	lastSyncKey = "shift-sync:last_sync_at"
	dateFormat  = "2006-01-02"

	// DefaultWindowDays covers today through ten days ahead; the source
	// stops publishing past schedules, so earlier dates are never queried.
	DefaultWindowDays = 11
)

//go:generate mockgen -source=syncer_service.go -destination=mock/syncer_service_mock.go -package=mock
type Service interface {
	Run(ctx context.Context) (Summary, error)
	LastSyncAt(ctx context.Context) (string, error)
}

type Config struct {
	Sites      []schedule.Site
	Source     schedule.Source
	Directory  staff.Directory
	Shifts     shift.Repository
	Redis      *redis.Client
	WindowDays int
	Location   *time.Location
}

type service struct {
	cfg    Config
	logger *zap.Logger
}

func NewService(cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("syncer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("syncer.service")
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = DefaultWindowDays
	}
	if cfg.Location == nil {
		cfg.Location = time.FixedZone("JST", 9*60*60)
	}
	return &service{cfg: cfg, logger: l}
}

func (s *service) today() time.Time {
	now := time.Now().In(s.cfg.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Run merges every configured site over the forward window. Days inside a
// site fetch concurrently; a failed day is reported in its DaySummary and
// never aborts the rest of the run.
func (s *service) Run(ctx context.Context) (Summary, error) {
	today := s.today()
	summary := Summary{}

	for _, site := range s.cfg.Sites {
		nameMap, err := s.cfg.Directory.NameMap(ctx, site.ID)
		if err != nil {
			s.logger.Error("roster load failed", zap.String("site", site.Name), zap.Error(err))
			summary.add(DaySummary{Site: site.Name, Err: "roster load failed: " + err.Error()})
			continue
		}

		var (
			wg sync.WaitGroup
			mu sync.Mutex
		)
		for i := 0; i < s.cfg.WindowDays; i++ {
			date := today.AddDate(0, 0, i)
			wg.Add(1)
			go func(date time.Time) {
				defer wg.Done()
				day := s.syncDay(ctx, site, nameMap, date)
				mu.Lock()
				summary.add(day)
				mu.Unlock()
			}(date)
		}
		wg.Wait()
	}

	if s.cfg.Redis != nil {
		if err := s.cfg.Redis.Set(ctx, lastSyncKey, time.Now().UTC().Format(time.RFC3339), 0).Err(); err != nil {
			s.logger.Warn("record last sync time failed", zap.Error(err))
		}
	}

	s.logger.Info("sync run finished",
		zap.Int("synced", summary.Synced),
		zap.Int("shadowed", summary.Shadowed),
		zap.Int("removed", summary.Removed),
		zap.Int("unresolved", summary.Unresolved),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (s *service) syncDay(ctx context.Context, site schedule.Site, nameMap map[string]string, date time.Time) DaySummary {
	day := DaySummary{Site: site.Name, Date: date.Format(dateFormat)}

	entries, err := s.cfg.Source.FetchDay(ctx, site, date)
	if err != nil {
		s.logger.Warn("day fetch failed",
			zap.String("site", site.Name),
			zap.String("date", day.Date),
			zap.Error(err),
		)
		day.Err = err.Error()
		return day
	}

	existing, err := s.cfg.Shifts.ListByDate(ctx, date)
	if err != nil {
		day.Err = "load existing shifts: " + err.Error()
		return day
	}
	statusByLogin := make(map[string]string, len(existing))
	for _, row := range existing {
		statusByLogin[staff.CanonicalID(row.LoginID)] = row.Status
	}

	found := make(map[string]bool)
	for _, e := range entries {
		key := staff.NormalizeName(e.DisplayName)
		if key == "" {
			continue
		}

		loginID, ok := nameMap[key]
		if !ok {
			// long strings are page furniture, not staff names
			if len([]rune(e.DisplayName)) < 15 {
				day.Unresolved = append(day.Unresolved, e.DisplayName)
			}
			continue
		}
		found[loginID] = true

		start, end := e.StartTime, e.EndTime
		row := &shift.Shift{
			ID:                 uuid.New(),
			LoginID:            loginID,
			ShiftDate:          date,
			StartTime:          start,
			EndTime:            end,
			HPDisplayName:      key,
			StoreCode:          site.ID,
			IsOfficialPreExist: true,
		}

		if statusByLogin[loginID] == shift.StatusRequested {
			// the staff member's pending proposal keeps the time fields;
			// only the shadow baseline underneath it moves
			row.Status = shift.StatusRequested
			row.HPStartTime = &start
			row.HPEndTime = &end
			if err := s.cfg.Shifts.UpsertShadow(ctx, row); err != nil {
				s.logger.Error("shadow upsert failed", zap.String("login_id", loginID), zap.String("date", day.Date), zap.Error(err))
				day.Failed++
				continue
			}
			day.Shadowed++
		} else {
			row.Status = shift.StatusOfficial
			row.IsOfficial = true
			if err := s.cfg.Shifts.UpsertOfficial(ctx, row); err != nil {
				s.logger.Error("official upsert failed", zap.String("login_id", loginID), zap.String("date", day.Date), zap.Error(err))
				day.Failed++
				continue
			}
			day.Synced++
		}
	}

	day.Removed = s.removeVanished(ctx, site, date, existing, found, day.Synced)
	return day
}

// removeVanished deletes this site's official rows whose staff no longer
// appear on the page. A wholesale disappearance with nothing newly scraped
// looks like a source outage rather than mass cancellation, so that case is
// kept as-is and only logged.
func (s *service) removeVanished(ctx context.Context, site schedule.Site, date time.Time, existing []shift.Shift, found map[string]bool, synced int) int {
	var vanished []string
	siteOfficial := 0
	for _, row := range existing {
		if row.Status != shift.StatusOfficial || row.StoreCode != site.ID {
			continue
		}
		siteOfficial++
		id := staff.CanonicalID(row.LoginID)
		if !found[id] {
			vanished = append(vanished, id)
		}
	}
	if len(vanished) == 0 {
		return 0
	}

	if siteOfficial >= 5 && float64(len(vanished))/float64(siteOfficial) > 0.8 && synced == 0 {
		s.logger.Warn("skipping suspicious mass removal",
			zap.String("site", site.Name),
			zap.String("date", date.Format(dateFormat)),
			zap.Int("vanished", len(vanished)),
			zap.Int("official", siteOfficial),
		)
		return 0
	}

	n, err := s.cfg.Shifts.DeleteOfficialByDateAndStaff(ctx, date, vanished)
	if err != nil {
		s.logger.Error("vanished cleanup failed",
			zap.String("site", site.Name),
			zap.String("date", date.Format(dateFormat)),
			zap.Error(err),
		)
		return 0
	}
	return int(n)
}

func (s *service) LastSyncAt(ctx context.Context) (string, error) {
	if s.cfg.Redis == nil {
		return "", nil
	}
	v, err := s.cfg.Redis.Get(ctx, lastSyncKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}
