package repair

import (
	"context"
	"fmt"
	"time"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shift"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	"go.uber.org/zap"
)

const dateFormat = "2006-01-02"

//go:generate mockgen -source=repair_service.go -destination=mock/repair_service_mock.go -package=mock
type Service interface {
	Run(ctx context.Context) (Result, error)
}

type service struct {
	staffRepo staff.Repository
	shifts    shift.Repository
	loc       *time.Location
	logger    *zap.Logger
}

func NewService(staffRepo staff.Repository, shifts shift.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("repair.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("repair.service")
	}
	return &service{
		staffRepo: staffRepo,
		shifts:    shifts,
		loc:       time.FixedZone("JST", 9*60*60),
		logger:    l,
	}
}

// Run rewrites every non-canonical staff login id to its zero-padded form,
// then deletes all shifts from today forward so the next sync rebuilds them
// under the repaired ids. Individual failures are reported and skipped; the
// batch never aborts midway.
func (s *service) Run(ctx context.Context) (Result, error) {
	var res Result

	members, err := s.staffRepo.FindAll(ctx)
	if err != nil {
		return res, err
	}

	// only members already holding the canonical form own their slot;
	// rewrites claim slots as they land, so duplicates collide instead
	// of silently merging
	canonical := make(map[string]string, len(members))
	for _, m := range members {
		if staff.IsCanonical(m.LoginID) {
			canonical[m.LoginID] = m.ID.String()
		}
	}

	for _, m := range members {
		if staff.IsCanonical(m.LoginID) {
			continue
		}
		if !staff.IsNumeric(m.LoginID) {
			res.Failed++
			res.Logs = append(res.Logs, fmt.Sprintf("skip %s (%s): login id is not numeric", m.LoginID, m.DisplayName))
			continue
		}

		fixed := staff.CanonicalID(m.LoginID)
		if ownerID, taken := canonical[fixed]; taken && ownerID != m.ID.String() {
			res.Collisions++
			res.Logs = append(res.Logs, fmt.Sprintf("skip %s (%s): %s already belongs to another member", m.LoginID, m.DisplayName, fixed))
			continue
		}

		if err := s.staffRepo.UpdateLoginID(ctx, m.ID.String(), fixed); err != nil {
			res.Failed++
			res.Logs = append(res.Logs, fmt.Sprintf("failed %s -> %s: %v", m.LoginID, fixed, err))
			s.logger.Error("login id rewrite failed",
				zap.String("login_id", m.LoginID),
				zap.Error(err),
			)
			continue
		}

		canonical[fixed] = m.ID.String()
		res.Fixed++
		res.Logs = append(res.Logs, fmt.Sprintf("fixed %s -> %s (%s)", m.LoginID, fixed, m.DisplayName))
	}

	today := s.today()
	removed, err := s.shifts.DeleteFromDate(ctx, today)
	if err != nil {
		return res, err
	}
	res.RemovedFuture = removed
	res.Logs = append(res.Logs, fmt.Sprintf("removed %d shifts from %s forward", removed, today.Format(dateFormat)))

	s.logger.Info("identifier repair finished",
		zap.Int("fixed", res.Fixed),
		zap.Int("collisions", res.Collisions),
		zap.Int("failed", res.Failed),
		zap.Int64("removed_future", res.RemovedFuture),
	)
	return res, nil
}

func (s *service) today() time.Time {
	now := time.Now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
