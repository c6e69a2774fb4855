package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shift"
	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	attendanceerrors "github.com/yoshiboykidd/karinto-castmanager-sub000/internal/attendance/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateFormat = "2006-01-02"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Toggle(ctx context.Context, shiftID string, req ToggleRequest) (ToggleResponse, error)
	ListByDate(ctx context.Context, date, storeCode string) ([]RosterRow, error)
}

type service struct {
	shifts    shift.Repository
	directory staff.Directory
	logger    *zap.Logger
}

func NewService(shifts shift.Repository, directory staff.Directory, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{shifts: shifts, directory: directory, logger: l}
}

// Toggle flips one row between official and absent. The caller states which
// of the two it believes the row is in; a requested row, or a row that moved
// since the page loaded, is rejected rather than blindly overwritten.
func (s *service) Toggle(ctx context.Context, shiftID string, req ToggleRequest) (ToggleResponse, error) {
	row, err := s.shifts.FindByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ToggleResponse{}, attendanceerrors.ErrShiftNotFound
		}
		return ToggleResponse{}, err
	}

	if row.Status != shift.StatusOfficial && row.Status != shift.StatusAbsent {
		return ToggleResponse{}, attendanceerrors.ErrNotToggleable
	}
	if row.Status != req.CurrentStatus {
		return ToggleResponse{}, attendanceerrors.ErrNotToggleable
	}

	newStatus := shift.StatusAbsent
	if row.Status == shift.StatusAbsent {
		newStatus = shift.StatusOfficial
	}
	isOfficial := newStatus == shift.StatusOfficial

	if err := s.shifts.UpdateStatus(ctx, shiftID, newStatus, isOfficial); err != nil {
		return ToggleResponse{}, err
	}

	s.logger.Info("attendance toggled",
		zap.String("shift_id", shiftID),
		zap.String("login_id", row.LoginID),
		zap.String("from", row.Status),
		zap.String("to", newStatus),
	)

	return ToggleResponse{
		ID:         shiftID,
		LoginID:    row.LoginID,
		Date:       row.ShiftDate.Format(dateFormat),
		Status:     newStatus,
		IsOfficial: isOfficial,
	}, nil
}

func (s *service) ListByDate(ctx context.Context, date, storeCode string) ([]RosterRow, error) {
	day, err := time.Parse(dateFormat, date)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDateFormat
	}

	rows, err := s.shifts.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	names := s.displayNames(ctx)

	roster := make([]RosterRow, 0, len(rows))
	for _, row := range rows {
		if storeCode != "" && row.StoreCode != storeCode {
			continue
		}
		name := names[row.LoginID]
		if name == "" {
			name = row.HPDisplayName
		}
		roster = append(roster, RosterRow{
			ID:          row.ID.String(),
			LoginID:     row.LoginID,
			DisplayName: name,
			Date:        row.ShiftDate.Format(dateFormat),
			Status:      row.Status,
			StartTime:   row.StartTime,
			EndTime:     row.EndTime,
			StoreCode:   row.StoreCode,
		})
	}
	return roster, nil
}

// displayNames is best effort; rosters render fine with homepage names when
// the directory is unreachable.
func (s *service) displayNames(ctx context.Context) map[string]string {
	members, err := s.directory.List(ctx, "")
	if err != nil {
		s.logger.Warn("directory lookup failed, falling back to homepage names", zap.Error(err))
		return nil
	}
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.LoginID] = m.DisplayName
	}
	return names
}
