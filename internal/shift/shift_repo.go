package shift

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context, loginID string, date time.Time) (*Shift, error)
	FindByID(ctx context.Context, id string) (*Shift, error)
	ListByStaffAndDateRange(ctx context.Context, loginID string, from, to time.Time) ([]Shift, error)
	ListByDate(ctx context.Context, date time.Time) ([]Shift, error)
	UpsertOfficial(ctx context.Context, s *Shift) error
	UpsertShadow(ctx context.Context, s *Shift) error
	UpsertRequested(ctx context.Context, s *Shift) error
	UpdateStatus(ctx context.Context, id, status string, isOfficial bool) error
	DeleteOfficialByDateAndStaff(ctx context.Context, date time.Time, loginIDs []string) (int64, error)
	DeleteFromDate(ctx context.Context, from time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

var conflictKey = []clause.Column{{Name: "login_id"}, {Name: "shift_date"}}

const dateFormat = "2006-01-02"

func (r *repository) Get(ctx context.Context, loginID string, date time.Time) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).
		Where("login_id = ?", loginID).
		Where("shift_date = ?", date.Format(dateFormat)).
		First(&s).Error
	return &s, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) ListByStaffAndDateRange(ctx context.Context, loginID string, from, to time.Time) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Where("login_id = ?", loginID).
		Where("shift_date BETWEEN ? AND ?", from.Format(dateFormat), to.Format(dateFormat)).
		Order("shift_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByDate(ctx context.Context, date time.Time) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Where("shift_date = ?", date.Format(dateFormat)).
		Order("start_time ASC").
		Find(&rows).Error
	return rows, err
}

// UpsertOfficial replaces the authoritative window with scraped values and
// clears the shadow columns. The update is gated in SQL on the row not
// holding a pending request, so a request submitted after the merger's read
// still keeps its times; the merger records the scraped window as shadow on
// its next pass.
func (r *repository) UpsertOfficial(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: conflictKey,
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Neq{
				Column: clause.Column{Table: "shifts", Name: "status"},
				Value:  StatusRequested,
			},
		}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "start_time", "end_time",
			"hp_start_time", "hp_end_time",
			"is_official_pre_exist", "hp_display_name",
			"is_official", "store_code", "updated_at",
		}),
	}).Create(s).Error
}

// UpsertShadow records scraped values underneath a pending request without
// touching the request's own start/end times.
func (r *repository) UpsertShadow(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: conflictKey,
		DoUpdates: clause.AssignmentColumns([]string{
			"hp_start_time", "hp_end_time",
			"is_official_pre_exist", "hp_display_name",
			"updated_at",
		}),
	}).Create(s).Error
}

// UpsertRequested writes a staff proposal. Shadow columns are left alone so
// the official baseline recorded by a previous merge survives.
func (r *repository) UpsertRequested(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: conflictKey,
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "start_time", "end_time",
			"is_official_pre_exist", "hp_display_name",
			"is_official", "updated_at",
		}),
	}).Create(s).Error
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string, isOfficial bool) error {
	return r.db.WithContext(ctx).
		Model(&Shift{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"is_official": isOfficial,
		}).Error
}

func (r *repository) DeleteOfficialByDateAndStaff(ctx context.Context, date time.Time, loginIDs []string) (int64, error) {
	if len(loginIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("shift_date = ?", date.Format(dateFormat)).
		Where("status = ?", StatusOfficial).
		Where("login_id IN ?", loginIDs).
		Delete(&Shift{})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteFromDate(ctx context.Context, from time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("shift_date >= ?", from.Format(dateFormat)).
		Delete(&Shift{})
	return res.RowsAffected, res.Error
}
