package shift

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOfficial  = "official"
	StatusRequested = "requested"
	StatusAbsent    = "absent"
)

// Shift is the single source of truth for one staff member on one date.
// The (login_id, shift_date) pair is unique; absence of a row means the
// staff member is off/unscheduled.
type Shift struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	LoginID   string    `gorm:"column:login_id;type:varchar(8);not null;uniqueIndex:idx_shifts_staff_date"`
	ShiftDate time.Time `gorm:"column:shift_date;type:date;not null;uniqueIndex:idx_shifts_staff_date"`

	Status    string `gorm:"column:status;type:varchar(16);not null;default:'official'"`
	StartTime string `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime   string `gorm:"column:end_time;type:varchar(5);not null"`

	// HPStartTime/HPEndTime shadow the last window seen on the homepage.
	// While Status is "requested" they carry the official baseline
	// underneath the staff member's pending proposal.
	HPStartTime *string `gorm:"column:hp_start_time;type:varchar(5)"`
	HPEndTime   *string `gorm:"column:hp_end_time;type:varchar(5)"`

	// IsOfficialPreExist stays true once any official window has ever been
	// recorded for this date; it distinguishes a change request from a new one.
	IsOfficialPreExist bool `gorm:"column:is_official_pre_exist;not null;default:false"`

	HPDisplayName string `gorm:"column:hp_display_name;type:varchar(100)"`
	IsOfficial    bool   `gorm:"column:is_official;not null;default:false"`
	StoreCode     string `gorm:"column:store_code;type:varchar(8)"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Shift) TableName() string {
	return "shifts"
}
