package staff

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleCast      = "cast"
	RoleAdmin     = "admin"
	RoleDeveloper = "developer"
)

type StaffMember struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	LoginID       string    `gorm:"column:login_id;type:varchar(8);not null;uniqueIndex"`
	DisplayName   string    `gorm:"column:display_name;type:varchar(100);not null"`
	HPDisplayName string    `gorm:"column:hp_display_name;type:varchar(100)"`
	HomeShopID    string    `gorm:"column:home_shop_id;type:varchar(8);index"`
	Role          string    `gorm:"column:role;type:varchar(16);not null;default:'cast'"`
	PasswordHash  string    `gorm:"column:password_hash;type:varchar(255)"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}
