package staff

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]StaffMember, error)
	FindByLoginID(ctx context.Context, loginID string) (*StaffMember, error)
	UpdateLoginID(ctx context.Context, id, newLoginID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]StaffMember, error) {
	var members []StaffMember
	err := r.db.WithContext(ctx).
		Order("login_id ASC").
		Find(&members).Error
	return members, err
}

func (r *repository) FindByLoginID(ctx context.Context, loginID string) (*StaffMember, error) {
	var m StaffMember
	err := r.db.WithContext(ctx).
		First(&m, "login_id = ?", loginID).Error
	return &m, err
}

func (r *repository) UpdateLoginID(ctx context.Context, id, newLoginID string) error {
	return r.db.WithContext(ctx).
		Model(&StaffMember{}).
		Where("id = ?", id).
		Update("login_id", newLoginID).Error
}
