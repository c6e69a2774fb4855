package auth

import (
	"context"
	"testing"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	autherrors "github.com/yoshiboykidd/karinto-castmanager-sub000/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeStaffRepo struct {
	staff.Repository
	findByLoginIDFn func(ctx context.Context, loginID string) (*staff.StaffMember, error)
}

func (f *fakeStaffRepo) FindByLoginID(ctx context.Context, loginID string) (*staff.StaffMember, error) {
	return f.findByLoginIDFn(ctx, loginID)
}

func memberWithPassword(t *testing.T, password string) *staff.StaffMember {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return &staff.StaffMember{
		LoginID:      "00600037",
		DisplayName:  "みか",
		Role:         staff.RoleCast,
		PasswordHash: string(hash),
	}
}

func TestLoginIssuesTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	member := memberWithPassword(t, "hunter42")

	repo := &fakeStaffRepo{
		findByLoginIDFn: func(ctx context.Context, loginID string) (*staff.StaffMember, error) {
			// short ids are canonicalized before the lookup
			assert.Equal(t, "00600037", loginID)
			return member, nil
		},
	}

	svc := NewService(repo)
	access, refresh, resp, err := svc.Login(context.Background(), "600037", "hunter42")

	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, "00600037", resp.LoginID)
	assert.Equal(t, "みか", resp.DisplayName)

	token, err := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "00600037", claims["login_id"])
	assert.Equal(t, staff.RoleCast, claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	member := memberWithPassword(t, "hunter42")

	repo := &fakeStaffRepo{
		findByLoginIDFn: func(ctx context.Context, loginID string) (*staff.StaffMember, error) {
			return member, nil
		},
	}

	svc := NewService(repo)
	_, _, _, err := svc.Login(context.Background(), "600037", "wrong")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestLoginUnknownStaff(t *testing.T) {
	repo := &fakeStaffRepo{
		findByLoginIDFn: func(ctx context.Context, loginID string) (*staff.StaffMember, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo)
	_, _, _, err := svc.Login(context.Background(), "600037", "hunter42")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	member := memberWithPassword(t, "hunter42")

	repo := &fakeStaffRepo{
		findByLoginIDFn: func(ctx context.Context, loginID string) (*staff.StaffMember, error) {
			return member, nil
		},
	}

	svc := NewService(repo)
	_, refresh, _, err := svc.Login(context.Background(), "600037", "hunter42")
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, "00600037", resp.LoginID)
}

func TestRefreshTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(&fakeStaffRepo{})
	_, _, _, err := svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}
