package auth

import (
	"context"
	"os"
	"time"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/staff"

	autherrors "github.com/yoshiboykidd/karinto-castmanager-sub000/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, loginID, password string) (accessToken, refreshToken string, resp AuthResponse, err error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)
	GetMe(ctx context.Context, loginID string) (*AuthResponse, error)
}

type service struct {
	staffRepo staff.Repository
}

func NewService(staffRepo staff.Repository) Service {
	return &service{staffRepo: staffRepo}
}

func (s *service) Login(ctx context.Context, loginID, password string) (string, string, AuthResponse, error) {
	member, err := s.staffRepo.FindByLoginID(ctx, staff.CanonicalID(loginID))
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.generateToken(member.LoginID, member.Role, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(member.LoginID, member.Role, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, AuthResponse{
		LoginID:     member.LoginID,
		DisplayName: member.DisplayName,
		Role:        member.Role,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}
	loginID, ok := claims["login_id"].(string)
	if !ok || loginID == "" {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	member, err := s.staffRepo.FindByLoginID(ctx, loginID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrStaffNotFound
	}

	newAccess, err := s.generateToken(member.LoginID, member.Role, time.Minute*15)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	newRefresh, err := s.generateToken(member.LoginID, member.Role, time.Hour*24*7)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccess, newRefresh, AuthResponse{
		LoginID:     member.LoginID,
		DisplayName: member.DisplayName,
		Role:        member.Role,
	}, nil
}

func (s *service) GetMe(ctx context.Context, loginID string) (*AuthResponse, error) {
	member, err := s.staffRepo.FindByLoginID(ctx, loginID)
	if err != nil {
		return nil, autherrors.ErrStaffNotFound
	}

	return &AuthResponse{
		LoginID:     member.LoginID,
		DisplayName: member.DisplayName,
		Role:        member.Role,
	}, nil
}

func (s *service) generateToken(loginID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"login_id": loginID,
		"role":     role,
		"exp":      time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
