package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"freight-quotes/internal/models"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an admin session lasts.
const TokenTTL = 12 * time.Hour

const adminSubject = "admin"

// ServiceInterface defines the contract for admin authentication.
type ServiceInterface interface {
	Login(ctx context.Context, password string) (*models.AdminLoginResponse, error)
	Middleware() echo.MiddlewareFunc
}

// Service checks the shared admin password and issues session tokens.
type Service struct {
	passwordHash []byte
	secret       []byte
	now          func() time.Time
}

// NewService creates an admin service from a bcrypt hash and a signing secret.
func NewService(passwordHash, jwtSecret string) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		secret:       []byte(jwtSecret),
		now:          time.Now,
	}
}

// Login compares password against the configured hash and returns a signed
// HS256 token. An unset hash rejects every password.
func (s *Service) Login(ctx context.Context, password string) (*models.AdminLoginResponse, error) {
	if len(s.passwordHash) == 0 {
		return nil, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service.Login: %w", err)
	}

	now := s.now()
	expires := now.Add(TokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("service.Login: sign token: %w", err)
	}
	return &models.AdminLoginResponse{Token: signed, ExpiresAt: expires}, nil
}

// Middleware rejects requests without a valid admin bearer token.
func (s *Service) Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    s.secret,
		SigningMethod: jwt.SigningMethodHS256.Name,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwt.RegisteredClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		},
	})
}

// HashPassword returns the bcrypt hash to put in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
