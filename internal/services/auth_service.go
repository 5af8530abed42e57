package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/oubasys/portfolio/internal/cache"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/utils"
)

const tokenTTL = 24 * time.Hour

// LoginResult carries the issued token and the authenticated identity.
type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Register always fails: the portfolio has exactly one admin account,
	// configured from the environment. No backend call is involved.
	Register(ctx context.Context) error
	// Logout revokes the token id until its natural expiry.
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type authService struct {
	secret       string
	adminEmail   string
	passwordHash string
	cache        cache.Cache
}

func NewAuthService(secret, adminEmail, passwordHash string, c cache.Cache) AuthService {
	return &authService{
		secret:       secret,
		adminEmail:   adminEmail,
		passwordHash: passwordHash,
		cache:        c,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	const op = "AuthService.Login"

	if email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}
	if s.secret == "" || s.adminEmail == "" || s.passwordHash == "" {
		return nil, utils.E(utils.CodeInternal, op, "admin credentials are not configured", nil)
	}

	if email != s.adminEmail || utils.CheckPassword(s.passwordHash, password) != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Role: string(models.RoleAdmin),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}

	return &LoginResult{
		Token: token,
		User:  models.User{Email: email, Role: models.RoleAdmin},
	}, nil
}

func (s *authService) Register(ctx context.Context) error {
	const op = "AuthService.Register"
	return utils.E(utils.CodeForbidden, op, "registration is disabled for this portfolio", nil)
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	const op = "AuthService.Logout"

	if tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.SetJSON(ctx, revokedKey(tokenID), true, ttl); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to revoke token", err)
	}
	return nil
}

func (s *authService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool
	hit, err := s.cache.GetJSON(ctx, revokedKey(tokenID), &revoked)
	if err != nil {
		return false, err
	}
	return hit && revoked, nil
}

func revokedKey(tokenID string) string { return "auth:revoked:" + tokenID }

// Claims is the JWT payload issued on login and checked by the auth middleware.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
