package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/h4ks-com/brewlog/internal/clock"
	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/h4ks-com/brewlog/internal/repository"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const tokenIssuer = "brewlog"

type TokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type TokenService struct {
	tokenRepo *repository.TokenRepository
	userRepo  *repository.UserRepository
	jwtSecret string
	clock     clock.Clock
}

func NewTokenService(tokenRepo *repository.TokenRepository, userRepo *repository.UserRepository, jwtSecret string, clk clock.Clock) *TokenService {
	return &TokenService{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		clock:     clk,
	}
}

// ParseExpiry accepts Go durations plus a day suffix, so "30d" and "720h"
// are the same lifetime.
func ParseExpiry(value string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(value)
}

// GenerateToken signs a token for an existing user and records it so it can
// be listed and revoked.
func (s *TokenService) GenerateToken(username string, expiresIn time.Duration) (string, *models.APIToken, error) {
	return s.GenerateNamedToken(username, "", expiresIn)
}

// GenerateNamedToken is GenerateToken with a label shown when listing.
func (s *TokenService) GenerateNamedToken(username, name string, expiresIn time.Duration) (string, *models.APIToken, error) {
	name = strings.TrimSpace(name)
	if len(name) > 100 {
		verr := &ValidationError{}
		verr.Add("name", "must be at most 100 characters")
		return "", nil, verr
	}
	if expiresIn <= 0 {
		verr := &ValidationError{}
		verr.Add("expires_in", "must be a positive duration")
		return "", nil, verr
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrUserNotFound
	}

	now := s.clock.Now()
	expiresAt := now.Add(expiresIn)
	claims := TokenClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, err
	}

	apiToken := &models.APIToken{
		UserID:    user.ID,
		Name:      name,
		Token:     tokenString,
		ExpiresAt: expiresAt,
	}
	if err := s.tokenRepo.Create(apiToken); err != nil {
		return "", nil, err
	}

	return tokenString, apiToken, nil
}

// ValidateToken checks the signature and that the token has not been revoked.
func (s *TokenService) ValidateToken(tokenString string) (*models.User, error) {
	now := s.clock.Now()
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }), jwt.WithIssuer(tokenIssuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	dbToken, err := s.tokenRepo.FindByToken(tokenString, now)
	if err != nil {
		return nil, err
	}
	if dbToken == nil || dbToken.User.Username != claims.Username {
		return nil, ErrInvalidToken
	}

	return &dbToken.User, nil
}

func (s *TokenService) ListUserTokens(userID uint) ([]models.APIToken, error) {
	return s.tokenRepo.FindByUserID(userID)
}

func (s *TokenService) DeleteToken(userID, tokenID uint) error {
	deleted, err := s.tokenRepo.Delete(tokenID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTokenNotFound
	}
	return nil
}

// PurgeExpired drops tokens that can no longer authenticate.
func (s *TokenService) PurgeExpired() (int64, error) {
	return s.tokenRepo.DeleteExpired(s.clock.Now())
}
