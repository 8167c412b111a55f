package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sushinaruto/backend/internal/types/user"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists       = errors.New("user already exists")
	ErrEmailExists      = errors.New("email already exists")
	ErrInvalidCreds     = errors.New("invalid username/email or password")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

type Service struct {
	repo      UserRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

func NewService(repo UserRepository, jwtSecret []byte, jwtTTL time.Duration) *Service {
	return &Service{repo: repo, jwtSecret: jwtSecret, jwtTTL: jwtTTL}
}

func (s *Service) Register(ctx context.Context, username, email, password, confirm string) (*user.User, error) {
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if existing, err := s.repo.FindUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailExists
	}
	if existing, err := s.repo.FindUserByUsername(ctx, username); err == nil && existing != nil {
		return nil, ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.RoleCustomer,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate accepts a username or an email as the identifier and
// returns a signed bearer token.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (string, error) {
	u, err := s.repo.FindUserByUsername(ctx, identifier)
	if err != nil && strings.Contains(identifier, "@") {
		u, err = s.repo.FindUserByEmail(ctx, identifier)
	}
	if err != nil || !u.IsActive {
		return "", ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCreds
	}

	if err := s.repo.TouchLastLogin(ctx, u.ID); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   u.Username,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", err
	}
	return signed, nil
}
