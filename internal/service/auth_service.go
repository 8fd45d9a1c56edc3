package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/popo0015/body-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already registered")
)

type AuthService struct {
	userRepo   repository.UserRepository
	sessions   *SessionService
	bcryptCost int
	// dummyHash is compared against when the email is unknown so both
	// failure paths spend the same bcrypt work.
	dummyHash []byte
}

func NewAuthService(userRepo repository.UserRepository, sessions *SessionService, bcryptCost int) *AuthService {
	dummy, _ := bcrypt.GenerateFromPassword([]byte("body-tracker"), bcryptCost)
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		bcryptCost: bcryptCost,
		dummyHash:  dummy,
	}
}

type SignupInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type LoginInput struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type LoginResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// Signup registers a user. It does not open a session.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	input.Email = NormalizeEmail(input.Email)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailExists
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent signup for the same email
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a new session. Unknown email and wrong
// password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Email = NormalizeEmail(input.Email)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(input.Password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	issued, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:      user,
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

// Logout revokes the session for token, if any.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
