package service

import (
	"database/sql"
	"errors"
	"fmt"

	"restaurant-pos/internal/auth"
	"restaurant-pos/internal/domain"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingSignup      = errors.New("name, email and password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	repo   UserRepository
	tokens *auth.TokenCodec
}

func NewUserService(repo UserRepository, tokens *auth.TokenCodec) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func (s *UserService) Register(name, email, phone, password string) error {
	if name == "" || email == "" || password == "" {
		return ErrMissingSignup
	}
	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	exists, err := s.repo.EmailExists(email)
	if err != nil {
		return fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &domain.User{Name: name, Email: email, Phone: phone, PasswordHash: hash}
	return s.repo.CreateUser(user)
}

// Login verifies the password and returns the user with a signed session
// token for the auth cookie.
func (s *UserService) Login(email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := s.repo.UserByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if user.Role != "customer" || !user.IsActive {
		return nil, "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token := s.tokens.Sign(auth.Payload{Sub: user.ID, Email: user.Email, Role: user.Role})
	return user, token, nil
}

func (s *UserService) Profile(userID int) (*domain.User, error) {
	user, err := s.repo.UserByID(userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID int, name, phone string) (*domain.User, error) {
	user := &domain.User{ID: userID, Name: name, Phone: phone}
	if err := s.repo.UpdateProfile(user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

var _ UserServiceInterface = (*UserService)(nil)
