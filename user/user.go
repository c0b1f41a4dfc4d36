package user

import (
	"context"
	"errors"
	"fmt"

	"eventify-backend/model"
	"eventify-backend/store"
	"eventify-backend/token"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("missing required fields")
)

// Service handles registration and login against the credential store.
type Service struct {
	users  store.Users
	tokens *token.Service
}

func NewService(users store.Users, tokens *token.Service) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates a user with a bcrypt-hashed password and returns the
// public fields plus a fresh bearer token. Email uniqueness is a
// case-sensitive exact match.
func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, store.ErrNoRecord) {
		return nil, fmt.Errorf("register: error checking existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: error hashing password: %w", err)
	}

	u := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	t, err := s.tokens.Issue(u.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	return &model.AuthResponse{ID: u.ID, Name: u.Name, Email: u.Email, Token: t}, nil
}

// Login verifies the password hash and returns a token. Unknown email and bad
// password collapse to the same ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoRecord) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: error loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	t, err := s.tokens.Issue(u.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &model.AuthResponse{ID: u.ID, Name: u.Name, Email: u.Email, Token: t}, nil
}
