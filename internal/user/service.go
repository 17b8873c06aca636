package user

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Service provides user read operations and the password-change flow.
type Service struct {
	repo       Repository
	bcryptCost int
}

// NewService creates a new user Service.
func NewService(repo Repository, bcryptCost int) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}

// List returns all users, most recently created first.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// GetByEmail returns the user with the given email, or ErrUserNotFound.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// ChangePassword confirms the target user exists, bcrypt-hashes the new
// password, and persists the hash. Each call salts independently, so the
// same password never stores the same hash twice. Input validation happens
// at the handler boundary; callers pass an already-validated password.
func (s *Service) ChangePassword(ctx context.Context, email, newPassword string) (*Ref, error) {
	ref, err := s.repo.GetRef(ctx, email)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, email, string(hash)); err != nil {
		return nil, err
	}

	slog.Info("password changed", "email", ref.Email)

	return ref, nil
}
