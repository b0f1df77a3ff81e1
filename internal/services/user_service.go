package services

import (
	"context"
	"strings"

	"bloglist/internal/api/validate"
	"bloglist/internal/auth"
	"bloglist/internal/models"
	repo "bloglist/internal/repository"
)

// MinCredentialLen applies to both username and plaintext password.
const MinCredentialLen = 3

type UserService struct {
	users repo.Users
}

func NewUserService(users repo.Users) *UserService { return &UserService{users: users} }

func (s *UserService) Register(ctx context.Context, username, name, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}
	var errs validate.Errs
	if f := validate.MinLen("username", username, MinCredentialLen); f != nil {
		errs = append(errs, *f)
	}
	if f := validate.MinLen("password", password, MinCredentialLen); f != nil {
		errs = append(errs, *f)
	}
	if len(errs) > 0 {
		return models.User{}, ErrCredentialsTooShort
	}

	// Pre-check for a clean conflict message; the unique index still backs
	// this up against a concurrent insert.
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return models.User{}, repo.ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	u, err := s.users.Create(ctx, models.User{
		Username:     username,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	})
	if err != nil {
		return models.User{}, err
	}
	u.Blogs = []models.BlogRef{}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListWithBlogs(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		// an empty listing serializes as [], never null
		users = []models.User{}
	}
	return users, nil
}
