package services

import (
	"context"
	"errors"

	"bloglist/internal/auth"
	"bloglist/internal/metrics"
	repo "bloglist/internal/repository"
)

type LoginService struct {
	users repo.Users
	tm    *auth.TokenManager
}

func NewLoginService(users repo.Users, tm *auth.TokenManager) *LoginService {
	return &LoginService{users: users, tm: tm}
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// Authenticate verifies the credentials and issues a token. A missing user
// and a wrong password are indistinguishable to the caller.
func (s *LoginService) Authenticate(ctx context.Context, username, password string) (LoginResult, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			metrics.Logins.WithLabelValues("failed").Inc()
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		metrics.Logins.WithLabelValues("failed").Inc()
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tm.Issue(u.Username, u.ID.Hex())
	if err != nil {
		return LoginResult{}, err
	}
	metrics.Logins.WithLabelValues("ok").Inc()
	return LoginResult{Token: token, Username: u.Username, Name: u.Name}, nil
}
