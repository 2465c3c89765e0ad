package service

import (
	"context"
	"fmt"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/logger"
	"mountainride-backoffice/internal/repository"
	"mountainride-backoffice/internal/session"
)

type authService struct {
	authRepo repository.AuthRepository
	sessions *session.Store
}

func NewAuthService(authRepo repository.AuthRepository, sessions *session.Store) AuthService {
	return &authService{
		authRepo: authRepo,
		sessions: sessions,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.Profile, error) {
	var req requiredFields
	req.check("email", email)
	req.check("password", password)
	if err := req.err(); err != nil {
		return nil, err
	}

	profile, err := s.authRepo.Login(ctx, domain.Credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Establish(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	logger.Info("Operator logged in", "email", profile.Email, "role", profile.Role)
	return profile, nil
}

// Logout only forgets the session locally; the token is not revoked remotely
func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.Info("Operator logged out")
	return nil
}
