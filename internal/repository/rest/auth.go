package rest

import (
	"context"
	"net/http"

	"mountainride-backoffice/internal/domain"
	"mountainride-backoffice/internal/repository"
)

type authRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

// Login is the only remote operation sent without a bearer token
func (r *authRepository) Login(ctx context.Context, credentials domain.Credentials) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.client.do(ctx, call{op: "auth.login", method: http.MethodPost, path: "/auth/login", body: credentials}, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
