package services

import (
	"fmt"

	"github.com/sirinethikonda/saas-core-project/internal/types"
)

// AuthService handles authentication and tenant registration.
type AuthService struct {
	api *Client
}

func NewAuthService(api *Client) *AuthService {
	return &AuthService{api: api}
}

// Login authenticates against a tenant subdomain and returns the session to
// persist. It does not persist anything itself.
func (s *AuthService) Login(email, password, tenantSubdomain string) (*types.Session, error) {
	payload := map[string]any{
		"email":           email,
		"password":        password,
		"tenantSubdomain": tenantSubdomain,
	}

	resp, err := s.api.Post("/auth/login", payload)
	if err != nil {
		return nil, err
	}

	var body struct {
		Token string     `json:"token"`
		User  types.User `json:"user"`
	}
	if err := resp.Object("", &body); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if body.Token == "" {
		return nil, &APIError{Message: "login response carried no token"}
	}

	return &types.Session{
		Token:    body.Token,
		User:     body.User,
		TenantID: body.User.TenantID.String(),
	}, nil
}

// RegisterTenant creates a new organization and its admin account.
func (s *AuthService) RegisterTenant(payload map[string]any) error {
	_, err := s.api.Post("/auth/register-tenant", payload)
	return err
}
