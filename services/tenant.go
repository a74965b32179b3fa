package services

import (
	"github.com/sirinethikonda/saas-core-project/internal/types"
)

// TenantService covers the platform-level tenant listing (super admin only;
// the server enforces that) and member management within one tenant.
type TenantService struct {
	api *Client
}

func NewTenantService(api *Client) *TenantService {
	return &TenantService{api: api}
}

func (s *TenantService) List() ([]types.Tenant, error) {
	resp, err := s.api.Get("/tenants")
	if err != nil {
		return nil, err
	}
	var tenants []types.Tenant
	resp.Collection("tenants", &tenants)
	return tenants, nil
}

// Members fetches the users of one tenant.
func (s *TenantService) Members(tenantID string) ([]types.User, error) {
	resp, err := s.api.Get("/tenants/" + tenantID + "/users")
	if err != nil {
		return nil, err
	}
	var members []types.User
	resp.Collection("users", &members)
	return members, nil
}

func (s *TenantService) CreateMember(tenantID string, payload map[string]any) error {
	_, err := s.api.Post("/tenants/"+tenantID+"/users", payload)
	return err
}

func (s *TenantService) UpdateMember(id types.ID, payload map[string]any) error {
	_, err := s.api.Put("/users/"+id.String(), payload)
	return err
}

func (s *TenantService) DeleteMember(id types.ID) error {
	_, err := s.api.Delete("/users/" + id.String())
	return err
}
