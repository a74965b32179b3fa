package services

import (
	"github.com/sirinethikonda/saas-core-project/internal/types"
)

// AuditService fetches the tenant's activity log. Read-only.
type AuditService struct {
	api *Client
}

func NewAuditService(api *Client) *AuditService {
	return &AuditService{api: api}
}

func (s *AuditService) List() ([]types.AuditEntry, error) {
	resp, err := s.api.Get("/audit-logs")
	if err != nil {
		return nil, err
	}
	var entries []types.AuditEntry
	resp.Collection("logs", &entries)
	return entries, nil
}
