package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// User roles as issued by the backend.
const (
	RoleUser        = "user"
	RoleTenantAdmin = "tenant_admin"
	RoleSuperAdmin  = "super_admin"
)

// Project statuses.
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectArchived  = "archived"
)

// Tenant statuses.
const (
	TenantActive    = "active"
	TenantInactive  = "inactive"
	TenantSuspended = "suspended"
)

// Task statuses. These double as the board lane names.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// ID is an entity identifier. The backend issues string UUIDs but some
// responses carry numeric ids, so it decodes from either form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// User is the authenticated identity and, within a tenant, a member record.
type User struct {
	ID       ID     `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TenantID ID     `json:"tenantId"`
	Status   string `json:"status,omitempty"`
}

// IsAdmin reports whether the role carries any administrative authority.
func (u User) IsAdmin() bool {
	return u.Role == RoleTenantAdmin || u.Role == RoleSuperAdmin
}

// Session is the persisted authenticated state.
type Session struct {
	Token    string `json:"token"`
	User     User   `json:"user"`
	TenantID string `json:"tenantId"`
}

type Project struct {
	ID                 ID     `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Status             string `json:"status"`
	TaskCount          int    `json:"taskCount"`
	CompletedTaskCount int    `json:"completedTaskCount"`
	CreatedBy          *User  `json:"createdBy,omitempty"`
	CreatedAt          string `json:"createdAt,omitempty"`
}

type Task struct {
	ID           ID     `json:"id"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
	DueDate      string `json:"dueDate,omitempty"`
	AssignedUser *User  `json:"assignedUser,omitempty"`
	ProjectID    ID     `json:"projectId,omitempty"`
	ProjectName  string `json:"projectName,omitempty"`
}

type Tenant struct {
	ID               ID     `json:"id"`
	Name             string `json:"name"`
	Subdomain        string `json:"subdomain"`
	Status           string `json:"status"`
	MaxUsers         int    `json:"maxUsers"`
	MaxProjects      int    `json:"maxProjects"`
	SubscriptionPlan string `json:"subscriptionPlan"`
	CreatedAt        string `json:"createdAt,omitempty"`
}

type AuditEntry struct {
	ID         ID     `json:"id"`
	TenantID   ID     `json:"tenantId"`
	UserID     ID     `json:"userId"`
	Action     string `json:"action"`
	EntityType string `json:"entityType,omitempty"`
	EntityID   ID     `json:"entityId,omitempty"`
	Details    string `json:"details,omitempty"`
	Timestamp  string `json:"timestamp,omitempty"`
}

// NormalizeTaskStatus lowercases a backend task status and maps anything
// absent to the todo lane, tolerating case variance between API versions.
func NormalizeTaskStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	if s == "" {
		return TaskTodo
	}
	return s
}
