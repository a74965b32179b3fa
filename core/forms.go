package core

import (
	"errors"
	"strings"

	"github.com/sirinethikonda/saas-core-project/internal/types"
	"github.com/sirinethikonda/saas-core-project/services"
)

// Validation failures. Shown inline; no network call is made while one holds.
var (
	ErrProjectNameTooShort    = errors.New("Project name must be at least 3 characters.")
	ErrTaskTitleRequired      = errors.New("Task title is required.")
	ErrPasswordRequired       = errors.New("Password is required for new members")
	ErrPasswordMismatch       = errors.New("Passwords do not match")
	ErrRegistrationIncomplete = errors.New("All fields are required")
)

// ProjectForm is the field state of the project modal.
type ProjectForm struct {
	Name        string
	Description string
	Status      string
}

// NewProjectForm returns the modal's initial state: defaults for create mode,
// the entity's fields for edit mode.
func NewProjectForm(p *types.Project) ProjectForm {
	if p == nil {
		return ProjectForm{Status: types.ProjectActive}
	}
	status := p.Status
	if status == "" {
		status = types.ProjectActive
	}
	return ProjectForm{Name: p.Name, Description: p.Description, Status: status}
}

func (f ProjectForm) Validate() error {
	if len(strings.TrimSpace(f.Name)) < 3 {
		return ErrProjectNameTooShort
	}
	return nil
}

func (f ProjectForm) Payload() map[string]any {
	return map[string]any{
		"name":        f.Name,
		"description": f.Description,
		"status":      f.Status,
	}
}

// TaskForm is the field state of the task modal, always create mode and
// scoped to a parent project.
type TaskForm struct {
	Title    string
	Priority string
	Status   string
	DueDate  string
}

func NewTaskForm() TaskForm {
	return TaskForm{Priority: types.PriorityMedium, Status: types.TaskTodo}
}

func (f TaskForm) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTaskTitleRequired
	}
	return nil
}

func (f TaskForm) Payload() map[string]any {
	return map[string]any{
		"title":    f.Title,
		"priority": f.Priority,
		"status":   f.Status,
		"dueDate":  f.DueDate,
	}
}

// MemberForm is the field state of the member modal. Password is write-only:
// blank on edit means "keep the current password" and the key is omitted
// from the payload entirely.
type MemberForm struct {
	FullName string
	Email    string
	Password string
	Role     string
	Editing  bool
}

func NewMemberForm(u *types.User) MemberForm {
	if u == nil {
		return MemberForm{Role: types.RoleUser}
	}
	role := u.Role
	if role == "" {
		role = types.RoleUser
	}
	return MemberForm{FullName: u.FullName, Email: u.Email, Role: role, Editing: true}
}

func (f MemberForm) Validate() error {
	if !f.Editing && f.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

func (f MemberForm) Payload() map[string]any {
	payload := map[string]any{
		"fullName": f.FullName,
		"email":    f.Email,
		"role":     f.Role,
	}
	if !f.Editing || f.Password != "" {
		payload["password"] = f.Password
	}
	return payload
}

// RegistrationForm is the field state of the tenant registration view.
type RegistrationForm struct {
	TenantName      string
	Subdomain       string
	AdminFullName   string
	AdminEmail      string
	AdminPassword   string
	ConfirmPassword string
}

func (f RegistrationForm) Validate() error {
	if f.TenantName == "" || f.Subdomain == "" || f.AdminFullName == "" ||
		f.AdminEmail == "" || f.AdminPassword == "" {
		return ErrRegistrationIncomplete
	}
	if f.AdminPassword != f.ConfirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

func (f RegistrationForm) Payload() map[string]any {
	return map[string]any{
		"tenantName":    f.TenantName,
		"subdomain":     f.Subdomain,
		"adminEmail":    f.AdminEmail,
		"adminPassword": f.AdminPassword,
		"adminFullName": f.AdminFullName,
	}
}

// Submit drives one modal submission through its state machine: validation
// first (a failure blocks the network call entirely), then the API call,
// then the caller's refresh, awaited before the modal may close. The
// returned message is what the form displays while staying open; ok is true
// only when the modal should close.
func Submit(validate func() error, call func() error, refresh func() error, fallback string) (string, bool) {
	if err := validate(); err != nil {
		return err.Error(), false
	}
	if err := call(); err != nil {
		if errors.Is(err, services.ErrUnauthorized) {
			// The global handler has already torn the view down.
			return "", false
		}
		return services.DisplayMessage(err, fallback), false
	}
	if refresh != nil {
		if err := refresh(); err != nil {
			return services.DisplayMessage(err, fallback), false
		}
	}
	return "", true
}
