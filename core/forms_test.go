package core_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirinethikonda/saas-core-project/core"
	"github.com/sirinethikonda/saas-core-project/internal/types"
	"github.com/sirinethikonda/saas-core-project/services"
)

type staticSessions struct{ token string }

func (s *staticSessions) Token() string { return s.token }
func (s *staticSessions) Logout() error { s.token = ""; return nil }

func TestProjectFormCreateDefaults(t *testing.T) {
	f := core.NewProjectForm(nil)
	assert.Empty(t, f.Name)
	assert.Empty(t, f.Description)
	assert.Equal(t, types.ProjectActive, f.Status)

	// Re-opening after a prior submission starts from the same defaults.
	f.Name = "leftover"
	assert.Equal(t, core.NewProjectForm(nil), core.ProjectForm{Status: types.ProjectActive})
}

func TestProjectFormEditPrefills(t *testing.T) {
	p := &types.Project{Name: "Website", Description: "d", Status: types.ProjectArchived}
	f := core.NewProjectForm(p)
	assert.Equal(t, "Website", f.Name)
	assert.Equal(t, types.ProjectArchived, f.Status)
}

func TestProjectNameTooShortBlocksSubmission(t *testing.T) {
	f := core.ProjectForm{Name: "ab", Status: types.ProjectActive}

	called := false
	msg, ok := core.Submit(f.Validate, func() error {
		called = true
		return nil
	}, nil, "fallback")

	assert.False(t, ok)
	assert.Equal(t, core.ErrProjectNameTooShort.Error(), msg)
	assert.False(t, called, "validation failure must not issue a network call")
}

func TestTaskFormDefaultsAndValidation(t *testing.T) {
	f := core.NewTaskForm()
	assert.Equal(t, types.PriorityMedium, f.Priority)
	assert.Equal(t, types.TaskTodo, f.Status)
	require.ErrorIs(t, f.Validate(), core.ErrTaskTitleRequired)

	f.Title = "   "
	require.ErrorIs(t, f.Validate(), core.ErrTaskTitleRequired)

	f.Title = "Ship it"
	require.NoError(t, f.Validate())
}

func TestMemberFormPasswordOmittedWhenBlankOnEdit(t *testing.T) {
	u := &types.User{FullName: "Ada", Email: "ada@acme.com", Role: types.RoleTenantAdmin}
	f := core.NewMemberForm(u)
	require.True(t, f.Editing)
	require.NoError(t, f.Validate())

	payload := f.Payload()
	_, hasPassword := payload["password"]
	assert.False(t, hasPassword, "blank password must be omitted on edit")
	assert.Equal(t, "Ada", payload["fullName"])

	f.Password = "newpass"
	payload = f.Payload()
	assert.Equal(t, "newpass", payload["password"])
}

func TestMemberFormCreateRequiresPassword(t *testing.T) {
	f := core.NewMemberForm(nil)
	assert.Equal(t, types.RoleUser, f.Role)
	require.ErrorIs(t, f.Validate(), core.ErrPasswordRequired)

	f.Password = "secret"
	require.NoError(t, f.Validate())
	assert.Equal(t, "secret", f.Payload()["password"])
}

func TestRegistrationPasswordMismatch(t *testing.T) {
	f := core.RegistrationForm{
		TenantName:      "Acme",
		Subdomain:       "acme",
		AdminFullName:   "Ada",
		AdminEmail:      "ada@acme.com",
		AdminPassword:   "one",
		ConfirmPassword: "two",
	}
	require.ErrorIs(t, f.Validate(), core.ErrPasswordMismatch)

	f.ConfirmPassword = "one"
	require.NoError(t, f.Validate())

	payload := f.Payload()
	_, leaked := payload["confirmPassword"]
	assert.False(t, leaked)
}

func TestSubmitBusinessRejectionKeepsModalOpen(t *testing.T) {
	f := core.ProjectForm{Name: "Website", Status: types.ProjectActive}

	refreshed := false
	msg, ok := core.Submit(f.Validate, func() error {
		return &services.BusinessError{Message: "Plan limit reached"}
	}, func() error {
		refreshed = true
		return nil
	}, "fallback")

	assert.False(t, ok)
	assert.Equal(t, "Plan limit reached", msg)
	assert.False(t, refreshed, "refresh callback must not run on rejection")
}

func TestSubmitTransportErrorUsesServerMessageOrFallback(t *testing.T) {
	f := core.ProjectForm{Name: "Website", Status: types.ProjectActive}

	msg, ok := core.Submit(f.Validate, func() error {
		return &services.APIError{Status: 500, Message: "boom"}
	}, nil, "fallback")
	assert.False(t, ok)
	assert.Equal(t, "boom", msg)

	msg, _ = core.Submit(f.Validate, func() error {
		return errors.New("connection reset")
	}, nil, "fallback")
	assert.Equal(t, "fallback", msg)
}

func TestSubmitSuccessAwaitsRefreshThenCloses(t *testing.T) {
	f := core.ProjectForm{Name: "Website", Status: types.ProjectActive}

	var order []string
	msg, ok := core.Submit(f.Validate, func() error {
		order = append(order, "call")
		return nil
	}, func() error {
		order = append(order, "refresh")
		return nil
	}, "fallback")

	assert.True(t, ok)
	assert.Empty(t, msg)
	assert.Equal(t, []string{"call", "refresh"}, order)
}

// The modal wiring hands Submit the owning view's re-fetch as refresh, so a
// confirmed create must hit the server and the list must be re-fetched, in
// that order, before Submit reports success and the dialog may close.
func TestSubmitRefreshesListBeforeReportingSuccess(t *testing.T) {
	var mu sync.Mutex
	var calls []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.Method == http.MethodPost {
			fmt.Fprint(w, `{"success":true,"message":"created"}`)
			return
		}
		fmt.Fprint(w, `{"success":true,"data":{"projects":[{"id":"p9","name":"Website","status":"active"}]}}`)
	}))
	defer srv.Close()

	client := services.NewClient(srv.URL, time.Second, &staticSessions{token: "t1"})
	projects := services.NewProjectService(client)

	form := core.ProjectForm{Name: "Website", Status: types.ProjectActive}

	var listed []types.Project
	msg, ok := core.Submit(form.Validate, func() error {
		return projects.Create(form.Payload())
	}, func() error {
		var err error
		listed, err = projects.List()
		return err
	}, "fallback")

	require.True(t, ok)
	assert.Empty(t, msg)
	require.Len(t, listed, 1, "refresh result must be in hand before success is reported")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"POST /projects", "GET /projects"}, calls)
}

func TestSubmitUnauthorizedStaysSilent(t *testing.T) {
	f := core.ProjectForm{Name: "Website", Status: types.ProjectActive}

	msg, ok := core.Submit(f.Validate, func() error {
		return services.ErrUnauthorized
	}, nil, "fallback")
	assert.False(t, ok)
	assert.Empty(t, msg)
}
