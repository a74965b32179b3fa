package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirinethikonda/saas-core-project/core"
	"github.com/sirinethikonda/saas-core-project/internal/types"
)

func sampleProjects() []types.Project {
	return []types.Project{
		{ID: "p1", Name: "Website Redesign", Status: types.ProjectActive},
		{ID: "p2", Name: "Mobile App", Status: types.ProjectCompleted},
		{ID: "p3", Name: "Internal Wiki", Status: types.ProjectActive},
	}
}

func TestFilterProjectsSearchIsCaseInsensitive(t *testing.T) {
	got := core.FilterProjects(sampleProjects(), core.ProjectFilter{Search: "WEBSITE"})
	require.Len(t, got, 1)
	assert.Equal(t, types.ID("p1"), got[0].ID)
}

func TestFilterProjectsStatusExactMatch(t *testing.T) {
	got := core.FilterProjects(sampleProjects(), core.ProjectFilter{Status: types.ProjectActive})
	assert.Len(t, got, 2)

	got = core.FilterProjects(sampleProjects(), core.ProjectFilter{Status: core.FilterAll})
	assert.Len(t, got, 3)
}

func TestFilterProjectsNoMatchYieldsEmptySlice(t *testing.T) {
	got := core.FilterProjects(sampleProjects(), core.ProjectFilter{Search: "nothing matches this"})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestFilterTasksCombinesPredicates(t *testing.T) {
	tasks := []types.Task{
		{ID: "t1", Title: "Fix login", Status: types.TaskTodo, Priority: types.PriorityHigh},
		{ID: "t2", Title: "Fix logout", Status: types.TaskCompleted, Priority: types.PriorityHigh},
		{ID: "t3", Title: "Write docs", Status: types.TaskTodo, Priority: types.PriorityLow},
	}

	got := core.FilterTasks(tasks, core.TaskFilter{Search: "fix", Status: types.TaskTodo, Priority: types.PriorityHigh})
	require.Len(t, got, 1)
	assert.Equal(t, types.ID("t1"), got[0].ID)
}

func TestFilterMembersMatchesNameOrEmail(t *testing.T) {
	members := []types.User{
		{ID: "u1", FullName: "Ada Lovelace", Email: "ada@acme.com", Role: types.RoleTenantAdmin},
		{ID: "u2", FullName: "Grace Hopper", Email: "grace@acme.com", Role: types.RoleUser},
	}

	byName := core.FilterMembers(members, core.MemberFilter{Search: "ada"})
	require.Len(t, byName, 1)

	byEmail := core.FilterMembers(members, core.MemberFilter{Search: "grace@"})
	require.Len(t, byEmail, 1)

	byRole := core.FilterMembers(members, core.MemberFilter{Role: types.RoleUser})
	require.Len(t, byRole, 1)
	assert.Equal(t, types.ID("u2"), byRole[0].ID)
}

func TestFilterTenantsMatchesSubdomain(t *testing.T) {
	tenants := []types.Tenant{
		{ID: "o1", Name: "Acme Corp", Subdomain: "acme", Status: types.TenantActive},
		{ID: "o2", Name: "Globex", Subdomain: "globex", Status: types.TenantSuspended},
		{ID: "o3", Name: "Initech", Subdomain: "initech", Status: types.TenantInactive},
	}

	got := core.FilterTenants(tenants, core.TenantFilter{Search: "glob"})
	require.Len(t, got, 1)
	assert.Equal(t, "Globex", got[0].Name)

	got = core.FilterTenants(tenants, core.TenantFilter{Status: types.TenantSuspended})
	require.Len(t, got, 1)

	got = core.FilterTenants(tenants, core.TenantFilter{Status: types.TenantInactive})
	require.Len(t, got, 1)
	assert.Equal(t, "Initech", got[0].Name)
}

func TestFilterAuditMatchesActionOrDetails(t *testing.T) {
	entries := []types.AuditEntry{
		{ID: "a1", Action: "PROJECT_CREATED", Details: "Website Redesign"},
		{ID: "a2", Action: "USER_DELETED", Details: "grace@acme.test"},
	}

	got := core.FilterAudit(entries, "project")
	require.Len(t, got, 1)
	assert.Equal(t, types.ID("a1"), got[0].ID)

	got = core.FilterAudit(entries, "grace")
	require.Len(t, got, 1)
	assert.Equal(t, types.ID("a2"), got[0].ID)

	assert.Empty(t, core.FilterAudit(entries, "nothing"))
}

func TestGroupByLaneRendersEveryLane(t *testing.T) {
	lanes := core.GroupByLane(nil)
	require.Len(t, lanes, 3)
	for _, lane := range core.BoardLanes {
		entries, ok := lanes[lane]
		require.True(t, ok)
		assert.Empty(t, entries)
	}
}

func TestDeleteRemovesFromItsLaneOnly(t *testing.T) {
	tasks := []types.Task{
		{ID: "t1", Title: "a", Status: types.TaskInProgress},
		{ID: "t2", Title: "b", Status: types.TaskInProgress},
		{ID: "t3", Title: "c", Status: types.TaskTodo},
	}

	after := core.RemoveTask(tasks, "t1")
	lanes := core.GroupByLane(after)

	assert.Len(t, lanes[types.TaskInProgress], 1)
	assert.Equal(t, types.ID("t2"), lanes[types.TaskInProgress][0].ID)
	assert.Len(t, lanes[types.TaskTodo], 1)
	assert.Empty(t, lanes[types.TaskCompleted])
}

func TestSetTaskStatusMovesBetweenLanes(t *testing.T) {
	tasks := []types.Task{
		{ID: "t1", Title: "a", Status: types.TaskTodo},
		{ID: "t2", Title: "b", Status: types.TaskTodo},
	}

	after := core.SetTaskStatus(tasks, "t1", types.TaskCompleted)
	lanes := core.GroupByLane(after)
	assert.Len(t, lanes[types.TaskTodo], 1)
	assert.Len(t, lanes[types.TaskCompleted], 1)

	// The input slice is untouched.
	assert.Equal(t, types.TaskTodo, tasks[0].Status)
}
