package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sirinethikonda/saas-core-project/core"
	"github.com/sirinethikonda/saas-core-project/internal/types"
)

func navViews(entries []core.NavEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.View
	}
	return out
}

func TestVisibleNavPerRole(t *testing.T) {
	assert.Equal(t,
		[]string{core.ViewDashboard, core.ViewProjects, core.ViewSettings},
		navViews(core.VisibleNav(types.RoleUser)))

	assert.Equal(t,
		[]string{core.ViewDashboard, core.ViewProjects, core.ViewTasks, core.ViewUsers, core.ViewActivity, core.ViewSettings},
		navViews(core.VisibleNav(types.RoleTenantAdmin)))

	assert.Equal(t,
		[]string{core.ViewDashboard, core.ViewProjects, core.ViewTasks, core.ViewTenants, core.ViewActivity, core.ViewSettings},
		navViews(core.VisibleNav(types.RoleSuperAdmin)))
}

func TestVisibleNavKeepsFixedOrder(t *testing.T) {
	// Order must follow the table, not the role that asked.
	entries := core.VisibleNav(types.RoleSuperAdmin)
	var lastIdx int = -1
	for _, e := range entries {
		idx := -1
		for i, n := range core.NavEntries {
			if n.View == e.View {
				idx = i
			}
		}
		assert.Greater(t, idx, lastIdx)
		lastIdx = idx
	}
}

func TestViewVisible(t *testing.T) {
	assert.True(t, core.ViewVisible(core.ViewUsers, types.RoleTenantAdmin))
	assert.False(t, core.ViewVisible(core.ViewUsers, types.RoleUser))
	assert.False(t, core.ViewVisible(core.ViewUsers, types.RoleSuperAdmin))
	assert.True(t, core.ViewVisible(core.ViewTenants, types.RoleSuperAdmin))
	assert.False(t, core.ViewVisible(core.ViewTenants, types.RoleTenantAdmin))
	assert.False(t, core.ViewVisible("unknown", types.RoleSuperAdmin))
}
