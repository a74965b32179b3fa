package core

import (
	"github.com/sirinethikonda/saas-core-project/internal/types"
)

// View names used by the navigation and the main window's content switcher.
const (
	ViewDashboard = "dashboard"
	ViewProjects  = "projects"
	ViewTasks     = "tasks"
	ViewUsers     = "users"
	ViewTenants   = "tenants"
	ViewActivity  = "activity"
	ViewSettings  = "settings"
)

// NavEntry is one navigation item. Icon is a symbolic name resolved to a
// theme resource by the UI layer.
type NavEntry struct {
	Label   string
	View    string
	Icon    string
	Visible func(role string) bool
}

func anyRole(string) bool { return true }

func adminRoles(role string) bool {
	return role == types.RoleTenantAdmin || role == types.RoleSuperAdmin
}

// NavEntries is the fixed-order navigation table. Visibility predicates run
// against the live session on every evaluation; nothing is cached.
var NavEntries = []NavEntry{
	{Label: "Dashboard", View: ViewDashboard, Icon: "home", Visible: anyRole},
	{Label: "Projects", View: ViewProjects, Icon: "folder", Visible: anyRole},
	{Label: "Tasks", View: ViewTasks, Icon: "list", Visible: adminRoles},
	{Label: "Users", View: ViewUsers, Icon: "account", Visible: func(role string) bool {
		return role == types.RoleTenantAdmin
	}},
	{Label: "Tenants", View: ViewTenants, Icon: "computer", Visible: func(role string) bool {
		return role == types.RoleSuperAdmin
	}},
	{Label: "Activity", View: ViewActivity, Icon: "history", Visible: adminRoles},
	{Label: "Settings", View: ViewSettings, Icon: "settings", Visible: anyRole},
}

// VisibleNav returns the navigation entries the given role may see, in the
// fixed table order.
func VisibleNav(role string) []NavEntry {
	out := make([]NavEntry, 0, len(NavEntries))
	for _, e := range NavEntries {
		if e.Visible(role) {
			out = append(out, e)
		}
	}
	return out
}

// ViewVisible reports whether the named view is reachable for the role. The
// main window uses it both as the route guard's role check and to decide
// whether a remembered pre-login destination can be restored.
func ViewVisible(view, role string) bool {
	for _, e := range NavEntries {
		if e.View == view {
			return e.Visible(role)
		}
	}
	return false
}
