// Package core holds the view logic that is independent of any widget:
// client-side list filtering, board grouping, dashboard aggregation, modal
// form state and validation, and the role-based navigation table.
package core

import (
	"strings"

	"github.com/sirinethikonda/saas-core-project/internal/types"
)

// FilterAll is the select value meaning "no filter". An empty string is
// treated the same way.
const FilterAll = "all"

func matchAll(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ProjectFilter narrows a fetched project list without re-fetching.
type ProjectFilter struct {
	Search string
	Status string
}

func FilterProjects(projects []types.Project, f ProjectFilter) []types.Project {
	out := make([]types.Project, 0, len(projects))
	for _, p := range projects {
		if contains(p.Name, f.Search) && matchAll(f.Status, p.Status) {
			out = append(out, p)
		}
	}
	return out
}

// TaskFilter narrows a fetched task list.
type TaskFilter struct {
	Search   string
	Status   string
	Priority string
}

func FilterTasks(tasks []types.Task, f TaskFilter) []types.Task {
	out := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		if contains(t.Title, f.Search) &&
			matchAll(f.Status, t.Status) &&
			matchAll(f.Priority, t.Priority) {
			out = append(out, t)
		}
	}
	return out
}

// MemberFilter narrows a tenant's member list. Search matches name or email.
type MemberFilter struct {
	Search string
	Role   string
}

func FilterMembers(members []types.User, f MemberFilter) []types.User {
	out := make([]types.User, 0, len(members))
	for _, m := range members {
		if (contains(m.FullName, f.Search) || contains(m.Email, f.Search)) &&
			matchAll(f.Role, m.Role) {
			out = append(out, m)
		}
	}
	return out
}

// TenantFilter narrows the platform tenant list. Search matches name or
// subdomain.
type TenantFilter struct {
	Search string
	Status string
}

func FilterTenants(tenants []types.Tenant, f TenantFilter) []types.Tenant {
	out := make([]types.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if (contains(t.Name, f.Search) || contains(t.Subdomain, f.Search)) &&
			matchAll(f.Status, t.Status) {
			out = append(out, t)
		}
	}
	return out
}

// FilterAudit matches the search term against action and details.
func FilterAudit(entries []types.AuditEntry, search string) []types.AuditEntry {
	out := make([]types.AuditEntry, 0, len(entries))
	for _, e := range entries {
		if contains(e.Action, search) || contains(e.Details, search) {
			out = append(out, e)
		}
	}
	return out
}

// BoardLanes is the fixed lane order of the per-project task board. Every
// lane renders even when empty.
var BoardLanes = []string{types.TaskTodo, types.TaskInProgress, types.TaskCompleted}

// GroupByLane splits tasks into the board lanes, preserving input order
// within each lane. Tasks with a status outside the known lanes are dropped;
// normalization upstream maps unknown-empty statuses to todo already.
func GroupByLane(tasks []types.Task) map[string][]types.Task {
	lanes := make(map[string][]types.Task, len(BoardLanes))
	for _, lane := range BoardLanes {
		lanes[lane] = []types.Task{}
	}
	for _, t := range tasks {
		if _, ok := lanes[t.Status]; ok {
			lanes[t.Status] = append(lanes[t.Status], t)
		}
	}
	return lanes
}

// RemoveTask returns tasks without the given id, used after a confirmed
// delete instead of a re-fetch.
func RemoveTask(tasks []types.Task, id types.ID) []types.Task {
	out := make([]types.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// SetTaskStatus returns tasks with the given task moved to status, applied
// after the server confirmed the mutation. Overlapping mutations on the same
// row keep last-writer-wins semantics; no version check is attempted.
func SetTaskStatus(tasks []types.Task, id types.ID, status string) []types.Task {
	out := make([]types.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = status
		}
	}
	return out
}
