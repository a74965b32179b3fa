package core

import (
	"github.com/sirinethikonda/saas-core-project/internal/types"
)

// DashboardStats are the four counters derived client-side from the project
// collection; the backend exposes no aggregation endpoint.
type DashboardStats struct {
	Projects  int
	Tasks     int
	Completed int
	Pending   int
}

// Summarize reduces the project collection in a single pass.
func Summarize(projects []types.Project) DashboardStats {
	stats := DashboardStats{Projects: len(projects)}
	for _, p := range projects {
		stats.Tasks += p.TaskCount
		stats.Completed += p.CompletedTaskCount
	}
	stats.Pending = stats.Tasks - stats.Completed
	return stats
}

// ActiveProjects returns up to limit currently active projects, in input
// order, for the dashboard's quick-navigation preview.
func ActiveProjects(projects []types.Project, limit int) []types.Project {
	out := make([]types.Project, 0, limit)
	for _, p := range projects {
		if p.Status != types.ProjectActive {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}
