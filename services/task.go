package services

import (
	"github.com/sirinethikonda/saas-core-project/internal/types"
)

// TaskService covers the cross-project task endpoints.
type TaskService struct {
	api *Client
}

func NewTaskService(api *Client) *TaskService {
	return &TaskService{api: api}
}

// List fetches every task across the tenant's projects, statuses normalized.
func (s *TaskService) List() ([]types.Task, error) {
	resp, err := s.api.Get("/tasks")
	if err != nil {
		return nil, err
	}
	var tasks []types.Task
	resp.Collection("tasks", &tasks)
	for i := range tasks {
		tasks[i].Status = types.NormalizeTaskStatus(tasks[i].Status)
	}
	return tasks, nil
}

// UpdateStatus is the status-only mutation used by the board's inline select.
func (s *TaskService) UpdateStatus(id types.ID, status string) error {
	_, err := s.api.Patch("/tasks/"+id.String()+"/status", map[string]any{"status": status})
	return err
}

func (s *TaskService) Delete(id types.ID) error {
	_, err := s.api.Delete("/tasks/" + id.String())
	return err
}
