package services

import (
	"fmt"

	"github.com/sirinethikonda/saas-core-project/internal/types"
)

// ProjectService covers the project endpoints, including the tasks scoped to
// a single project.
type ProjectService struct {
	api *Client
}

func NewProjectService(api *Client) *ProjectService {
	return &ProjectService{api: api}
}

// List fetches every project visible to the current tenant.
func (s *ProjectService) List() ([]types.Project, error) {
	resp, err := s.api.Get("/projects")
	if err != nil {
		return nil, err
	}
	var projects []types.Project
	resp.Collection("projects", &projects)
	return projects, nil
}

func (s *ProjectService) Get(id types.ID) (*types.Project, error) {
	resp, err := s.api.Get("/projects/" + id.String())
	if err != nil {
		return nil, err
	}
	var project types.Project
	if err := resp.Object("project", &project); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &project, nil
}

func (s *ProjectService) Create(payload map[string]any) error {
	_, err := s.api.Post("/projects", payload)
	return err
}

func (s *ProjectService) Update(id types.ID, payload map[string]any) error {
	_, err := s.api.Put("/projects/"+id.String(), payload)
	return err
}

func (s *ProjectService) Delete(id types.ID) error {
	_, err := s.api.Delete("/projects/" + id.String())
	return err
}

// Tasks fetches the tasks of one project, with statuses normalized to the
// lowercase lane names.
func (s *ProjectService) Tasks(projectID types.ID) ([]types.Task, error) {
	resp, err := s.api.Get("/projects/" + projectID.String() + "/tasks")
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

func (s *ProjectService) CreateTask(projectID types.ID, payload map[string]any) error {
	_, err := s.api.Post("/projects/"+projectID.String()+"/tasks", payload)
	return err
}
