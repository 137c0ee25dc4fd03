package services

import (
	"fmt"
	"log"

	"github.com/tpms-simple/dto"
	"github.com/tpms-simple/models"
	"github.com/tpms-simple/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projects      *repositories.ProjectRepository
	tasks         *repositories.TaskRepository
	notifications *repositories.NotificationRepository
	logs          *repositories.ActivityLogRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(ds *repositories.Dataset) *ProjectService {
	return &ProjectService{
		projects:      repositories.NewProjectRepository(ds),
		tasks:         repositories.NewTaskRepository(ds),
		notifications: repositories.NewNotificationRepository(ds),
		logs:          repositories.NewActivityLogRepository(ds),
	}
}

// ListProjects retrieves the projects visible to the user
func (s *ProjectService) ListProjects(user models.User) []models.Project {
	return ScopedProjects(user, s.projects.FindAll())
}

// GetProject retrieves a project if it is within the user's scope
func (s *ProjectService) GetProject(id string, user models.User) (models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return models.Project{}, err
	}
	if !CanAccessProject(user, project) {
		return models.Project{}, fmt.Errorf("unauthorized: you don't have permission to access this project")
	}
	return project, nil
}

// GetProjectTasks retrieves the tasks of a project within the user's scope
func (s *ProjectService) GetProjectTasks(id string, user models.User) ([]models.Task, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !CanAccessProject(user, project) {
		return nil, fmt.Errorf("unauthorized: you don't have permission to access this project")
	}
	tasks := s.tasks.FindByProject(id)
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// CreateProject creates a project owned by the given manager
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest, actorID string) (models.Project, error) {
	status := req.Status
	if status == "" {
		status = models.ProjectNotStarted
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	members := req.TeamMemberIDs
	if members == nil {
		members = []string{}
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	project, err := s.projects.Create(models.Project{
		Name:          req.Name,
		Description:   req.Description,
		Status:        status,
		Priority:      priority,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		ManagerID:     req.ManagerID,
		TeamMemberIDs: members,
		Budget:        req.Budget,
		Progress:      req.Progress,
		Tags:          tags,
	})
	if err != nil {
		return models.Project{}, err
	}

	s.record(actorID, "created", project.ID, fmt.Sprintf("Created project %q", project.Name))
	return project, nil
}

// UpdateProject merges the non-nil request fields into the stored project
// and notifies the team
func (s *ProjectService) UpdateProject(id string, req dto.UpdateProjectRequest, actorID string) (models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return models.Project{}, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Priority != nil {
		project.Priority = *req.Priority
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = *req.EndDate
	}
	if req.ManagerID != nil {
		project.ManagerID = *req.ManagerID
	}
	if req.TeamMemberIDs != nil {
		project.TeamMemberIDs = *req.TeamMemberIDs
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.Progress != nil {
		project.Progress = *req.Progress
	}
	if req.Tags != nil {
		project.Tags = *req.Tags
	}

	if err := s.projects.Update(project); err != nil {
		return models.Project{}, err
	}

	s.record(actorID, "updated", project.ID, fmt.Sprintf("Updated project %q", project.Name))
	s.notifyTeam(project, actorID)
	return project, nil
}

// DeleteProject removes a project and cascades to its tasks
func (s *ProjectService) DeleteProject(id string, actorID string) error {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.projects.Delete(id); err != nil {
		return err
	}
	s.record(actorID, "deleted", id, fmt.Sprintf("Deleted project %q and its tasks", project.Name))
	return nil
}

func (s *ProjectService) notifyTeam(project models.Project, actorID string) {
	recipients := append([]string{project.ManagerID}, project.TeamMemberIDs...)
	seen := make(map[string]bool)
	for _, userID := range recipients {
		if userID == actorID || seen[userID] {
			continue
		}
		seen[userID] = true
		if _, err := s.notifications.Create(models.Notification{
			Type:      models.NotifProjectUpdated,
			Title:     "Project updated",
			Message:   fmt.Sprintf("Project %q has been updated", project.Name),
			UserID:    userID,
			RelatedID: project.ID,
		}); err != nil {
			log.Printf("Warning: failed to create notification: %v", err)
		}
	}
}

func (s *ProjectService) record(actorID, action, entityID, details string) {
	if _, err := s.logs.Append(models.ActivityLog{
		UserID:     actorID,
		Action:     action,
		EntityType: models.EntityProject,
		EntityID:   entityID,
		Details:    details,
	}); err != nil {
		log.Printf("Warning: failed to record activity: %v", err)
	}
}
