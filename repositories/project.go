package repositories

import (
	"time"

	"github.com/tpms-simple/models"
	"github.com/tpms-simple/utils"
)

// ProjectRepository handles store operations for projects
type ProjectRepository struct {
	ds *Dataset
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(ds *Dataset) *ProjectRepository {
	return &ProjectRepository{ds: ds}
}

// FindAll retrieves all projects
func (r *ProjectRepository) FindAll() []models.Project {
	return r.ds.Projects
}

// FindByID retrieves a project by id
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	for _, p := range r.ds.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, ErrNotFound
}

// FindByManager retrieves all projects managed by the given user
func (r *ProjectRepository) FindByManager(userID string) []models.Project {
	var projects []models.Project
	for _, p := range r.ds.Projects {
		if p.ManagerID == userID {
			projects = append(projects, p)
		}
	}
	return projects
}

// FindByMember retrieves all projects listing the given user as a team member
func (r *ProjectRepository) FindByMember(userID string) []models.Project {
	var projects []models.Project
	for _, p := range r.ds.Projects {
		if p.HasMember(userID) {
			projects = append(projects, p)
		}
	}
	return projects
}

// Create stamps a fresh id and timestamps, appends the project and
// persists the collection
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	now := time.Now().UTC()
	project.ID = utils.GenerateEntityID(utils.PrefixProject)
	project.CreatedAt = now
	project.UpdatedAt = now
	r.ds.Projects = append(r.ds.Projects, project)
	if err := r.ds.persistProjects(); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Update replaces the project with the matching id and refreshes updatedAt
func (r *ProjectRepository) Update(project models.Project) error {
	for i := range r.ds.Projects {
		if r.ds.Projects[i].ID == project.ID {
			project.UpdatedAt = time.Now().UTC()
			r.ds.Projects[i] = project
			return r.ds.persistProjects()
		}
	}
	return ErrNotFound
}

// Delete removes the project and cascades to every task whose projectId
// matches. The project snapshot is written first; a crash between the two
// writes can leave orphaned tasks (accepted, see the single-writer model).
// Notifications and activity logs referencing the project are left in
// place as tombstones.
func (r *ProjectRepository) Delete(id string) error {
	idx := -1
	for i := range r.ds.Projects {
		if r.ds.Projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	r.ds.Projects = append(r.ds.Projects[:idx], r.ds.Projects[idx+1:]...)
	if err := r.ds.persistProjects(); err != nil {
		return err
	}

	remaining := r.ds.Tasks[:0]
	for _, t := range r.ds.Tasks {
		if t.ProjectID != id {
			remaining = append(remaining, t)
		}
	}
	r.ds.Tasks = remaining
	return r.ds.persistTasks()
}
