package repositories

import (
	"time"

	"github.com/tpms-simple/models"
	"github.com/tpms-simple/utils"
)

// TaskRepository handles store operations for tasks
type TaskRepository struct {
	ds *Dataset
}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository(ds *Dataset) *TaskRepository {
	return &TaskRepository{ds: ds}
}

// FindAll retrieves all tasks
func (r *TaskRepository) FindAll() []models.Task {
	return r.ds.Tasks
}

// FindByID retrieves a task by id
func (r *TaskRepository) FindByID(id string) (models.Task, error) {
	for _, t := range r.ds.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, ErrNotFound
}

// FindByProject retrieves all tasks belonging to a project
func (r *TaskRepository) FindByProject(projectID string) []models.Task {
	var tasks []models.Task
	for _, t := range r.ds.Tasks {
		if t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// FindByAssignee retrieves all tasks assigned to a user
func (r *TaskRepository) FindByAssignee(userID string) []models.Task {
	var tasks []models.Task
	for _, t := range r.ds.Tasks {
		if t.AssigneeID == userID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

// Create stamps a fresh id and timestamps, appends the task and persists
// the collection. Nested collections are initialized so they serialize
// as empty arrays rather than null.
func (r *TaskRepository) Create(task models.Task) (models.Task, error) {
	now := time.Now().UTC()
	task.ID = utils.GenerateEntityID(utils.PrefixTask)
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.SubTasks == nil {
		task.SubTasks = []models.SubTask{}
	}
	if task.Comments == nil {
		task.Comments = []models.Comment{}
	}
	if task.Attachments == nil {
		task.Attachments = []models.Attachment{}
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}
	r.ds.Tasks = append(r.ds.Tasks, task)
	if err := r.ds.persistTasks(); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// Update replaces the task with the matching id and refreshes updatedAt
func (r *TaskRepository) Update(task models.Task) error {
	for i := range r.ds.Tasks {
		if r.ds.Tasks[i].ID == task.ID {
			task.UpdatedAt = time.Now().UTC()
			r.ds.Tasks[i] = task
			return r.ds.persistTasks()
		}
	}
	return ErrNotFound
}

// Delete removes the task with the matching id
func (r *TaskRepository) Delete(id string) error {
	for i := range r.ds.Tasks {
		if r.ds.Tasks[i].ID == id {
			r.ds.Tasks = append(r.ds.Tasks[:i], r.ds.Tasks[i+1:]...)
			return r.ds.persistTasks()
		}
	}
	return ErrNotFound
}
