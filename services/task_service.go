package services

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/tpms-simple/dto"
	"github.com/tpms-simple/models"
	"github.com/tpms-simple/repositories"
	"github.com/tpms-simple/utils"
)

// TaskServiceOption configures a task service
type TaskServiceOption func(*TaskService)

// WithStrictReferences turns on referential integrity checks: projectId,
// assigneeId and reporterId must resolve at create/update time. The
// default is permissive, matching the original tool's reliance on the
// caller to supply valid ids.
func WithStrictReferences() TaskServiceOption {
	return func(s *TaskService) {
		s.strictRefs = true
	}
}

// TaskService handles business logic for tasks
type TaskService struct {
	tasks         *repositories.TaskRepository
	projects      *repositories.ProjectRepository
	users         *repositories.UserRepository
	notifications *repositories.NotificationRepository
	logs          *repositories.ActivityLogRepository
	strictRefs    bool
}

// NewTaskService creates a new task service instance
func NewTaskService(ds *repositories.Dataset, opts ...TaskServiceOption) *TaskService {
	s := &TaskService{
		tasks:         repositories.NewTaskRepository(ds),
		projects:      repositories.NewProjectRepository(ds),
		users:         repositories.NewUserRepository(ds),
		notifications: repositories.NewNotificationRepository(ds),
		logs:          repositories.NewActivityLogRepository(ds),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListTasks retrieves the tasks visible to the user
func (s *TaskService) ListTasks(user models.User) []models.Task {
	return ScopedTasks(user, s.projects.FindAll(), s.tasks.FindAll())
}

// GetTask retrieves a task by id
func (s *TaskService) GetTask(id string) (models.Task, error) {
	return s.tasks.FindByID(id)
}

// CreateTask creates a task and notifies the assignee
func (s *TaskService) CreateTask(req dto.CreateTaskRequest, actorID string) (models.Task, error) {
	status := req.Status
	if status == "" {
		status = models.TaskTodo
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	reporter := req.ReporterID
	if reporter == "" {
		reporter = actorID
	}

	if s.strictRefs {
		if err := s.checkReferences(req.ProjectID, req.AssigneeID, reporter); err != nil {
			return models.Task{}, err
		}
	}

	task := models.Task{
		Title:          req.Title,
		Description:    req.Description,
		Status:         status,
		Priority:       priority,
		ProjectID:      req.ProjectID,
		AssigneeID:     req.AssigneeID,
		ReporterID:     reporter,
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		Tags:           req.Tags,
	}
	if status == models.TaskCompleted {
		now := time.Now().UTC()
		task.Progress = 100
		task.CompletedDate = &now
	}

	task, err := s.tasks.Create(task)
	if err != nil {
		return models.Task{}, err
	}

	s.record(actorID, "created", task.ID, fmt.Sprintf("Created task %q", task.Title))
	if task.AssigneeID != actorID {
		s.notify(models.NotifTaskAssigned, "New task assigned",
			fmt.Sprintf("You have been assigned to %q", task.Title), task.AssigneeID, task.ID)
	}
	return task, nil
}

// UpdateTask merges the non-nil request fields into the stored task,
// applying the status transition rules when the status changes
func (s *TaskService) UpdateTask(id string, req dto.UpdateTaskRequest, actorID string) (models.Task, error) {
	task, err := s.tasks.FindByID(id)
	if err != nil {
		return models.Task{}, err
	}
	prevStatus := task.Status
	prevAssignee := task.AssigneeID

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.AssigneeID != nil {
		task.AssigneeID = *req.AssigneeID
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.DueDate != nil {
		task.DueDate = *req.DueDate
	}
	if req.EstimatedHours != nil {
		task.EstimatedHours = *req.EstimatedHours
	}
	if req.LoggedHours != nil {
		task.LoggedHours = *req.LoggedHours
	}
	if req.Progress != nil {
		task.Progress = *req.Progress
	}
	if req.Tags != nil {
		task.Tags = *req.Tags
	}
	if req.Status != nil {
		applyStatusRules(&task, *req.Status)
	}

	if s.strictRefs {
		if err := s.checkReferences(task.ProjectID, task.AssigneeID, task.ReporterID); err != nil {
			return models.Task{}, err
		}
	}

	if err := s.tasks.Update(task); err != nil {
		return models.Task{}, err
	}

	s.record(actorID, "updated", task.ID, fmt.Sprintf("Updated task %q", task.Title))
	if req.Status != nil && task.Status != prevStatus && task.AssigneeID != actorID {
		s.notify(models.NotifStatusChanged, "Task status changed",
			fmt.Sprintf("%q moved to %s", task.Title, task.Status), task.AssigneeID, task.ID)
	}
	if req.AssigneeID != nil && task.AssigneeID != prevAssignee && task.AssigneeID != actorID {
		s.notify(models.NotifTaskAssigned, "New task assigned",
			fmt.Sprintf("You have been assigned to %q", task.Title), task.AssigneeID, task.ID)
	}
	return task, nil
}

// ChangeStatus moves a task to a new workflow state
func (s *TaskService) ChangeStatus(id string, status models.TaskStatus, actorID string) (models.Task, error) {
	return s.UpdateTask(id, dto.UpdateTaskRequest{Status: &status}, actorID)
}

// DeleteTask removes a task
func (s *TaskService) DeleteTask(id string, actorID string) error {
	task, err := s.tasks.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.tasks.Delete(id); err != nil {
		return err
	}
	s.record(actorID, "deleted", id, fmt.Sprintf("Deleted task %q", task.Title))
	return nil
}

// AddComment appends a comment to the task and notifies the assignee
func (s *TaskService) AddComment(id string, req dto.AddCommentRequest, actorID string) (models.Task, error) {
	task, err := s.tasks.FindByID(id)
	if err != nil {
		return models.Task{}, err
	}

	task.Comments = append(task.Comments, models.Comment{
		ID:        utils.GenerateEntityID(utils.PrefixComment),
		UserID:    actorID,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	})
	if err := s.tasks.Update(task); err != nil {
		return models.Task{}, err
	}

	s.record(actorID, "commented", task.ID, fmt.Sprintf("Commented on task %q", task.Title))
	if task.AssigneeID != actorID {
		s.notify(models.NotifCommentAdded, "New comment",
			fmt.Sprintf("New comment on %q", task.Title), task.AssigneeID, task.ID)
	}
	return task, nil
}

// AddSubTask appends a checklist entry to the task
func (s *TaskService) AddSubTask(id string, req dto.AddSubTaskRequest, actorID string) (models.Task, error) {
	task, err := s.tasks.FindByID(id)
	if err != nil {
		return models.Task{}, err
	}

	task.SubTasks = append(task.SubTasks, models.SubTask{
		ID:    utils.GenerateEntityID(utils.PrefixSubTask),
		Title: req.Title,
	})
	if err := s.tasks.Update(task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// ToggleSubTask flips a checklist entry and recomputes the task progress
// as the completed fraction of its subtasks
func (s *TaskService) ToggleSubTask(id, subTaskID string, actorID string) (models.Task, error) {
	task, err := s.tasks.FindByID(id)
	if err != nil {
		return models.Task{}, err
	}

	found := false
	completed := 0
	for i := range task.SubTasks {
		if task.SubTasks[i].ID == subTaskID {
			task.SubTasks[i].Completed = !task.SubTasks[i].Completed
			found = true
		}
		if task.SubTasks[i].Completed {
			completed++
		}
	}
	if !found {
		return models.Task{}, repositories.ErrNotFound
	}
	if len(task.SubTasks) > 0 {
		task.Progress = int(math.Round(float64(completed) / float64(len(task.SubTasks)) * 100))
	}

	if err := s.tasks.Update(task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// applyStatusRules sets the workflow state. Entering completed forces
// progress to 100 and stamps the completion date; leaving completed
// clears it. No transition is rejected.
func applyStatusRules(task *models.Task, status models.TaskStatus) {
	if status == models.TaskCompleted {
		if task.Status != models.TaskCompleted {
			now := time.Now().UTC()
			task.CompletedDate = &now
		}
		task.Progress = 100
	} else {
		task.CompletedDate = nil
	}
	task.Status = status
}

func (s *TaskService) checkReferences(projectID, assigneeID, reporterID string) error {
	if _, err := s.projects.FindByID(projectID); err != nil {
		return fmt.Errorf("project %s does not exist", projectID)
	}
	if _, err := s.users.FindByID(assigneeID); err != nil {
		return fmt.Errorf("assignee %s does not exist", assigneeID)
	}
	if reporterID != "" {
		if _, err := s.users.FindByID(reporterID); err != nil {
			return fmt.Errorf("reporter %s does not exist", reporterID)
		}
	}
	return nil
}

func (s *TaskService) notify(notifType models.NotificationType, title, message, userID, relatedID string) {
	if _, err := s.notifications.Create(models.Notification{
		Type:      notifType,
		Title:     title,
		Message:   message,
		UserID:    userID,
		RelatedID: relatedID,
	}); err != nil {
		log.Printf("Warning: failed to create notification: %v", err)
	}
}

func (s *TaskService) record(actorID, action, entityID, details string) {
	if _, err := s.logs.Append(models.ActivityLog{
		UserID:     actorID,
		Action:     action,
		EntityType: models.EntityTask,
		EntityID:   entityID,
		Details:    details,
	}); err != nil {
		log.Printf("Warning: failed to record activity: %v", err)
	}
}
