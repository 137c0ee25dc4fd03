package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpms-simple/dto"
	"github.com/tpms-simple/models"
	"github.com/tpms-simple/repositories"
)

func TestChangeStatusToCompleted(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewTaskService(ds)

	// Seeded as in_progress with partial progress
	task, err := svc.ChangeStatus("task-4b5a6978", models.TaskCompleted, "user-e5f6a7b8")
	require.NoError(t, err)

	assert.Equal(t, models.TaskCompleted, task.Status)
	assert.Equal(t, 100, task.Progress)
	require.NotNil(t, task.CompletedDate)

	// Moving back out of completed clears the completion date
	task, err = svc.ChangeStatus(task.ID, models.TaskInProgress, "user-e5f6a7b8")
	require.NoError(t, err)
	assert.Equal(t, models.TaskInProgress, task.Status)
	assert.Nil(t, task.CompletedDate)
}

func TestUpdateTaskMergesOnlyProvidedFields(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewTaskService(ds)

	before, err := svc.GetTask("task-4b5a6978")
	require.NoError(t, err)

	title := "Rework navigation"
	after, err := svc.UpdateTask(before.ID, dto.UpdateTaskRequest{Title: &title}, "user-e5f6a7b8")
	require.NoError(t, err)

	assert.Equal(t, title, after.Title)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.AssigneeID, after.AssigneeID)
	assert.Equal(t, before.DueDate, after.DueDate)
	assert.Equal(t, before.Progress, after.Progress)
}

func TestCreateTaskNotifiesAssignee(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewTaskService(ds)
	notifications := NewNotificationService(ds)

	unreadBefore := notifications.UnreadCount("user-36a7b8c9")

	task, err := svc.CreateTask(dto.CreateTaskRequest{
		Title:      "Review brand palette",
		ProjectID:  "proj-11aa22bb",
		AssigneeID: "user-36a7b8c9",
	}, "user-e5f6a7b8")
	require.NoError(t, err)
	assert.Equal(t, models.TaskTodo, task.Status, "status defaults to todo")
	assert.Equal(t, "user-e5f6a7b8", task.ReporterID, "reporter defaults to the actor")

	list := notifications.ListForUser("user-36a7b8c9")
	require.NotEmpty(t, list)
	assert.Equal(t, models.NotifTaskAssigned, list[0].Type)
	assert.Equal(t, task.ID, list[0].RelatedID)
	assert.Equal(t, unreadBefore+1, notifications.UnreadCount("user-36a7b8c9"))
}

func TestCreateTaskSelfAssignedSkipsNotification(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewTaskService(ds)
	notifications := NewNotificationService(ds)

	unreadBefore := notifications.UnreadCount("user-e5f6a7b8")

	_, err := svc.CreateTask(dto.CreateTaskRequest{
		Title:      "Write sprint notes",
		ProjectID:  "proj-11aa22bb",
		AssigneeID: "user-e5f6a7b8",
	}, "user-e5f6a7b8")
	require.NoError(t, err)

	assert.Equal(t, unreadBefore, notifications.UnreadCount("user-e5f6a7b8"))
}

func TestUpdateTaskReassignNotifiesNewAssignee(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewTaskService(ds)
	notifications := NewNotificationService(ds)

	assignee := "user-36a7b8c9"
	unreadBefore := notifications.UnreadCount(assignee)

	_, err := svc.UpdateTask("task-8897a6b5", dto.UpdateTaskRequest{AssigneeID: &assignee}, "user-e5f6a7b8")
	require.NoError(t, err)

	list := notifications.ListForUser(assignee)
	require.NotEmpty(t, list)
	assert.Equal(t, models.NotifTaskAssigned, list[0].Type)
	assert.Equal(t, unreadBefore+1, notifications.UnreadCount(assignee))
}

func TestStrictReferencesRejectsDanglingIDs(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewTaskService(ds, WithStrictReferences())

	_, err := svc.CreateTask(dto.CreateTaskRequest{
		Title:      "Orphan",
		ProjectID:  "proj-00000000",
		AssigneeID: "user-c9d0e1f2",
	}, "user-e5f6a7b8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	// Valid references pass
	_, err = svc.CreateTask(dto.CreateTaskRequest{
		Title:      "Grounded",
		ProjectID:  "proj-11aa22bb",
		AssigneeID: "user-c9d0e1f2",
	}, "user-e5f6a7b8")
	assert.NoError(t, err)
}

func TestToggleSubTaskRecomputesProgress(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewTaskService(ds)

	// Seed task has two subtasks, one completed
	task, err := svc.ToggleSubTask("task-4b5a6978", "sub-5e6f7a8b", "user-c9d0e1f2")
	require.NoError(t, err)
	assert.Equal(t, 100, task.Progress)

	task, err = svc.ToggleSubTask("task-4b5a6978", "sub-5e6f7a8b", "user-c9d0e1f2")
	require.NoError(t, err)
	assert.Equal(t, 50, task.Progress)

	_, err = svc.ToggleSubTask("task-4b5a6978", "sub-00000000", "user-c9d0e1f2")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAddCommentAndSubTask(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewTaskService(ds)

	task, err := svc.AddComment("task-8897a6b5", dto.AddCommentRequest{Content: "Blocked on CMS export"}, "user-c9d0e1f2")
	require.NoError(t, err)
	require.Len(t, task.Comments, 1)
	assert.Equal(t, "Blocked on CMS export", task.Comments[0].Content)
	assert.Equal(t, "user-c9d0e1f2", task.Comments[0].UserID)
	assert.NotEmpty(t, task.Comments[0].ID)

	task, err = svc.AddSubTask(task.ID, dto.AddSubTaskRequest{Title: "Export page inventory"}, "user-c9d0e1f2")
	require.NoError(t, err)
	require.Len(t, task.SubTasks, 1)
	assert.False(t, task.SubTasks[0].Completed)
}

func TestDeleteProjectRemovesItsTasks(t *testing.T) {
	ds := newTestDataset(t)
	projects := NewProjectService(ds)
	tasks := NewTaskService(ds)

	require.NotEmpty(t, repositories.NewTaskRepository(ds).FindByProject("proj-11aa22bb"))

	require.NoError(t, projects.DeleteProject("proj-11aa22bb", "user-a1b2c3d4"))

	_, err := tasks.GetTask("task-4b5a6978")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Empty(t, repositories.NewTaskRepository(ds).FindByProject("proj-11aa22bb"))
}

func TestUpdateProjectNotifiesTeamExceptActor(t *testing.T) {
	ds := newTestDataset(t)
	svc := NewProjectService(ds)
	notifications := NewNotificationService(ds)

	// proj-11aa22bb: manager user-e5f6a7b8, members user-c9d0e1f2 and
	// user-36a7b8c9. The manager edits, so only the two members hear.
	managerBefore := notifications.UnreadCount("user-e5f6a7b8")
	memberBefore := notifications.UnreadCount("user-36a7b8c9")

	status := models.ProjectOnHold
	_, err := svc.UpdateProject("proj-11aa22bb", dto.UpdateProjectRequest{Status: &status}, "user-e5f6a7b8")
	require.NoError(t, err)

	assert.Equal(t, managerBefore, notifications.UnreadCount("user-e5f6a7b8"))
	assert.Equal(t, memberBefore+1, notifications.UnreadCount("user-36a7b8c9"))

	list := notifications.ListForUser("user-36a7b8c9")
	require.NotEmpty(t, list)
	assert.Equal(t, models.NotifProjectUpdated, list[0].Type)
}
