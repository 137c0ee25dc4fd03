package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpms-simple/models"
)

func sampleProject(name string) models.Project {
	return models.Project{
		Name:          name,
		Description:   "test project",
		Status:        models.ProjectInProgress,
		Priority:      models.PriorityMedium,
		ManagerID:     "user-e5f6a7b8",
		TeamMemberIDs: []string{"user-c9d0e1f2"},
		Tags:          []string{},
	}
}

func sampleTask(projectID, title string) models.Task {
	return models.Task{
		Title:      title,
		Status:     models.TaskTodo,
		Priority:   models.PriorityMedium,
		ProjectID:  projectID,
		AssigneeID: "user-c9d0e1f2",
		ReporterID: "user-e5f6a7b8",
		DueDate:    time.Now().UTC().AddDate(0, 0, 7),
	}
}

func TestCreateStampsIDAndTimestamps(t *testing.T) {
	ds := newTestDataset(t)
	repo := NewTaskRepository(ds)

	project, err := NewProjectRepository(ds).Create(sampleProject("P"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(project.ID, "proj-"))
	assert.Len(t, project.ID, len("proj-")+8)
	assert.False(t, project.CreatedAt.IsZero())
	assert.Equal(t, project.CreatedAt, project.UpdatedAt)

	task, err := repo.Create(sampleTask(project.ID, "T"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(task.ID, "task-"))
	assert.NotNil(t, task.SubTasks)
	assert.NotNil(t, task.Comments)

	// Round-trip: the created entity is immediately readable
	found, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, found)
}

func TestUpdateMissingIDReturnsNotFound(t *testing.T) {
	ds := newTestDataset(t)

	err := NewTaskRepository(ds).Update(models.Task{ID: "task-00000000"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = NewProjectRepository(ds).Delete("proj-00000000")
	assert.ErrorIs(t, err, ErrNotFound)

	err = NewUserRepository(ds).Delete("user-00000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	ds := newTestDataset(t)
	repo := NewTaskRepository(ds)

	task, err := repo.Create(sampleTask("proj-11aa22bb", "T"))
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	task.Title = "Renamed"
	require.NoError(t, repo.Update(task))

	found, err := repo.FindByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Title)
	assert.True(t, found.UpdatedAt.After(found.CreatedAt))
}

func TestDeleteProjectCascadesToTasks(t *testing.T) {
	ds := newTestDataset(t)
	projects := NewProjectRepository(ds)
	tasks := NewTaskRepository(ds)

	doomed, err := projects.Create(sampleProject("Doomed"))
	require.NoError(t, err)
	other, err := projects.Create(sampleProject("Survivor"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := tasks.Create(sampleTask(doomed.ID, "doomed task"))
		require.NoError(t, err)
	}
	kept, err := tasks.Create(sampleTask(other.ID, "kept task"))
	require.NoError(t, err)

	require.NoError(t, projects.Delete(doomed.ID))

	_, err = projects.FindByID(doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, tasks.FindByProject(doomed.ID))

	// Tasks of other projects are untouched
	survivors := tasks.FindByProject(other.ID)
	require.Len(t, survivors, 1)
	assert.Equal(t, kept.ID, survivors[0].ID)
}

func TestFindByForeignKey(t *testing.T) {
	ds := newTestDataset(t)
	tasks := NewTaskRepository(ds)

	project, err := NewProjectRepository(ds).Create(sampleProject("P"))
	require.NoError(t, err)

	mine := sampleTask(project.ID, "mine")
	mine.AssigneeID = "user-36a7b8c9"
	created, err := tasks.Create(mine)
	require.NoError(t, err)

	byProject := tasks.FindByProject(project.ID)
	require.Len(t, byProject, 1)
	assert.Equal(t, created.ID, byProject[0].ID)

	byAssignee := tasks.FindByAssignee("user-36a7b8c9")
	require.NotEmpty(t, byAssignee)
	for _, task := range byAssignee {
		assert.Equal(t, "user-36a7b8c9", task.AssigneeID)
	}
}

func TestNotificationReadTracking(t *testing.T) {
	ds := newTestDataset(t)
	repo := NewNotificationRepository(ds)

	first, err := repo.Create(models.Notification{
		Type:    models.NotifTaskAssigned,
		Title:   "one",
		Message: "first",
		UserID:  "user-test",
	})
	require.NoError(t, err)
	_, err = repo.Create(models.Notification{
		Type:    models.NotifCommentAdded,
		Title:   "two",
		Message: "second",
		UserID:  "user-test",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.CountUnread("user-test"))

	// Newest first ordering
	list := repo.FindByUser("user-test")
	require.Len(t, list, 2)
	assert.Equal(t, "two", list[0].Title)

	require.NoError(t, repo.MarkRead(first.ID))
	assert.Equal(t, 1, repo.CountUnread("user-test"))

	require.NoError(t, repo.MarkAllRead("user-test"))
	assert.Equal(t, 0, repo.CountUnread("user-test"))

	assert.ErrorIs(t, repo.MarkRead("notif-00000000"), ErrNotFound)
}

func TestActivityLogAppendIsNewestFirst(t *testing.T) {
	ds := newTestDataset(t)
	repo := NewActivityLogRepository(ds)

	_, err := repo.Append(models.ActivityLog{
		UserID:     "user-test",
		Action:     "created",
		EntityType: models.EntityTask,
		EntityID:   "task-x",
		Details:    "older",
	})
	require.NoError(t, err)
	_, err = repo.Append(models.ActivityLog{
		UserID:     "user-test",
		Action:     "updated",
		EntityType: models.EntityTask,
		EntityID:   "task-x",
		Details:    "newer",
	})
	require.NoError(t, err)

	recent := repo.FindRecent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "newer", recent[0].Details)
	assert.Equal(t, "older", recent[1].Details)
}
