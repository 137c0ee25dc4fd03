package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpms-simple/dto"
	"github.com/tpms-simple/models"
	"github.com/tpms-simple/repositories"
)

func taskWith(status models.TaskStatus, due time.Time) models.Task {
	return models.Task{Status: status, DueDate: due}
}

func TestCountOverdue(t *testing.T) {
	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tasks := []models.Task{
		taskWith(models.TaskTodo, yesterday),       // overdue
		taskWith(models.TaskCompleted, yesterday),  // completed in the past, not overdue
		taskWith(models.TaskInProgress, tomorrow),  // not due yet
		taskWith(models.TaskBlocked, time.Time{}),  // no due date, never overdue
	}

	assert.Equal(t, 1, CountOverdue(tasks, now))
}

func TestCountUpcoming(t *testing.T) {
	now := time.Now().UTC()

	tasks := []models.Task{
		taskWith(models.TaskTodo, now.Add(24*time.Hour)),      // within window
		taskWith(models.TaskTodo, now.Add(7*24*time.Hour)),    // boundary, within window
		taskWith(models.TaskTodo, now.Add(9*24*time.Hour)),    // beyond window
		taskWith(models.TaskTodo, now.Add(-48*time.Hour)),     // already overdue
		taskWith(models.TaskCompleted, now.Add(24*time.Hour)), // completed, ignored
	}

	assert.Equal(t, 2, CountUpcoming(tasks, now))
}

func TestHoursRollupZeroEstimateIsZeroEfficiency(t *testing.T) {
	tasks := []models.Task{
		{EstimatedHours: 0, LoggedHours: 12},
		{EstimatedHours: 0, LoggedHours: 3},
	}

	rollup := HoursRollup(tasks)
	assert.Equal(t, float64(0), rollup.EstimatedHours)
	assert.Equal(t, float64(15), rollup.LoggedHours)
	assert.Equal(t, 0, rollup.Efficiency, "zero estimate must yield 0, not a division error")
}

func TestHoursRollupEfficiency(t *testing.T) {
	tasks := []models.Task{
		{EstimatedHours: 10, LoggedHours: 8},
		{EstimatedHours: 10, LoggedHours: 7},
	}

	assert.Equal(t, 75, HoursRollup(tasks).Efficiency)
}

func TestAdherenceDefaultsToHundred(t *testing.T) {
	// No completed tasks at all
	adherence := Adherence([]models.Task{
		taskWith(models.TaskTodo, time.Now()),
		taskWith(models.TaskInProgress, time.Now()),
	})
	assert.Equal(t, dto.DeadlineAdherence{OnTime: 0, Late: 0, AdherenceRate: 100}, adherence)

	// Empty set
	assert.Equal(t, 100, Adherence(nil).AdherenceRate)
}

func TestAdherenceCountsOnTimeAndLate(t *testing.T) {
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	early := due.AddDate(0, 0, -1)
	late := due.AddDate(0, 0, 2)

	tasks := []models.Task{
		{Status: models.TaskCompleted, DueDate: due, CompletedDate: &early},
		{Status: models.TaskCompleted, DueDate: due, CompletedDate: &due}, // on the day counts as on time
		{Status: models.TaskCompleted, DueDate: due, CompletedDate: &late},
		{Status: models.TaskCompleted, DueDate: due}, // no completion date recorded, skipped
	}

	adherence := Adherence(tasks)
	assert.Equal(t, 2, adherence.OnTime)
	assert.Equal(t, 1, adherence.Late)
	assert.Equal(t, 67, adherence.AdherenceRate)
}

func TestMemberProductivity(t *testing.T) {
	users := []models.User{
		{ID: "user-a", Name: "Ana"},
		{ID: "user-b", Name: "Ben"},
	}
	tasks := []models.Task{
		{AssigneeID: "user-a", Status: models.TaskCompleted},
		{AssigneeID: "user-a", Status: models.TaskCompleted},
		{AssigneeID: "user-a", Status: models.TaskTodo},
		{AssigneeID: "user-b", Status: models.TaskTodo},
		{AssigneeID: "user-gone", Status: models.TaskCompleted},
	}

	result := MemberProductivity(tasks, users, 8)
	require.Len(t, result, 3)

	// Sorted by rate descending
	assert.Equal(t, "user-gone", result[0].UserID)
	assert.Equal(t, "Unknown", result[0].Name)
	assert.Equal(t, 100, result[0].Rate)

	assert.Equal(t, "Ana", result[1].Name)
	assert.Equal(t, 67, result[1].Rate)

	assert.Equal(t, "Ben", result[2].Name)
	assert.Equal(t, 0, result[2].Rate, "zero completed must be 0, not an error")
}

func TestAverageProgressEmptySet(t *testing.T) {
	assert.Equal(t, 0, AverageProgress(nil))
}

func TestProjectProgressItems(t *testing.T) {
	projects := []models.Project{
		{ID: "proj-a", Name: "A", Status: models.ProjectInProgress, Progress: 10},
		{ID: "proj-b", Name: "B", Status: models.ProjectInProgress, Progress: 42},
		{ID: "proj-c", Name: "C", Status: models.ProjectCancelled},
	}
	tasks := []models.Task{
		{ProjectID: "proj-a", Status: models.TaskCompleted},
		{ProjectID: "proj-a", Status: models.TaskTodo},
	}

	items := ProjectProgressItems(projects, tasks)
	require.Len(t, items, 2, "cancelled projects are skipped")

	// Task-derived progress when tasks exist
	assert.Equal(t, 50, items[0].Progress)
	// Stored progress as fallback
	assert.Equal(t, 42, items[1].Progress)
}

// Scenario from the dashboard: an admin and the assignee see the same
// relevant task set and therefore the same overdue count.
func TestOverdueScopeScenario(t *testing.T) {
	ds := newTestDataset(t)
	now := time.Now().UTC()

	// Drop the seed projects (and, by cascade, their tasks) so the
	// counts below come from this fixture alone.
	seedProjects := repositories.NewProjectRepository(ds)
	require.NoError(t, seedProjects.Delete("proj-11aa22bb"))
	require.NoError(t, seedProjects.Delete("proj-33cc44dd"))

	users := NewUserService(ds)
	admin, err := users.CreateUser(dtoUser("Admin A", "admin.a@example.com", models.RoleAdmin), "system")
	require.NoError(t, err)
	pm, err := users.CreateUser(dtoUser("PM1", "pm1@example.com", models.RoleProjectManager), "system")
	require.NoError(t, err)
	member, err := users.CreateUser(dtoUser("T1", "t1@example.com", models.RoleTeamMember), "system")
	require.NoError(t, err)

	projects := NewProjectService(ds)
	p1, err := projects.CreateProject(dto.CreateProjectRequest{
		Name:          "P1",
		ManagerID:     pm.ID,
		TeamMemberIDs: []string{member.ID},
	}, admin.ID)
	require.NoError(t, err)

	tasks := NewTaskService(ds)
	_, err = tasks.CreateTask(dto.CreateTaskRequest{
		Title:      "overdue todo",
		ProjectID:  p1.ID,
		AssigneeID: member.ID,
		DueDate:    now.AddDate(0, 0, -1),
	}, pm.ID)
	require.NoError(t, err)
	_, err = tasks.CreateTask(dto.CreateTaskRequest{
		Title:      "done early",
		Status:     models.TaskCompleted,
		ProjectID:  p1.ID,
		AssigneeID: member.ID,
		DueDate:    now.AddDate(0, 0, 1),
	}, pm.ID)
	require.NoError(t, err)

	stats := NewStatsService(ds)

	adminStats := stats.Dashboard(admin)
	assert.Equal(t, 1, adminStats.OverdueTasks)

	memberStats := stats.Dashboard(member)
	assert.Equal(t, 1, memberStats.OverdueTasks)
	assert.Equal(t, 2, memberStats.TotalTasks)
}

func dtoUser(name, email string, role models.UserRole) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
		Role:     role,
	}
}
