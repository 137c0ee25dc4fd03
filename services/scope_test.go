package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpms-simple/models"
)

var scopeProjects = []models.Project{
	{ID: "proj-1", ManagerID: "pm-1", TeamMemberIDs: []string{"tm-1"}},
	{ID: "proj-2", ManagerID: "pm-2", TeamMemberIDs: []string{"tm-1", "pm-1"}},
	{ID: "proj-3", ManagerID: "pm-1", TeamMemberIDs: []string{"tm-2"}},
}

var scopeTasks = []models.Task{
	{ID: "task-1", ProjectID: "proj-1", AssigneeID: "tm-1"},
	{ID: "task-2", ProjectID: "proj-2", AssigneeID: "tm-2"},
	{ID: "task-3", ProjectID: "proj-3", AssigneeID: "tm-1"},
}

func TestScopedProjectsAdmin(t *testing.T) {
	admin := models.User{ID: "adm-1", Role: models.RoleAdmin}
	assert.Len(t, ScopedProjects(admin, scopeProjects), 3)
	assert.Len(t, ScopedTasks(admin, scopeProjects, scopeTasks), 3)
}

func TestScopedProjectsManager(t *testing.T) {
	pm := models.User{ID: "pm-1", Role: models.RoleProjectManager}

	// Managed projects only: membership in proj-2 does not widen scope
	visible := ScopedProjects(pm, scopeProjects)
	require.Len(t, visible, 2)
	assert.Equal(t, "proj-1", visible[0].ID)
	assert.Equal(t, "proj-3", visible[1].ID)

	tasks := ScopedTasks(pm, scopeProjects, scopeTasks)
	require.Len(t, tasks, 2)
	assert.Equal(t, "task-1", tasks[0].ID)
	assert.Equal(t, "task-3", tasks[1].ID)
}

func TestScopedProjectsTeamMember(t *testing.T) {
	tm := models.User{ID: "tm-1", Role: models.RoleTeamMember}

	visible := ScopedProjects(tm, scopeProjects)
	require.Len(t, visible, 2)
	assert.Equal(t, "proj-1", visible[0].ID)
	assert.Equal(t, "proj-2", visible[1].ID)

	// Tasks assigned to them, regardless of project membership
	tasks := ScopedTasks(tm, scopeProjects, scopeTasks)
	require.Len(t, tasks, 2)
	assert.Equal(t, "task-1", tasks[0].ID)
	assert.Equal(t, "task-3", tasks[1].ID)
}

func TestCanAccessProject(t *testing.T) {
	project := scopeProjects[0]

	assert.True(t, CanAccessProject(models.User{ID: "x", Role: models.RoleAdmin}, project))
	assert.True(t, CanAccessProject(models.User{ID: "pm-1", Role: models.RoleProjectManager}, project))
	assert.False(t, CanAccessProject(models.User{ID: "pm-2", Role: models.RoleProjectManager}, project))
	assert.True(t, CanAccessProject(models.User{ID: "tm-1", Role: models.RoleTeamMember}, project))
	assert.False(t, CanAccessProject(models.User{ID: "tm-2", Role: models.RoleTeamMember}, project))
}
