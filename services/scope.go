package services

import "github.com/tpms-simple/models"

// Role scope: the single canonical visibility rule, applied identically
// wherever project or task lists are surfaced.
//
//   - admin sees everything
//   - project_manager sees the projects they manage and the tasks of
//     those projects (membership alone does not widen a manager's scope)
//   - team_member sees projects listing them as a member and tasks
//     assigned to them

// ScopedProjects filters projects down to what the user may see
func ScopedProjects(user models.User, projects []models.Project) []models.Project {
	switch user.Role {
	case models.RoleAdmin:
		return projects
	case models.RoleProjectManager:
		var visible []models.Project
		for _, p := range projects {
			if p.ManagerID == user.ID {
				visible = append(visible, p)
			}
		}
		return visible
	default:
		var visible []models.Project
		for _, p := range projects {
			if p.HasMember(user.ID) {
				visible = append(visible, p)
			}
		}
		return visible
	}
}

// ScopedTasks filters tasks down to what the user may see. The full
// project collection is needed to resolve a manager's task scope.
func ScopedTasks(user models.User, projects []models.Project, tasks []models.Task) []models.Task {
	switch user.Role {
	case models.RoleAdmin:
		return tasks
	case models.RoleProjectManager:
		managed := make(map[string]bool)
		for _, p := range projects {
			if p.ManagerID == user.ID {
				managed[p.ID] = true
			}
		}
		var visible []models.Task
		for _, t := range tasks {
			if managed[t.ProjectID] {
				visible = append(visible, t)
			}
		}
		return visible
	default:
		var visible []models.Task
		for _, t := range tasks {
			if t.AssigneeID == user.ID {
				visible = append(visible, t)
			}
		}
		return visible
	}
}

// CanAccessProject reports whether the user's scope includes the project
func CanAccessProject(user models.User, project models.Project) bool {
	switch user.Role {
	case models.RoleAdmin:
		return true
	case models.RoleProjectManager:
		return project.ManagerID == user.ID
	default:
		return project.HasMember(user.ID)
	}
}
