package database

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tpms-simple/models"
)

// Seed defaults are written on first boot, when a collection has no
// snapshot yet, and by the full data reset. All seed passwords are
// "password123".

func seedHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// SeedUsers returns the default user accounts
func SeedUsers() []models.User {
	hash := seedHash()
	joined := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	return []models.User{
		{
			ID:         "user-a1b2c3d4",
			Name:       "Sarah Mitchell",
			Email:      "sarah@example.com",
			Password:   hash,
			Role:       models.RoleAdmin,
			Department: "Operations",
			Phone:      "+1 555-0101",
			JoinDate:   joined,
			IsActive:   true,
		},
		{
			ID:         "user-e5f6a7b8",
			Name:       "James Okafor",
			Email:      "james@example.com",
			Password:   hash,
			Role:       models.RoleProjectManager,
			Department: "Engineering",
			Phone:      "+1 555-0102",
			JoinDate:   joined.AddDate(0, 1, 0),
			IsActive:   true,
		},
		{
			ID:         "user-c9d0e1f2",
			Name:       "Priya Raman",
			Email:      "priya@example.com",
			Password:   hash,
			Role:       models.RoleTeamMember,
			Department: "Engineering",
			Phone:      "+1 555-0103",
			JoinDate:   joined.AddDate(0, 2, 0),
			IsActive:   true,
		},
		{
			ID:         "user-36a7b8c9",
			Name:       "Diego Alvarez",
			Email:      "diego@example.com",
			Password:   hash,
			Role:       models.RoleTeamMember,
			Department: "Design",
			Phone:      "+1 555-0104",
			JoinDate:   joined.AddDate(0, 3, 0),
			IsActive:   true,
		},
	}
}

// SeedProjects returns the default projects
func SeedProjects() []models.Project {
	now := time.Now().UTC()
	return []models.Project{
		{
			ID:            "proj-11aa22bb",
			Name:          "Website Redesign",
			Description:   "Rebuild the marketing site with the new brand guidelines",
			Status:        models.ProjectInProgress,
			Priority:      models.PriorityHigh,
			StartDate:     now.AddDate(0, -2, 0),
			EndDate:       now.AddDate(0, 1, 0),
			ManagerID:     "user-e5f6a7b8",
			TeamMemberIDs: []string{"user-c9d0e1f2", "user-36a7b8c9"},
			Budget:        45000,
			Progress:      55,
			Tags:          []string{"web", "design"},
			CreatedAt:     now.AddDate(0, -2, 0),
			UpdatedAt:     now.AddDate(0, 0, -3),
		},
		{
			ID:            "proj-33cc44dd",
			Name:          "Mobile App MVP",
			Description:   "First release of the companion mobile app",
			Status:        models.ProjectNotStarted,
			Priority:      models.PriorityMedium,
			StartDate:     now.AddDate(0, 0, 14),
			EndDate:       now.AddDate(0, 4, 0),
			ManagerID:     "user-e5f6a7b8",
			TeamMemberIDs: []string{"user-c9d0e1f2"},
			Budget:        80000,
			Progress:      0,
			Tags:          []string{"mobile"},
			CreatedAt:     now.AddDate(0, 0, -10),
			UpdatedAt:     now.AddDate(0, 0, -10),
		},
	}
}

// SeedTasks returns the default tasks
func SeedTasks() []models.Task {
	now := time.Now().UTC()
	completed := now.AddDate(0, 0, -5)
	return []models.Task{
		{
			ID:             "task-0f1e2d3c",
			Title:          "Design homepage mockups",
			Description:    "High-fidelity mockups for the new homepage",
			Status:         models.TaskCompleted,
			Priority:       models.PriorityHigh,
			ProjectID:      "proj-11aa22bb",
			AssigneeID:     "user-36a7b8c9",
			ReporterID:     "user-e5f6a7b8",
			StartDate:      now.AddDate(0, -1, 0),
			DueDate:        now.AddDate(0, 0, -4),
			CompletedDate:  &completed,
			EstimatedHours: 24,
			LoggedHours:    20,
			Progress:       100,
			SubTasks:       []models.SubTask{},
			Comments:       []models.Comment{},
			Attachments:    []models.Attachment{},
			Tags:           []string{"design"},
			CreatedAt:      now.AddDate(0, -1, 0),
			UpdatedAt:      completed,
		},
		{
			ID:             "task-4b5a6978",
			Title:          "Implement responsive navigation",
			Description:    "Navigation bar with mobile breakpoints",
			Status:         models.TaskInProgress,
			Priority:       models.PriorityMedium,
			ProjectID:      "proj-11aa22bb",
			AssigneeID:     "user-c9d0e1f2",
			ReporterID:     "user-e5f6a7b8",
			StartDate:      now.AddDate(0, 0, -7),
			DueDate:        now.AddDate(0, 0, 3),
			EstimatedHours: 16,
			LoggedHours:    9,
			Progress:       40,
			SubTasks: []models.SubTask{
				{ID: "sub-1a2b3c4d", Title: "Desktop layout", Completed: true},
				{ID: "sub-5e6f7a8b", Title: "Mobile drawer", Completed: false},
			},
			Comments:    []models.Comment{},
			Attachments: []models.Attachment{},
			Tags:        []string{"frontend"},
			CreatedAt:   now.AddDate(0, 0, -7),
			UpdatedAt:   now.AddDate(0, 0, -1),
		},
		{
			ID:             "task-8897a6b5",
			Title:          "Content migration plan",
			Description:    "Inventory existing pages and map to the new structure",
			Status:         models.TaskTodo,
			Priority:       models.PriorityLow,
			ProjectID:      "proj-11aa22bb",
			AssigneeID:     "user-c9d0e1f2",
			ReporterID:     "user-e5f6a7b8",
			StartDate:      now.AddDate(0, 0, -2),
			DueDate:        now.AddDate(0, 0, -1),
			EstimatedHours: 8,
			LoggedHours:    0,
			Progress:       0,
			SubTasks:       []models.SubTask{},
			Comments:       []models.Comment{},
			Attachments:    []models.Attachment{},
			Tags:           []string{"content"},
			CreatedAt:      now.AddDate(0, 0, -2),
			UpdatedAt:      now.AddDate(0, 0, -2),
		},
	}
}

// SeedNotifications returns the default notifications
func SeedNotifications() []models.Notification {
	now := time.Now().UTC()
	return []models.Notification{
		{
			ID:        "notif-aa11bb22",
			Type:      models.NotifTaskAssigned,
			Title:     "New task assigned",
			Message:   "You have been assigned to \"Implement responsive navigation\"",
			UserID:    "user-c9d0e1f2",
			RelatedID: "task-4b5a6978",
			Read:      false,
			CreatedAt: now.AddDate(0, 0, -7),
		},
		{
			ID:        "notif-cc33dd44",
			Type:      models.NotifDeadlineReminder,
			Title:     "Deadline approaching",
			Message:   "\"Content migration plan\" is due soon",
			UserID:    "user-c9d0e1f2",
			RelatedID: "task-8897a6b5",
			Read:      true,
			CreatedAt: now.AddDate(0, 0, -2),
		},
	}
}

// SeedActivityLogs returns the default activity log entries
func SeedActivityLogs() []models.ActivityLog {
	now := time.Now().UTC()
	return []models.ActivityLog{
		{
			ID:         "log-1122aabb",
			UserID:     "user-e5f6a7b8",
			Action:     "created",
			EntityType: models.EntityProject,
			EntityID:   "proj-11aa22bb",
			Details:    "Created project \"Website Redesign\"",
			CreatedAt:  now.AddDate(0, -2, 0),
		},
		{
			ID:         "log-3344ccdd",
			UserID:     "user-36a7b8c9",
			Action:     "completed",
			EntityType: models.EntityTask,
			EntityID:   "task-0f1e2d3c",
			Details:    "Completed task \"Design homepage mockups\"",
			CreatedAt:  now.AddDate(0, 0, -5),
		},
	}
}
