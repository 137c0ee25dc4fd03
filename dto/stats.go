package dto

// DashboardStats holds the role-scoped headline numbers for the dashboard
type DashboardStats struct {
	TotalProjects     int `json:"totalProjects"`
	ActiveProjects    int `json:"activeProjects"`
	TotalTasks        int `json:"totalTasks"`
	CompletedTasks    int `json:"completedTasks"`
	OverdueTasks      int `json:"overdueTasks"`
	TeamMembers       int `json:"teamMembers"`
	UpcomingDeadlines int `json:"upcomingDeadlines"`
	ProjectProgress   int `json:"projectProgress"`
}

// HoursSummary rolls up estimated and logged hours over a task set.
// Efficiency is logged/estimated as a percentage and 0 when nothing was
// estimated.
type HoursSummary struct {
	EstimatedHours float64 `json:"estimatedHours"`
	LoggedHours    float64 `json:"loggedHours"`
	Efficiency     int     `json:"efficiency"`
}

// MemberProductivity is the per-user completion ratio over assigned tasks
type MemberProductivity struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Rate      int    `json:"rate"`
}

// DeadlineAdherence counts completed tasks delivered on time versus late.
// With no completed tasks the rate is 100: no data implies no lateness.
type DeadlineAdherence struct {
	OnTime        int `json:"onTime"`
	Late          int `json:"late"`
	AdherenceRate int `json:"adherenceRate"`
}

// ProjectProgressItem is the task-derived completion view of one project
type ProjectProgressItem struct {
	ProjectID      string `json:"projectId"`
	Name           string `json:"name"`
	Progress       int    `json:"progress"`
	TaskCount      int    `json:"taskCount"`
	CompletedTasks int    `json:"completedTasks"`
}

// ProgressOverview is the role-scoped aggregate view behind the progress page
type ProgressOverview struct {
	TotalTasks      int                   `json:"totalTasks"`
	CompletedTasks  int                   `json:"completedTasks"`
	InProgressTasks int                   `json:"inProgressTasks"`
	OverdueTasks    int                   `json:"overdueTasks"`
	AverageProgress int                   `json:"averageProgress"`
	CompletionRate  int                   `json:"completionRate"`
	Hours           HoursSummary          `json:"hours"`
	ByStatus        map[string]int        `json:"byStatus"`
	ByPriority      map[string]int        `json:"byPriority"`
	Projects        []ProjectProgressItem `json:"projects"`
	Productivity    []MemberProductivity  `json:"productivity"`
	Adherence       DeadlineAdherence     `json:"adherence"`
}

// ProjectStatsResponse is the per-project dashboard payload
type ProjectStatsResponse struct {
	ProjectID      string            `json:"projectId"`
	Name           string            `json:"name"`
	TaskCount      int               `json:"taskCount"`
	CompletedTasks int               `json:"completedTasks"`
	OverdueTasks   int               `json:"overdueTasks"`
	Progress       int               `json:"progress"`
	ByStatus       map[string]int    `json:"byStatus"`
	ByPriority     map[string]int    `json:"byPriority"`
	Hours          HoursSummary      `json:"hours"`
	Adherence      DeadlineAdherence `json:"adherence"`
}
