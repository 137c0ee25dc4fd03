package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tpms-simple/dto"
	"github.com/tpms-simple/models"
	"github.com/tpms-simple/repositories"
)

// StatsService computes derived views over the collections. Everything
// here is pure aggregation: no method mutates state.
type StatsService struct {
	projects *repositories.ProjectRepository
	tasks    *repositories.TaskRepository
	users    *repositories.UserRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(ds *repositories.Dataset) *StatsService {
	return &StatsService{
		projects: repositories.NewProjectRepository(ds),
		tasks:    repositories.NewTaskRepository(ds),
		users:    repositories.NewUserRepository(ds),
	}
}

// Dashboard computes the role-scoped headline numbers
func (s *StatsService) Dashboard(user models.User) dto.DashboardStats {
	now := time.Now().UTC()
	projects := ScopedProjects(user, s.projects.FindAll())
	tasks := ScopedTasks(user, s.projects.FindAll(), s.tasks.FindAll())

	active := 0
	for _, p := range projects {
		if p.Status == models.ProjectInProgress {
			active++
		}
	}

	return dto.DashboardStats{
		TotalProjects:     len(projects),
		ActiveProjects:    active,
		TotalTasks:        len(tasks),
		CompletedTasks:    CountByStatus(tasks, models.TaskCompleted),
		OverdueTasks:      CountOverdue(tasks, now),
		TeamMembers:       s.users.CountActive(),
		UpcomingDeadlines: CountUpcoming(tasks, now),
		ProjectProgress:   AverageProgress(tasks),
	}
}

// Progress computes the role-scoped aggregate view behind the progress page
func (s *StatsService) Progress(user models.User) dto.ProgressOverview {
	now := time.Now().UTC()
	allProjects := s.projects.FindAll()
	projects := ScopedProjects(user, allProjects)
	tasks := ScopedTasks(user, allProjects, s.tasks.FindAll())

	completed := CountByStatus(tasks, models.TaskCompleted)

	return dto.ProgressOverview{
		TotalTasks:      len(tasks),
		CompletedTasks:  completed,
		InProgressTasks: CountByStatus(tasks, models.TaskInProgress),
		OverdueTasks:    CountOverdue(tasks, now),
		AverageProgress: AverageProgress(tasks),
		CompletionRate:  ratio(completed, len(tasks)),
		Hours:           HoursRollup(tasks),
		ByStatus:        StatusBreakdown(tasks),
		ByPriority:      PriorityBreakdown(tasks),
		Projects:        ProjectProgressItems(projects, s.tasks.FindAll()),
		Productivity:    MemberProductivity(tasks, s.users.FindAll(), 8),
		Adherence:       Adherence(tasks),
	}
}

// ProjectStats computes the per-project dashboard payload, gated by the
// user's role scope
func (s *StatsService) ProjectStats(projectID string, user models.User) (dto.ProjectStatsResponse, error) {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		return dto.ProjectStatsResponse{}, err
	}
	if !CanAccessProject(user, project) {
		return dto.ProjectStatsResponse{}, fmt.Errorf("unauthorized: you don't have permission to access this project")
	}

	now := time.Now().UTC()
	tasks := s.tasks.FindByProject(projectID)
	completed := CountByStatus(tasks, models.TaskCompleted)

	progress := project.Progress
	if len(tasks) > 0 {
		progress = ratio(completed, len(tasks))
	}

	return dto.ProjectStatsResponse{
		ProjectID:      project.ID,
		Name:           project.Name,
		TaskCount:      len(tasks),
		CompletedTasks: completed,
		OverdueTasks:   CountOverdue(tasks, now),
		Progress:       progress,
		ByStatus:       StatusBreakdown(tasks),
		ByPriority:     PriorityBreakdown(tasks),
		Hours:          HoursRollup(tasks),
		Adherence:      Adherence(tasks),
	}, nil
}

// CountByStatus counts the tasks in the given workflow state
func CountByStatus(tasks []models.Task, status models.TaskStatus) int {
	count := 0
	for _, t := range tasks {
		if t.Status == status {
			count++
		}
	}
	return count
}

// CountOverdue counts tasks past due and not completed
func CountOverdue(tasks []models.Task, now time.Time) int {
	count := 0
	for _, t := range tasks {
		if t.IsOverdue(now) {
			count++
		}
	}
	return count
}

// CountUpcoming counts unfinished tasks due within the next 7 days,
// inclusive of today
func CountUpcoming(tasks []models.Task, now time.Time) int {
	count := 0
	for _, t := range tasks {
		if t.Status == models.TaskCompleted || t.DueDate.IsZero() {
			continue
		}
		days := int(math.Ceil(t.DueDate.Sub(now).Hours() / 24))
		if days >= 0 && days <= 7 {
			count++
		}
	}
	return count
}

// AverageProgress averages task progress, 0 for an empty set
func AverageProgress(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	sum := 0
	for _, t := range tasks {
		sum += t.Progress
	}
	return int(math.Round(float64(sum) / float64(len(tasks))))
}

// HoursRollup sums estimated and logged hours. Efficiency is
// logged/estimated as a percentage, 0 when nothing was estimated.
func HoursRollup(tasks []models.Task) dto.HoursSummary {
	var estimated, logged float64
	for _, t := range tasks {
		estimated += t.EstimatedHours
		logged += t.LoggedHours
	}
	efficiency := 0
	if estimated > 0 {
		efficiency = int(math.Round(logged / estimated * 100))
	}
	return dto.HoursSummary{
		EstimatedHours: estimated,
		LoggedHours:    logged,
		Efficiency:     efficiency,
	}
}

// StatusBreakdown buckets tasks by workflow state, including empty buckets
func StatusBreakdown(tasks []models.Task) map[string]int {
	breakdown := map[string]int{
		string(models.TaskTodo):       0,
		string(models.TaskInProgress): 0,
		string(models.TaskInReview):   0,
		string(models.TaskCompleted):  0,
		string(models.TaskBlocked):    0,
	}
	for _, t := range tasks {
		breakdown[string(t.Status)]++
	}
	return breakdown
}

// PriorityBreakdown buckets tasks by priority, including empty buckets
func PriorityBreakdown(tasks []models.Task) map[string]int {
	breakdown := map[string]int{
		string(models.PriorityLow):      0,
		string(models.PriorityMedium):   0,
		string(models.PriorityHigh):     0,
		string(models.PriorityCritical): 0,
	}
	for _, t := range tasks {
		breakdown[string(t.Priority)]++
	}
	return breakdown
}

// ProjectProgressItems derives per-project completion from task counts.
// Cancelled projects are skipped; projects without tasks fall back to
// their stored progress percentage.
func ProjectProgressItems(projects []models.Project, allTasks []models.Task) []dto.ProjectProgressItem {
	items := make([]dto.ProjectProgressItem, 0, len(projects))
	for _, p := range projects {
		if p.Status == models.ProjectCancelled {
			continue
		}
		total, completed := 0, 0
		for _, t := range allTasks {
			if t.ProjectID != p.ID {
				continue
			}
			total++
			if t.Status == models.TaskCompleted {
				completed++
			}
		}
		progress := p.Progress
		if total > 0 {
			progress = ratio(completed, total)
		}
		items = append(items, dto.ProjectProgressItem{
			ProjectID:      p.ID,
			Name:           p.Name,
			Progress:       progress,
			TaskCount:      total,
			CompletedTasks: completed,
		})
	}
	return items
}

// MemberProductivity computes the completed/total ratio per assignee over
// the given task set, sorted by rate descending, capped at limit entries
func MemberProductivity(tasks []models.Task, users []models.User, limit int) []dto.MemberProductivity {
	type tally struct {
		completed int
		total     int
	}
	tallies := make(map[string]*tally)
	var order []string
	for _, t := range tasks {
		entry, ok := tallies[t.AssigneeID]
		if !ok {
			entry = &tally{}
			tallies[t.AssigneeID] = entry
			order = append(order, t.AssigneeID)
		}
		entry.total++
		if t.Status == models.TaskCompleted {
			entry.completed++
		}
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	result := make([]dto.MemberProductivity, 0, len(order))
	for _, id := range order {
		entry := tallies[id]
		name, ok := names[id]
		if !ok {
			name = "Unknown"
		}
		result = append(result, dto.MemberProductivity{
			UserID:    id,
			Name:      name,
			Completed: entry.completed,
			Total:     entry.total,
			Rate:      ratio(entry.completed, entry.total),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Rate > result[j].Rate
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// Adherence splits completed tasks into on-time and late deliveries.
// Only completed tasks carrying both a completion and a due date count.
// With no completed tasks the rate is 100: no data implies no lateness.
func Adherence(tasks []models.Task) dto.DeadlineAdherence {
	onTime, late := 0, 0
	for _, t := range tasks {
		if t.Status != models.TaskCompleted || t.CompletedDate == nil || t.DueDate.IsZero() {
			continue
		}
		if !t.CompletedDate.After(t.DueDate) {
			onTime++
		} else {
			late++
		}
	}
	rate := 100
	if onTime+late > 0 {
		rate = ratio(onTime, onTime+late)
	}
	return dto.DeadlineAdherence{OnTime: onTime, Late: late, AdherenceRate: rate}
}

// ratio returns part/total as a rounded integer percentage, 0 when the
// denominator is 0
func ratio(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
