package service

import (
	"math"
	"time"

	"github.com/cindral-studio/cindral-api/internal/modules/model"
	"github.com/cindral-studio/cindral-api/internal/modules/repo"
)

// HealthSlice is one segment of the portfolio health distribution.
type HealthSlice struct {
	Count int `json:"count"`
	Pct   int `json:"pct"`
}

// PortfolioStats is the admin dashboard aggregate over every client project.
// All derived numbers use the same delivery rules as the per-project report,
// so the dashboard never disagrees with a project page.
type PortfolioStats struct {
	TotalProjects          int                          `json:"totalProjects"`
	AverageProgress        int                          `json:"averageProgress"`
	HealthDistribution     map[model.Health]HealthSlice `json:"healthDistribution"`
	StatusCounts           map[model.TaskStatus]int     `json:"statusCounts"`
	TotalTasks             int                          `json:"totalTasks"`
	CancelledTasks         int                          `json:"cancelledTasks"`
	CompletionRate         int                          `json:"completionRate"`
	AverageTasksPerProject int                          `json:"averageTasksPerProject"`
	GeneratedAt            string                       `json:"generatedAt"`
}

type DashboardService interface {
	Portfolio() PortfolioStats
}

type dashboardService struct {
	store *repo.Store
	now   func() time.Time
}

func NewDashboardService(store *repo.Store) DashboardService {
	return &dashboardService{store: store, now: time.Now}
}

func (s *dashboardService) Portfolio() PortfolioStats {
	return ComputePortfolio(s.store.ListClientProjects(), s.now())
}

// ComputePortfolio aggregates delivery state across projects. An empty
// portfolio reports zeros, never NaN.
func ComputePortfolio(projects []model.ClientProject, now time.Time) PortfolioStats {
	stats := PortfolioStats{
		HealthDistribution: map[model.Health]HealthSlice{
			model.HealthGreen: {},
			model.HealthAmber: {},
			model.HealthRed:   {},
		},
		StatusCounts: map[model.TaskStatus]int{
			model.TaskTodo:       0,
			model.TaskInProgress: 0,
			model.TaskDone:       0,
			model.TaskCancelled:  0,
		},
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}

	stats.TotalProjects = len(projects)
	if len(projects) == 0 {
		return stats
	}

	progressSum := 0
	for _, p := range projects {
		progressSum += model.EffectiveProgress(p)

		_, health := model.DeriveDelivery(p, now)
		slice := stats.HealthDistribution[health]
		slice.Count++
		stats.HealthDistribution[health] = slice

		for _, t := range p.Tasks {
			stats.StatusCounts[t.Status]++
			stats.TotalTasks++
		}
	}

	stats.AverageProgress = int(math.Round(float64(progressSum) / float64(len(projects))))
	stats.AverageTasksPerProject = int(math.Round(float64(stats.TotalTasks) / float64(len(projects))))

	for h, slice := range stats.HealthDistribution {
		slice.Pct = int(math.Round(float64(slice.Count) / float64(len(projects)) * 100))
		stats.HealthDistribution[h] = slice
	}

	stats.CancelledTasks = stats.StatusCounts[model.TaskCancelled]
	actionable := stats.TotalTasks - stats.CancelledTasks
	if actionable > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.StatusCounts[model.TaskDone]) / float64(actionable) * 100))
	}
	return stats
}
