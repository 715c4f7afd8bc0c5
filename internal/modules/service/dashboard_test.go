package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cindral-studio/cindral-api/internal/modules/model"
)

func TestComputePortfolioEmpty(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	stats := ComputePortfolio(nil, now)

	assert.Equal(t, 0, stats.TotalProjects)
	assert.Equal(t, 0, stats.AverageProgress)
	assert.Equal(t, 0, stats.TotalTasks)
	assert.Equal(t, 0, stats.CompletionRate)
	assert.Equal(t, 0, stats.AverageTasksPerProject)
	assert.Equal(t, 0, stats.CancelledTasks)
	assert.Equal(t, 0, stats.HealthDistribution[model.HealthGreen].Count)
	assert.Equal(t, 0, stats.StatusCounts[model.TaskDone])
}

func TestComputePortfolio(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	projects := []model.ClientProject{
		{
			// No end date: stored status passes through as Behind/red.
			ID: "a", Status: model.StatusBehind,
			Tasks: []model.ClientProjectTask{
				{ID: "t1", Status: model.TaskDone},
				{ID: "t2", Status: model.TaskTodo},
			},
		},
		{
			// Long runway: On Track/green. No tasks, stored progress counts.
			ID: "b", EndDate: "2025-12-01", Progress: 40,
		},
		{
			// Overdue: Behind/red. Cancelled task out of the denominator.
			ID: "c", EndDate: "2025-06-01",
			Tasks: []model.ClientProjectTask{
				{ID: "t3", Status: model.TaskDone},
				{ID: "t4", Status: model.TaskCancelled},
			},
		},
	}

	stats := ComputePortfolio(projects, now)

	assert.Equal(t, 3, stats.TotalProjects)
	// Effective progress: 50, 40, 100 -> mean 63.3 -> 63.
	assert.Equal(t, 63, stats.AverageProgress)

	assert.Equal(t, 2, stats.HealthDistribution[model.HealthRed].Count)
	assert.Equal(t, 1, stats.HealthDistribution[model.HealthGreen].Count)
	assert.Equal(t, 0, stats.HealthDistribution[model.HealthAmber].Count)
	assert.Equal(t, 67, stats.HealthDistribution[model.HealthRed].Pct)
	assert.Equal(t, 33, stats.HealthDistribution[model.HealthGreen].Pct)

	assert.Equal(t, 4, stats.TotalTasks)
	assert.Equal(t, 2, stats.StatusCounts[model.TaskDone])
	assert.Equal(t, 1, stats.StatusCounts[model.TaskTodo])
	assert.Equal(t, 1, stats.StatusCounts[model.TaskCancelled])
	assert.Equal(t, 1, stats.CancelledTasks)

	// done / (total - cancelled) = 2/3 -> 67.
	assert.Equal(t, 67, stats.CompletionRate)
	// 4 tasks over 3 projects -> mean 1.33 -> 1.
	assert.Equal(t, 1, stats.AverageTasksPerProject)
}

func TestAverageTasksPerProjectRounding(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tasks := func(n int) []model.ClientProjectTask {
		ts := make([]model.ClientProjectTask, n)
		for i := range ts {
			ts[i] = model.ClientProjectTask{ID: string(rune('a' + i)), Status: model.TaskTodo}
		}
		return ts
	}

	cases := []struct {
		name     string
		perProj  []int
		expected int
	}{
		{"rounds down", []int{2, 1, 1}, 1},  // 4/3 = 1.33
		{"rounds half up", []int{2, 1}, 2},  // 3/2 = 1.5
		{"exact", []int{2, 2, 2}, 2},        // 6/3
		{"rounds up", []int{3, 3, 2}, 3},    // 8/3 = 2.67
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			projects := make([]model.ClientProject, len(c.perProj))
			for i, n := range c.perProj {
				projects[i] = model.ClientProject{ID: string(rune('p' + i)), Tasks: tasks(n)}
			}
			stats := ComputePortfolio(projects, now)
			assert.Equal(t, c.expected, stats.AverageTasksPerProject)
		})
	}
}

func TestPortfolioFromStore(t *testing.T) {
	store := newTestStore(t)
	svc := NewDashboardService(store)

	stats := svc.Portfolio()
	assert.Equal(t, 0, stats.TotalProjects)
	assert.NotEmpty(t, stats.GeneratedAt)
}
