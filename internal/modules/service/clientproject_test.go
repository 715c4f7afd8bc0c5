package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cindral-studio/cindral-api/internal/modules/model"
	"github.com/cindral-studio/cindral-api/internal/modules/repo"
)

func newTestStore(t *testing.T) *repo.Store {
	t.Helper()
	s := repo.NewStore(repo.NewMemoryAdapter(), zap.NewNop())
	require.NoError(t, s.Open(context.Background()))
	require.NoError(t, s.Import(context.Background(), &repo.Dataset{
		Divisions: []model.Division{},
		Projects:  []model.Project{},
		Team:      []model.TeamMember{},
	}))
	return s
}

func newTestProjectService(t *testing.T) (ClientProjectService, *repo.Store) {
	t.Helper()
	store := newTestStore(t)
	return NewClientProjectService(store, zap.NewNop(), nil, ""), store
}

func strp(s string) *string { return &s }

func TestTaskLifecycleDrivesProgress(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, map[string]any{"name": "Launch Site", "projectId": "p1"})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Progress)

	for _, in := range []TaskInput{
		{ID: "t1", Title: "brief", Status: "done"},
		{ID: "t2", Title: "design", Status: "done"},
		{ID: "t3", Title: "build", Status: "in_progress"},
		{ID: "t4", Title: "launch", Status: "todo"},
	} {
		p, err = svc.AddTask(ctx, p.ID, in)
		require.NoError(t, err)
	}
	assert.Equal(t, 50, p.Progress)
	assert.Len(t, p.Tasks, 4)

	p, err = svc.UpdateTask(ctx, p.ID, "t3", TaskPatch{Status: strp("done")})
	require.NoError(t, err)
	assert.Equal(t, 75, p.Progress)

	p, err = svc.UpdateTask(ctx, p.ID, "t4", TaskPatch{Status: strp("done")})
	require.NoError(t, err)
	assert.Equal(t, 100, p.Progress)

	// Removing a done task recomputes over what is left.
	p, err = svc.RemoveTask(ctx, p.ID, "t4")
	require.NoError(t, err)
	assert.Equal(t, 100, p.Progress)
	assert.Len(t, p.Tasks, 3)

	// Removing an unknown task id is a no-op.
	p, err = svc.RemoveTask(ctx, p.ID, "t_ghost")
	require.NoError(t, err)
	assert.Len(t, p.Tasks, 3)

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.Empty(t, svc.List())
	assert.NoError(t, svc.Delete(ctx, p.ID), "second delete is a no-op")
}

func TestAddTaskValidation(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, map[string]any{"name": "X", "projectId": "p1"})
	require.NoError(t, err)

	_, err = svc.AddTask(ctx, p.ID, TaskInput{Title: ""})
	assert.True(t, repo.IsValidation(err))

	_, err = svc.AddTask(ctx, p.ID, TaskInput{Title: "a", Status: "blocked"})
	assert.True(t, repo.IsValidation(err))

	_, err = svc.AddTask(ctx, "client_proj_missing", TaskInput{Title: "a"})
	assert.ErrorIs(t, err, repo.ErrNotFound)

	// Generated ids carry the task prefix; status defaults to todo.
	p, err = svc.AddTask(ctx, p.ID, TaskInput{Title: "a"})
	require.NoError(t, err)
	require.Len(t, p.Tasks, 1)
	assert.Contains(t, p.Tasks[0].ID, "task_")
	assert.Equal(t, model.TaskTodo, p.Tasks[0].Status)

	_, err = svc.AddTask(ctx, p.ID, TaskInput{ID: p.Tasks[0].ID, Title: "dup"})
	assert.True(t, repo.IsValidation(err))
}

func TestUpdateTaskPatchKeepsOtherFields(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, map[string]any{"name": "X", "projectId": "p1"})
	require.NoError(t, err)
	p, err = svc.AddTask(ctx, p.ID, TaskInput{
		ID: "t1", Title: "design", Status: "in_progress", Owner: "mara", Notes: "v2 direction",
	})
	require.NoError(t, err)

	p, err = svc.UpdateTask(ctx, p.ID, "t1", TaskPatch{Status: strp("done")})
	require.NoError(t, err)
	task, ok := p.Task("t1")
	require.True(t, ok)
	assert.Equal(t, model.TaskDone, task.Status)
	assert.Equal(t, "mara", task.Owner, "patch leaves absent fields alone")
	assert.Equal(t, "v2 direction", task.Notes)
	assert.Equal(t, "design", task.Title)

	_, err = svc.UpdateTask(ctx, p.ID, "t_missing", TaskPatch{Status: strp("done")})
	assert.ErrorIs(t, err, repo.ErrNotFound)

	_, err = svc.UpdateTask(ctx, p.ID, "t1", TaskPatch{Status: strp("paused")})
	assert.True(t, repo.IsValidation(err))
}

func TestReplaceTasks(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, map[string]any{"name": "X", "projectId": "p1"})
	require.NoError(t, err)

	p, err = svc.ReplaceTasks(ctx, p.ID, []TaskInput{
		{ID: "t1", Title: "a", Status: "done"},
		{ID: "t2", Title: "b", Status: "cancelled"},
	})
	require.NoError(t, err)
	assert.Len(t, p.Tasks, 2)
	assert.Equal(t, 100, p.Progress, "cancelled task excluded from denominator")

	_, err = svc.ReplaceTasks(ctx, p.ID, []TaskInput{
		{ID: "t1", Title: "a"},
		{ID: "t1", Title: "dup"},
	})
	assert.True(t, repo.IsValidation(err))

	p, err = svc.ReplaceTasks(ctx, p.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, p.Tasks)
	assert.Equal(t, 0, p.Progress)
}

func TestDeliveryReport(t *testing.T) {
	svc, _ := newTestProjectService(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc.(*clientProjectService).now = func() time.Time { return now }

	p, err := svc.Create(ctx, map[string]any{
		"name":      "Retail Portal",
		"projectId": "p1",
		"endDate":   "2025-06-12",
		"status":    "On Track",
	})
	require.NoError(t, err)
	p, err = svc.AddTask(ctx, p.ID, TaskInput{ID: "t1", Title: "a", Status: "done"})
	require.NoError(t, err)
	p, err = svc.AddTask(ctx, p.ID, TaskInput{ID: "t2", Title: "b", Status: "todo"})
	require.NoError(t, err)

	report, err := svc.Delivery(p.ID)
	require.NoError(t, err)

	assert.Equal(t, model.StatusAtRisk, report.Status, "two days out, below 95 percent")
	assert.Equal(t, model.HealthAmber, report.Health)
	assert.Equal(t, model.StatusOnTrack, report.StoredStatus)
	assert.Equal(t, 50, report.Progress)
	require.NotNil(t, report.DaysRemaining)
	assert.Equal(t, 2, *report.DaysRemaining)
	assert.Equal(t, TaskCounts{Total: 2, Todo: 1, Done: 1}, report.Tasks)

	_, err = svc.Delivery("client_proj_missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
