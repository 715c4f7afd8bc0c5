package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tasksWith(statuses ...TaskStatus) []ClientProjectTask {
	out := make([]ClientProjectTask, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, ClientProjectTask{ID: string(rune('a' + i)), Title: "t", Status: s})
	}
	return out
}

func TestProgressFromTasks(t *testing.T) {
	tests := []struct {
		name     string
		statuses []TaskStatus
		expected int
	}{
		{"empty list", nil, 0},
		{"all cancelled", []TaskStatus{TaskCancelled, TaskCancelled}, 0},
		{"one of three actionable done", []TaskStatus{TaskDone, TaskTodo, TaskInProgress}, 33},
		{"cancelled excluded from denominator", []TaskStatus{TaskDone, TaskCancelled}, 100},
		{"half done", []TaskStatus{TaskDone, TaskTodo}, 50},
		{"two thirds rounds up", []TaskStatus{TaskDone, TaskDone, TaskTodo}, 67},
		{"all done", []TaskStatus{TaskDone, TaskDone}, 100},
		{"nothing done", []TaskStatus{TaskTodo, TaskInProgress}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProgressFromTasks(tasksWith(tt.statuses...)))
		})
	}
}

func TestProgressCancellingNeverLowers(t *testing.T) {
	// Cancelling a non-done task can only hold or raise the percentage.
	tasks := tasksWith(TaskDone, TaskTodo, TaskTodo, TaskInProgress)
	before := ProgressFromTasks(tasks)

	tasks[1].Status = TaskCancelled
	after := ProgressFromTasks(tasks)
	assert.GreaterOrEqual(t, after, before)

	tasks[2].Status = TaskCancelled
	tasks[3].Status = TaskCancelled
	assert.Equal(t, 100, ProgressFromTasks(tasks))
}

func TestEffectiveProgress(t *testing.T) {
	withTasks := ClientProject{
		Progress: 80,
		Tasks:    tasksWith(TaskDone, TaskTodo),
	}
	assert.Equal(t, 50, EffectiveProgress(withTasks), "derived wins over stored when tasks exist")

	noTasks := ClientProject{Progress: 80}
	assert.Equal(t, 80, EffectiveProgress(noTasks), "stored value used without tasks")

	zeroDerived := ClientProject{
		Progress: 80,
		Tasks:    tasksWith(TaskTodo),
	}
	assert.Equal(t, 0, EffectiveProgress(zeroDerived), "a derived zero is not a fallback trigger")
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		endDate  string
		expected int
		ok       bool
	}{
		{"no end date", "", 0, false},
		{"unparseable", "soon", 0, false},
		{"five days out", "2025-06-15", 5, true},
		{"rfc3339 end date", "2025-06-15T00:00:00Z", 5, true},
		{"overdue", "2025-06-01", -9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DaysRemaining(ClientProject{EndDate: tt.endDate}, now)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, days)
			}
		})
	}
}

func TestDeriveDelivery(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		project ClientProject
		status  DeliveryStatus
		health  Health
	}{
		{
			name:    "no end date passes stored status through",
			project: ClientProject{Status: StatusBehind},
			status:  StatusBehind,
			health:  HealthRed,
		},
		{
			name: "near done is on track even when overdue",
			project: ClientProject{
				EndDate: "2025-06-01",
				Tasks:   tasksWith(TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskDone, TaskTodo),
			},
			status: StatusOnTrack,
			health: HealthGreen,
		},
		{
			name:    "overdue is behind",
			project: ClientProject{EndDate: "2025-06-01", Progress: 50},
			status:  StatusBehind,
			health:  HealthRed,
		},
		{
			name:    "three days left is at risk",
			project: ClientProject{EndDate: "2025-06-13", Progress: 50},
			status:  StatusAtRisk,
			health:  HealthAmber,
		},
		{
			name:    "comfortable runway is on track",
			project: ClientProject{EndDate: "2025-07-10", Progress: 10},
			status:  StatusOnTrack,
			health:  HealthGreen,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, health := DeriveDelivery(tt.project, now)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.health, health)
		})
	}
}
