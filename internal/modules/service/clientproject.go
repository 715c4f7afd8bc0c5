package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	mq "github.com/cindral-studio/cindral-api/internal/infra/queue"
	"github.com/cindral-studio/cindral-api/internal/modules/model"
	"github.com/cindral-studio/cindral-api/internal/modules/repo"
	"github.com/cindral-studio/cindral-api/internal/pkg/utils"
)

// ClientProjectService owns the delivery workflow: project CRUD, the task
// board, and the derived delivery report. Every task mutation goes through
// the store, which re-derives progress from the task list.
type ClientProjectService interface {
	List() []model.ClientProject
	Get(id string) (model.ClientProject, error)
	Create(ctx context.Context, payload map[string]any) (model.ClientProject, error)
	Update(ctx context.Context, id string, patch map[string]any) (model.ClientProject, error)
	Delete(ctx context.Context, id string) error

	AddTask(ctx context.Context, projectID string, in TaskInput) (model.ClientProject, error)
	UpdateTask(ctx context.Context, projectID, taskID string, patch TaskPatch) (model.ClientProject, error)
	RemoveTask(ctx context.Context, projectID, taskID string) (model.ClientProject, error)
	ReplaceTasks(ctx context.Context, projectID string, tasks []TaskInput) (model.ClientProject, error)

	Delivery(id string) (DeliveryReport, error)
}

type clientProjectService struct {
	store *repo.Store
	log   *zap.Logger
	mq    *amqp.Connection
	queue string
	now   func() time.Time
}

func NewClientProjectService(store *repo.Store, log *zap.Logger, conn *amqp.Connection, queue string) ClientProjectService {
	return &clientProjectService{
		store: store,
		log:   log,
		mq:    conn,
		queue: queue,
		now:   time.Now,
	}
}

func (s *clientProjectService) List() []model.ClientProject { return s.store.ListClientProjects() }

func (s *clientProjectService) Get(id string) (model.ClientProject, error) {
	return s.store.GetClientProject(id)
}

func (s *clientProjectService) Create(ctx context.Context, payload map[string]any) (model.ClientProject, error) {
	p, err := s.store.CreateClientProject(ctx, payload)
	if err != nil {
		return model.ClientProject{}, err
	}
	s.publishEvent(ctx, "client_project.created", p)
	return p, nil
}

func (s *clientProjectService) Update(ctx context.Context, id string, patch map[string]any) (model.ClientProject, error) {
	p, err := s.store.UpdateClientProject(ctx, id, patch)
	if err != nil {
		return model.ClientProject{}, err
	}
	s.publishEvent(ctx, "client_project.updated", p)
	return p, nil
}

func (s *clientProjectService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteClientProject(ctx, id); err != nil {
		return err
	}
	s.publishEvent(ctx, "client_project.deleted", map[string]any{"id": id})
	return nil
}

// TaskInput is a new task. Status defaults to todo.
type TaskInput struct {
	ID        string `json:"id"`
	Title     string `json:"title" binding:"required"`
	Status    string `json:"status"`
	Owner     string `json:"owner"`
	DueDate   string `json:"dueDate"`
	Highlight string `json:"highlight"`
	Notes     string `json:"notes"`
}

// TaskPatch updates only the fields that are present, so a status move off
// the board never clears the owner or notes.
type TaskPatch struct {
	Title     *string `json:"title"`
	Status    *string `json:"status"`
	Owner     *string `json:"owner"`
	DueDate   *string `json:"dueDate"`
	Highlight *string `json:"highlight"`
	Notes     *string `json:"notes"`
}

func validTaskStatus(s string) bool {
	switch model.TaskStatus(s) {
	case model.TaskTodo, model.TaskInProgress, model.TaskDone, model.TaskCancelled:
		return true
	}
	return false
}

func taskFromInput(in TaskInput) (model.ClientProjectTask, error) {
	if in.Title == "" {
		return model.ClientProjectTask{}, repo.Validationf("task title is required")
	}
	if in.Status == "" {
		in.Status = string(model.TaskTodo)
	}
	if !validTaskStatus(in.Status) {
		return model.ClientProjectTask{}, repo.Validationf("invalid task status %q", in.Status)
	}
	id := in.ID
	if id == "" {
		id = "task_" + utils.ShortID()
	}
	return model.ClientProjectTask{
		ID:        id,
		Title:     in.Title,
		Status:    model.TaskStatus(in.Status),
		Owner:     in.Owner,
		DueDate:   in.DueDate,
		Highlight: in.Highlight,
		Notes:     in.Notes,
	}, nil
}

func (s *clientProjectService) AddTask(ctx context.Context, projectID string, in TaskInput) (model.ClientProject, error) {
	cur, err := s.store.GetClientProject(projectID)
	if err != nil {
		return model.ClientProject{}, err
	}
	task, err := taskFromInput(in)
	if err != nil {
		return model.ClientProject{}, err
	}
	if _, exists := cur.Task(task.ID); exists {
		return model.ClientProject{}, repo.Validationf("task id %q already exists", task.ID)
	}

	tasks := append(append([]model.ClientProjectTask{}, cur.Tasks...), task)
	return s.saveTasks(ctx, projectID, tasks)
}

func (s *clientProjectService) UpdateTask(ctx context.Context, projectID, taskID string, patch TaskPatch) (model.ClientProject, error) {
	cur, err := s.store.GetClientProject(projectID)
	if err != nil {
		return model.ClientProject{}, err
	}
	if patch.Status != nil && !validTaskStatus(*patch.Status) {
		return model.ClientProject{}, repo.Validationf("invalid task status %q", *patch.Status)
	}
	if patch.Title != nil && *patch.Title == "" {
		return model.ClientProject{}, repo.Validationf("task title is required")
	}

	tasks := append([]model.ClientProjectTask{}, cur.Tasks...)
	found := false
	for i := range tasks {
		if tasks[i].ID != taskID {
			continue
		}
		found = true
		if patch.Title != nil {
			tasks[i].Title = *patch.Title
		}
		if patch.Status != nil {
			tasks[i].Status = model.TaskStatus(*patch.Status)
		}
		if patch.Owner != nil {
			tasks[i].Owner = *patch.Owner
		}
		if patch.DueDate != nil {
			tasks[i].DueDate = *patch.DueDate
		}
		if patch.Highlight != nil {
			tasks[i].Highlight = *patch.Highlight
		}
		if patch.Notes != nil {
			tasks[i].Notes = *patch.Notes
		}
	}
	if !found {
		return model.ClientProject{}, fmt.Errorf("task %q: %w", taskID, repo.ErrNotFound)
	}
	return s.saveTasks(ctx, projectID, tasks)
}

// RemoveTask drops the task when present. Like record deletes, removing an
// unknown task id is a no-op.
func (s *clientProjectService) RemoveTask(ctx context.Context, projectID, taskID string) (model.ClientProject, error) {
	cur, err := s.store.GetClientProject(projectID)
	if err != nil {
		return model.ClientProject{}, err
	}
	tasks := make([]model.ClientProjectTask, 0, len(cur.Tasks))
	for _, t := range cur.Tasks {
		if t.ID != taskID {
			tasks = append(tasks, t)
		}
	}
	return s.saveTasks(ctx, projectID, tasks)
}

// ReplaceTasks swaps the whole board in one write, used by the drag-and-drop
// admin view.
func (s *clientProjectService) ReplaceTasks(ctx context.Context, projectID string, in []TaskInput) (model.ClientProject, error) {
	if _, err := s.store.GetClientProject(projectID); err != nil {
		return model.ClientProject{}, err
	}

	tasks := make([]model.ClientProjectTask, 0, len(in))
	seen := map[string]bool{}
	for _, ti := range in {
		task, err := taskFromInput(ti)
		if err != nil {
			return model.ClientProject{}, err
		}
		if seen[task.ID] {
			return model.ClientProject{}, repo.Validationf("task id %q already exists", task.ID)
		}
		seen[task.ID] = true
		tasks = append(tasks, task)
	}
	return s.saveTasks(ctx, projectID, tasks)
}

func (s *clientProjectService) saveTasks(ctx context.Context, projectID string, tasks []model.ClientProjectTask) (model.ClientProject, error) {
	p, err := s.store.UpdateClientProject(ctx, projectID, map[string]any{"tasks": tasks})
	if err != nil {
		return model.ClientProject{}, err
	}
	s.publishEvent(ctx, "client_project.tasks_changed", p)
	return p, nil
}

// TaskCounts breaks the board down by column.
type TaskCounts struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
	Cancelled  int `json:"cancelled"`
}

// DeliveryReport is the deadline-aware view of one client project. Status
// and Health are derived from progress and days remaining; the stored
// override pair is included so the admin UI can show a divergence.
type DeliveryReport struct {
	ProjectID     string               `json:"projectId"`
	Name          string               `json:"name"`
	ClientName    string               `json:"clientName"`
	Status        model.DeliveryStatus `json:"status"`
	Health        model.Health         `json:"health"`
	StoredStatus  model.DeliveryStatus `json:"storedStatus"`
	StoredHealth  model.Health         `json:"storedHealth"`
	Progress      int                  `json:"progress"`
	EndDate       string               `json:"endDate,omitempty"`
	DaysRemaining *int                 `json:"daysRemaining,omitempty"`
	Tasks         TaskCounts           `json:"tasks"`
	GeneratedAt   string               `json:"generatedAt"`
}

func (s *clientProjectService) Delivery(id string) (DeliveryReport, error) {
	p, err := s.store.GetClientProject(id)
	if err != nil {
		return DeliveryReport{}, err
	}

	now := s.now()
	status, health := model.DeriveDelivery(p, now)
	report := DeliveryReport{
		ProjectID:    p.ID,
		Name:         p.Name,
		ClientName:   p.ClientName,
		Status:       status,
		Health:       health,
		StoredStatus: p.Status,
		StoredHealth: p.Health,
		Progress:     model.EffectiveProgress(p),
		EndDate:      p.EndDate,
		Tasks:        countTasks(p.Tasks),
		GeneratedAt:  now.UTC().Format(time.RFC3339),
	}
	if days, ok := model.DaysRemaining(p, now); ok {
		report.DaysRemaining = &days
	}
	return report, nil
}

func countTasks(tasks []model.ClientProjectTask) TaskCounts {
	c := TaskCounts{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.TaskTodo:
			c.Todo++
		case model.TaskInProgress:
			c.InProgress++
		case model.TaskDone:
			c.Done++
		case model.TaskCancelled:
			c.Cancelled++
		}
	}
	return c
}

// publishEvent pushes a delivery event to the broker when one is configured.
// Events are advisory, so a broker outage never fails the mutation that
// already persisted.
func (s *clientProjectService) publishEvent(ctx context.Context, kind string, data any) {
	if s.mq == nil {
		return
	}
	p, err := mq.NewPublisher(s.mq, s.queue, s.log)
	if err != nil {
		s.log.Sugar().Warnw("create delivery event publisher", "err", err)
		return
	}
	defer p.Close()

	event := map[string]any{
		"id":   uuid.NewString(),
		"type": kind,
		"at":   s.now().UTC().Format(time.RFC3339),
		"data": data,
	}
	if err := p.PublishJSON(ctx, event); err != nil {
		s.log.Sugar().Warnw("publish delivery event", "type", kind, "err", err)
	}
}
