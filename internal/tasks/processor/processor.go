package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"engage-server/internal/actor"
	"engage-server/internal/observability"
	"engage-server/internal/querycache"
	"engage-server/internal/store"

	"github.com/google/uuid"
)

// TaskStore defines the database operations required by TaskProcessor
type TaskStore interface {
	CreateTask(ctx context.Context, params store.CreateTaskParams, audit store.AuditEntry) (store.Task, error)
	ListTasks(ctx context.Context, params store.ListTasksParams) ([]store.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string, audit store.AuditEntry) (store.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID, audit store.AuditEntry) error
}

// ListCache caches list responses per resource.
type ListCache interface {
	Get(ctx context.Context, resource string, params any, dest any) (querycache.Slot, bool)
	Put(ctx context.Context, slot querycache.Slot, value any)
	InvalidateResource(ctx context.Context, resource string)
}

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidTask  = errors.New("invalid task")
	ErrForbidden    = errors.New("viewers cannot change tasks")
)

const cacheResource = "tasks"

type TaskProcessor struct {
	store  TaskStore
	cache  ListCache
	logger *observability.Logger
}

func New(store TaskStore, cache ListCache, logger *observability.Logger) TaskProcessor {
	return TaskProcessor{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

type CreateTaskRequest struct {
	Title       string
	Description string
	Status      string
	Assignee    *string
	DueDate     *time.Time
}

type ListTasksRequest struct {
	Status   string `json:"status"`
	Assignee string `json:"assignee"`
}

func validStatus(s string) bool {
	switch s {
	case store.TaskStatusTodo, store.TaskStatusInProgress, store.TaskStatusDone:
		return true
	}
	return false
}

func canWrite(a actor.Actor) bool {
	return !a.IsSystem() && a.Role != store.RoleViewer
}

// CreateTask adds a task; status defaults to todo
func (p *TaskProcessor) CreateTask(ctx context.Context, a actor.Actor, req CreateTaskRequest) (store.Task, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "actor_id", Value: a.ID.String()})

	if !canWrite(a) {
		return store.Task{}, ErrForbidden
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return store.Task{}, fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	status := req.Status
	if status == "" {
		status = store.TaskStatusTodo
	}
	if !validStatus(status) {
		return store.Task{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTask, status)
	}
	if req.Assignee != nil {
		assignee := strings.TrimSpace(*req.Assignee)
		if assignee == "" {
			req.Assignee = nil
		} else {
			req.Assignee = &assignee
		}
	}

	task, err := p.store.CreateTask(ctx, store.CreateTaskParams{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Status:      status,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
		CreatedBy:   a.ID,
	}, a.Audit("create", store.AuditResourceTask, "", store.JSONB{"title": title, "status": status}))
	if err != nil {
		p.logger.Error(ctx, "failed to create task", err)
		return store.Task{}, err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	return task, nil
}

// ListTasks returns tasks ordered by due date
func (p *TaskProcessor) ListTasks(ctx context.Context, req ListTasksRequest) ([]store.Task, error) {
	if req.Status != "" && !validStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTask, req.Status)
	}

	var cached []store.Task
	slot, hit := p.cache.Get(ctx, cacheResource, req, &cached)
	if hit {
		return cached, nil
	}

	tasks, err := p.store.ListTasks(ctx, store.ListTasksParams{Status: req.Status, Assignee: req.Assignee})
	if err != nil {
		p.logger.Error(ctx, "failed to list tasks", err)
		return nil, err
	}

	p.cache.Put(ctx, slot, tasks)
	return tasks, nil
}

// UpdateTaskStatus moves a task between todo, in_progress and done
func (p *TaskProcessor) UpdateTaskStatus(ctx context.Context, a actor.Actor, taskID uuid.UUID, status string) (store.Task, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "task_id", Value: taskID.String()},
		observability.Field{Key: "actor_id", Value: a.ID.String()},
	)

	if !canWrite(a) {
		return store.Task{}, ErrForbidden
	}
	if !validStatus(status) {
		return store.Task{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTask, status)
	}

	task, err := p.store.UpdateTaskStatus(ctx, taskID, status,
		a.Audit("update_status", store.AuditResourceTask, taskID.String(), store.JSONB{"status": status}))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Task{}, ErrTaskNotFound
		}
		p.logger.Error(ctx, "failed to update task status", err)
		return store.Task{}, err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	return task, nil
}

// DeleteTask removes a task
func (p *TaskProcessor) DeleteTask(ctx context.Context, a actor.Actor, taskID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "task_id", Value: taskID.String()},
		observability.Field{Key: "actor_id", Value: a.ID.String()},
	)

	if !canWrite(a) {
		return ErrForbidden
	}

	err := p.store.DeleteTask(ctx, taskID, a.Audit("delete", store.AuditResourceTask, taskID.String(), nil))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		p.logger.Error(ctx, "failed to delete task", err)
		return err
	}

	p.cache.InvalidateResource(ctx, cacheResource)
	return nil
}
