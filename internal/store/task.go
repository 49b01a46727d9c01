package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const taskColumns = `id, title, description, status, assignee, due_date, created_by, created_at, updated_at`

// CreateTaskParams represents parameters for creating a task
type CreateTaskParams struct {
	Title       string
	Description string
	Status      string
	Assignee    *string
	DueDate     *time.Time
	CreatedBy   uuid.UUID
}

const sqlCreateTask = `
INSERT INTO tasks (title, description, status, assignee, due_date, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + taskColumns

// CreateTask creates a new task
func (s *Store) CreateTask(ctx context.Context, params CreateTaskParams, audit AuditEntry) (Task, error) {
	var task Task
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &task, sqlCreateTask,
			params.Title,
			params.Description,
			params.Status,
			params.Assignee,
			params.DueDate,
			nullableUUID(params.CreatedBy))
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}
		audit.ResourceID = task.ID.String()
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return Task{}, err
	}
	return task, nil
}

// ListTasksParams filters the task listing
type ListTasksParams struct {
	Status   string
	Assignee string
}

// ListTasks returns tasks ordered by due date, undated last
func (s *Store) ListTasks(ctx context.Context, params ListTasksParams) ([]Task, error) {
	var f filter
	if params.Status != "" {
		f.add("status = ?", params.Status)
	}
	if params.Assignee != "" {
		f.add("assignee = ?", params.Assignee)
	}
	tasks := []Task{}
	query := "SELECT " + taskColumns + " FROM tasks" + f.where() + " ORDER BY due_date ASC NULLS LAST, created_at"
	if err := s.db.SelectContext(ctx, &tasks, query, f.args...); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

const sqlUpdateTaskStatus = `
UPDATE tasks
SET status = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + taskColumns

// UpdateTaskStatus moves a task to status
func (s *Store) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string, audit AuditEntry) (Task, error) {
	var task Task
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &task, sqlUpdateTaskStatus, taskID, status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to update task status: %w", err)
		}
		return insertAuditLog(ctx, tx, audit)
	})
	if err != nil {
		return Task{}, err
	}
	return task, nil
}

const sqlDeleteTask = `DELETE FROM tasks WHERE id = $1`

// DeleteTask hard deletes a task
func (s *Store) DeleteTask(ctx context.Context, taskID uuid.UUID, audit AuditEntry) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlDeleteTask, taskID)
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return ErrNotFound
		}
		return insertAuditLog(ctx, tx, audit)
	})
}
