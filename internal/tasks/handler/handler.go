package handler

import (
	"net/http"
	"time"

	"engage-server/internal/actor"
	"engage-server/internal/apierrors"
	"engage-server/internal/observability"
	"engage-server/internal/tasks/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.TaskProcessor
	logger    *observability.Logger
}

func New(processor processor.TaskProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description"`
	Status      string     `json:"status" binding:"omitempty,oneof=todo in_progress done"`
	Assignee    *string    `json:"assignee"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateTaskStatusRequest struct {
	TaskID uuid.UUID `json:"task_id" binding:"required"`
	Status string    `json:"status" binding:"required,oneof=todo in_progress done"`
}

// HandleListTasks lists tasks filtered by status and assignee
func (h *Handler) HandleListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.processor.ListTasks(ctx, processor.ListTasksRequest{
		Status:   c.Query("status"),
		Assignee: c.Query("assignee"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// HandleCreateTask adds a task
func (h *Handler) HandleCreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	task, err := h.processor.CreateTask(ctx, a, processor.CreateTaskRequest{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Assignee:    req.Assignee,
		DueDate:     req.DueDate,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// HandleUpdateTaskStatus moves a task to a new status
func (h *Handler) HandleUpdateTaskStatus(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	task, err := h.processor.UpdateTaskStatus(ctx, a, req.TaskID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// HandleDeleteTask deletes the task named by the task_id query parameter
func (h *Handler) HandleDeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	a, ok := actor.FromGin(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authentication required"))
		return
	}

	taskID, err := uuid.Parse(c.Query("task_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid task ID format"))
		return
	}

	if err := h.processor.DeleteTask(ctx, a, taskID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
