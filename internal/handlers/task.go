package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/dto"
	apperrors "github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/errors"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/models"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/services"
)

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ListTasksByProject returns a project's tasks ordered by
// (position ascending, creation time descending)
func (h *TaskHandler) ListTasksByProject(c *gin.Context) {
	projectID, ok := parseID(c, "projectId")
	if !ok {
		return
	}

	tasks, err := h.tasks.ListTasks(projectID)
	if err != nil {
		logrus.WithError(err).Error("failed to list tasks")
		apperrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks))
}

// CreateTask creates a new task at the bottom of its project's board
func (h *TaskHandler) CreateTask(c *gin.Context) {
	type CreateTaskRequest struct {
		Title       string            `json:"title" binding:"required"`
		Description string            `json:"description"`
		Status      models.TaskStatus `json:"status"`
		ProjectID   uint64            `json:"project_id" binding:"required"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Please add a task title and project_id")
		return
	}

	task, err := h.tasks.CreateTask(services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTitleRequired),
			errors.Is(err, services.ErrProjectIDRequired),
			errors.Is(err, services.ErrInvalidProjectID),
			errors.Is(err, services.ErrInvalidStatus):
			apperrors.BadRequest(c, err.Error())
		default:
			logrus.WithError(err).Error("failed to create task")
			apperrors.InternalError(c, "Failed to create task")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask updates an existing task; only supplied fields change
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title       *string            `json:"title"`
		Description *string            `json:"description"`
		Status      *models.TaskStatus `json:"status"`
		Position    *int               `json:"position"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.tasks.UpdateTask(taskID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Position:    req.Position,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apperrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrTitleEmpty),
			errors.Is(err, services.ErrInvalidStatus):
			apperrors.BadRequest(c, err.Error())
		default:
			logrus.WithError(err).Error("failed to update task")
			apperrors.InternalError(c, "Failed to update task")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// RepositionTask moves a task to a new status column and position
// (drag and drop). Siblings are not renumbered.
func (h *TaskHandler) RepositionTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	type RepositionTaskRequest struct {
		Status   models.TaskStatus `json:"status" binding:"required"`
		Position *int              `json:"position" binding:"required"`
	}

	var req RepositionTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Please provide status and position")
		return
	}

	task, err := h.tasks.Reposition(taskID, req.Status, *req.Position)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			apperrors.NotFound(c, "Task not found")
		case errors.Is(err, services.ErrInvalidStatus):
			apperrors.BadRequest(c, err.Error())
		default:
			logrus.WithError(err).Error("failed to reposition task")
			apperrors.InternalError(c, "Failed to reposition task")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.tasks.DeleteTask(taskID); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			apperrors.NotFound(c, "Task not found")
			return
		}
		logrus.WithError(err).Error("failed to delete task")
		apperrors.InternalError(c, "Failed to delete task")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
