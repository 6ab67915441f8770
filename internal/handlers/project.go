package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/dto"
	apperrors "github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/errors"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/services"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/utils"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// ListProjects returns all projects, newest first
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	projects, total, err := h.projects.ListProjects(params)
	if err != nil {
		logrus.WithError(err).Error("failed to list projects")
		apperrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects, params, total))
}

// CreateProject creates a new project
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description" binding:"required"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Please add a project name and description")
		return
	}

	project, err := h.projects.CreateProject(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNameRequired),
			errors.Is(err, services.ErrProjectDescRequired):
			apperrors.BadRequest(c, err.Error())
		default:
			logrus.WithError(err).Error("failed to create project")
			apperrors.InternalError(c, "Failed to create project")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// UpdateProject updates an existing project; only supplied fields change
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	type UpdateProjectRequest struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projects.UpdateProject(projectID, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			apperrors.NotFound(c, "Project not found")
		case errors.Is(err, services.ErrProjectNameEmpty),
			errors.Is(err, services.ErrProjectDescEmpty):
			apperrors.BadRequest(c, err.Error())
		default:
			logrus.WithError(err).Error("failed to update project")
			apperrors.InternalError(c, "Failed to update project")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// DeleteProject deletes a project. Its tasks are left in place.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.projects.DeleteProject(projectID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apperrors.NotFound(c, "Project not found")
			return
		}
		logrus.WithError(err).Error("failed to delete project")
		apperrors.InternalError(c, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// parseID extracts a numeric path parameter, replying 400 when it is not a
// valid identifier.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}
