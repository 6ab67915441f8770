package repository

import (
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/models"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/utils"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// List retrieves projects ordered by creation time, newest first
	List(params utils.PaginationParams) ([]models.Project, int64, error)

	// Update updates a project
	Update(project *models.Project) error

	// Delete deletes a project. Tasks referencing it are left in place.
	Delete(id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListByProject retrieves a project's tasks ordered by
	// (position ascending, creation time descending)
	ListByProject(projectID uint64) ([]models.Task, error)

	// FindTopPositioned returns the task with the highest position in a
	// project, or nil if the project has no tasks
	FindTopPositioned(projectID uint64) (*models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// Delete deletes a task
	Delete(id uint64) error
}
