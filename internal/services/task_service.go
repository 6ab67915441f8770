package services

import (
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/models"
	"github.com/vivekmishra22/DevVoid-Task-Manager-Project/internal/repository"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTitleRequired     = errors.New("please add a task title")
	ErrTitleEmpty        = errors.New("title cannot be empty")
	ErrProjectIDRequired = errors.New("projectId is required")
	ErrInvalidProjectID  = errors.New("projectId does not reference an existing project")
	ErrInvalidStatus     = errors.New("status must be one of todo, inProgress, done")
)

// TaskService handles task business logic: creation order, the board's
// position/status model, and task CRUD.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	Description string
	Status      models.TaskStatus
	ProjectID   uint64
}

// UpdateTaskInput represents input for updating a task
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Position    *int
}

// ListTasks returns a project's tasks in display order:
// position ascending, then creation time descending.
func (s *TaskService) ListTasks(projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask validates input and creates the task at the bottom of the
// board: its position is one past the highest position already used in the
// project, or 0 for the project's first task.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.ProjectID == 0 {
		return nil, ErrProjectIDRequired
	}
	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidProjectID
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	position := 0
	top, err := s.taskRepo.FindTopPositioned(input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute position: %w", err)
	}
	if top != nil {
		position = top.Position + 1
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		ProjectID:   input.ProjectID,
		Position:    position,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// UpdateTask updates an existing task; only supplied fields change
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrTitleEmpty
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.Position != nil {
		task.Position = *input.Position
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Reposition moves a task to a new status column and position. Both fields
// are written as supplied; siblings are never renumbered. Position collisions
// are resolved at read time by the creation-time tiebreak in ListTasks.
func (s *TaskService) Reposition(taskID uint64, status models.TaskStatus, position int) (*models.Task, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.Status = status
	task.Position = position

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to reposition task: %w", err)
	}

	return task, nil
}

// DeleteTask deletes a task
func (s *TaskService) DeleteTask(taskID uint64) error {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// Partition filters tasks to one status column and sorts by position
// ascending. The sort is stable, so tasks sharing a position keep their
// incoming order.
func Partition(tasks []models.Task, status models.TaskStatus) []models.Task {
	column := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			column = append(column, t)
		}
	}

	sort.SliceStable(column, func(i, j int) bool {
		return column[i].Position < column[j].Position
	})

	return column
}
