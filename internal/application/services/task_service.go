package services

import (
	"context"
	"errors"
	"time"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// TaskService handles task lifecycle and task-label synchronization
type TaskService struct {
	taskRepo  ports.TaskRepository
	resolver  *LabelResolver
	tx        ports.Transactor
	validator *Validator
	logger    *logger.Logger
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, resolver *LabelResolver, tx ports.Transactor, validator *Validator, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		resolver:  resolver,
		tx:        tx,
		validator: validator,
		logger:    logger,
	}
}

// Create validates the payload, creates the task, and attaches its labels
// inside one transaction.
func (s *TaskService) Create(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	if opErr := s.validator.ValidateStruct(req); opErr != nil {
		return nil, opErr
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, entities.NewValidationError("The provided task data is invalid",
			map[string]string{"dueDate": "must be a valid date"})
	}

	task := &entities.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      entities.TaskStatusTodo,
		Priority:    entities.TaskPriorityMedium,
		DueDate:     dueDate,
	}
	if req.Status != "" {
		task.Status = entities.TaskStatus(req.Status)
	}
	if req.Priority != "" {
		task.Priority = entities.TaskPriority(req.Priority)
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return err
		}
		if len(req.Labels) > 0 {
			return s.syncLabels(ctx, task.ID, req.Labels)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Create task failed", "error", err, "title", req.Title)
		return nil, entities.NewServerError("Failed to create task", err)
	}

	s.logger.Info("Task created successfully", "task_id", task.ID, "title", task.Title)

	return s.Get(ctx, task.ID)
}

// Get retrieves a task with its labels by ID
func (s *TaskService) Get(ctx context.Context, id string) (*entities.Task, error) {
	if !isValidID(id) {
		return nil, entities.NewNotFoundError("Task not found")
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return nil, entities.NewNotFoundError("Task not found")
		}
		s.logger.Error("Get task failed", "error", err, "task_id", id)
		return nil, entities.NewServerError("Failed to fetch task", err)
	}

	return task, nil
}

// Update applies a partial update. A nil Labels field leaves the existing
// label set untouched; an explicit empty slice removes every label.
func (s *TaskService) Update(ctx context.Context, id string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	if !isValidID(id) {
		return nil, entities.NewNotFoundError("Task not found")
	}

	if opErr := s.validator.ValidateStruct(req); opErr != nil {
		return nil, opErr
	}

	var dueDate *time.Time
	clearDueDate := false
	if req.DueDate != nil {
		if *req.DueDate == "" {
			clearDueDate = true
		} else {
			parsed, err := parseDueDate(*req.DueDate)
			if err != nil {
				return nil, entities.NewValidationError("The provided task data is invalid",
					map[string]string{"dueDate": "must be a valid date"})
			}
			dueDate = parsed
		}
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		task, err := s.taskRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = req.Description
		}
		if req.Status != nil {
			task.Status = entities.TaskStatus(*req.Status)
		}
		if req.Priority != nil {
			task.Priority = entities.TaskPriority(*req.Priority)
		}
		if clearDueDate {
			task.DueDate = nil
		} else if dueDate != nil {
			task.DueDate = dueDate
		}

		if err := s.taskRepo.Update(ctx, task); err != nil {
			return err
		}

		if req.Labels != nil {
			return s.syncLabels(ctx, id, *req.Labels)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return nil, entities.NewNotFoundError("Task not found")
		}
		s.logger.Error("Update task failed", "error", err, "task_id", id)
		return nil, entities.NewServerError("Failed to update task", err)
	}

	s.logger.Info("Task updated successfully", "task_id", id)

	return s.Get(ctx, id)
}

// Delete removes all label associations and then the task itself.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if !isValidID(id) {
		return entities.NewNotFoundError("Task not found")
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.taskRepo.ClearLabels(ctx, id); err != nil {
			return err
		}
		return s.taskRepo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return entities.NewNotFoundError("Task not found")
		}
		s.logger.Error("Delete task failed", "error", err, "task_id", id)
		return entities.NewServerError("Failed to delete task", err)
	}

	s.logger.Info("Task deleted successfully", "task_id", id)

	return nil
}

// List retrieves tasks with filtering and sorting
func (s *TaskService) List(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List tasks failed", "error", err)
		return nil, entities.NewServerError("Failed to fetch tasks", err)
	}

	return tasks, nil
}

// syncLabels reconciles the task's persisted label set to exactly match the
// requested descriptors: resolve everything, disconnect what dropped out,
// connect what is new. Runs inside the caller's transaction so concurrent
// readers observe either the old or the new set, never a partial one.
func (s *TaskService) syncLabels(ctx context.Context, taskID string, requested []ports.LabelInput) error {
	target := make(map[string]struct{}, len(requested))
	seenNames := make(map[string]struct{}, len(requested))
	for _, input := range requested {
		// Duplicate names within one request collapse to a single resolution.
		if _, ok := seenNames[input.Name]; ok {
			continue
		}
		seenNames[input.Name] = struct{}{}

		label, err := s.resolver.Resolve(ctx, input)
		if err != nil {
			return err
		}
		target[label.ID] = struct{}{}
	}

	current, err := s.taskRepo.GetLabelIDs(ctx, taskID)
	if err != nil {
		return err
	}

	currentSet := make(map[string]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
		if _, keep := target[id]; !keep {
			if err := s.taskRepo.RemoveLabel(ctx, taskID, id); err != nil {
				return err
			}
		}
	}

	for id := range target {
		if _, attached := currentSet[id]; !attached {
			if err := s.taskRepo.AddLabel(ctx, taskID, id); err != nil {
				return err
			}
		}
	}

	return nil
}
