package ports

import (
	"context"

	"github.com/taskboard/core/internal/domain/entities"
)

// LabelInput is a label descriptor carried inside a task write. It refers to
// a label by name; color and icon only apply when the label does not exist yet.
type LabelInput struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"omitempty,labelcolor"`
	Icon  string `json:"icon" validate:"omitempty,oneof=tag check star flag bookmark heart bell alertCircle"`
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title       string       `json:"title" validate:"required"`
	Description *string      `json:"description"`
	Priority    string       `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Status      string       `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueDate     string       `json:"dueDate"`
	Labels      []LabelInput `json:"labels" validate:"omitempty,dive"`
}

// UpdateTaskRequest is the partial payload for updating a task. Pointer
// fields distinguish absent keys from explicit values: a nil Labels leaves
// the task's labels untouched, while an empty slice removes them all.
type UpdateTaskRequest struct {
	Title       *string       `json:"title" validate:"omitempty,min=1"`
	Description *string       `json:"description"`
	Priority    *string       `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Status      *string       `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	DueDate     *string       `json:"dueDate"`
	Labels      *[]LabelInput `json:"labels" validate:"omitempty,dive"`
}

// CreateLabelRequest is the payload for creating a label directly.
type CreateLabelRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required,labelcolor"`
	Icon  string `json:"icon" validate:"omitempty,oneof=tag check star flag bookmark heart bell alertCircle"`
}

// UpdateLabelRequest is the partial payload for updating a label. The id is
// carried in the body, matching the label collection endpoint contract.
type UpdateLabelRequest struct {
	ID    string  `json:"id" validate:"required"`
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Color *string `json:"color" validate:"omitempty,labelcolor"`
	Icon  *string `json:"icon" validate:"omitempty,oneof=tag check star flag bookmark heart bell alertCircle"`
}

// TaskService handles task lifecycle and the task-label synchronization.
type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (*entities.Task, error)
	Get(ctx context.Context, id string) (*entities.Task, error)
	Update(ctx context.Context, id string, req UpdateTaskRequest) (*entities.Task, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TaskFilter) ([]*entities.Task, error)
}

// LabelService handles direct label management.
type LabelService interface {
	List(ctx context.Context) ([]*entities.Label, error)
	Create(ctx context.Context, req CreateLabelRequest) (*entities.Label, error)
	Update(ctx context.Context, req UpdateLabelRequest) (*entities.Label, error)
	Delete(ctx context.Context, id string) error
}
