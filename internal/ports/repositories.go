package ports

import (
	"context"

	"github.com/taskboard/core/internal/domain/entities"
)

// Transactor runs fn inside a single database transaction. The transaction
// is carried through the context so repository calls made within fn join it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TaskRepository defines the interface for task data operations
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	GetByID(ctx context.Context, id string) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TaskFilter) ([]*entities.Task, error)
	GetLabelIDs(ctx context.Context, taskID string) ([]string, error)
	AddLabel(ctx context.Context, taskID, labelID string) error
	RemoveLabel(ctx context.Context, taskID, labelID string) error
	ClearLabels(ctx context.Context, taskID string) error
}

// LabelRepository defines the interface for label data operations
type LabelRepository interface {
	Create(ctx context.Context, label *entities.Label) error
	GetByID(ctx context.Context, id string) (*entities.Label, error)
	GetByName(ctx context.Context, name string) (*entities.Label, error)
	Update(ctx context.Context, label *entities.Label) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Label, error)
	ClearAssociations(ctx context.Context, labelID string) error
}

// TaskFilter restricts and orders task listings. Unset fields are ignored.
type TaskFilter struct {
	Priority  *entities.TaskPriority
	Status    *entities.TaskStatus
	LabelIDs  []string
	SortBy    string
	SortOrder string
}
