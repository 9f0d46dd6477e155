package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/ports"
)

// TaskRepositoryImpl implements the TaskRepository interface
type TaskRepositoryImpl struct {
	db *sqlx.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sqlx.DB) ports.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, status, priority, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	err := queryer(ctx, r.db).QueryRowxContext(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.Priority, task.DueDate,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	query := `
		SELECT id, title, description, status, priority, due_date, created_at, updated_at
		FROM tasks
		WHERE id = $1`

	var task entities.Task
	err := sqlx.GetContext(ctx, queryer(ctx, r.db), &task, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}

	if err := r.attachLabels(ctx, []*entities.Task{&task}); err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *entities.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, priority = $5, due_date = $6,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`

	err := queryer(ctx, r.db).QueryRowxContext(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.Priority, task.DueDate,
	).Scan(&task.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.ErrTaskNotFound
		}
		return fmt.Errorf("update task: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = $1`

	result, err := queryer(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task rows affected: %w", err)
	}
	if rows == 0 {
		return entities.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error) {
	query, args := buildTaskListQuery(filter)

	var tasks []*entities.Task
	err := sqlx.SelectContext(ctx, queryer(ctx, r.db), &tasks, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	if err := r.attachLabels(ctx, tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepositoryImpl) GetLabelIDs(ctx context.Context, taskID string) ([]string, error) {
	query := `SELECT label_id FROM task_labels WHERE task_id = $1`

	var ids []string
	err := sqlx.SelectContext(ctx, queryer(ctx, r.db), &ids, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task label ids: %w", err)
	}

	return ids, nil
}

func (r *TaskRepositoryImpl) AddLabel(ctx context.Context, taskID, labelID string) error {
	// ON CONFLICT keeps the connect step idempotent under concurrent syncs.
	query := `
		INSERT INTO task_labels (task_id, label_id)
		VALUES ($1, $2)
		ON CONFLICT (task_id, label_id) DO NOTHING`

	if _, err := queryer(ctx, r.db).ExecContext(ctx, query, taskID, labelID); err != nil {
		return fmt.Errorf("add task label: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) RemoveLabel(ctx context.Context, taskID, labelID string) error {
	query := `DELETE FROM task_labels WHERE task_id = $1 AND label_id = $2`

	if _, err := queryer(ctx, r.db).ExecContext(ctx, query, taskID, labelID); err != nil {
		return fmt.Errorf("remove task label: %w", err)
	}

	return nil
}

func (r *TaskRepositoryImpl) ClearLabels(ctx context.Context, taskID string) error {
	query := `DELETE FROM task_labels WHERE task_id = $1`

	if _, err := queryer(ctx, r.db).ExecContext(ctx, query, taskID); err != nil {
		return fmt.Errorf("clear task labels: %w", err)
	}

	return nil
}

// attachLabels loads the label sets for the given tasks in one query.
func (r *TaskRepositoryImpl) attachLabels(ctx context.Context, tasks []*entities.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	taskIDs := make([]string, 0, len(tasks))
	byID := make(map[string]*entities.Task, len(tasks))
	for _, t := range tasks {
		t.Labels = []entities.Label{}
		taskIDs = append(taskIDs, t.ID)
		byID[t.ID] = t
	}

	query := `
		SELECT tl.task_id, l.id, l.name, l.color, l.icon
		FROM task_labels tl
		JOIN labels l ON l.id = tl.label_id
		WHERE tl.task_id = ANY($1)
		ORDER BY l.name ASC`

	rows, err := queryer(ctx, r.db).QueryxContext(ctx, query, pq.Array(taskIDs))
	if err != nil {
		return fmt.Errorf("load task labels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID string
		var label entities.Label
		if err := rows.Scan(&taskID, &label.ID, &label.Name, &label.Color, &label.Icon); err != nil {
			return fmt.Errorf("scan task label: %w", err)
		}
		if task, ok := byID[taskID]; ok {
			task.Labels = append(task.Labels, label)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("task label rows: %w", err)
	}

	return nil
}
