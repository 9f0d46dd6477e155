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

// uniqueViolation is the Postgres error code for unique constraint failures.
const uniqueViolation = "23505"

// LabelRepositoryImpl implements the LabelRepository interface
type LabelRepositoryImpl struct {
	db *sqlx.DB
}

// NewLabelRepository creates a new label repository
func NewLabelRepository(db *sqlx.DB) ports.LabelRepository {
	return &LabelRepositoryImpl{db: db}
}

// Create inserts a new label. A name collision reports ErrDuplicateName via
// ON CONFLICT rather than a raised unique violation, so an enclosing
// transaction stays usable and the caller can re-query the winning row.
func (r *LabelRepositoryImpl) Create(ctx context.Context, label *entities.Label) error {
	query := `
		INSERT INTO labels (id, name, color, icon)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING`

	if label.ID == "" {
		label.ID = uuid.NewString()
	}

	result, err := queryer(ctx, r.db).ExecContext(ctx, query,
		label.ID, label.Name, label.Color, label.Icon,
	)
	if err != nil {
		return fmt.Errorf("create label: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("create label rows affected: %w", err)
	}
	if rows == 0 {
		return entities.ErrDuplicateName
	}

	return nil
}

func (r *LabelRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Label, error) {
	query := `
		SELECT id, name, color, icon
		FROM labels
		WHERE id = $1`

	var label entities.Label
	err := sqlx.GetContext(ctx, queryer(ctx, r.db), &label, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrLabelNotFound
		}
		return nil, fmt.Errorf("get label by id: %w", err)
	}

	return &label, nil
}

// GetByName looks up a label by exact name. The match is case-sensitive.
func (r *LabelRepositoryImpl) GetByName(ctx context.Context, name string) (*entities.Label, error) {
	query := `
		SELECT id, name, color, icon
		FROM labels
		WHERE name = $1`

	var label entities.Label
	err := sqlx.GetContext(ctx, queryer(ctx, r.db), &label, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrLabelNotFound
		}
		return nil, fmt.Errorf("get label by name: %w", err)
	}

	return &label, nil
}

func (r *LabelRepositoryImpl) Update(ctx context.Context, label *entities.Label) error {
	query := `
		UPDATE labels
		SET name = $2, color = $3, icon = $4
		WHERE id = $1`

	result, err := queryer(ctx, r.db).ExecContext(ctx, query,
		label.ID, label.Name, label.Color, label.Icon,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return entities.ErrDuplicateName
		}
		return fmt.Errorf("update label: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update label rows affected: %w", err)
	}
	if rows == 0 {
		return entities.ErrLabelNotFound
	}

	return nil
}

func (r *LabelRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM labels WHERE id = $1`

	result, err := queryer(ctx, r.db).ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete label: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete label rows affected: %w", err)
	}
	if rows == 0 {
		return entities.ErrLabelNotFound
	}

	return nil
}

func (r *LabelRepositoryImpl) List(ctx context.Context) ([]*entities.Label, error) {
	query := `
		SELECT id, name, color, icon
		FROM labels
		ORDER BY name ASC`

	var labels []*entities.Label
	err := sqlx.SelectContext(ctx, queryer(ctx, r.db), &labels, query)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}

	return labels, nil
}

// ClearAssociations removes the label from every task it is attached to.
func (r *LabelRepositoryImpl) ClearAssociations(ctx context.Context, labelID string) error {
	query := `DELETE FROM task_labels WHERE label_id = $1`

	if _, err := queryer(ctx, r.db).ExecContext(ctx, query, labelID); err != nil {
		return fmt.Errorf("clear label associations: %w", err)
	}

	return nil
}
