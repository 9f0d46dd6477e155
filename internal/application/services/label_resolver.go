package services

import (
	"context"
	"errors"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// LabelResolver maps label descriptors onto persisted labels, creating them
// on first reference. An existing label is returned unchanged: task writes
// never rewrite a label's color or icon, only the label endpoints may.
type LabelResolver struct {
	labelRepo ports.LabelRepository
	logger    *logger.Logger
}

// NewLabelResolver creates a new label resolver
func NewLabelResolver(labelRepo ports.LabelRepository, logger *logger.Logger) *LabelResolver {
	return &LabelResolver{
		labelRepo: labelRepo,
		logger:    logger,
	}
}

// Resolve finds the label with the descriptor's exact name, or creates it.
// When a concurrent create wins the race on the name uniqueness constraint,
// the winner is re-queried and returned instead of surfacing the conflict.
func (r *LabelResolver) Resolve(ctx context.Context, input ports.LabelInput) (*entities.Label, error) {
	existing, err := r.labelRepo.GetByName(ctx, input.Name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, entities.ErrLabelNotFound) {
		return nil, err
	}

	label := &entities.Label{
		Name:  input.Name,
		Color: input.Color,
		Icon:  entities.LabelIcon(input.Icon),
	}
	if label.Color == "" {
		label.Color = entities.DefaultLabelColor
	}
	if label.Icon == "" {
		label.Icon = entities.DefaultLabelIcon
	}

	err = r.labelRepo.Create(ctx, label)
	if err == nil {
		r.logger.Info("Label created on first reference", "label_id", label.ID, "name", label.Name)
		return label, nil
	}
	if !errors.Is(err, entities.ErrDuplicateName) {
		return nil, err
	}

	// Lost the creation race; the winner holds the name now.
	return r.labelRepo.GetByName(ctx, input.Name)
}
