package services

import (
	"context"
	"errors"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

// LabelService handles direct label management
type LabelService struct {
	labelRepo ports.LabelRepository
	tx        ports.Transactor
	validator *Validator
	logger    *logger.Logger
}

// NewLabelService creates a new label service
func NewLabelService(labelRepo ports.LabelRepository, tx ports.Transactor, validator *Validator, logger *logger.Logger) *LabelService {
	return &LabelService{
		labelRepo: labelRepo,
		tx:        tx,
		validator: validator,
		logger:    logger,
	}
}

// List retrieves all labels ordered by name
func (s *LabelService) List(ctx context.Context) ([]*entities.Label, error) {
	labels, err := s.labelRepo.List(ctx)
	if err != nil {
		s.logger.Error("List labels failed", "error", err)
		return nil, entities.NewServerError("Failed to fetch labels", err)
	}

	if labels == nil {
		labels = []*entities.Label{}
	}

	return labels, nil
}

// Create creates a new label, rejecting duplicate names.
func (s *LabelService) Create(ctx context.Context, req ports.CreateLabelRequest) (*entities.Label, error) {
	if opErr := s.validator.ValidateStruct(req); opErr != nil {
		return nil, opErr
	}

	label := &entities.Label{
		Name:  req.Name,
		Color: req.Color,
		Icon:  entities.LabelIcon(req.Icon),
	}
	if label.Icon == "" {
		label.Icon = entities.DefaultLabelIcon
	}

	err := s.labelRepo.Create(ctx, label)
	if err != nil {
		if errors.Is(err, entities.ErrDuplicateName) {
			return nil, entities.NewDuplicateError("A label with this name already exists")
		}
		s.logger.Error("Create label failed", "error", err, "name", req.Name)
		return nil, entities.NewServerError("Failed to create label", err)
	}

	s.logger.Info("Label created successfully", "label_id", label.ID, "name", label.Name)

	return label, nil
}

// Update applies a partial update to a label, rejecting renames that collide
// with an existing name.
func (s *LabelService) Update(ctx context.Context, req ports.UpdateLabelRequest) (*entities.Label, error) {
	if opErr := s.validator.ValidateStruct(req); opErr != nil {
		return nil, opErr
	}

	if req.Name == nil && req.Color == nil && req.Icon == nil {
		return nil, entities.NewValidationError("No fields provided for update", nil)
	}

	if !isValidID(req.ID) {
		return nil, entities.NewNotFoundError("Label not found")
	}

	label, err := s.labelRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, entities.ErrLabelNotFound) {
			return nil, entities.NewNotFoundError("Label not found")
		}
		s.logger.Error("Get label failed", "error", err, "label_id", req.ID)
		return nil, entities.NewServerError("Failed to update label", err)
	}

	if req.Name != nil {
		label.Name = *req.Name
	}
	if req.Color != nil {
		label.Color = *req.Color
	}
	if req.Icon != nil {
		label.Icon = entities.LabelIcon(*req.Icon)
	}

	err = s.labelRepo.Update(ctx, label)
	if err != nil {
		if errors.Is(err, entities.ErrDuplicateName) {
			return nil, entities.NewDuplicateError("Another label with this name already exists")
		}
		if errors.Is(err, entities.ErrLabelNotFound) {
			return nil, entities.NewNotFoundError("Label not found")
		}
		s.logger.Error("Update label failed", "error", err, "label_id", req.ID)
		return nil, entities.NewServerError("Failed to update label", err)
	}

	s.logger.Info("Label updated successfully", "label_id", label.ID, "name", label.Name)

	return label, nil
}

// Delete disconnects the label from every task, then removes it. The tasks
// themselves are untouched.
func (s *LabelService) Delete(ctx context.Context, id string) error {
	if !isValidID(id) {
		return entities.NewNotFoundError("Label not found")
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.labelRepo.ClearAssociations(ctx, id); err != nil {
			return err
		}
		return s.labelRepo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, entities.ErrLabelNotFound) {
			return entities.NewNotFoundError("Label not found")
		}
		s.logger.Error("Delete label failed", "error", err, "label_id", id)
		return entities.NewServerError("Failed to delete label", err)
	}

	s.logger.Info("Label deleted successfully", "label_id", id)

	return nil
}
