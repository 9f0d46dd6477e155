package http

import (
	"context"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

func testLogger() *logger.Logger {
	return logger.NewNop()
}

// mockTaskService implements ports.TaskService with overridable functions.
type mockTaskService struct {
	createFn func(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error)
	getFn    func(ctx context.Context, id string) (*entities.Task, error)
	updateFn func(ctx context.Context, id string, req ports.UpdateTaskRequest) (*entities.Task, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error)
}

func (m *mockTaskService) Create(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	return m.createFn(ctx, req)
}

func (m *mockTaskService) Get(ctx context.Context, id string) (*entities.Task, error) {
	return m.getFn(ctx, id)
}

func (m *mockTaskService) Update(ctx context.Context, id string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockTaskService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

func (m *mockTaskService) List(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error) {
	return m.listFn(ctx, filter)
}

// mockLabelService implements ports.LabelService with overridable functions.
type mockLabelService struct {
	listFn   func(ctx context.Context) ([]*entities.Label, error)
	createFn func(ctx context.Context, req ports.CreateLabelRequest) (*entities.Label, error)
	updateFn func(ctx context.Context, req ports.UpdateLabelRequest) (*entities.Label, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockLabelService) List(ctx context.Context) ([]*entities.Label, error) {
	return m.listFn(ctx)
}

func (m *mockLabelService) Create(ctx context.Context, req ports.CreateLabelRequest) (*entities.Label, error) {
	return m.createFn(ctx, req)
}

func (m *mockLabelService) Update(ctx context.Context, req ports.UpdateLabelRequest) (*entities.Label, error) {
	return m.updateFn(ctx, req)
}

func (m *mockLabelService) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}
