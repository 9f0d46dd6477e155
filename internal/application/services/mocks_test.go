package services

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/logger"
	"github.com/taskboard/core/internal/ports"
)

func testLogger() *logger.Logger {
	return logger.NewNop()
}

// fakeStore is an in-memory stand-in for the persistence layer. The task and
// label repositories below are views over the same store so that label
// associations resolve consistently, like they do against the real schema.
type fakeStore struct {
	tasks  map[string]*entities.Task
	labels map[string]*entities.Label
	assoc  map[string]map[string]struct{} // task id -> set of label ids
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tasks:  make(map[string]*entities.Task),
		labels: make(map[string]*entities.Label),
		assoc:  make(map[string]map[string]struct{}),
	}
}

func (s *fakeStore) labelByName(name string) *entities.Label {
	for _, l := range s.labels {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// taskLabels materializes a task's label set, sorted by name.
func (s *fakeStore) taskLabels(taskID string) []entities.Label {
	labels := []entities.Label{}
	for id := range s.assoc[taskID] {
		if l, ok := s.labels[id]; ok {
			labels = append(labels, *l)
		}
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Name < labels[j].Name })
	return labels
}

type fakeTaskRepo struct {
	store *fakeStore
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entities.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	copied := *task
	r.store.tasks[task.ID] = &copied
	r.store.assoc[task.ID] = make(map[string]struct{})
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	task, ok := r.store.tasks[id]
	if !ok {
		return nil, entities.ErrTaskNotFound
	}
	copied := *task
	copied.Labels = r.store.taskLabels(id)
	return &copied, nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *entities.Task) error {
	if _, ok := r.store.tasks[task.ID]; !ok {
		return entities.ErrTaskNotFound
	}
	copied := *task
	copied.Labels = nil
	r.store.tasks[task.ID] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.store.tasks[id]; !ok {
		return entities.ErrTaskNotFound
	}
	delete(r.store.tasks, id)
	delete(r.store.assoc, id)
	return nil
}

func (r *fakeTaskRepo) List(ctx context.Context, filter ports.TaskFilter) ([]*entities.Task, error) {
	var tasks []*entities.Task
	for id := range r.store.tasks {
		task, _ := r.GetByID(ctx, id)
		if filter.Priority != nil && filter.Priority.IsValid() && task.Priority != *filter.Priority {
			continue
		}
		if filter.Status != nil && filter.Status.IsValid() && task.Status != *filter.Status {
			continue
		}
		if len(filter.LabelIDs) > 0 && !hasAnyLabel(r.store.assoc[id], filter.LabelIDs) {
			continue
		}
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

// hasAnyLabel reports whether at least one of ids is attached.
func hasAnyLabel(attached map[string]struct{}, ids []string) bool {
	for _, id := range ids {
		if _, ok := attached[id]; ok {
			return true
		}
	}
	return false
}

func (r *fakeTaskRepo) GetLabelIDs(ctx context.Context, taskID string) ([]string, error) {
	if _, ok := r.store.tasks[taskID]; !ok {
		return nil, entities.ErrTaskNotFound
	}
	ids := []string{}
	for id := range r.store.assoc[taskID] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *fakeTaskRepo) AddLabel(ctx context.Context, taskID, labelID string) error {
	r.store.assoc[taskID][labelID] = struct{}{}
	return nil
}

func (r *fakeTaskRepo) RemoveLabel(ctx context.Context, taskID, labelID string) error {
	delete(r.store.assoc[taskID], labelID)
	return nil
}

func (r *fakeTaskRepo) ClearLabels(ctx context.Context, taskID string) error {
	r.store.assoc[taskID] = make(map[string]struct{})
	return nil
}

type fakeLabelRepo struct {
	store *fakeStore

	// createHook, when set, runs before every Create to simulate races.
	createHook func()
}

func (r *fakeLabelRepo) Create(ctx context.Context, label *entities.Label) error {
	if r.createHook != nil {
		r.createHook()
	}
	if r.store.labelByName(label.Name) != nil {
		return entities.ErrDuplicateName
	}
	if label.ID == "" {
		label.ID = uuid.NewString()
	}
	copied := *label
	r.store.labels[label.ID] = &copied
	return nil
}

func (r *fakeLabelRepo) GetByID(ctx context.Context, id string) (*entities.Label, error) {
	label, ok := r.store.labels[id]
	if !ok {
		return nil, entities.ErrLabelNotFound
	}
	copied := *label
	return &copied, nil
}

func (r *fakeLabelRepo) GetByName(ctx context.Context, name string) (*entities.Label, error) {
	label := r.store.labelByName(name)
	if label == nil {
		return nil, entities.ErrLabelNotFound
	}
	copied := *label
	return &copied, nil
}

func (r *fakeLabelRepo) Update(ctx context.Context, label *entities.Label) error {
	if _, ok := r.store.labels[label.ID]; !ok {
		return entities.ErrLabelNotFound
	}
	if existing := r.store.labelByName(label.Name); existing != nil && existing.ID != label.ID {
		return entities.ErrDuplicateName
	}
	copied := *label
	r.store.labels[label.ID] = &copied
	return nil
}

func (r *fakeLabelRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.store.labels[id]; !ok {
		return entities.ErrLabelNotFound
	}
	delete(r.store.labels, id)
	return nil
}

func (r *fakeLabelRepo) List(ctx context.Context) ([]*entities.Label, error) {
	labels := []*entities.Label{}
	for _, l := range r.store.labels {
		copied := *l
		labels = append(labels, &copied)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].Name < labels[j].Name })
	return labels, nil
}

func (r *fakeLabelRepo) ClearAssociations(ctx context.Context, labelID string) error {
	for taskID := range r.store.assoc {
		delete(r.store.assoc[taskID], labelID)
	}
	return nil
}

// fakeTransactor runs the function directly; the fakes have no transaction
// semantics to enforce.
type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// newTestServices wires a task and label service over one shared fake store.
func newTestServices() (*TaskService, *LabelService, *fakeStore, *fakeLabelRepo) {
	store := newFakeStore()
	taskRepo := &fakeTaskRepo{store: store}
	labelRepo := &fakeLabelRepo{store: store}
	validator := NewValidator()
	log := testLogger()

	resolver := NewLabelResolver(labelRepo, log)
	taskService := NewTaskService(taskRepo, resolver, fakeTransactor{}, validator, log)
	labelService := NewLabelService(labelRepo, fakeTransactor{}, validator, log)

	return taskService, labelService, store, labelRepo
}
