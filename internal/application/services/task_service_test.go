package services

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/ports"
)

func labelNames(task *entities.Task) []string {
	names := []string{}
	for _, l := range task.Labels {
		names = append(names, l.Name)
	}
	return names
}

func mustCreateTask(t *testing.T, svc *TaskService, req ports.CreateTaskRequest) *entities.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return task
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, _, _, _ := newTestServices()

	task := mustCreateTask(t, svc, ports.CreateTaskRequest{Title: "Ship release"})

	if task.Status != entities.TaskStatusTodo {
		t.Errorf("status = %s, want TODO", task.Status)
	}
	if task.Priority != entities.TaskPriorityMedium {
		t.Errorf("priority = %s, want MEDIUM", task.Priority)
	}
	if task.DueDate != nil {
		t.Errorf("dueDate = %v, want nil", task.DueDate)
	}
	if len(task.Labels) != 0 {
		t.Errorf("labels = %v, want empty", task.Labels)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc, _, _, _ := newTestServices()
	ctx := context.Background()

	tests := []struct {
		name  string
		req   ports.CreateTaskRequest
		field string
	}{
		{"missing title", ports.CreateTaskRequest{}, "title"},
		{"bad priority", ports.CreateTaskRequest{Title: "x", Priority: "URGENT"}, "priority"},
		{"bad status", ports.CreateTaskRequest{Title: "x", Status: "ARCHIVED"}, "status"},
		{"bad due date", ports.CreateTaskRequest{Title: "x", DueDate: "not-a-date"}, "dueDate"},
		{"bad label color", ports.CreateTaskRequest{
			Title:  "x",
			Labels: []ports.LabelInput{{Name: "Dev", Color: "blue"}},
		}, "labels[0].color"},
		{"bad label icon", ports.CreateTaskRequest{
			Title:  "x",
			Labels: []ports.LabelInput{{Name: "Dev", Color: "#fff", Icon: "rocket"}},
		}, "labels[0].icon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			opErr, ok := entities.AsOperationError(err)
			if !ok || opErr.Type != entities.ErrorTypeValidation {
				t.Fatalf("Create() error = %v, want validation error", err)
			}
			if _, present := opErr.Details[tt.field]; !present {
				t.Errorf("details = %v, want entry for %q", opErr.Details, tt.field)
			}
		})
	}
}

func TestCreateTaskReusesExistingLabel(t *testing.T) {
	svc, _, _, _ := newTestServices()
	ctx := context.Background()

	first := mustCreateTask(t, svc, ports.CreateTaskRequest{
		Title:  "Ship release",
		Labels: []ports.LabelInput{{Name: "Dev", Color: "#3b82f6", Icon: "flag"}},
	})
	if len(first.Labels) != 1 {
		t.Fatalf("labels = %v, want one label", first.Labels)
	}
	created := first.Labels[0]

	// A second task referencing "Dev" with different attributes must reuse
	// the existing label untouched, not duplicate or overwrite it.
	second := mustCreateTask(t, svc, ports.CreateTaskRequest{
		Title:  "Fix bug",
		Labels: []ports.LabelInput{{Name: "Dev", Color: "#000000", Icon: "tag"}},
	})
	if len(second.Labels) != 1 {
		t.Fatalf("labels = %v, want one label", second.Labels)
	}
	reused := second.Labels[0]

	if reused.ID != created.ID {
		t.Errorf("label id = %s, want %s (reused)", reused.ID, created.ID)
	}
	if reused.Color != "#3b82f6" {
		t.Errorf("label color = %s, want original #3b82f6", reused.Color)
	}
	if reused.Icon != entities.LabelIconFlag {
		t.Errorf("label icon = %s, want original flag", reused.Icon)
	}

	_, err := svc.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
}

func TestSyncLabelsSetEquality(t *testing.T) {
	svc, _, _, _ := newTestServices()
	ctx := context.Background()

	task := mustCreateTask(t, svc, ports.CreateTaskRequest{
		Title: "Plan sprint",
		Labels: []ports.LabelInput{
			{Name: "A", Color: "#111"},
			{Name: "B", Color: "#222"},
		},
	})

	// Replace {A, B} with {B, C}: A disconnects, C connects, B stays.
	updated, err := svc.Update(ctx, task.ID, ports.UpdateTaskRequest{
		Labels: &[]ports.LabelInput{
			{Name: "B", Color: "#222"},
			{Name: "C", Color: "#333"},
		},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got := labelNames(updated)
	want := []string{"B", "C"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestSyncLabelsIdempotent(t *testing.T) {
	svc, _, store, _ := newTestServices()
	ctx := context.Background()

	req := &[]ports.LabelInput{
		{Name: "A", Color: "#111"},
		{Name: "B", Color: "#222"},
	}

	task := mustCreateTask(t, svc, ports.CreateTaskRequest{Title: "t", Labels: *req})

	first, err := svc.Update(ctx, task.ID, ports.UpdateTaskRequest{Labels: req})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	second, err := svc.Update(ctx, task.ID, ports.UpdateTaskRequest{Labels: req})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if len(first.Labels) != 2 || len(second.Labels) != 2 {
		t.Errorf("label counts = %d, %d; want 2, 2", len(first.Labels), len(second.Labels))
	}
	if len(store.labels) != 2 {
		t.Errorf("label rows = %d, want 2 (no drift)", len(store.labels))
	}
}

func TestSyncLabelsDuplicateNamesCollapse(t *testing.T) {
	svc, _, store, _ := newTestServices()

	task := mustCreateTask(t, svc, ports.CreateTaskRequest{
		Title: "t",
		Labels: []ports.LabelInput{
			{Name: "Dev", Color: "#111"},
			{Name: "Dev", Color: "#222"},
		},
	})

	if len(task.Labels) != 1 {
		t.Errorf("labels = %v, want single label", task.Labels)
	}
	if len(store.labels) != 1 {
		t.Errorf("label rows = %d, want 1", len(store.labels))
	}
}

func TestUpdateLabelsAbsentVersusEmpty(t *testing.T) {
	svc, _, _, _ := newTestServices()
	ctx := context.Background()

	task := mustCreateTask(t, svc, ports.CreateTaskRequest{
		Title:  "t",
		Labels: []ports.LabelInput{{Name: "Keep", Color: "#111"}},
	})

	// No labels key: the existing set stays untouched.
	title := "renamed"
	updated, err := svc.Update(ctx, task.ID, ports.UpdateTaskRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(updated.Labels) != 1 {
		t.Errorf("labels after untouched update = %v, want [Keep]", updated.Labels)
	}

	// Explicit empty slice: every label disconnects.
	empty := []ports.LabelInput{}
	updated, err = svc.Update(ctx, task.ID, ports.UpdateTaskRequest{Labels: &empty})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if len(updated.Labels) != 0 {
		t.Errorf("labels after empty update = %v, want none", updated.Labels)
	}
}

func TestUpdateTaskPartialFields(t *testing.T) {
	svc, _, _, _ := newTestServices()
	ctx := context.Background()

	task := mustCreateTask(t, svc, ports.CreateTaskRequest{
		Title:    "original",
		Priority: "HIGH",
		DueDate:  "2024-06-01",
	})

	status := "DONE"
	updated, err := svc.Update(ctx, task.ID, ports.UpdateTaskRequest{Status: &status})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Title != "original" {
		t.Errorf("title = %s, want unchanged", updated.Title)
	}
	if updated.Priority != entities.TaskPriorityHigh {
		t.Errorf("priority = %s, want unchanged HIGH", updated.Priority)
	}
	if updated.Status != entities.TaskStatusDone {
		t.Errorf("status = %s, want DONE", updated.Status)
	}
	if updated.DueDate == nil {
		t.Error("dueDate cleared by unrelated update")
	}

	// An explicit empty string clears the due date.
	empty := ""
	updated, err = svc.Update(ctx, task.ID, ports.UpdateTaskRequest{DueDate: &empty})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.DueDate != nil {
		t.Errorf("dueDate = %v, want cleared", updated.DueDate)
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	svc, _, _, _ := newTestServices()

	title := "x"
	_, err := svc.Update(context.Background(), uuid.NewString(), ports.UpdateTaskRequest{Title: &title})
	opErr, ok := entities.AsOperationError(err)
	if !ok || opErr.Type != entities.ErrorTypeNotFound {
		t.Fatalf("Update() error = %v, want not-found error", err)
	}
}

func TestTaskOperationsMalformedID(t *testing.T) {
	// The id column is typed uuid; a malformed id is not-found, never a
	// database cast failure surfacing as a server error.
	svc, _, _, _ := newTestServices()
	ctx := context.Background()

	_, err := svc.Get(ctx, "abc")
	if opErr, ok := entities.AsOperationError(err); !ok || opErr.Type != entities.ErrorTypeNotFound {
		t.Errorf("Get() error = %v, want not-found error", err)
	}

	title := "x"
	_, err = svc.Update(ctx, "abc", ports.UpdateTaskRequest{Title: &title})
	if opErr, ok := entities.AsOperationError(err); !ok || opErr.Type != entities.ErrorTypeNotFound {
		t.Errorf("Update() error = %v, want not-found error", err)
	}

	err = svc.Delete(ctx, "abc")
	if opErr, ok := entities.AsOperationError(err); !ok || opErr.Type != entities.ErrorTypeNotFound {
		t.Errorf("Delete() error = %v, want not-found error", err)
	}
}

func TestDeleteTaskKeepsLabels(t *testing.T) {
	svc, labelSvc, store, _ := newTestServices()
	ctx := context.Background()

	shared := []ports.LabelInput{{Name: "Shared", Color: "#111"}}
	doomed := mustCreateTask(t, svc, ports.CreateTaskRequest{Title: "doomed", Labels: shared})
	survivor := mustCreateTask(t, svc, ports.CreateTaskRequest{Title: "survivor", Labels: shared})

	if err := svc.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.Get(ctx, doomed.ID); err == nil {
		t.Error("deleted task still retrievable")
	}

	labels, err := labelSvc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(labels) != 1 {
		t.Errorf("label rows = %d, want 1 (labels survive task deletion)", len(labels))
	}

	remaining, err := svc.Get(ctx, survivor.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(remaining.Labels) != 1 {
		t.Errorf("survivor labels = %v, want [Shared]", remaining.Labels)
	}

	if len(store.assoc[doomed.ID]) != 0 {
		t.Error("join rows for deleted task left behind")
	}
}

func TestListTasksFilterByLabelsOr(t *testing.T) {
	svc, _, _, _ := newTestServices()
	ctx := context.Background()

	t1 := mustCreateTask(t, svc, ports.CreateTaskRequest{
		Title:  "with A",
		Labels: []ports.LabelInput{{Name: "A", Color: "#111"}},
	})
	t2 := mustCreateTask(t, svc, ports.CreateTaskRequest{
		Title:  "with B",
		Labels: []ports.LabelInput{{Name: "B", Color: "#222"}},
	})
	mustCreateTask(t, svc, ports.CreateTaskRequest{Title: "unlabeled"})

	listed, err := svc.List(ctx, ports.TaskFilter{
		LabelIDs: []string{t1.Labels[0].ID, t2.Labels[0].ID},
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	// A task matches when it carries at least one of the ids (OR semantics);
	// the unlabeled task is excluded.
	if len(listed) != 2 {
		t.Fatalf("listed %d tasks, want 2", len(listed))
	}
	got := map[string]bool{}
	for _, task := range listed {
		got[task.ID] = true
	}
	if !got[t1.ID] || !got[t2.ID] {
		t.Errorf("listed = %v, want exactly {%s, %s}", got, t1.ID, t2.ID)
	}
}

func TestDeleteTaskNotFound(t *testing.T) {
	svc, _, _, _ := newTestServices()

	err := svc.Delete(context.Background(), uuid.NewString())
	opErr, ok := entities.AsOperationError(err)
	if !ok || opErr.Type != entities.ErrorTypeNotFound {
		t.Fatalf("Delete() error = %v, want not-found error", err)
	}
}

func TestLabelNameMatchIsCaseSensitive(t *testing.T) {
	// Exact-match lookup: "dev" and "Dev" are distinct labels. Pins the
	// behavior until a product decision says otherwise.
	svc, _, store, _ := newTestServices()

	mustCreateTask(t, svc, ports.CreateTaskRequest{
		Title:  "a",
		Labels: []ports.LabelInput{{Name: "Dev", Color: "#111"}},
	})
	mustCreateTask(t, svc, ports.CreateTaskRequest{
		Title:  "b",
		Labels: []ports.LabelInput{{Name: "dev", Color: "#222"}},
	})

	if len(store.labels) != 2 {
		t.Errorf("label rows = %d, want 2 distinct labels", len(store.labels))
	}
}
