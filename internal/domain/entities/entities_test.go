package entities

import (
	"testing"
	"time"
)

func TestTaskStatusIsValid(t *testing.T) {
	for _, s := range []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone} {
		if !s.IsValid() {
			t.Errorf("%s.IsValid() = false", s)
		}
	}
	for _, s := range []TaskStatus{"", "todo", "ARCHIVED"} {
		if s.IsValid() {
			t.Errorf("%q.IsValid() = true", s)
		}
	}
}

func TestTaskPriorityIsValid(t *testing.T) {
	for _, p := range []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh} {
		if !p.IsValid() {
			t.Errorf("%s.IsValid() = false", p)
		}
	}
	for _, p := range []TaskPriority{"", "high", "URGENT"} {
		if p.IsValid() {
			t.Errorf("%q.IsValid() = true", p)
		}
	}
}

func TestLabelIconIsValid(t *testing.T) {
	icons := []LabelIcon{
		LabelIconTag, LabelIconCheck, LabelIconStar, LabelIconFlag,
		LabelIconBookmark, LabelIconHeart, LabelIconBell, LabelIconAlertCircle,
	}
	for _, i := range icons {
		if !i.IsValid() {
			t.Errorf("%s.IsValid() = false", i)
		}
	}
	for _, i := range []LabelIcon{"", "rocket", "Tag", "alertcircle"} {
		if i.IsValid() {
			t.Errorf("%q.IsValid() = true", i)
		}
	}
}

func TestIsValidHexColor(t *testing.T) {
	valid := []string{"#fff", "#FFF", "#3b82f6", "#EF4444"}
	for _, s := range valid {
		if !IsValidHexColor(s) {
			t.Errorf("IsValidHexColor(%q) = false", s)
		}
	}
	invalid := []string{"", "fff", "#ff", "#ffff", "#gggggg", "red", "#3b82f6aa"}
	for _, s := range invalid {
		if IsValidHexColor(s) {
			t.Errorf("IsValidHexColor(%q) = true", s)
		}
	}
}

func TestTaskHasLabel(t *testing.T) {
	task := &Task{Labels: []Label{{ID: "l1"}, {ID: "l2"}}}

	if !task.HasLabel("l1") {
		t.Error("HasLabel(l1) = false")
	}
	if task.HasLabel("l3") {
		t.Error("HasLabel(l3) = true")
	}
}

func TestTaskIsOverdue(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{"no due date", Task{Status: TaskStatusTodo}, false},
		{"past due, open", Task{Status: TaskStatusTodo, DueDate: &past}, true},
		{"past due, done", Task{Status: TaskStatusDone, DueDate: &past}, false},
		{"future due", Task{Status: TaskStatusTodo, DueDate: &future}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IsOverdue(); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}
