package entities

import (
	"regexp"
	"time"
)

// Enums and types
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

type LabelIcon string

const (
	LabelIconTag         LabelIcon = "tag"
	LabelIconCheck       LabelIcon = "check"
	LabelIconStar        LabelIcon = "star"
	LabelIconFlag        LabelIcon = "flag"
	LabelIconBookmark    LabelIcon = "bookmark"
	LabelIconHeart       LabelIcon = "heart"
	LabelIconBell        LabelIcon = "bell"
	LabelIconAlertCircle LabelIcon = "alertCircle"
)

// DefaultLabelIcon is used when a label descriptor omits the icon.
const DefaultLabelIcon = LabelIconTag

// DefaultLabelColor is used when a label descriptor omits the color.
const DefaultLabelColor = "#3b82f6"

// Task represents a to-do item with its attached labels
type Task struct {
	ID          string       `json:"id" db:"id"`
	Title       string       `json:"title" db:"title"`
	Description *string      `json:"description" db:"description"`
	Status      TaskStatus   `json:"status" db:"status"`
	Priority    TaskPriority `json:"priority" db:"priority"`
	DueDate     *time.Time   `json:"dueDate" db:"due_date"`
	Labels      []Label      `json:"labels"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}

// Label represents a named, colored, iconified tag attachable to any number of tasks
type Label struct {
	ID    string    `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Color string    `json:"color" db:"color"`
	Icon  LabelIcon `json:"icon" db:"icon"`
}

// HasLabel reports whether the task already carries the given label id.
func (t *Task) HasLabel(labelID string) bool {
	for _, l := range t.Labels {
		if l.ID == labelID {
			return true
		}
	}
	return false
}

// IsOverdue reports whether the task's due date has passed without completion.
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	return time.Now().After(*t.DueDate) && t.Status != TaskStatusDone
}

// Utility methods
func (ts TaskStatus) IsValid() bool {
	switch ts {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

func (tp TaskPriority) IsValid() bool {
	switch tp {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

func (li LabelIcon) IsValid() bool {
	switch li {
	case LabelIconTag, LabelIconCheck, LabelIconStar, LabelIconFlag,
		LabelIconBookmark, LabelIconHeart, LabelIconBell, LabelIconAlertCircle:
		return true
	default:
		return false
	}
}

// hexColorPattern accepts #RGB and #RRGGBB, case-insensitive.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// IsValidHexColor reports whether s is a #RGB or #RRGGBB color string.
func IsValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}
