package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/taskboard/core/internal/ports"
)

// taskSortColumns maps API sort keys onto table columns. Anything outside
// this list falls back to the due-date default.
var taskSortColumns = map[string]string{
	"title":     "title",
	"dueDate":   "due_date",
	"priority":  "priority",
	"status":    "status",
	"createdAt": "created_at",
}

// buildTaskListQuery translates a TaskFilter into the SELECT for listing
// tasks. Unrecognized priority/status values are ignored rather than
// rejected, so stale UI filters degrade to an unfiltered listing. Label ids
// combine with OR: a task matches when it carries at least one of them.
func buildTaskListQuery(filter ports.TaskFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter.Priority != nil && filter.Priority.IsValid() {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", argIndex))
		args = append(args, *filter.Priority)
		argIndex++
	}

	if filter.Status != nil && filter.Status.IsValid() {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}

	if labelIDs := validLabelIDs(filter.LabelIDs); len(labelIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM task_labels tl WHERE tl.task_id = tasks.id AND tl.label_id = ANY($%d))", argIndex))
		args = append(args, pq.Array(labelIDs))
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, status, priority, due_date, created_at, updated_at
		FROM tasks %s
		ORDER BY %s`, whereClause, buildTaskOrdering(filter))

	return query, args
}

// validLabelIDs drops values that are not well-formed uuids. The label_id
// column is typed uuid, so one malformed value would fail the whole query
// instead of matching nothing.
func validLabelIDs(ids []string) []string {
	var valid []string
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	return valid
}

// buildTaskOrdering resolves the ORDER BY clause. Tasks without a due date
// sort after all dated tasks regardless of direction; Postgres defaults to
// nulls-first on descending order, so the override is explicit.
func buildTaskOrdering(filter ports.TaskFilter) string {
	column, ok := taskSortColumns[filter.SortBy]
	if !ok {
		column = "due_date"
	}

	direction := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		direction = "DESC"
	}

	ordering := column + " " + direction
	if column == "due_date" {
		ordering += " NULLS LAST"
	}

	return ordering
}
