package commands

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskboard/core/internal/adapters/repository"
	"github.com/taskboard/core/internal/domain/entities"
	"github.com/taskboard/core/internal/infrastructure/config"
	"github.com/taskboard/core/internal/infrastructure/database"
)

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with sample labels and tasks",
		Long:  "Remove all existing tasks and labels, then insert a realistic sample data set",
		Run: func(cmd *cobra.Command, args []string) {
			runSeed()
		},
	}
}

var seedLabels = []entities.Label{
	{Name: "Finance", Color: "#ef4444", Icon: entities.LabelIconTag},
	{Name: "Team", Color: "#f97316", Icon: entities.LabelIconHeart},
	{Name: "Documentation", Color: "#f59e0b", Icon: entities.LabelIconBookmark},
	{Name: "Client", Color: "#10b981", Icon: entities.LabelIconStar},
	{Name: "Admin", Color: "#06b6d4", Icon: entities.LabelIconCheck},
	{Name: "Development", Color: "#3b82f6", Icon: entities.LabelIconFlag},
	{Name: "Research", Color: "#8b5cf6", Icon: entities.LabelIconBell},
	{Name: "Planning", Color: "#d946ef", Icon: entities.LabelIconAlertCircle},
}

type seedTask struct {
	title       string
	description string
	priority    entities.TaskPriority
	status      entities.TaskStatus
	dueInDays   *int
	labels      []string
}

func days(n int) *int { return &n }

var seedTasks = []seedTask{
	{
		title:       "Prepare quarterly report",
		description: "Collect revenue numbers and draft the Q report for review",
		priority:    entities.TaskPriorityHigh,
		status:      entities.TaskStatusInProgress,
		dueInDays:   days(-3),
		labels:      []string{"Finance", "Admin"},
	},
	{
		title:       "Onboard new team member",
		description: "Set up accounts and schedule intro meetings",
		priority:    entities.TaskPriorityMedium,
		status:      entities.TaskStatusTodo,
		dueInDays:   days(0),
		labels:      []string{"Team", "Admin"},
	},
	{
		title:       "Update API documentation",
		description: "Document the new label endpoints",
		priority:    entities.TaskPriorityLow,
		status:      entities.TaskStatusTodo,
		dueInDays:   days(7),
		labels:      []string{"Documentation", "Development"},
	},
	{
		title:       "Client feedback review",
		description: "Go through the survey results and extract action items",
		priority:    entities.TaskPriorityHigh,
		status:      entities.TaskStatusTodo,
		dueInDays:   days(2),
		labels:      []string{"Client", "Research"},
	},
	{
		title:       "Sprint retrospective",
		priority:    entities.TaskPriorityMedium,
		status:      entities.TaskStatusDone,
		dueInDays:   days(-7),
		labels:      []string{"Team", "Planning"},
	},
	{
		title:    "Evaluate caching options",
		priority: entities.TaskPriorityLow,
		status:   entities.TaskStatusTodo,
		labels:   []string{"Research", "Development"},
	},
}

func runSeed() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	fmt.Println("Deleting all existing tasks and labels...")
	for _, query := range []string{
		"DELETE FROM task_labels",
		"DELETE FROM tasks",
		"DELETE FROM labels",
	} {
		if _, err := db.DB.ExecContext(ctx, query); err != nil {
			log.Fatalf("Failed to clear table: %v", err)
		}
	}

	taskRepo := repository.NewTaskRepository(db.DB)
	labelRepo := repository.NewLabelRepository(db.DB)

	fmt.Println("Creating labels...")
	labelIDs := make(map[string]string, len(seedLabels))
	for _, l := range seedLabels {
		label := l
		if err := labelRepo.Create(ctx, &label); err != nil {
			log.Fatalf("Failed to create label %q: %v", label.Name, err)
		}
		labelIDs[label.Name] = label.ID
	}

	fmt.Println("Creating tasks...")
	now := time.Now()
	for _, st := range seedTasks {
		task := &entities.Task{
			Title:    st.title,
			Priority: st.priority,
			Status:   st.status,
		}
		if st.description != "" {
			desc := st.description
			task.Description = &desc
		}
		if st.dueInDays != nil {
			due := now.AddDate(0, 0, *st.dueInDays)
			task.DueDate = &due
		}

		if err := taskRepo.Create(ctx, task); err != nil {
			log.Fatalf("Failed to create task %q: %v", st.title, err)
		}

		for _, name := range st.labels {
			if err := taskRepo.AddLabel(ctx, task.ID, labelIDs[name]); err != nil {
				log.Fatalf("Failed to attach label %q: %v", name, err)
			}
		}
	}

	fmt.Printf("Seeded %d labels and %d tasks\n", len(seedLabels), len(seedTasks))
}
