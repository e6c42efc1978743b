package tools

import (
	"context"
	"time"

	"personal-assistant-be/internal/constant"
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
	"personal-assistant-be/internal/repository/unitofwork"
)

const dueDateLayout = "2006-01-02"

func taskToMap(t *entity.Task) map[string]interface{} {
	m := map[string]interface{}{
		"id":          t.Id,
		"title":       t.Title,
		"description": t.Description,
		"priority":    t.Priority,
		"status":      t.Status,
	}
	if t.DueDate != nil {
		m["due_date"] = t.DueDate.Format(dueDateLayout)
	}
	return m
}

// NewTaskTools returns the task management tool set.
func NewTaskTools(uowFactory unitofwork.RepositoryFactory) []Descriptor {
	return []Descriptor{
		{
			Name:        "create_task",
			Description: "Create a new task with an optional priority and due date.",
			Parameters: []Parameter{
				{Name: "title", Type: TypeString, Description: "Short task title.", Required: true},
				{Name: "description", Type: TypeString, Description: "Longer task details.", Default: ""},
				{Name: "priority", Type: TypeString, Description: "Task priority.", Default: constant.TaskPriorityMedium, Enum: constant.TaskPriorities},
				{Name: "due_date", Type: TypeString, Description: "Due date in YYYY-MM-DD format.", Default: ""},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				task := &entity.Task{
					Title:       ArgString(args, "title"),
					Description: ArgString(args, "description"),
					Priority:    ArgString(args, "priority"),
					Status:      constant.TaskStatusPending,
					CreatedAt:   time.Now(),
				}

				if raw := ArgString(args, "due_date"); raw != "" {
					due, err := time.Parse(dueDateLayout, raw)
					if err != nil {
						return Fail("invalid due_date %q, expected YYYY-MM-DD", raw)
					}
					task.DueDate = &due
				}

				uow := uowFactory.NewUnitOfWork(ctx)
				if err := uow.TaskRepository().Create(ctx, task); err != nil {
					return Fail("failed to create task: %v", err)
				}

				return Ok(map[string]interface{}{
					"task_id": task.Id,
					"message": "Task '" + task.Title + "' created",
				})
			},
		},
		{
			Name:        "update_task_status",
			Description: "Update the status of an existing task by id.",
			Parameters: []Parameter{
				{Name: "task_id", Type: TypeInteger, Description: "Id of the task to update.", Required: true},
				{Name: "status", Type: TypeString, Description: "New task status.", Required: true, Enum: constant.TaskStatuses},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				taskId, _ := ArgInt(args, "task_id")
				status := ArgString(args, "status")

				uow := uowFactory.NewUnitOfWork(ctx)
				repo := uow.TaskRepository()

				task, err := repo.FindOne(ctx, specification.ByID{ID: taskId})
				if err != nil {
					return Fail("failed to load task: %v", err)
				}
				if task == nil {
					return Fail("Task %d not found", taskId)
				}

				task.Status = status
				if status == constant.TaskStatusCompleted {
					now := time.Now()
					task.CompletedAt = &now
				} else {
					// Reopening a task drops its completion time.
					task.CompletedAt = nil
				}
				if err := repo.Update(ctx, task); err != nil {
					return Fail("failed to update task: %v", err)
				}

				return Ok(map[string]interface{}{
					"message": "Task '" + task.Title + "' marked as " + status,
				})
			},
		},
		{
			Name:        "get_tasks",
			Description: "List tasks, optionally filtered by status.",
			Parameters: []Parameter{
				{Name: "status", Type: TypeString, Description: "Only return tasks with this status.", Default: "", Enum: append([]string{""}, constant.TaskStatuses...)},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				specs := []specification.Specification{specification.ByPendingOrder{}}
				if status := ArgString(args, "status"); status != "" {
					specs = append([]specification.Specification{specification.ByStatus{Status: status}}, specs...)
				}

				uow := uowFactory.NewUnitOfWork(ctx)
				tasks, err := uow.TaskRepository().FindAll(ctx, specs...)
				if err != nil {
					return Fail("failed to list tasks: %v", err)
				}

				out := make([]map[string]interface{}, len(tasks))
				for i, t := range tasks {
					out[i] = taskToMap(t)
				}
				return Ok(map[string]interface{}{
					"tasks": out,
					"count": len(out),
				})
			},
		},
		{
			Name:        "get_pending_tasks",
			Description: "List pending tasks ordered by priority then due date.",
			Parameters:  nil,
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				uow := uowFactory.NewUnitOfWork(ctx)
				tasks, err := uow.TaskRepository().FindAll(ctx,
					specification.ByStatus{Status: constant.TaskStatusPending},
					specification.ByPendingOrder{},
				)
				if err != nil {
					return Fail("failed to list pending tasks: %v", err)
				}

				out := make([]map[string]interface{}, len(tasks))
				for i, t := range tasks {
					out[i] = taskToMap(t)
				}
				return Ok(map[string]interface{}{
					"tasks": out,
					"count": len(out),
				})
			},
		},
	}
}
