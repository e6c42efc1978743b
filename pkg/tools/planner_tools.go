package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"personal-assistant-be/internal/constant"
	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
	"personal-assistant-be/internal/repository/unitofwork"
	"personal-assistant-be/pkg/llm"
)

// NewPlannerTools returns the planning tool set: daily plan generation and
// goal management.
func NewPlannerTools(uowFactory unitofwork.RepositoryFactory, provider llm.LLMProvider) []Descriptor {
	return []Descriptor{
		{
			Name:        "create_daily_plan",
			Description: "Generate a daily plan from pending tasks and active goals, then store it.",
			Parameters: []Parameter{
				{Name: "focus", Type: TypeString, Description: "Optional theme to emphasize in the plan.", Default: ""},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				uow := uowFactory.NewUnitOfWork(ctx)

				tasks, err := uow.TaskRepository().FindAll(ctx,
					specification.ByStatus{Status: constant.TaskStatusPending},
					specification.ByPendingOrder{},
					specification.Pagination{Limit: maxPlanTasks},
				)
				if err != nil {
					return Fail("failed to load pending tasks: %v", err)
				}

				goals, err := uow.GoalRepository().FindAll(ctx,
					specification.Filter("status", constant.GoalStatusActive),
				)
				if err != nil {
					return Fail("failed to load goals: %v", err)
				}

				prompt := buildPlanPrompt(tasks, goals, ArgString(args, "focus"))
				content, err := provider.Generate(ctx, prompt, llm.WithTemperature(0.4))
				if err != nil {
					return Fail("failed to generate plan: %v", err)
				}

				planDate := time.Now().Format(dueDateLayout)
				plan := &entity.ActionPlan{
					PlanDate:  planDate,
					Content:   content,
					CreatedAt: time.Now(),
				}
				if err := uow.PlanRepository().Create(ctx, plan); err != nil {
					return Fail("failed to store plan: %v", err)
				}

				// The model is asked for JSON; when it complies the caller
				// gets the structured blocks, otherwise the raw text.
				var parsed dailyPlan
				if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &parsed); err != nil {
					return Ok(map[string]interface{}{
						"plan_text": content,
						"date":      planDate,
						"plan_id":   plan.Id,
					})
				}

				blocks := make([]map[string]interface{}, len(parsed.Plan))
				for i, item := range parsed.Plan {
					block := map[string]interface{}{
						"time":     item.Time,
						"activity": item.Activity,
					}
					if item.TaskId != nil {
						block["task_id"] = *item.TaskId
					}
					blocks[i] = block
				}

				return Ok(map[string]interface{}{
					"plan":    blocks,
					"summary": parsed.Summary,
					"date":    planDate,
					"plan_id": plan.Id,
				})
			},
		},
		{
			Name:        "set_goal",
			Description: "Record a new goal with an optional target date.",
			Parameters: []Parameter{
				{Name: "title", Type: TypeString, Description: "Goal title.", Required: true},
				{Name: "description", Type: TypeString, Description: "What achieving the goal looks like.", Default: ""},
				{Name: "target_date", Type: TypeString, Description: "Target date in YYYY-MM-DD format.", Default: ""},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				goal := &entity.Goal{
					Title:       ArgString(args, "title"),
					Description: ArgString(args, "description"),
					Status:      constant.GoalStatusActive,
					CreatedAt:   time.Now(),
				}

				if raw := ArgString(args, "target_date"); raw != "" {
					target, err := time.Parse(dueDateLayout, raw)
					if err != nil {
						return Fail("invalid target_date %q, expected YYYY-MM-DD", raw)
					}
					goal.TargetDate = &target
				}

				uow := uowFactory.NewUnitOfWork(ctx)
				if err := uow.GoalRepository().Create(ctx, goal); err != nil {
					return Fail("failed to create goal: %v", err)
				}

				return Ok(map[string]interface{}{
					"goal_id": goal.Id,
					"message": "Goal '" + goal.Title + "' set",
				})
			},
		},
		{
			Name:        "get_goals",
			Description: "List goals, active ones by default.",
			Parameters: []Parameter{
				{Name: "status", Type: TypeString, Description: "Goal status filter.", Default: constant.GoalStatusActive, Enum: []string{constant.GoalStatusActive, constant.GoalStatusCompleted, constant.GoalStatusAbandoned, "all"}},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				var specs []specification.Specification
				if status := ArgString(args, "status"); status != "all" {
					specs = append(specs, specification.Filter("status", status))
				}
				specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

				uow := uowFactory.NewUnitOfWork(ctx)
				goals, err := uow.GoalRepository().FindAll(ctx, specs...)
				if err != nil {
					return Fail("failed to list goals: %v", err)
				}

				out := make([]map[string]interface{}, len(goals))
				for i, g := range goals {
					m := map[string]interface{}{
						"id":          g.Id,
						"title":       g.Title,
						"description": g.Description,
						"status":      g.Status,
					}
					if g.TargetDate != nil {
						m["target_date"] = g.TargetDate.Format(dueDateLayout)
					}
					out[i] = m
				}
				return Ok(map[string]interface{}{
					"goals": out,
					"count": len(out),
				})
			},
		},
	}
}

// maxPlanTasks caps how many pending tasks feed the plan prompt.
const maxPlanTasks = 10

type dailyPlanItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	TaskId   *int64 `json:"task_id"`
}

type dailyPlan struct {
	Plan    []dailyPlanItem `json:"plan"`
	Summary string          `json:"summary"`
}

func buildPlanPrompt(tasks []*entity.Task, goals []*entity.Goal, focus string) string {
	var b strings.Builder
	b.WriteString("Create a realistic, prioritized plan for today.\n\nPending tasks:\n")
	if len(tasks) == 0 {
		b.WriteString("(none)\n")
	}
	for _, t := range tasks {
		fmt.Fprintf(&b, "- [%s] %s (id: %d)", t.Priority, t.Title, t.Id)
		if t.DueDate != nil {
			fmt.Fprintf(&b, " (due %s)", t.DueDate.Format(dueDateLayout))
		}
		b.WriteString("\n")
	}

	b.WriteString("\nActive goals:\n")
	if len(goals) == 0 {
		b.WriteString("(none)\n")
	}
	for _, g := range goals {
		fmt.Fprintf(&b, "- %s\n", g.Title)
	}

	if focus != "" {
		fmt.Fprintf(&b, "\nEmphasize: %s\n", focus)
	}
	b.WriteString(`
Be realistic about time estimates. Respond with JSON only:
{
    "plan": [
        {"time": "9:00-10:00", "activity": "Task 1", "task_id": 1},
        ...
    ],
    "summary": "Brief summary of the day"
}`)
	return b.String()
}
