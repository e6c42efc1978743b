package tools

import (
	"context"
	"time"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
	"personal-assistant-be/internal/repository/unitofwork"
)

// NewHabitTools returns the habit tracking tool set.
func NewHabitTools(uowFactory unitofwork.RepositoryFactory) []Descriptor {
	return []Descriptor{
		{
			Name:        "track_habit",
			Description: "Start tracking a recurring habit.",
			Parameters: []Parameter{
				{Name: "name", Type: TypeString, Description: "Habit name.", Required: true},
				{Name: "description", Type: TypeString, Description: "What the habit involves.", Default: ""},
				{Name: "frequency", Type: TypeString, Description: "How often the habit repeats.", Default: "daily", Enum: []string{"daily", "weekly", "monthly"}},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				name := ArgString(args, "name")

				uow := uowFactory.NewUnitOfWork(ctx)
				existing, err := uow.HabitRepository().FindOne(ctx, specification.Filter("name", name))
				if err != nil {
					return Fail("failed to check habit: %v", err)
				}
				if existing != nil {
					return Fail("Already tracking habit '%s'", name)
				}

				habit := &entity.Habit{
					Name:        name,
					Description: ArgString(args, "description"),
					Frequency:   ArgString(args, "frequency"),
					CreatedAt:   time.Now(),
				}
				if err := uow.HabitRepository().Create(ctx, habit); err != nil {
					return Fail("failed to track habit: %v", err)
				}

				return Ok(map[string]interface{}{
					"habit_id": habit.Id,
					"message":  "Now tracking habit '" + habit.Name + "'",
				})
			},
		},
		{
			Name:        "get_habits",
			Description: "List tracked habits.",
			Parameters:  []Parameter{},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				uow := uowFactory.NewUnitOfWork(ctx)
				habits, err := uow.HabitRepository().FindAll(ctx,
					specification.OrderBy{Field: "created_at", Desc: false},
				)
				if err != nil {
					return Fail("failed to list habits: %v", err)
				}

				out := make([]map[string]interface{}, len(habits))
				for i, h := range habits {
					out[i] = map[string]interface{}{
						"id":          h.Id,
						"name":        h.Name,
						"description": h.Description,
						"frequency":   h.Frequency,
					}
				}
				return Ok(map[string]interface{}{
					"habits": out,
					"count":  len(out),
				})
			},
		},
	}
}
