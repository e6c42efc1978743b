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
	"personal-assistant-be/pkg/memory"
)

type learningPlan struct {
	Subtopics []struct {
		Name     string `json:"name"`
		Duration string `json:"duration"`
		Order    int    `json:"order"`
	} `json:"subtopics"`
	EstimatedTotalTime string   `json:"estimated_total_time"`
	Recommendations    []string `json:"recommendations"`
}

func learningToMap(l *entity.LearningProgress) map[string]interface{} {
	return map[string]interface{}{
		"id":       l.Id,
		"topic":    l.Topic,
		"subtopic": l.Subtopic,
		"progress": l.Progress,
		"status":   l.Status,
		"notes":    l.Notes,
	}
}

// statusForProgress maps a completion percentage onto the lifecycle status.
func statusForProgress(progress int64) string {
	switch progress {
	case 0:
		return constant.LearningStatusNotStarted
	case 100:
		return constant.LearningStatusCompleted
	default:
		return constant.LearningStatusInProgress
	}
}

// NewLearningTools returns the learning tracker tool set. The model breaks a
// topic into subtopics that each become a tracked row; progress notes are
// additionally indexed into semantic memory so retrieval can surface them.
func NewLearningTools(uowFactory unitofwork.RepositoryFactory, store memory.Store, provider llm.LLMProvider) []Descriptor {
	return []Descriptor{
		{
			Name:        "create_learning_plan",
			Description: "Break a topic into subtopics and start tracking each one.",
			Parameters: []Parameter{
				{Name: "topic", Type: TypeString, Description: "What is being learned.", Required: true},
				{Name: "time_available", Type: TypeString, Description: "Time available per session.", Default: "30 minutes"},
				{Name: "difficulty", Type: TypeString, Description: "Starting level.", Default: "beginner", Enum: []string{"beginner", "intermediate", "advanced"}},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				topic := ArgString(args, "topic")

				uow := uowFactory.NewUnitOfWork(ctx)
				repo := uow.LearningRepository()

				existing, err := repo.FindByTopic(ctx, topic)
				if err != nil {
					return Fail("failed to check topic: %v", err)
				}
				if len(existing) > 0 {
					return Fail("Already tracking '%s'", topic)
				}

				prompt := buildLearningPrompt(topic, ArgString(args, "time_available"), ArgString(args, "difficulty"))
				content, err := provider.Generate(ctx, prompt, llm.WithTemperature(0.4))
				if err != nil {
					return Fail("failed to generate learning plan: %v", err)
				}

				// When the model doesn't come back with parseable subtopics
				// the whole plan is tracked as a single row.
				var parsed learningPlan
				if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &parsed); err != nil || len(parsed.Subtopics) == 0 {
					progress := &entity.LearningProgress{
						Topic:     topic,
						Status:    constant.LearningStatusNotStarted,
						Notes:     content,
						StartedAt: time.Now(),
					}
					if err := repo.Create(ctx, progress); err != nil {
						return Fail("failed to create learning plan: %v", err)
					}
					return Ok(map[string]interface{}{
						"topic":     topic,
						"plan_text": content,
						"message":   "Learning plan for '" + topic + "' created",
					})
				}

				subtopics := make([]map[string]interface{}, len(parsed.Subtopics))
				for i, sub := range parsed.Subtopics {
					progress := &entity.LearningProgress{
						Topic:     topic,
						Subtopic:  sub.Name,
						Status:    constant.LearningStatusNotStarted,
						StartedAt: time.Now(),
					}
					if err := repo.Create(ctx, progress); err != nil {
						return Fail("failed to store subtopic '%s': %v", sub.Name, err)
					}
					subtopics[i] = map[string]interface{}{
						"name":     sub.Name,
						"duration": sub.Duration,
						"order":    sub.Order,
					}
				}

				return Ok(map[string]interface{}{
					"topic":                topic,
					"subtopics":            subtopics,
					"estimated_total_time": parsed.EstimatedTotalTime,
					"recommendations":      parsed.Recommendations,
					"message":              fmt.Sprintf("Learning plan for '%s' created with %d subtopics", topic, len(subtopics)),
				})
			},
		},
		{
			Name:        "update_learning_progress",
			Description: "Record progress on a subtopic as a percentage.",
			Parameters: []Parameter{
				{Name: "topic", Type: TypeString, Description: "The tracked topic.", Required: true},
				{Name: "subtopic", Type: TypeString, Description: "The subtopic within the topic.", Required: true},
				{Name: "progress", Type: TypeInteger, Description: "Completion percentage, 0 to 100.", Required: true},
				{Name: "notes", Type: TypeString, Description: "What changed since last time.", Default: ""},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				topic := ArgString(args, "topic")
				subtopic := ArgString(args, "subtopic")
				percent, _ := ArgInt(args, "progress")
				if percent < 0 || percent > 100 {
					return Fail("progress must be between 0 and 100")
				}

				uow := uowFactory.NewUnitOfWork(ctx)
				repo := uow.LearningRepository()

				progress, err := repo.FindBySubtopic(ctx, topic, subtopic)
				if err != nil {
					return Fail("failed to load subtopic: %v", err)
				}
				if progress == nil {
					return Fail("Topic/subtopic not found")
				}

				progress.Progress = int(percent)
				progress.Status = statusForProgress(percent)
				notes := ArgString(args, "notes")
				if notes != "" {
					progress.Notes = notes
				}
				if err := repo.Update(ctx, progress); err != nil {
					return Fail("failed to update progress: %v", err)
				}

				if notes != "" {
					// Indexing failure should not lose the update itself.
					_, _ = store.Add(ctx, memory.CategoryLearning,
						fmt.Sprintf("Learning %s - %s: %s", topic, subtopic, notes),
						map[string]string{
							"topic":    topic,
							"subtopic": subtopic,
						})
				}

				return Ok(map[string]interface{}{
					"topic":    topic,
					"subtopic": subtopic,
					"status":   progress.Status,
					"message":  fmt.Sprintf("Progress updated: %s - %s (%d%%)", topic, subtopic, percent),
				})
			},
		},
		{
			Name:        "get_learning_progress",
			Description: "Show progress for one topic or all tracked topics.",
			Parameters: []Parameter{
				{Name: "topic", Type: TypeString, Description: "Topic to look up; empty for all.", Default: ""},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				uow := uowFactory.NewUnitOfWork(ctx)
				repo := uow.LearningRepository()

				if topic := ArgString(args, "topic"); topic != "" {
					rows, err := repo.FindByTopic(ctx, topic)
					if err != nil {
						return Fail("failed to load topic: %v", err)
					}
					if len(rows) == 0 {
						return Fail("No learning plan found for '%s'", topic)
					}
					out := make([]map[string]interface{}, len(rows))
					for i, l := range rows {
						out[i] = learningToMap(l)
					}
					return Ok(map[string]interface{}{
						"progress": out,
						"count":    len(out),
					})
				}

				all, err := repo.FindAll(ctx, specification.OrderBy{Field: "started_at", Desc: true})
				if err != nil {
					return Fail("failed to list progress: %v", err)
				}
				out := make([]map[string]interface{}, len(all))
				for i, l := range all {
					out[i] = learningToMap(l)
				}
				return Ok(map[string]interface{}{
					"progress": out,
					"count":    len(out),
				})
			},
		},
	}
}

func buildLearningPrompt(topic, timeAvailable, difficulty string) string {
	return fmt.Sprintf(`Create a learning plan for: %s

Difficulty level: %s
Time available per session: %s

Break the topic into ordered subtopics with time estimates and practice tips.
Respond with JSON only:
{
    "subtopics": [
        {"name": "subtopic 1", "duration": "10 minutes", "order": 1},
        ...
    ],
    "estimated_total_time": "X hours",
    "recommendations": ["tip 1", "tip 2"]
}`, topic, difficulty, timeAvailable)
}
