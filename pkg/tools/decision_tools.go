package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/specification"
	"personal-assistant-be/internal/repository/unitofwork"
	"personal-assistant-be/pkg/llm"
)

// NewDecisionTools returns the decision support tool set. Analyses are stored
// so past decisions can be revisited.
func NewDecisionTools(uowFactory unitofwork.RepositoryFactory, provider llm.LLMProvider) []Descriptor {
	return []Descriptor{
		{
			Name:        "analyze_decision",
			Description: "Weigh the options for a decision with pros and cons, without making the call.",
			Parameters: []Parameter{
				{Name: "question", Type: TypeString, Description: "The decision being made.", Required: true},
				{Name: "options", Type: TypeString, Description: "The options under consideration, comma separated.", Required: true},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				question := ArgString(args, "question")
				options := ArgString(args, "options")

				analysis, err := provider.Generate(ctx, buildDecisionPrompt(question, options), llm.WithTemperature(0.3))
				if err != nil {
					return Fail("failed to analyze decision: %v", err)
				}

				decision := &entity.Decision{
					Topic:     question,
					Context:   options,
					Outcome:   analysis,
					CreatedAt: time.Now(),
				}
				uow := uowFactory.NewUnitOfWork(ctx)
				if err := uow.DecisionRepository().Create(ctx, decision); err != nil {
					return Fail("failed to store decision: %v", err)
				}

				return Ok(map[string]interface{}{
					"decision_id": decision.Id,
					"analysis":    analysis,
				})
			},
		},
		{
			Name:        "get_decisions",
			Description: "List past decision analyses, newest first.",
			Parameters: []Parameter{
				{Name: "limit", Type: TypeInteger, Description: "Maximum number of decisions to return.", Default: int64(5)},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) Result {
				limit, _ := ArgInt(args, "limit")

				uow := uowFactory.NewUnitOfWork(ctx)
				decisions, err := uow.DecisionRepository().FindAll(ctx,
					specification.OrderBy{Field: "created_at", Desc: true},
					specification.Pagination{Limit: int(limit)},
				)
				if err != nil {
					return Fail("failed to list decisions: %v", err)
				}

				out := make([]map[string]interface{}, len(decisions))
				for i, d := range decisions {
					out[i] = map[string]interface{}{
						"id":       d.Id,
						"question": d.Topic,
						"options":  d.Context,
						"analysis": d.Outcome,
					}
				}
				return Ok(map[string]interface{}{
					"decisions": out,
					"count":     len(out),
				})
			},
		},
	}
}

func buildDecisionPrompt(question, options string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n\nOptions:\n", question)
	for i, opt := range strings.Split(options, ",") {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.TrimSpace(opt))
	}
	b.WriteString("\nAnalyze each option with pros and cons. Provide a balanced analysis but do NOT make the final decision for the user.")
	return b.String()
}
