package pipeline

import (
	"context"

	"personal-assistant-be/internal/constant"
	"personal-assistant-be/pkg/assistant/state"
)

// actionPlans maps each intent to its advisory action list. The planned
// actions inform synthesis; they are not executed mechanically.
var actionPlans = map[string][]string{
	constant.IntentPlanning:       {"check_pending_tasks", "create_daily_plan_or_task"},
	constant.IntentLearning:       {"get_learning_progress", "create_or_update_learning_plan"},
	constant.IntentRemembering:    {"search_memory_or_store_info"},
	constant.IntentRewriting:      {"rewrite_text"},
	constant.IntentDecisionMaking: {"analyze_decision"},
	constant.IntentGeneral:        {"search_memory", "general_conversation"},
}

var fallbackActions = []string{"general_conversation"}

// PlanStage is a pure lookup, no I/O.
type PlanStage struct{}

func NewPlanStage() *PlanStage { return &PlanStage{} }

func (s *PlanStage) Name() string { return "ActionPlanning" }

func (s *PlanStage) Run(ctx context.Context, session *state.Session) (*state.Update, error) {
	actions, ok := actionPlans[session.Intent]
	if !ok {
		actions = fallbackActions
	}

	planned := make([]string, len(actions))
	copy(planned, actions)

	return &state.Update{PlannedActions: &planned}, nil
}
