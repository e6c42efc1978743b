package unitofwork

import (
	"context"

	"personal-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TaskRepository() contract.TaskRepository
	GoalRepository() contract.GoalRepository
	PreferenceRepository() contract.PreferenceRepository
	HabitRepository() contract.HabitRepository
	DecisionRepository() contract.DecisionRepository
	LearningRepository() contract.LearningRepository
	ConversationRepository() contract.ConversationRepository
	PlanRepository() contract.PlanRepository
	MemoryItemRepository() contract.MemoryItemRepository
}
