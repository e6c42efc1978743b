package tools_test

import (
	"context"
	"strings"

	"personal-assistant-be/internal/entity"
	"personal-assistant-be/internal/repository/contract"
	"personal-assistant-be/internal/repository/specification"
	"personal-assistant-be/internal/repository/unitofwork"
)

// In-memory unit of work used by the tool tests. Only the repositories the
// tools touch are implemented.

type fakeUow struct {
	tasks     *fakeTaskRepo
	goals     *fakeGoalRepo
	prefs     *fakePrefRepo
	learning  *fakeLearningRepo
	plans     *fakePlanRepo
	habits    *fakeHabitRepo
	decisions *fakeDecisionRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		tasks:     &fakeTaskRepo{byId: map[int64]*entity.Task{}},
		goals:     &fakeGoalRepo{},
		prefs:     &fakePrefRepo{byKey: map[string]*entity.Preference{}},
		learning:  &fakeLearningRepo{},
		plans:     &fakePlanRepo{},
		habits:    &fakeHabitRepo{},
		decisions: &fakeDecisionRepo{},
	}
}

func (u *fakeUow) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return u }

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) TaskRepository() contract.TaskRepository             { return u.tasks }
func (u *fakeUow) GoalRepository() contract.GoalRepository             { return u.goals }
func (u *fakeUow) PreferenceRepository() contract.PreferenceRepository { return u.prefs }
func (u *fakeUow) HabitRepository() contract.HabitRepository           { return u.habits }
func (u *fakeUow) DecisionRepository() contract.DecisionRepository     { return u.decisions }
func (u *fakeUow) LearningRepository() contract.LearningRepository     { return u.learning }
func (u *fakeUow) ConversationRepository() contract.ConversationRepository {
	return nil
}
func (u *fakeUow) PlanRepository() contract.PlanRepository             { return u.plans }
func (u *fakeUow) MemoryItemRepository() contract.MemoryItemRepository { return nil }

// --- tasks ---

type fakeTaskRepo struct {
	byId   map[int64]*entity.Task
	nextId int64
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entity.Task) error {
	r.nextId++
	task.Id = r.nextId
	copied := *task
	r.byId[task.Id] = &copied
	return nil
}

func (r *fakeTaskRepo) Update(ctx context.Context, task *entity.Task) error {
	copied := *task
	r.byId[task.Id] = &copied
	return nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id int64) error {
	delete(r.byId, id)
	return nil
}

func (r *fakeTaskRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Task, error) {
	for _, s := range specs {
		if byId, ok := s.(specification.ByID); ok {
			if t, found := r.byId[byId.ID]; found {
				copied := *t
				return &copied, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeTaskRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Task, error) {
	status := ""
	limit := 0
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByStatus:
			status = spec.Status
		case specification.Pagination:
			limit = spec.Limit
		}
	}
	var out []*entity.Task
	for _, t := range r.byId {
		if status != "" && t.Status != status {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTaskRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.byId)), nil
}

// --- goals ---

type fakeGoalRepo struct {
	goals  []*entity.Goal
	nextId int64
}

func (r *fakeGoalRepo) Create(ctx context.Context, goal *entity.Goal) error {
	r.nextId++
	goal.Id = r.nextId
	copied := *goal
	r.goals = append(r.goals, &copied)
	return nil
}

func (r *fakeGoalRepo) Update(ctx context.Context, goal *entity.Goal) error { return nil }
func (r *fakeGoalRepo) Delete(ctx context.Context, id int64) error          { return nil }

func (r *fakeGoalRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Goal, error) {
	return nil, nil
}

func (r *fakeGoalRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Goal, error) {
	return r.goals, nil
}

func (r *fakeGoalRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.goals)), nil
}

// --- preferences ---

type fakePrefRepo struct {
	byKey  map[string]*entity.Preference
	nextId int64
}

func (r *fakePrefRepo) Upsert(ctx context.Context, pref *entity.Preference) error {
	if existing, ok := r.byKey[pref.Key]; ok {
		pref.Id = existing.Id
	} else {
		r.nextId++
		pref.Id = r.nextId
	}
	copied := *pref
	r.byKey[pref.Key] = &copied
	return nil
}

func (r *fakePrefRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *fakePrefRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Preference, error) {
	for _, s := range specs {
		if filter, ok := s.(specification.FilterBy); ok && filter.Field == "key" {
			if p, found := r.byKey[filter.Value.(string)]; found {
				copied := *p
				return &copied, nil
			}
		}
	}
	return nil, nil
}

func (r *fakePrefRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Preference, error) {
	var out []*entity.Preference
	for _, p := range r.byKey {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakePrefRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.byKey)), nil
}

// --- learning ---

type fakeLearningRepo struct {
	rows   []*entity.LearningProgress
	nextId int64
}

func (r *fakeLearningRepo) Create(ctx context.Context, p *entity.LearningProgress) error {
	r.nextId++
	p.Id = r.nextId
	copied := *p
	r.rows = append(r.rows, &copied)
	return nil
}

func (r *fakeLearningRepo) Update(ctx context.Context, p *entity.LearningProgress) error {
	for i, row := range r.rows {
		if row.Id == p.Id {
			copied := *p
			r.rows[i] = &copied
			return nil
		}
	}
	return nil
}

func (r *fakeLearningRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *fakeLearningRepo) FindByTopic(ctx context.Context, topic string) ([]*entity.LearningProgress, error) {
	var out []*entity.LearningProgress
	for _, p := range r.rows {
		if strings.EqualFold(p.Topic, topic) {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeLearningRepo) FindBySubtopic(ctx context.Context, topic, subtopic string) (*entity.LearningProgress, error) {
	for _, p := range r.rows {
		if strings.EqualFold(p.Topic, topic) && strings.EqualFold(p.Subtopic, subtopic) {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeLearningRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LearningProgress, error) {
	return nil, nil
}

func (r *fakeLearningRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LearningProgress, error) {
	var out []*entity.LearningProgress
	for _, p := range r.rows {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeLearningRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

// --- habits ---

type fakeHabitRepo struct {
	habits []*entity.Habit
	nextId int64
}

func (r *fakeHabitRepo) Create(ctx context.Context, habit *entity.Habit) error {
	r.nextId++
	habit.Id = r.nextId
	copied := *habit
	r.habits = append(r.habits, &copied)
	return nil
}

func (r *fakeHabitRepo) Update(ctx context.Context, habit *entity.Habit) error { return nil }
func (r *fakeHabitRepo) Delete(ctx context.Context, id int64) error            { return nil }

func (r *fakeHabitRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Habit, error) {
	for _, s := range specs {
		if filter, ok := s.(specification.FilterBy); ok && filter.Field == "name" {
			for _, h := range r.habits {
				if h.Name == filter.Value.(string) {
					copied := *h
					return &copied, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeHabitRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Habit, error) {
	return r.habits, nil
}

func (r *fakeHabitRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.habits)), nil
}

// --- decisions ---

type fakeDecisionRepo struct {
	decisions []*entity.Decision
	nextId    int64
}

func (r *fakeDecisionRepo) Create(ctx context.Context, decision *entity.Decision) error {
	r.nextId++
	decision.Id = r.nextId
	copied := *decision
	r.decisions = append(r.decisions, &copied)
	return nil
}

func (r *fakeDecisionRepo) Update(ctx context.Context, decision *entity.Decision) error { return nil }
func (r *fakeDecisionRepo) Delete(ctx context.Context, id int64) error                  { return nil }

func (r *fakeDecisionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Decision, error) {
	return nil, nil
}

func (r *fakeDecisionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Decision, error) {
	return r.decisions, nil
}

func (r *fakeDecisionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.decisions)), nil
}

// --- plans ---

type fakePlanRepo struct {
	plans  []*entity.ActionPlan
	nextId int64
}

func (r *fakePlanRepo) Create(ctx context.Context, plan *entity.ActionPlan) error {
	r.nextId++
	plan.Id = r.nextId
	copied := *plan
	r.plans = append(r.plans, &copied)
	return nil
}

func (r *fakePlanRepo) FindByDate(ctx context.Context, planDate string) (*entity.ActionPlan, error) {
	for i := len(r.plans) - 1; i >= 0; i-- {
		if r.plans[i].PlanDate == planDate {
			copied := *r.plans[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakePlanRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ActionPlan, error) {
	return nil, nil
}

func (r *fakePlanRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActionPlan, error) {
	return r.plans, nil
}

func (r *fakePlanRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.plans)), nil
}
