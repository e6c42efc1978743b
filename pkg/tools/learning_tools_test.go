package tools_test

import (
	"context"
	"testing"

	"personal-assistant-be/pkg/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goPlanReply = `{"subtopics":[{"name":"syntax basics","duration":"10 minutes","order":1},{"name":"interfaces","duration":"20 minutes","order":2}],"estimated_total_time":"2 hours","recommendations":["practice daily"]}`

func newLearningRegistry(reply string) (*tools.Registry, *fakeUow, *fakeStore) {
	uow := newFakeUow()
	store := newFakeStore()
	r := tools.NewRegistry()
	r.MustRegister(tools.NewLearningTools(uow, store, &fixedLLM{reply: reply})...)
	return r, uow, store
}

func TestCreateLearningPlanStoresOneRowPerSubtopic(t *testing.T) {
	r, uow, _ := newLearningRegistry(goPlanReply)

	res := r.Invoke(context.Background(), "create_learning_plan", map[string]interface{}{
		"topic": "Go",
	})

	require.True(t, res.Success(), res.Error())
	assert.Equal(t, "Learning plan for 'Go' created with 2 subtopics", res.Payload()["message"])
	assert.Equal(t, "2 hours", res.Payload()["estimated_total_time"])

	require.Len(t, uow.learning.rows, 2)
	assert.Equal(t, "syntax basics", uow.learning.rows[0].Subtopic)
	assert.Equal(t, "interfaces", uow.learning.rows[1].Subtopic)
	for _, row := range uow.learning.rows {
		assert.Equal(t, "Go", row.Topic)
		assert.Equal(t, "not_started", row.Status)
		assert.Equal(t, 0, row.Progress)
	}
}

func TestCreateLearningPlanFallsBackToPlanText(t *testing.T) {
	reply := "Start with the tour, then build something small."
	r, uow, _ := newLearningRegistry(reply)

	res := r.Invoke(context.Background(), "create_learning_plan", map[string]interface{}{
		"topic": "Go",
	})

	require.True(t, res.Success(), res.Error())
	assert.Equal(t, reply, res.Payload()["plan_text"])

	require.Len(t, uow.learning.rows, 1)
	assert.Equal(t, "Go", uow.learning.rows[0].Topic)
	assert.Equal(t, reply, uow.learning.rows[0].Notes)
	assert.Equal(t, "not_started", uow.learning.rows[0].Status)
}

func TestCreateLearningPlanRejectsDuplicateTopic(t *testing.T) {
	r, _, _ := newLearningRegistry(goPlanReply)
	ctx := context.Background()

	require.True(t, r.Invoke(ctx, "create_learning_plan", map[string]interface{}{"topic": "Go"}).Success())

	res := r.Invoke(ctx, "create_learning_plan", map[string]interface{}{"topic": "Go"})
	require.False(t, res.Success())
	assert.Equal(t, "Already tracking 'Go'", res.Error())
}

func TestUpdateLearningProgressDerivesStatusFromPercentage(t *testing.T) {
	r, uow, store := newLearningRegistry(goPlanReply)
	ctx := context.Background()

	require.True(t, r.Invoke(ctx, "create_learning_plan", map[string]interface{}{"topic": "Go"}).Success())

	res := r.Invoke(ctx, "update_learning_progress", map[string]interface{}{
		"topic":    "Go",
		"subtopic": "syntax basics",
		"progress": float64(40),
		"notes":    "did the exercises",
	})
	require.True(t, res.Success(), res.Error())
	assert.Equal(t, "in_progress", res.Payload()["status"])
	assert.Equal(t, "Progress updated: Go - syntax basics (40%)", res.Payload()["message"])
	assert.Equal(t, 40, uow.learning.rows[0].Progress)
	assert.Equal(t, "did the exercises", uow.learning.rows[0].Notes)

	// Notes get indexed into the learning memory category.
	indexed := false
	for _, item := range store.items {
		if item.Content == "Learning Go - syntax basics: did the exercises" {
			indexed = true
		}
	}
	assert.True(t, indexed)

	done := r.Invoke(ctx, "update_learning_progress", map[string]interface{}{
		"topic":    "Go",
		"subtopic": "syntax basics",
		"progress": float64(100),
	})
	require.True(t, done.Success(), done.Error())
	assert.Equal(t, "completed", uow.learning.rows[0].Status)

	reset := r.Invoke(ctx, "update_learning_progress", map[string]interface{}{
		"topic":    "Go",
		"subtopic": "syntax basics",
		"progress": float64(0),
	})
	require.True(t, reset.Success(), reset.Error())
	assert.Equal(t, "not_started", uow.learning.rows[0].Status)
}

func TestUpdateLearningProgressUnknownSubtopic(t *testing.T) {
	r, _, _ := newLearningRegistry(goPlanReply)
	ctx := context.Background()

	require.True(t, r.Invoke(ctx, "create_learning_plan", map[string]interface{}{"topic": "Go"}).Success())

	res := r.Invoke(ctx, "update_learning_progress", map[string]interface{}{
		"topic":    "Go",
		"subtopic": "channels",
		"progress": float64(50),
	})
	require.False(t, res.Success())
	assert.Equal(t, "Topic/subtopic not found", res.Error())
}

func TestUpdateLearningProgressRejectsOutOfRangePercentage(t *testing.T) {
	r, _, _ := newLearningRegistry(goPlanReply)

	res := r.Invoke(context.Background(), "update_learning_progress", map[string]interface{}{
		"topic":    "Go",
		"subtopic": "interfaces",
		"progress": float64(120),
	})
	require.False(t, res.Success())
	assert.Contains(t, res.Error(), "between 0 and 100")
}
