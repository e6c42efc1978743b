package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"personal-assistant-be/pkg/assistant/pipeline"
	"personal-assistant-be/pkg/assistant/state"
	"personal-assistant-be/pkg/llm"
	"personal-assistant-be/pkg/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- test doubles ---

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// scriptedLLM pops one scripted reply per call, in order.
type scriptedLLM struct {
	replies []string
	errs    []error
	calls   int
}

func (s *scriptedLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.replies) {
		return s.replies[i], nil
	}
	return "", errors.New("scripted llm exhausted")
}

func (s *scriptedLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

type stubStore struct {
	perCategory int
	err         error
}

func (s *stubStore) Add(ctx context.Context, category, content string, metadata map[string]string) (string, error) {
	return "", nil
}

func (s *stubStore) Search(ctx context.Context, category, query string, limit int) ([]memory.Match, error) {
	return nil, nil
}

func (s *stubStore) SearchAll(ctx context.Context, query string, perCategory int) ([]memory.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	n := s.perCategory
	if n > perCategory {
		n = perCategory
	}
	var out []memory.Match
	for _, category := range memory.Categories {
		for i := 0; i < n; i++ {
			out = append(out, memory.Match{
				Item: memory.Item{
					Id:       fmt.Sprintf("%s_%d", category, i),
					Category: category,
					Content:  fmt.Sprintf("%s memory %d", category, i),
				},
				Distance: 0.1 * float64(i+1),
			})
		}
	}
	return out, nil
}

func (s *stubStore) Delete(ctx context.Context, id string) error { return nil }

type spyRecorder struct {
	recorded []pipeline.Exchange
	err      error
}

func (r *spyRecorder) Record(ctx context.Context, exchange pipeline.Exchange) error {
	if r.err != nil {
		return r.err
	}
	r.recorded = append(r.recorded, exchange)
	return nil
}

func newOrchestrator(provider llm.LLMProvider, store memory.Store, recorder pipeline.Recorder) *pipeline.Orchestrator {
	log := nopLogger{}
	return pipeline.New(log,
		pipeline.NewIntentStage(provider, log),
		pipeline.NewRetrievalStage(store, 3, log),
		pipeline.NewPlanStage(),
		pipeline.NewSynthesisStage(provider, log),
		pipeline.NewPersistStage(recorder, log),
	)
}

// --- scenarios ---

func TestGeneralChatIsNotPersisted(t *testing.T) {
	provider := &scriptedLLM{replies: []string{"general", "Hello! How can I help?"}}
	recorder := &spyRecorder{}
	o := newOrchestrator(provider, &stubStore{}, recorder)

	s := o.Run(context.Background(), &state.Session{Id: "s1", Input: "hi there"})

	assert.Equal(t, "general", s.Intent)
	assert.Equal(t, "Hello! How can I help?", s.Response)
	assert.Empty(t, recorder.recorded)
	assert.Equal(t, []string{"search_memory", "general_conversation"}, s.PlannedActions)
}

func TestPlanningExchangeIsPersisted(t *testing.T) {
	provider := &scriptedLLM{replies: []string{"planning", "Here is your plan for today."}}
	recorder := &spyRecorder{}
	o := newOrchestrator(provider, &stubStore{}, recorder)

	s := o.Run(context.Background(), &state.Session{Id: "s2", Input: "plan my day"})

	assert.Equal(t, "planning", s.Intent)
	require.Len(t, recorder.recorded, 1)
	assert.Equal(t, "plan my day", recorder.recorded[0].UserMessage)
	assert.Equal(t, "Here is your plan for today.", recorder.recorded[0].AssistantResponse)
	assert.Equal(t, "planning", recorder.recorded[0].Intent)
}

func TestUnknownClassifierOutputFallsBackToGeneral(t *testing.T) {
	provider := &scriptedLLM{replies: []string{"banana", "Sure."}}
	o := newOrchestrator(provider, &stubStore{}, &spyRecorder{})

	s := o.Run(context.Background(), &state.Session{Id: "s3", Input: "hmm"})

	assert.Equal(t, "general", s.Intent)
}

func TestClassifierErrorFallsBackToGeneral(t *testing.T) {
	provider := &scriptedLLM{
		replies: []string{"", "Still answering."},
		errs:    []error{errors.New("ollama down")},
	}
	o := newOrchestrator(provider, &stubStore{}, &spyRecorder{})

	s := o.Run(context.Background(), &state.Session{Id: "s4", Input: "hello?"})

	assert.Equal(t, "general", s.Intent)
	assert.Equal(t, "Still answering.", s.Response)
}

func TestRetrievalFaultDegradesToEmptyContext(t *testing.T) {
	provider := &scriptedLLM{replies: []string{"general", "Answer without memories."}}
	o := newOrchestrator(provider, &stubStore{err: errors.New("pg down")}, &spyRecorder{})

	s := o.Run(context.Background(), &state.Session{Id: "s5", Input: "what do you know about me?"})

	assert.Empty(t, s.Memories)
	assert.Equal(t, "Answer without memories.", s.Response)
}

func TestRetrievalCapsAtThreePerCategory(t *testing.T) {
	provider := &scriptedLLM{replies: []string{"general", "ok"}}
	o := newOrchestrator(provider, &stubStore{perCategory: 5}, &spyRecorder{})

	s := o.Run(context.Background(), &state.Session{Id: "s6", Input: "anything"})

	// 3 categories x 3 per category at most
	assert.LessOrEqual(t, len(s.Memories), 9)
	assert.Len(t, s.Memories, 9)
}

func TestSynthesisFaultStillProducesResponse(t *testing.T) {
	provider := &scriptedLLM{
		replies: []string{"remembering"},
		errs:    []error{nil, errors.New("model timeout")},
	}
	recorder := &spyRecorder{}
	o := newOrchestrator(provider, &stubStore{}, recorder)

	s := o.Run(context.Background(), &state.Session{Id: "s7", Input: "remember my wifi password is hunter2"})

	assert.Contains(t, s.Response, "I encountered an issue:")
	require.Len(t, s.ToolResults, 1)
	assert.NotEmpty(t, s.ToolResults[0].Error)
	assert.Nil(t, s.ToolResults[0].Output)
	// Persistence still runs for a remembering exchange.
	require.Len(t, recorder.recorded, 1)
}

func TestRecorderFaultDoesNotBreakTheExchange(t *testing.T) {
	provider := &scriptedLLM{replies: []string{"learning", "Logged your progress."}}
	o := newOrchestrator(provider, &stubStore{}, &spyRecorder{err: errors.New("db gone")})

	s := o.Run(context.Background(), &state.Session{Id: "s8", Input: "I finished chapter 3 of the Go book"})

	assert.Equal(t, "Logged your progress.", s.Response)
}

// promptCapturingLLM keeps the system prompt it was handed.
type promptCapturingLLM struct {
	system string
	reply  string
}

func (p *promptCapturingLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	for _, m := range history {
		if m.Role == "system" {
			p.system = m.Content
		}
	}
	return p.reply, nil
}

func (p *promptCapturingLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.reply, nil
}

func TestSynthesisTruncatesMemorySnippetsOnRuneBoundaries(t *testing.T) {
	provider := &promptCapturingLLM{reply: "ok"}
	stage := pipeline.NewSynthesisStage(provider, nopLogger{})

	s := &state.Session{
		Id:     "s12",
		Input:  "what do you remember?",
		Intent: "remembering",
		Memories: []state.RetrievedMemory{
			{Category: "note", Content: strings.Repeat("日", 250)},
		},
	}

	_, err := stage.Run(context.Background(), s)
	require.NoError(t, err)

	require.True(t, utf8.ValidString(provider.system))
	assert.Contains(t, provider.system, strings.Repeat("日", 200)+"...")
	assert.NotContains(t, provider.system, strings.Repeat("日", 201))
}

// faultyStage fails in a way no stage-level recovery catches.
type faultyStage struct{}

func (faultyStage) Name() string { return "faulty" }

func (faultyStage) Run(ctx context.Context, s *state.Session) (*state.Update, error) {
	return nil, errors.New("boom")
}

func TestStageFaultReturnsOnlyTheFallback(t *testing.T) {
	provider := &scriptedLLM{replies: []string{"planning"}}
	log := nopLogger{}
	o := pipeline.New(log,
		pipeline.NewIntentStage(provider, log),
		faultyStage{},
	)

	prior := []state.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	s := o.Run(context.Background(), &state.Session{
		Id:         "s10",
		Input:      "plan my day",
		Transcript: prior,
		Metadata:   map[string]string{"received_at": "2026-08-29T09:00:00Z"},
	})

	assert.Equal(t, pipeline.FallbackResponse, s.Response)
	// Nothing the earlier stages produced may leak out.
	assert.Empty(t, s.Intent)
	assert.Empty(t, s.PlannedActions)
	assert.Empty(t, s.ToolResults)
	assert.Empty(t, s.Memories)
	assert.Equal(t, prior, s.Transcript)
	assert.Equal(t, "s10", s.Id)
	assert.Equal(t, "plan my day", s.Input)
}

func TestTranscriptGrowsByUserAndAssistantTurn(t *testing.T) {
	provider := &scriptedLLM{replies: []string{"general", "Nice to meet you."}}
	o := newOrchestrator(provider, &stubStore{}, &spyRecorder{})

	prior := []state.Message{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	s := o.Run(context.Background(), &state.Session{Id: "s9", Input: "I'm Sam", Transcript: prior})

	require.Len(t, s.Transcript, 4)
	assert.Equal(t, "I'm Sam", s.Transcript[2].Content)
	assert.Equal(t, "assistant", s.Transcript[3].Role)
}
