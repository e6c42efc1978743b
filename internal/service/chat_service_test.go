package service

import (
	"context"
	"errors"
	"testing"

	"personal-assistant-be/internal/constant"
	"personal-assistant-be/internal/dto"
	"personal-assistant-be/pkg/assistant/pipeline"
	"personal-assistant-be/pkg/assistant/state"
	"personal-assistant-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// echoStage answers every input with a fixed response and records the turn
// in the transcript, standing in for the full stage chain.
type echoStage struct {
	response string
}

func (s *echoStage) Name() string { return "echo" }

func (s *echoStage) Run(ctx context.Context, sess *state.Session) (*state.Update, error) {
	intent := constant.IntentGeneral
	transcript := sess.AppendMessages(
		state.Message{Role: "user", Content: sess.Input},
		state.Message{Role: "assistant", Content: s.response},
	)
	return &state.Update{
		Intent:     &intent,
		Response:   &s.response,
		Transcript: &transcript,
	}, nil
}

type memoryTranscriptStore struct {
	saved map[string][]state.Message
}

func newMemoryTranscriptStore() *memoryTranscriptStore {
	return &memoryTranscriptStore{saved: make(map[string][]state.Message)}
}

func (s *memoryTranscriptStore) Load(ctx context.Context, sessionId string) ([]state.Message, bool, error) {
	transcript, ok := s.saved[sessionId]
	return transcript, ok, nil
}

func (s *memoryTranscriptStore) Save(ctx context.Context, sessionId string, transcript []state.Message) error {
	s.saved[sessionId] = transcript
	return nil
}

func (s *memoryTranscriptStore) Delete(ctx context.Context, sessionId string) error {
	delete(s.saved, sessionId)
	return nil
}

func newTestChatService(store *memoryTranscriptStore) IChatService {
	orchestrator := pipeline.New(nopLogger{}, &echoStage{response: "Hello there"})
	return NewChatService(orchestrator, store, nil, nopLogger{})
}

func TestChatGeneratesSessionIdWhenMissing(t *testing.T) {
	svc := newTestChatService(newMemoryTranscriptStore())

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hi"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionId)
	assert.Equal(t, "Hello there", res.Response)
	assert.Equal(t, constant.IntentGeneral, res.Intent)
}

func TestChatPersistsTranscriptAcrossTurns(t *testing.T) {
	store := newMemoryTranscriptStore()
	svc := newTestChatService(store)

	first, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "first turn"})
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), &dto.ChatRequest{
		Message:   "second turn",
		SessionId: first.SessionId,
	})
	require.NoError(t, err)

	transcript, found, err := store.Load(context.Background(), first.SessionId)
	require.NoError(t, err)
	require.True(t, found)

	// Two turns, each a user and an assistant message.
	require.Len(t, transcript, 4)
	assert.Equal(t, "first turn", transcript[0].Content)
	assert.Equal(t, "second turn", transcript[2].Content)
}

func TestChatKeepsSessionsIsolated(t *testing.T) {
	store := newMemoryTranscriptStore()
	svc := newTestChatService(store)

	a, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "session a"})
	require.NoError(t, err)
	b, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "session b"})
	require.NoError(t, err)

	require.NotEqual(t, a.SessionId, b.SessionId)

	transcriptA, _, _ := store.Load(context.Background(), a.SessionId)
	require.Len(t, transcriptA, 2)
	assert.Equal(t, "session a", transcriptA[0].Content)
}

// recordingLogger keeps warn messages so tests can assert on them.
type recordingLogger struct {
	nopLogger
	warns []string
}

func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.warns = append(l.warns, message)
}

type failingPublisher struct{}

func (failingPublisher) Publish(ctx context.Context, event events.Event) error {
	return errors.New("nats unavailable")
}

func TestChatWarnsWhenEventPublishFails(t *testing.T) {
	log := &recordingLogger{}
	orchestrator := pipeline.New(nopLogger{}, &echoStage{response: "done"})
	svc := NewChatService(orchestrator, newMemoryTranscriptStore(), failingPublisher{}, log)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "done", res.Response)

	require.Len(t, log.warns, 1)
	assert.Contains(t, log.warns[0], "publish")
}

func TestResetSessionDropsTranscript(t *testing.T) {
	store := newMemoryTranscriptStore()
	svc := newTestChatService(store)

	res, err := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, svc.ResetSession(context.Background(), res.SessionId))

	_, found, err := store.Load(context.Background(), res.SessionId)
	require.NoError(t, err)
	assert.False(t, found)
}
