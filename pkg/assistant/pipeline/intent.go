package pipeline

import (
	"context"
	"strings"

	"personal-assistant-be/internal/constant"
	"personal-assistant-be/internal/pkg/logger"
	"personal-assistant-be/pkg/assistant/state"
	"personal-assistant-be/pkg/llm"
)

const intentClassifierPrompt = `You are an intent classifier. Classify the user's input into one of these intents:
- planning: Creating schedules, organizing tasks, time management
- learning: Studying, learning new topics, tracking progress
- remembering: Storing or retrieving information, notes
- rewriting: Improving text, changing tone, grammar correction
- decision_making: Comparing options, making choices
- general: General conversation or unclear intent

Respond with ONLY the intent name, nothing else.`

// IntentStage classifies the user input. Any classifier fault degrades to
// the general intent; this stage never fails the pipeline.
type IntentStage struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewIntentStage(provider llm.LLMProvider, log logger.ILogger) *IntentStage {
	return &IntentStage{provider: provider, logger: log}
}

func (s *IntentStage) Name() string { return "IntentDetection" }

func (s *IntentStage) Run(ctx context.Context, session *state.Session) (*state.Update, error) {
	intent := s.classify(ctx, session.Input)
	transcript := session.AppendMessages(state.Message{Role: "user", Content: session.Input})

	return &state.Update{
		Intent:     &intent,
		Transcript: &transcript,
	}, nil
}

func (s *IntentStage) classify(ctx context.Context, input string) string {
	raw, err := s.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: intentClassifierPrompt},
		{Role: "user", Content: input},
	}, llm.WithTemperature(0))
	if err != nil {
		s.logger.Warn("IntentDetection", "classifier unavailable, falling back to general", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.IntentGeneral
	}

	intent := strings.ToLower(strings.TrimSpace(raw))
	if !constant.IsValidIntent(intent) {
		s.logger.Warn("IntentDetection", "classifier returned unknown intent", map[string]interface{}{
			"raw": raw,
		})
		return constant.IntentGeneral
	}
	return intent
}
