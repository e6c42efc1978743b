package pipeline

import (
	"context"
	"fmt"
	"strings"

	"personal-assistant-be/internal/pkg/logger"
	"personal-assistant-be/pkg/assistant/state"
	"personal-assistant-be/pkg/llm"
)

const (
	// memories shown to the model, and per-memory content cap
	maxContextMemories = 3
	memorySnippetLen   = 200
)

const assistantPersona = `You are Atlas, a personal AI assistant. You help with:
- Daily planning and task management
- Learning and self-improvement
- Memory and information storage
- Communication assistance
- Decision support`

// SynthesisStage produces the assistant's answer. An LLM fault becomes an
// apologetic response carried in the tool results, never a pipeline error.
type SynthesisStage struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewSynthesisStage(provider llm.LLMProvider, log logger.ILogger) *SynthesisStage {
	return &SynthesisStage{provider: provider, logger: log}
}

func (s *SynthesisStage) Name() string { return "ResponseSynthesis" }

func (s *SynthesisStage) Run(ctx context.Context, session *state.Session) (*state.Update, error) {
	// Replayed session: the answer is already there, do nothing.
	if session.Response != "" && len(session.ToolResults) > 0 {
		return &state.Update{}, nil
	}

	systemPrompt := s.buildSystemPrompt(session)

	history := []llm.Message{{Role: "system", Content: systemPrompt}}
	for _, msg := range session.Transcript {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	response, err := s.provider.Chat(ctx, history)
	if err != nil {
		s.logger.Error("ResponseSynthesis", "llm call failed", map[string]interface{}{
			"session_id": session.Id,
			"error":      err.Error(),
		})
		errMsg := fmt.Sprintf("Error generating response: %v", err)
		response = "I encountered an issue: " + errMsg

		results := session.AppendToolResults(state.ToolResult{Name: "general_conversation", Error: errMsg})
		transcript := session.AppendMessages(state.Message{Role: "assistant", Content: response})
		return &state.Update{
			ToolResults: &results,
			Transcript:  &transcript,
			Response:    &response,
		}, nil
	}

	results := session.AppendToolResults(state.ToolResult{
		Name:   "general_conversation",
		Output: map[string]interface{}{"response": response},
	})
	transcript := session.AppendMessages(state.Message{Role: "assistant", Content: response})

	return &state.Update{
		ToolResults: &results,
		Transcript:  &transcript,
		Response:    &response,
	}, nil
}

func (s *SynthesisStage) buildSystemPrompt(session *state.Session) string {
	var b strings.Builder
	b.WriteString(assistantPersona)
	fmt.Fprintf(&b, "\n\nCurrent intent: %s\n", session.Intent)

	if len(session.PlannedActions) > 0 {
		fmt.Fprintf(&b, "Suggested actions: %s\n", strings.Join(session.PlannedActions, ", "))
	}

	if len(session.Memories) > 0 {
		b.WriteString("\nRelevant context from memory:\n")
		for i, mem := range session.Memories {
			if i == maxContextMemories {
				break
			}
			content := mem.Content
			// Truncate on rune boundaries so multibyte content stays valid.
			if runes := []rune(content); len(runes) > memorySnippetLen {
				content = string(runes[:memorySnippetLen]) + "..."
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mem.Category, content)
		}
	}

	b.WriteString("\nRespond helpfully to the user's request. Be concise but thorough.")
	return b.String()
}
