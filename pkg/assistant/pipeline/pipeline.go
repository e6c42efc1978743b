// Package pipeline runs one user exchange through the assistant's fixed
// stage sequence: intent detection, memory retrieval, action planning,
// response synthesis, persistence.
package pipeline

import (
	"context"

	"personal-assistant-be/internal/pkg/logger"
	"personal-assistant-be/pkg/assistant/state"
)

// Stage is one pipeline step. It reads the session and returns a partial
// update; it never mutates the session directly.
type Stage interface {
	Name() string
	Run(ctx context.Context, s *state.Session) (*state.Update, error)
}

// FallbackResponse is returned when a stage fails in a way the pipeline
// cannot recover from. The assistant always answers.
const FallbackResponse = "I'm sorry, something went wrong while processing your request. Please try again."

type Orchestrator struct {
	stages []Stage
	logger logger.ILogger
}

// New assembles the orchestrator with the stages in execution order.
func New(log logger.ILogger, stages ...Stage) *Orchestrator {
	return &Orchestrator{
		stages: stages,
		logger: log,
	}
}

// Run drives the session through every stage. Stage errors that escape a
// stage's own recovery abort the remaining stages; the caller gets the
// fallback response with no partial stage output, only the transcript as it
// stood when the run began.
func (o *Orchestrator) Run(ctx context.Context, s *state.Session) *state.Session {
	entryTranscript := s.Transcript

	for _, stage := range o.stages {
		update, err := stage.Run(ctx, s)
		if err != nil {
			o.logger.Error("Pipeline", "stage failed", map[string]interface{}{
				"stage":      stage.Name(),
				"session_id": s.Id,
				"error":      err.Error(),
			})
			return &state.Session{
				Id:         s.Id,
				Input:      s.Input,
				Transcript: entryTranscript,
				Metadata:   s.Metadata,
				Response:   FallbackResponse,
			}
		}
		update.Apply(s)
	}
	return s
}
