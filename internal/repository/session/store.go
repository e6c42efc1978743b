package session

import (
	"context"

	"personal-assistant-be/pkg/assistant/state"
)

// TranscriptStore keeps per-session conversation transcripts between
// exchanges. Transcripts expire after an idle period so an abandoned
// session does not accumulate forever.
type TranscriptStore interface {
	Load(ctx context.Context, sessionId string) ([]state.Message, bool, error)
	Save(ctx context.Context, sessionId string, transcript []state.Message) error
	Delete(ctx context.Context, sessionId string) error
}
