// Package state holds the session state threaded through the assistant
// pipeline and the partial updates stages produce.
package state

// Message is one turn of the conversation transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RetrievedMemory is a memory store hit carried into response synthesis.
type RetrievedMemory struct {
	Category string            `json:"category"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ToolResult records one tool invocation made while synthesizing the
// response. Either Output or Error is set, never both.
type ToolResult struct {
	Name   string                 `json:"name"`
	Output map[string]interface{} `json:"output,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// Session is the full pipeline state for one exchange. Stages never mutate
// it directly; they return an Update that the orchestrator applies.
type Session struct {
	Id             string
	Input          string
	Intent         string
	Memories       []RetrievedMemory
	PlannedActions []string
	Transcript     []Message
	ToolResults    []ToolResult
	Response       string
	Metadata       map[string]string
}

// Update is a partial state change. Nil fields are left untouched; set
// fields replace the current value wholesale, so a stage that appends to a
// slice returns the full replacement slice.
type Update struct {
	Intent         *string
	Memories       *[]RetrievedMemory
	PlannedActions *[]string
	Transcript     *[]Message
	ToolResults    *[]ToolResult
	Response       *string
	Metadata       *map[string]string
}

// Apply merges the update into the session, last write wins per field.
func (u *Update) Apply(s *Session) {
	if u == nil {
		return
	}
	if u.Intent != nil {
		s.Intent = *u.Intent
	}
	if u.Memories != nil {
		s.Memories = *u.Memories
	}
	if u.PlannedActions != nil {
		s.PlannedActions = *u.PlannedActions
	}
	if u.Transcript != nil {
		s.Transcript = *u.Transcript
	}
	if u.ToolResults != nil {
		s.ToolResults = *u.ToolResults
	}
	if u.Response != nil {
		s.Response = *u.Response
	}
	if u.Metadata != nil {
		s.Metadata = *u.Metadata
	}
}

// AppendMessages returns the transcript with the given messages appended,
// for stages that extend the conversation.
func (s *Session) AppendMessages(messages ...Message) []Message {
	transcript := make([]Message, 0, len(s.Transcript)+len(messages))
	transcript = append(transcript, s.Transcript...)
	transcript = append(transcript, messages...)
	return transcript
}

// AppendToolResults returns the tool result list with the given results
// appended.
func (s *Session) AppendToolResults(results ...ToolResult) []ToolResult {
	out := make([]ToolResult, 0, len(s.ToolResults)+len(results))
	out = append(out, s.ToolResults...)
	out = append(out, results...)
	return out
}

// LastAssistantMessage returns the content of the most recent assistant turn
// and whether one exists.
func (s *Session) LastAssistantMessage() (string, bool) {
	for i := len(s.Transcript) - 1; i >= 0; i-- {
		if s.Transcript[i].Role == "assistant" {
			return s.Transcript[i].Content, true
		}
	}
	return "", false
}
