package types

// Message is a single turn in a conversation. Ordering is chronological and
// messages are never mutated after creation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatRequest struct {
	SessionID     string    `json:"session_id,omitempty"`
	Messages      []Message `json:"messages"` // conversation history, only the trailing window is used
	Message       string    `json:"message"`
	ForceTemplate bool      `json:"force_template,omitempty"`
}

// Meta is attached to every response, success or failure. It is always set by
// the server, never taken from model output.
type Meta struct {
	TokensUsed int    `json:"tokens_used"`
	Model      string `json:"model"`
}

// ChatResponse is the flattened response shape for both modes. Conversational
// turns fill reply_text; structured turns fill the planning fields, or
// error/raw_output when repair fails.
type ChatResponse struct {
	SessionID   string       `json:"session_id,omitempty"`
	ReplyText   string       `json:"reply_text,omitempty"`
	Goal        RawObject    `json:"goal,omitempty"`
	Templates   []Template   `json:"templates,omitempty"`
	ActionItems []ActionItem `json:"action_items,omitempty"`
	Deadline    *string      `json:"deadline,omitempty"`
	Reminders   []Reminder   `json:"reminders,omitempty"`
	Error       string       `json:"error,omitempty"`
	RawOutput   string       `json:"raw_output,omitempty"`
	Meta        Meta         `json:"meta"`
}

type HealthResponse struct {
	Message string `json:"message"`
}
