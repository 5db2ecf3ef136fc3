package llm

import "context"

// Provider is the text-generation backend used by the tutor and the
// feedback analyzer.
type Provider interface {
	// Generate sends one chat completion request and returns the model text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one chat completion.
type Request struct {
	// System is the system prompt. Empty means none is sent.
	System string

	// Messages is the conversation history, oldest first.
	Messages []Message

	MaxTokens        int
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Response holds the model output.
type Response struct {
	Content    string
	Usage      Usage
	Model      string
	StopReason string // "end", "max_tokens" or "error"
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
