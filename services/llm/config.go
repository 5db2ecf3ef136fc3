package llm

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultGroqBaseURL   = "https://api.groq.com/openai/v1"
	DefaultChatModel     = "llama-3.3-70b-versatile"
	DefaultFeedbackModel = "llama-3.3-70b-versatile"
	DefaultSTTModel      = "whisper-large-v3-turbo"
)

// Config holds the Groq connection settings shared by every AI client.
type Config struct {
	APIKey        string
	BaseURL       string
	ChatModel     string
	FeedbackModel string
	STTModel      string

	// Timeout bounds a single AI operation, retries included. Default: 30s.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures the rate-limit backoff.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultGroqBaseURL,
		ChatModel:     DefaultChatModel,
		FeedbackModel: DefaultFeedbackModel,
		STTModel:      DefaultSTTModel,
		Timeout:       30 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("GROQ_API_KEY")
	if u := os.Getenv("GROQ_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if m := os.Getenv("GROQ_MODEL"); m != "" {
		cfg.ChatModel = m
	}
	if m := os.Getenv("GROQ_FEEDBACK_MODEL"); m != "" {
		cfg.FeedbackModel = m
	}
	if m := os.Getenv("GROQ_STT_MODEL"); m != "" {
		cfg.STTModel = m
	}
	if s := os.Getenv("AI_TIMEOUT_SECONDS"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}
