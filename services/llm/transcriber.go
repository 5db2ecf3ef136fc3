package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
)

type Transcription struct {
	Text     string
	Language string
	Duration float64 // seconds, 0 when the backend does not report it
}

// Transcriber converts recorded speech into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, fileName string) (*Transcription, error)
}

// OpenAITranscriber calls the Whisper-compatible transcription endpoint.
type OpenAITranscriber struct {
	client   *openai.Client
	model    string
	language string
}

func NewOpenAITranscriber(cfg Config) (*OpenAITranscriber, error) {
	client, err := newOpenAIClient(cfg)
	if err != nil {
		return nil, err
	}
	model := cfg.STTModel
	if model == "" {
		model = DefaultSTTModel
	}

	return &OpenAITranscriber{client: client, model: model, language: "en"}, nil
}

func (t *OpenAITranscriber) Transcribe(ctx context.Context, audio []byte, fileName string) (*Transcription, error) {
	if len(audio) == 0 {
		return nil, errors.New("empty audio payload")
	}
	if fileName == "" {
		fileName = "audio.mp3"
	}

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: fileName,
		Reader:   bytes.NewReader(audio),
		Language: t.language,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	language := resp.Language
	if language == "" {
		language = t.language
	}

	return &Transcription{
		Text:     resp.Text,
		Language: language,
		Duration: resp.Duration,
	}, nil
}

// RetryTranscriber retries every failure, waiting Delay*attempt between tries.
type RetryTranscriber struct {
	inner       Transcriber
	maxAttempts int
	delay       time.Duration
}

func WithTranscriptionRetry(t Transcriber, maxAttempts int, delay time.Duration) Transcriber {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &RetryTranscriber{inner: t, maxAttempts: maxAttempts, delay: delay}
}

func (r *RetryTranscriber) Transcribe(ctx context.Context, audio []byte, fileName string) (*Transcription, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		result, err := r.inner.Transcribe(ctx, audio, fileName)
		if err == nil {
			return result, nil
		}
		lastErr = err

		log.WithFields(log.Fields{
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("Transcription attempt failed")

		if attempt == r.maxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.delay * time.Duration(attempt)):
		}
	}

	return nil, fmt.Errorf("transcription failed after %d attempts: %w", r.maxAttempts, lastErr)
}
