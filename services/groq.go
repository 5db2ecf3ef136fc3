package services

import (
	"time"

	"github.com/Kevin-Guilherme/fluentify/services/llm"
	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
)

const (
	transcriptionAttempts = 3
	transcriptionDelay    = time.Second
)

// GroqService builds the model clients once and shares them with the
// feedback, tutor and speech services.
type GroqService struct {
	appContext.DefaultService

	config      llm.Config
	chat        llm.Provider
	feedback    llm.Provider
	transcriber llm.Transcriber
}

const GROQ_SVC = "groq_svc"

func (svc GroqService) Id() string {
	return GROQ_SVC
}

func (svc *GroqService) Configure(ctx *appContext.Context) error {
	svc.config = llm.ConfigFromEnv()
	return svc.DefaultService.Configure(ctx)
}

func (svc *GroqService) Start() error {
	var observer llm.Observer
	if metrics, ok := svc.Service(MONITORING_SVC).(*MonitoringService); ok {
		observer = metrics.ObserveAI
	}

	chat, err := llm.NewOpenAIProvider(svc.config, svc.config.ChatModel)
	if err != nil {
		return err
	}
	svc.chat = llm.WithRateLimitRetry(llm.WithObserver(chat, "tutor", observer), svc.config.Retry)

	feedback, err := llm.NewOpenAIProvider(svc.config, svc.config.FeedbackModel)
	if err != nil {
		return err
	}
	svc.feedback = llm.WithObserver(feedback, "feedback", observer)

	transcriber, err := llm.NewOpenAITranscriber(svc.config)
	if err != nil {
		return err
	}
	svc.transcriber = llm.WithTranscriptionRetry(transcriber, transcriptionAttempts, transcriptionDelay)

	log.WithFields(log.Fields{
		"base_url":       svc.config.BaseURL,
		"chat_model":     svc.config.ChatModel,
		"feedback_model": svc.config.FeedbackModel,
		"stt_model":      svc.config.STTModel,
	}).Info("Groq clients ready")
	return nil
}

// ChatProvider retries rate-limit failures with backoff.
func (svc *GroqService) ChatProvider() llm.Provider {
	return svc.chat
}

// FeedbackProvider never retries.
func (svc *GroqService) FeedbackProvider() llm.Provider {
	return svc.feedback
}

func (svc *GroqService) Transcriber() llm.Transcriber {
	return svc.transcriber
}

func (svc *GroqService) Timeout() time.Duration {
	return svc.config.Timeout
}
