package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/llm"
	"github.com/Kevin-Guilherme/fluentify/services/prompts"
	"github.com/Kevin-Guilherme/fluentify/shared"
	appContext "github.com/alphabatem/common/context"
	"github.com/santhosh-tekuri/jsonschema/v6"
	log "github.com/sirupsen/logrus"
)

const (
	feedbackTemperature = 0.3
	feedbackMaxTokens   = 2000
	defaultAITimeout    = 30 * time.Second

	// substituted for any score that is missing, not a number or outside [0,100]
	defaultClampedScore = 70
	fallbackScore       = 75
)

var clampedScoreFields = []string{"vocabularyScore", "fluencyScore", "overallScore"}

var feedbackSchema = &llm.Schema{
	Name: "feedback-analysis",
	Definition: map[string]any{
		"type": "object",
		"required": []string{
			"grammarErrors", "vocabularyScore", "fluencyScore", "overallScore",
			"suggestions", "strengths", "focusAreas",
		},
		"properties": map[string]any{
			"grammarErrors":        map[string]any{"type": "array"},
			"vocabularyHighlights": map[string]any{"type": "array"},
			"pronunciationIssues":  map[string]any{"type": "array"},
			"suggestions":          map[string]any{"type": "array"},
			"strengths":            map[string]any{"type": "array"},
			"focusAreas":           map[string]any{"type": "array"},
		},
	},
}

// FeedbackService asks the feedback model for a structured evaluation of the
// learner's turns and normalizes what comes back.
type FeedbackService struct {
	appContext.DefaultService

	provider llm.Provider
	metrics  *MonitoringService
	timeout  time.Duration
}

const FEEDBACK_SVC = "feedback_svc"

func (svc FeedbackService) Id() string {
	return FEEDBACK_SVC
}

func (svc *FeedbackService) Start() error {
	groq := svc.Service(GROQ_SVC).(*GroqService)
	metrics, _ := svc.Service(MONITORING_SVC).(*MonitoringService)
	svc.wire(groq.FeedbackProvider(), metrics, groq.Timeout())
	return nil
}

func (svc *FeedbackService) wire(provider llm.Provider, metrics *MonitoringService, timeout time.Duration) {
	svc.provider = provider
	svc.metrics = metrics
	svc.timeout = timeout
	if svc.timeout <= 0 {
		svc.timeout = defaultAITimeout
	}
}

// AnalyzeSpeaking evaluates transcript. Unparseable output degrades to the
// fallback analysis; structurally invalid output and call failures return
// FEEDBACK_SERVICE_ERROR.
func (svc *FeedbackService) AnalyzeSpeaking(ctx context.Context, transcript, topicContext string, level model.UserLevel) (*dto.FeedbackAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.timeout)
	defer cancel()

	logEntry := log.WithFields(log.Fields{
		"topic": topicContext,
		"level": level,
	})
	logEntry.Info("Analyzing speaking")

	resp, err := svc.provider.Generate(ctx, llm.Request{
		System: prompts.FeedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompts.BuildFeedbackPrompt(transcript, topicContext, level)},
		},
		Temperature: feedbackTemperature,
		MaxTokens:   feedbackMaxTokens,
	})
	if err != nil {
		logEntry.WithField("error", err.Error()).Error("Feedback analysis failed")
		return nil, shared.NewFeedbackServiceError(err)
	}

	raw, ok := parseFeedbackJSON(resp.Content)
	if !ok {
		logEntry.Warn("Failed to parse feedback response, using fallback")
		svc.metrics.RecordFeedbackFallback()
		return FallbackFeedback(), nil
	}

	if err := llm.Validate(feedbackSchema, raw); err != nil {
		logEntry.WithField("error", err.Error()).Error("Feedback response is missing required fields")
		return nil, shared.NewFeedbackServiceError(err)
	}

	warnings := clampScores(raw)
	for _, w := range warnings {
		logEntry.Warn(w)
		svc.metrics.RecordScoreClamped()
	}

	feedback, err := decodeFeedback(raw)
	if err != nil {
		logEntry.WithField("error", err.Error()).Error("Feedback response has unexpected field types")
		return nil, shared.NewFeedbackServiceError(err)
	}
	feedback.Warnings = warnings

	logEntry.Info("Speaking analysis completed")
	return feedback, nil
}

// stripCodeFence removes a surrounding ```json or ``` fence.
func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(cleaned, "```json"):
		cleaned = strings.TrimPrefix(cleaned, "```json")
	case strings.HasPrefix(cleaned, "```"):
		cleaned = strings.TrimPrefix(cleaned, "```")
	default:
		return cleaned
	}

	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// parseFeedbackJSON returns the decoded JSON object, or false when the text
// is empty or not a JSON object.
func parseFeedbackJSON(text string) (map[string]any, bool) {
	cleaned := stripCodeFence(text)
	if cleaned == "" {
		return nil, false
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(cleaned))
	if err != nil {
		return nil, false
	}

	obj, ok := doc.(map[string]any)
	return obj, ok
}

// clampScores rewrites every score field in place to an int in [0,100] and
// returns one warning per replaced value.
func clampScores(raw map[string]any) []string {
	var warnings []string

	for _, field := range clampedScoreFields {
		value, ok := scoreValue(raw[field])
		if !ok || value < 0 || value > 100 {
			warnings = append(warnings, fmt.Sprintf("Invalid score for %s: %v, using %d", field, raw[field], defaultClampedScore))
			raw[field] = defaultClampedScore
			continue
		}
		raw[field] = int(math.Round(value))
	}

	return warnings
}

func scoreValue(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func decodeFeedback(raw map[string]any) (*dto.FeedbackAnalysis, error) {
	data, err := shared.JSONAPI.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var feedback dto.FeedbackAnalysis
	if err := shared.JSONAPI.Unmarshal(data, &feedback); err != nil {
		return nil, err
	}
	return &feedback, nil
}

// FallbackFeedback is returned when the model answers with something that is
// not JSON. It is labeled so it is never mistaken for a real analysis.
func FallbackFeedback() *dto.FeedbackAnalysis {
	return &dto.FeedbackAnalysis{
		GrammarErrors:   []dto.GrammarError{},
		VocabularyScore: fallbackScore,
		VocabularyHighlights: []dto.VocabularyHighlight{
			{
				Word:        "your response",
				Context:     "You communicated your ideas clearly",
				Alternative: "Keep practicing to expand your vocabulary",
			},
		},
		FluencyScore:        fallbackScore,
		FluencyNotes:        "Good effort in expressing your thoughts",
		PronunciationIssues: []dto.PronunciationIssue{},
		OverallScore:        fallbackScore,
		Suggestions: []string{
			"Keep practicing speaking regularly",
			"Try to speak more to build confidence",
			"Focus on expressing your ideas clearly",
		},
		Strengths: []string{
			"Good effort in responding",
			"You attempted to communicate your thoughts",
		},
		FocusAreas: []string{
			"Continue regular speaking practice",
			"Work on building vocabulary",
		},
		IsFallback: true,
	}
}
