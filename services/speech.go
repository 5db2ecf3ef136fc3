package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/llm"
	"github.com/Kevin-Guilherme/fluentify/shared"
	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
)

var errEmptyTranscription = errors.New("transcription returned no text")

type AudioUploader interface {
	UploadAudio(ctx context.Context, conversationID, fileName string, data []byte) (*dto.UploadResult, error)
}

// TurnRecorder reads conversations and appends learner turns.
type TurnRecorder interface {
	GetConversation(ctx context.Context, conversationID, userID string) (*dto.ConversationResponse, error)
	SendMessage(ctx context.Context, conversationID, userID string, req dto.SendMessageRequest) (*dto.MessageResponse, error)
}

type Replier interface {
	Reply(ctx context.Context, conversationID, userID string) (*dto.ReplyResponse, error)
}

// SpeechService handles a spoken turn end to end: store the recording,
// transcribe it, record it as a user message and get the tutor's answer.
type SpeechService struct {
	appContext.DefaultService

	uploader      AudioUploader
	transcriber   llm.Transcriber
	conversations TurnRecorder
	tutor         Replier
}

const SPEECH_SVC = "speech_svc"

func (svc SpeechService) Id() string {
	return SPEECH_SVC
}

func (svc *SpeechService) Start() error {
	svc.wire(
		svc.Service(STORAGE_SVC).(*StorageService),
		svc.Service(GROQ_SVC).(*GroqService).Transcriber(),
		svc.Service(CONVERSATION_SVC).(*ConversationService),
		svc.Service(TUTOR_SVC).(*TutorService),
	)
	return nil
}

func (svc *SpeechService) wire(uploader AudioUploader, transcriber llm.Transcriber, conversations TurnRecorder, tutor Replier) {
	svc.uploader = uploader
	svc.transcriber = transcriber
	svc.conversations = conversations
	svc.tutor = tutor
}

func (svc *SpeechService) SendVoiceMessage(ctx context.Context, conversationID, userID, fileName string, audio []byte) (*dto.VoiceMessageResponse, error) {
	conversation, err := svc.conversations.GetConversation(ctx, conversationID, userID)
	if err != nil {
		return nil, err
	}
	if conversation.Status != model.ConversationActive {
		return nil, shared.NewConversationAlreadyCompletedError()
	}

	upload, err := svc.uploader.UploadAudio(ctx, conversation.ID, fileName, audio)
	if err != nil {
		return nil, err
	}

	transcription, err := svc.transcriber.Transcribe(ctx, audio, fileName)
	if err != nil {
		log.WithFields(log.Fields{
			"conversation_id": conversation.ID,
			"error":           err.Error(),
		}).Error("Transcription failed")
		return nil, shared.NewTranscriptionError(err)
	}

	text := strings.TrimSpace(transcription.Text)
	if text == "" {
		return nil, shared.NewTranscriptionError(errEmptyTranscription)
	}

	req := dto.SendMessageRequest{
		Content:  text,
		AudioURL: &upload.URL,
	}
	if transcription.Duration > 0 {
		seconds := int(math.Round(transcription.Duration))
		req.Duration = &seconds
	}

	userMessage, err := svc.conversations.SendMessage(ctx, conversation.ID, userID, req)
	if err != nil {
		return nil, err
	}

	reply, err := svc.tutor.Reply(ctx, conversation.ID, userID)
	if err != nil {
		return nil, err
	}

	return &dto.VoiceMessageResponse{
		UserMessage:      *userMessage,
		AssistantMessage: reply.Message,
		Transcription:    text,
	}, nil
}
