package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/services/llm"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	calls int
	err   error
}

func (u *fakeUploader) UploadAudio(ctx context.Context, conversationID, fileName string, data []byte) (*dto.UploadResult, error) {
	u.calls++
	if u.err != nil {
		return nil, u.err
	}
	key := "audio/" + conversationID + "/1-" + fileName
	return &dto.UploadResult{Key: key, URL: "https://cdn.example.com/" + key, Bucket: "fluentify"}, nil
}

type fakeTranscriber struct {
	result *llm.Transcription
	err    error
}

func (tr *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, fileName string) (*llm.Transcription, error) {
	return tr.result, tr.err
}

type fakeTurnRecorder struct {
	status model.ConversationStatus
	sent   []dto.SendMessageRequest
}

func (r *fakeTurnRecorder) GetConversation(ctx context.Context, conversationID, userID string) (*dto.ConversationResponse, error) {
	if conversationID != "conv-1" || userID != "user-1" {
		return nil, shared.NewConversationNotFoundError()
	}
	return &dto.ConversationResponse{ID: conversationID, UserID: userID, Status: r.status}, nil
}

func (r *fakeTurnRecorder) SendMessage(ctx context.Context, conversationID, userID string, req dto.SendMessageRequest) (*dto.MessageResponse, error) {
	r.sent = append(r.sent, req)
	return &dto.MessageResponse{ID: "msg-user", Role: model.RoleUser, Content: req.Content, AudioURL: req.AudioURL, Duration: req.Duration}, nil
}

type fakeReplier struct {
	calls int
	err   error
}

func (r *fakeReplier) Reply(ctx context.Context, conversationID, userID string) (*dto.ReplyResponse, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return &dto.ReplyResponse{Message: dto.MessageResponse{ID: "msg-assistant", Role: model.RoleAssistant, Content: "Great choice!"}}, nil
}

type speechFixture struct {
	svc         *SpeechService
	uploader    *fakeUploader
	transcriber *fakeTranscriber
	recorder    *fakeTurnRecorder
	replier     *fakeReplier
}

func newSpeechFixture() *speechFixture {
	f := &speechFixture{
		uploader:    &fakeUploader{},
		transcriber: &fakeTranscriber{result: &llm.Transcription{Text: "  I would like a latte  ", Language: "english", Duration: 3.6}},
		recorder:    &fakeTurnRecorder{status: model.ConversationActive},
		replier:     &fakeReplier{},
	}
	f.svc = &SpeechService{}
	f.svc.wire(f.uploader, f.transcriber, f.recorder, f.replier)
	return f
}

func (f *speechFixture) send() (*dto.VoiceMessageResponse, error) {
	return f.svc.SendVoiceMessage(context.Background(), "conv-1", "user-1", "turn.webm", []byte("audio"))
}

func TestSendVoiceMessage(t *testing.T) {
	f := newSpeechFixture()

	resp, err := f.send()
	require.NoError(t, err)

	assert.Equal(t, "I would like a latte", resp.Transcription)
	assert.Equal(t, "Great choice!", resp.AssistantMessage.Content)
	require.Len(t, f.recorder.sent, 1)

	sent := f.recorder.sent[0]
	assert.Equal(t, "I would like a latte", sent.Content)
	require.NotNil(t, sent.AudioURL)
	assert.Equal(t, "https://cdn.example.com/audio/conv-1/1-turn.webm", *sent.AudioURL)
	require.NotNil(t, sent.Duration)
	assert.Equal(t, 4, *sent.Duration)
	assert.Equal(t, resp.UserMessage.AudioURL, sent.AudioURL)
}

func TestSendVoiceMessage_NoDuration(t *testing.T) {
	f := newSpeechFixture()
	f.transcriber.result.Duration = 0

	_, err := f.send()
	require.NoError(t, err)
	assert.Nil(t, f.recorder.sent[0].Duration)
}

func TestSendVoiceMessage_Failures(t *testing.T) {
	t.Run("not owned", func(t *testing.T) {
		f := newSpeechFixture()
		_, err := f.svc.SendVoiceMessage(context.Background(), "conv-1", "user-2", "turn.webm", []byte("audio"))
		assert.True(t, shared.HasCode(err, shared.CodeConversationNotFound))
		assert.Zero(t, f.uploader.calls)
	})

	t.Run("completed conversation", func(t *testing.T) {
		f := newSpeechFixture()
		f.recorder.status = model.ConversationCompleted
		_, err := f.send()
		assert.True(t, shared.HasCode(err, shared.CodeConversationAlreadyCompleted))
		assert.Zero(t, f.uploader.calls)
	})

	t.Run("upload", func(t *testing.T) {
		f := newSpeechFixture()
		f.uploader.err = shared.NewStorageError(errors.New("bucket unavailable"))
		_, err := f.send()
		assert.True(t, shared.HasCode(err, shared.CodeStorageError))
		assert.Empty(t, f.recorder.sent)
	})

	t.Run("transcription", func(t *testing.T) {
		f := newSpeechFixture()
		f.transcriber.err = errors.New("whisper timeout")
		_, err := f.send()
		assert.True(t, shared.HasCode(err, shared.CodeTranscriptionError))
		assert.Empty(t, f.recorder.sent)
	})

	t.Run("silence", func(t *testing.T) {
		f := newSpeechFixture()
		f.transcriber.result.Text = "   "
		_, err := f.send()
		assert.True(t, shared.HasCode(err, shared.CodeTranscriptionError))
		assert.ErrorIs(t, err, errEmptyTranscription)
		assert.Empty(t, f.recorder.sent)
	})

	t.Run("reply", func(t *testing.T) {
		f := newSpeechFixture()
		f.replier.err = shared.NewAiServiceError(errors.New("provider down"))
		_, err := f.send()
		assert.True(t, shared.HasCode(err, shared.CodeAiServiceError))
		assert.Len(t, f.recorder.sent, 1)
	})
}
