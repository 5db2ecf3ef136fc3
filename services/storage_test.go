package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeObjectStore struct {
	objects     map[string][]byte
	types       map[string]string
	publicBase  string
	failUpload  bool
	deleted     []string
	presignedAt time.Duration
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects: map[string][]byte{},
		types:   map[string]string{},
	}
}

func (s *fakeObjectStore) UploadFile(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) error {
	if s.failUpload {
		return errors.New("bucket unavailable")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectName] = data
	s.types[objectName] = contentType
	return nil
}

func (s *fakeObjectStore) GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	s.presignedAt = expiry
	return "https://minio.local/fluentify/" + objectName + "?signed=1", nil
}

func (s *fakeObjectStore) PublicURL(objectName string) string {
	if s.publicBase == "" {
		return ""
	}
	return s.publicBase + "/" + objectName
}

func (s *fakeObjectStore) DeleteFile(ctx context.Context, objectName string) error {
	s.deleted = append(s.deleted, objectName)
	delete(s.objects, objectName)
	return nil
}

func (s *fakeObjectStore) FileExists(ctx context.Context, objectName string) (bool, error) {
	_, ok := s.objects[objectName]
	return ok, nil
}

func (s *fakeObjectStore) GetBucketName() string {
	return "fluentify"
}

func createTestConversation(t *testing.T, db *gorm.DB, userID, topicID string) *model.Conversation {
	t.Helper()

	conv := &model.Conversation{
		ID:      newID(),
		UserID:  userID,
		TopicID: topicID,
		Status:  model.ConversationActive,
	}
	require.NoError(t, db.Omit("Topic", "Messages", "Feedback").Create(conv).Error)
	return conv
}

func newTestStorage(t *testing.T) (*StorageService, *fakeObjectStore, *model.Conversation) {
	t.Helper()

	db := newTestDB(t)
	user := createTestUser(t, db, "user-1")
	createTestUser(t, db, "user-2")
	topic := createTestTopic(t, db, "coffee-shop", true)
	conv := createTestConversation(t, db, user.ID, topic.ID)

	store := newFakeObjectStore()
	svc := &StorageService{now: func() time.Time { return time.Unix(1741600000, 0) }}
	svc.wire(db, store)
	return svc, store, conv
}

func TestUploadAudio(t *testing.T) {
	svc, store, conv := newTestStorage(t)

	result, err := svc.UploadAudio(context.Background(), conv.ID, "my turn (1).WEBM", []byte("audio-bytes"))
	require.NoError(t, err)

	expectedKey := "audio/" + conv.ID + "/1741600000-my_turn__1_.WEBM"
	assert.Equal(t, expectedKey, result.Key)
	assert.Equal(t, "fluentify", result.Bucket)
	assert.Equal(t, []byte("audio-bytes"), store.objects[expectedKey])
	assert.Equal(t, "audio/webm", store.types[expectedKey])
	assert.Contains(t, result.URL, "signed=1")
	assert.Equal(t, audioURLExpiry, store.presignedAt)
}

func TestUploadAudio_PrefersPublicURL(t *testing.T) {
	svc, store, conv := newTestStorage(t)
	store.publicBase = "https://cdn.example.com"

	result, err := svc.UploadAudio(context.Background(), conv.ID, "", []byte("audio"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+result.Key, result.URL)
	assert.Contains(t, result.Key, defaultAudioFileName)
}

func TestUploadAudio_Validation(t *testing.T) {
	svc, store, conv := newTestStorage(t)

	cases := map[string]struct {
		fileName string
		data     []byte
	}{
		"empty":       {fileName: "turn.webm", data: nil},
		"too large":   {fileName: "turn.webm", data: make([]byte, MaxAudioSize+1)},
		"unsupported": {fileName: "turn.flac", data: []byte("audio")},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.UploadAudio(context.Background(), conv.ID, tc.fileName, tc.data)
			assert.True(t, shared.HasCode(err, shared.CodeBadRequest))
		})
	}
	assert.Empty(t, store.objects)
}

func TestUploadAudio_StoreFailure(t *testing.T) {
	svc, store, conv := newTestStorage(t)
	store.failUpload = true

	_, err := svc.UploadAudio(context.Background(), conv.ID, "turn.mp3", []byte("audio"))
	assert.True(t, shared.HasCode(err, shared.CodeStorageError))
}

func TestPresignedURL(t *testing.T) {
	svc, store, conv := newTestStorage(t)
	key := "audio/" + conv.ID + "/1-turn.webm"
	store.objects[key] = []byte("audio")

	resp, err := svc.PresignedURL(context.Background(), "user-1", key)
	require.NoError(t, err)
	assert.Equal(t, key, resp.Key)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, presignedURLExpiry, store.presignedAt)

	_, err = svc.PresignedURL(context.Background(), "user-1", "audio/"+conv.ID+"/missing.webm")
	assert.True(t, shared.HasCode(err, shared.CodeStorageError))
}

func TestAudioKeyAuthorization(t *testing.T) {
	svc, store, conv := newTestStorage(t)

	cases := []struct {
		name   string
		userID string
		key    string
		code   string
	}{
		{name: "empty key", userID: "user-1", key: "", code: shared.CodeBadRequest},
		{name: "other user", userID: "user-2", key: "audio/" + conv.ID + "/1-turn.webm", code: shared.CodeForbidden},
		{name: "wrong prefix", userID: "user-1", key: "avatars/" + conv.ID + "/1-turn.webm", code: shared.CodeForbidden},
		{name: "traversal", userID: "user-1", key: "audio/" + conv.ID + "/../other/1-turn.webm", code: shared.CodeForbidden},
		{name: "no conversation", userID: "user-1", key: "audio/1-turn.webm", code: shared.CodeForbidden},
		{name: "unknown conversation", userID: "user-1", key: "audio/nope/1-turn.webm", code: shared.CodeForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.PresignedURL(context.Background(), tc.userID, tc.key)
			assert.True(t, shared.HasCode(err, tc.code), "presign: %v", err)

			err = svc.DeleteAudio(context.Background(), tc.userID, tc.key)
			assert.True(t, shared.HasCode(err, tc.code), "delete: %v", err)
		})
	}
	assert.Empty(t, store.deleted)
}

func TestDeleteAudio(t *testing.T) {
	svc, store, conv := newTestStorage(t)
	key := "audio/" + conv.ID + "/1-turn.webm"
	store.objects[key] = []byte("audio")

	require.NoError(t, svc.DeleteAudio(context.Background(), "user-1", key))
	assert.Equal(t, []string{key}, store.deleted)
	assert.NotContains(t, store.objects, key)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "voice_note.m4a", sanitizeFileName("voice note.m4a"))
	assert.Equal(t, "passwd", sanitizeFileName("../../etc/passwd"))
	assert.Equal(t, "audio/mp4", audioContentType("clip.M4A"))
	assert.Equal(t, "audio/mpeg", audioContentType("clip"))
}
