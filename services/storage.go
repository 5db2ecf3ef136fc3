package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/Kevin-Guilherme/fluentify/dto"
	"github.com/Kevin-Guilherme/fluentify/services/repositories"
	"github.com/Kevin-Guilherme/fluentify/shared"
	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	MaxAudioSize         = 10 * 1024 * 1024
	audioKeyPrefix       = "audio/"
	audioURLExpiry       = 7 * 24 * time.Hour
	presignedURLExpiry   = time.Hour
	defaultAudioFileName = "recording.webm"
)

var (
	audioContentTypes = map[string]string{
		"mp3":  "audio/mpeg",
		"wav":  "audio/wav",
		"ogg":  "audio/ogg",
		"webm": "audio/webm",
		"m4a":  "audio/mp4",
	}

	unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

// ObjectStore is the slice of the object storage client the audio store
// needs.
type ObjectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, objectSize int64, contentType string) error
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	PublicURL(objectName string) string
	DeleteFile(ctx context.Context, objectName string) error
	FileExists(ctx context.Context, objectName string) (bool, error)
	GetBucketName() string
}

type StorageService struct {
	appContext.DefaultService

	store         ObjectStore
	conversations *repositories.ConversationRepository
	now           func() time.Time
}

const STORAGE_SVC = "storage_svc"

func (svc StorageService) Id() string {
	return STORAGE_SVC
}

func (svc *StorageService) Start() error {
	db := svc.Service(DATABASE_SVC).(*DatabaseService).Db()
	svc.wire(db, svc.Service(MINIO_SVC).(*MinIOService))
	return nil
}

func (svc *StorageService) wire(db *gorm.DB, store ObjectStore) {
	svc.store = store
	svc.conversations = repositories.NewConversationRepository(db)
	if svc.now == nil {
		svc.now = time.Now
	}
}

// UploadAudio stores a recording under audio/{conversationId}/{unix}-{name}.
func (svc *StorageService) UploadAudio(ctx context.Context, conversationID, fileName string, data []byte) (*dto.UploadResult, error) {
	if fileName == "" {
		fileName = defaultAudioFileName
	}
	if err := ValidateAudioFile(fileName, int64(len(data))); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s%s/%d-%s", audioKeyPrefix, conversationID, svc.now().Unix(), sanitizeFileName(fileName))

	err := svc.store.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), audioContentType(fileName))
	if err != nil {
		log.WithFields(log.Fields{"key": key, "error": err.Error()}).Error("Failed to upload audio")
		return nil, shared.NewStorageError(err)
	}

	url := svc.store.PublicURL(key)
	if url == "" {
		url, err = svc.store.GetFileURL(ctx, key, audioURLExpiry)
		if err != nil {
			return nil, shared.NewStorageError(err)
		}
	}

	log.WithFields(log.Fields{"key": key, "size": len(data)}).Info("Audio uploaded")

	return &dto.UploadResult{
		Key:    key,
		URL:    url,
		Bucket: svc.store.GetBucketName(),
	}, nil
}

func (svc *StorageService) PresignedURL(ctx context.Context, userID, key string) (*dto.PresignedURLResponse, error) {
	if err := svc.authorizeKey(userID, key); err != nil {
		return nil, err
	}

	exists, err := svc.store.FileExists(ctx, key)
	if err != nil {
		return nil, shared.NewStorageError(err)
	}
	if !exists {
		return nil, shared.NewStorageError(errors.New("file not found"))
	}

	url, err := svc.store.GetFileURL(ctx, key, presignedURLExpiry)
	if err != nil {
		return nil, shared.NewStorageError(err)
	}

	return &dto.PresignedURLResponse{
		Key:       key,
		URL:       url,
		ExpiresIn: int(presignedURLExpiry.Seconds()),
	}, nil
}

func (svc *StorageService) DeleteAudio(ctx context.Context, userID, key string) error {
	if err := svc.authorizeKey(userID, key); err != nil {
		return err
	}

	if err := svc.store.DeleteFile(ctx, key); err != nil {
		log.WithFields(log.Fields{"key": key, "error": err.Error()}).Error("Failed to delete audio")
		return shared.NewStorageError(err)
	}
	return nil
}

// authorizeKey accepts only audio keys whose conversation belongs to userID.
func (svc *StorageService) authorizeKey(userID, key string) error {
	if key == "" {
		return shared.NewBadRequestError(nil, "key is required")
	}

	rest, ok := strings.CutPrefix(key, audioKeyPrefix)
	if !ok || strings.Contains(key, "..") || path.Clean(key) != key {
		return shared.NewForbiddenError("Invalid audio key")
	}

	conversationID, _, found := strings.Cut(rest, "/")
	if !found || conversationID == "" {
		return shared.NewForbiddenError("Invalid audio key")
	}

	if _, err := svc.conversations.GetOwned(conversationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewForbiddenError("Audio does not belong to the current user")
		}
		return err
	}
	return nil
}

func ValidateAudioFile(fileName string, size int64) error {
	if size == 0 {
		return shared.NewBadRequestError(nil, "Audio file is empty")
	}
	if size > MaxAudioSize {
		return shared.NewBadRequestError(nil, "Audio file exceeds 10MB")
	}
	if _, ok := audioContentTypes[audioExtension(fileName)]; !ok {
		return shared.NewBadRequestError(nil, "Unsupported audio format, use mp3, wav, ogg, webm or m4a")
	}
	return nil
}

func audioExtension(fileName string) string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(fileName)), ".")
}

func audioContentType(fileName string) string {
	if ct, ok := audioContentTypes[audioExtension(fileName)]; ok {
		return ct
	}
	return "audio/mpeg"
}

func sanitizeFileName(fileName string) string {
	return unsafeFileChars.ReplaceAllString(path.Base(fileName), "_")
}
