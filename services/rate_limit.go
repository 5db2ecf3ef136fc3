package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Kevin-Guilherme/fluentify/model"
	"github.com/Kevin-Guilherme/fluentify/shared"
	appContext "github.com/alphabatem/common/context"
)

// WindowCounter counts hits in a fixed time window.
type WindowCounter interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

type RateLimitService struct {
	appContext.DefaultService

	configs map[string]*model.RateLimitConfig
	mutex   sync.RWMutex

	counter WindowCounter
	now     func() time.Time
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc *RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.initDefaultConfigs()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.counter = svc.Service(REDIS_SVC).(*RedisService)
	svc.now = time.Now
	return nil
}

// ==================== CONFIGURATION MANAGEMENT ====================

func (svc *RateLimitService) initDefaultConfigs() {
	replyLimit := getEnvInt("REPLY_RATE_LIMIT", 30)
	replyWindow := time.Duration(getEnvInt("REPLY_RATE_WINDOW_SECONDS", 60)) * time.Second

	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs = map[string]*model.RateLimitConfig{
		shared.EndpointReply: {
			EndpointType: shared.EndpointReply,
			Limit:        replyLimit,
			WindowSize:   replyWindow,
			Description:  "Tutor replies per user",
			IsActive:     true,
		},
		shared.EndpointAudio: {
			EndpointType: shared.EndpointAudio,
			Limit:        20,
			WindowSize:   time.Minute,
			Description:  "Voice turns per user",
			IsActive:     true,
		},
	}
}

// SetConfig replaces the limit for one endpoint type.
func (svc *RateLimitService) SetConfig(config model.RateLimitConfig) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	if svc.configs == nil {
		svc.configs = make(map[string]*model.RateLimitConfig)
	}
	svc.configs[config.EndpointType] = &config
}

// ==================== LIMIT CHECK ====================

// IsAllowed counts one request for identifier against the endpoint's window.
// Endpoints without an active config are always allowed.
func (svc *RateLimitService) IsAllowed(ctx context.Context, identifier, endpointType string) (*model.RateLimitStatus, error) {
	svc.mutex.RLock()
	config, exists := svc.configs[endpointType]
	svc.mutex.RUnlock()

	if !exists || !config.IsActive {
		return &model.RateLimitStatus{Allowed: true, Remaining: -1}, nil
	}

	key := fmt.Sprintf("ratelimit:%s:%s", endpointType, identifier)
	count, ttl, err := svc.counter.IncrementWindow(ctx, key, config.WindowSize)
	if err != nil {
		return nil, err
	}

	remaining := config.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return &model.RateLimitStatus{
		Allowed:   int(count) <= config.Limit,
		Limit:     config.Limit,
		Remaining: remaining,
		ResetAt:   svc.clock().Add(ttl),
	}, nil
}

func (svc *RateLimitService) clock() time.Time {
	if svc.now != nil {
		return svc.now()
	}
	return time.Now()
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil && v > 0 {
		return v
	}
	return fallback
}
