package main

import (
	"os"
	"strings"

	"github.com/Kevin-Guilherme/fluentify/services"
	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded, using process environment")
	}

	configureLogging(os.Getenv("LOG_LEVEL"))

	ctx, err := context.NewCtx(
		&services.DatabaseService{},
		&services.RedisService{},
		&services.MinIOService{},
		&services.MonitoringService{},

		&services.JWTService{},
		&services.GroqService{},
		&services.RateLimitService{},

		&services.TopicService{},
		&services.UserService{},
		&services.StreakService{},
		&services.FeedbackService{},
		&services.ConversationService{},
		&services.TutorService{},
		&services.StorageService{},
		&services.SpeechService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure services")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service exited")
		return
	}
}

// configureLogging applies LOG_LEVEL to both loggers. Unknown values keep
// info.
func configureLogging(level string) {
	logrusLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logrusLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logrusLevel)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	zerologLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		zerologLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(zerologLevel)
}
