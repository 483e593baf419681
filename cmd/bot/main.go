package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsplit/internal/allocation"
	"github.com/KirkDiggler/roomsplit/internal/common/clock"
	"github.com/KirkDiggler/roomsplit/internal/common/uuid"
	"github.com/KirkDiggler/roomsplit/internal/config"
	"github.com/KirkDiggler/roomsplit/internal/handlers/discord"
	ackrepo "github.com/KirkDiggler/roomsplit/internal/repositories/ack"
	"github.com/KirkDiggler/roomsplit/internal/repositories/session"
	ackservice "github.com/KirkDiggler/roomsplit/internal/services/ack"
	"github.com/KirkDiggler/roomsplit/internal/services/dialogue"
	"github.com/KirkDiggler/roomsplit/internal/services/split"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Environment != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session repository")
	}

	ackRepo, err := ackrepo.NewRedis(&ackrepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create ack repository")
	}

	calculator := allocation.New(&allocation.Config{})

	splitService, err := split.New(&split.Config{
		SessionRepository: sessionRepo,
		Calculator:        calculator,
		UUIDGenerator:     uuid.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create split service")
	}

	dialogueService, err := dialogue.New(&dialogue.Config{
		SessionRepository: sessionRepo,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create dialogue service")
	}

	ackService, err := ackservice.New(&ackservice.Config{
		AckRepository:     ackRepo,
		SessionRepository: sessionRepo,
		Clock:             &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create ack service")
	}

	bot, err := discord.New(&discord.Config{
		Token:           cfg.DiscordToken,
		ApplicationID:   cfg.ApplicationID,
		GuildID:         cfg.GuildID,
		SplitService:    splitService,
		DialogueService: dialogueService,
		AckService:      ackService,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create bot")
	}

	if err := bot.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start bot")
	}

	// Wait for a termination signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("Shutting down")
	if err := bot.Stop(); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}
