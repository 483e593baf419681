package ack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/roomsplit/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	messageKeyPrefix = "ack_msg:"
	setKeyPrefix     = "ack_set:"
	namesKeyPrefix   = "ack_names:"
	seqKeyPrefix     = "ack_seq:"
)

// ErrMessageNotFound is returned when a message was never registered
var ErrMessageNotFound = errors.New("acknowledgment message not found")

// messageRecord is the stored form of a registered message
type messageRecord struct {
	ChannelID string    `json:"channel_id"`
	MessageID string    `json:"message_id"`
	SplitID   string    `json:"split_id"`
	BaseText  string    `json:"base_text"`
	CreatedAt time.Time `json:"created_at"`
}

// Config holds configuration for the Redis acknowledgment repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed acknowledgment repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// RegisterMessage creates an empty acknowledgment set for a message,
// resetting any prior set registered under the same ID
func (r *redisRepository) RegisterMessage(ctx context.Context, input *RegisterMessageInput) error {
	if input == nil || input.MessageID == "" {
		return errors.New("input and message ID cannot be empty")
	}

	record := messageRecord{
		ChannelID: input.ChannelID,
		MessageID: input.MessageID,
		SplitID:   input.SplitID,
		BaseText:  input.BaseText,
		CreatedAt: input.CreatedAt,
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal message record: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the message record
	messageKey := fmt.Sprintf("%s%s", messageKeyPrefix, input.MessageID)
	pipe.Set(ctx, messageKey, recordJSON, 0) // No expiration for now

	// Reset any prior acknowledgment state for this message ID
	pipe.Del(ctx, fmt.Sprintf("%s%s", setKeyPrefix, input.MessageID))
	pipe.Del(ctx, fmt.Sprintf("%s%s", namesKeyPrefix, input.MessageID))
	pipe.Del(ctx, fmt.Sprintf("%s%s", seqKeyPrefix, input.MessageID))

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to register message: %w", err)
	}

	return nil
}

// AddAcknowledger records a user's acknowledgment exactly once. The
// acknowledgment set is a sorted set scored by a per-message sequence
// counter; ZADD NX makes the add atomic and idempotent, so two
// concurrent taps by the same user result in a single entry.
func (r *redisRepository) AddAcknowledger(ctx context.Context, input *AddAcknowledgerInput) (*AddAcknowledgerOutput, error) {
	if input == nil || input.MessageID == "" || input.UserID == "" {
		return nil, errors.New("input, message ID and user ID cannot be empty")
	}

	// The message must have been registered first
	messageKey := fmt.Sprintf("%s%s", messageKeyPrefix, input.MessageID)
	exists, err := r.client.Exists(ctx, messageKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check message: %w", err)
	}
	if exists == 0 {
		return nil, ErrMessageNotFound
	}

	// Claim the next insertion-order score. A wasted sequence number on
	// a duplicate tap is harmless; ordering only needs to be monotonic.
	seqKey := fmt.Sprintf("%s%s", seqKeyPrefix, input.MessageID)
	seq, err := r.client.Incr(ctx, seqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to advance acknowledgment sequence: %w", err)
	}

	setKey := fmt.Sprintf("%s%s", setKeyPrefix, input.MessageID)
	added, err := r.client.ZAddNX(ctx, setKey, redis.Z{
		Score:  float64(seq),
		Member: input.UserID,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to add acknowledger: %w", err)
	}

	namesKey := fmt.Sprintf("%s%s", namesKeyPrefix, input.MessageID)
	if added > 0 {
		if err := r.client.HSet(ctx, namesKey, input.UserID, input.DisplayName).Err(); err != nil {
			return nil, fmt.Errorf("failed to store acknowledger name: %w", err)
		}
	}

	acknowledgers, err := r.getAcknowledgers(ctx, input.MessageID)
	if err != nil {
		return nil, err
	}

	return &AddAcknowledgerOutput{
		Added:         added > 0,
		Acknowledgers: acknowledgers,
	}, nil
}

// GetMessage retrieves a registered message with its acknowledgers
func (r *redisRepository) GetMessage(ctx context.Context, input *GetMessageInput) (*models.AckMessage, error) {
	if input == nil || input.MessageID == "" {
		return nil, errors.New("input and message ID cannot be empty")
	}

	messageKey := fmt.Sprintf("%s%s", messageKeyPrefix, input.MessageID)
	recordJSON, err := r.client.Get(ctx, messageKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	var record messageRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message record: %w", err)
	}

	acknowledgers, err := r.getAcknowledgers(ctx, input.MessageID)
	if err != nil {
		return nil, err
	}

	return &models.AckMessage{
		ChannelID:     record.ChannelID,
		MessageID:     record.MessageID,
		SplitID:       record.SplitID,
		BaseText:      record.BaseText,
		Acknowledgers: acknowledgers,
		CreatedAt:     record.CreatedAt,
	}, nil
}

// getAcknowledgers reads the acknowledgment set in insertion order and
// joins it with the stored display names
func (r *redisRepository) getAcknowledgers(ctx context.Context, messageID string) ([]models.Acknowledger, error) {
	setKey := fmt.Sprintf("%s%s", setKeyPrefix, messageID)
	userIDs, err := r.client.ZRange(ctx, setKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get acknowledgers: %w", err)
	}

	if len(userIDs) == 0 {
		return []models.Acknowledger{}, nil
	}

	namesKey := fmt.Sprintf("%s%s", namesKeyPrefix, messageID)
	names, err := r.client.HGetAll(ctx, namesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get acknowledger names: %w", err)
	}

	acknowledgers := make([]models.Acknowledger, 0, len(userIDs))
	for _, userID := range userIDs {
		acknowledgers = append(acknowledgers, models.Acknowledger{
			UserID:      userID,
			DisplayName: names[userID],
		})
	}

	return acknowledgers, nil
}
