package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/roomsplit/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	roomInfoKeyPrefix  = "room_info:"
	rosterKeyPrefix    = "roommates:"
	currencyKeyPrefix  = "currency:"
	dialogueKeyPrefix  = "dialogue:"
	lastSplitKeyPrefix = "last_split_msg:"

	// defaultCurrency is used when a channel never set a symbol
	defaultCurrency = "$"
)

// ErrNotFound is returned when a session record is not set for a channel
var ErrNotFound = errors.New("session record not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// SaveRoomInfo persists room info for a channel, overwriting any prior value
func (r *redisRepository) SaveRoomInfo(ctx context.Context, input *SaveRoomInfoInput) error {
	if input == nil || input.ChannelID == "" || input.RoomInfo == nil {
		return errors.New("input, channel ID and room info cannot be empty")
	}

	roomJSON, err := json.Marshal(input.RoomInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal room info: %w", err)
	}

	key := fmt.Sprintf("%s%s", roomInfoKeyPrefix, input.ChannelID)
	if err := r.client.Set(ctx, key, roomJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save room info: %w", err)
	}

	return nil
}

// GetRoomInfo retrieves the stored room info for a channel
func (r *redisRepository) GetRoomInfo(ctx context.Context, input *GetRoomInfoInput) (*models.RoomInfo, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", roomInfoKeyPrefix, input.ChannelID)
	roomJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room info: %w", err)
	}

	var roomInfo models.RoomInfo
	if err := json.Unmarshal([]byte(roomJSON), &roomInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room info: %w", err)
	}

	return &roomInfo, nil
}

// SaveRoster persists the roommate roster for a channel, overwriting any
// prior value
func (r *redisRepository) SaveRoster(ctx context.Context, input *SaveRosterInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	if len(input.Names) == 0 {
		return errors.New("roster cannot be empty")
	}

	rosterJSON, err := json.Marshal(input.Names)
	if err != nil {
		return fmt.Errorf("failed to marshal roster: %w", err)
	}

	key := fmt.Sprintf("%s%s", rosterKeyPrefix, input.ChannelID)
	if err := r.client.Set(ctx, key, rosterJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}

	return nil
}

// GetRoster retrieves the stored roommate roster for a channel
func (r *redisRepository) GetRoster(ctx context.Context, input *GetRosterInput) ([]string, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", rosterKeyPrefix, input.ChannelID)
	rosterJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(rosterJSON), &names); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster: %w", err)
	}

	return names, nil
}

// SetCurrency stores the currency symbol for a channel
func (r *redisRepository) SetCurrency(ctx context.Context, input *SetCurrencyInput) error {
	if input == nil || input.ChannelID == "" || input.Symbol == "" {
		return errors.New("input, channel ID and symbol cannot be empty")
	}

	key := fmt.Sprintf("%s%s", currencyKeyPrefix, input.ChannelID)
	if err := r.client.Set(ctx, key, input.Symbol, 0).Err(); err != nil {
		return fmt.Errorf("failed to set currency: %w", err)
	}

	return nil
}

// GetCurrency retrieves the currency symbol for a channel, falling back
// to the default symbol when none was set
func (r *redisRepository) GetCurrency(ctx context.Context, input *GetCurrencyInput) (string, error) {
	if input == nil || input.ChannelID == "" {
		return "", errors.New("input and channel ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", currencyKeyPrefix, input.ChannelID)
	symbol, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return defaultCurrency, nil
		}
		return "", fmt.Errorf("failed to get currency: %w", err)
	}

	return symbol, nil
}

// SetActiveDialogue records which dialogue is awaiting input for a channel
func (r *redisRepository) SetActiveDialogue(ctx context.Context, input *SetActiveDialogueInput) error {
	if input == nil || input.ChannelID == "" || input.State == "" {
		return errors.New("input, channel ID and state cannot be empty")
	}

	key := fmt.Sprintf("%s%s", dialogueKeyPrefix, input.ChannelID)
	if err := r.client.Set(ctx, key, string(input.State), 0).Err(); err != nil {
		return fmt.Errorf("failed to set active dialogue: %w", err)
	}

	return nil
}

// GetActiveDialogue retrieves the pending dialogue for a channel, falling
// back to DialogueStateNone when nothing is pending
func (r *redisRepository) GetActiveDialogue(ctx context.Context, input *GetActiveDialogueInput) (models.DialogueState, error) {
	if input == nil || input.ChannelID == "" {
		return "", errors.New("input and channel ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", dialogueKeyPrefix, input.ChannelID)
	state, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return models.DialogueStateNone, nil
		}
		return "", fmt.Errorf("failed to get active dialogue: %w", err)
	}

	return models.DialogueState(state), nil
}

// ClearActiveDialogue resets the pending dialogue for a channel
func (r *redisRepository) ClearActiveDialogue(ctx context.Context, input *ClearActiveDialogueInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", dialogueKeyPrefix, input.ChannelID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to clear active dialogue: %w", err)
	}

	return nil
}

// SetLastSplitMessage records the most recent split message sent in a channel
func (r *redisRepository) SetLastSplitMessage(ctx context.Context, input *SetLastSplitMessageInput) error {
	if input == nil || input.ChannelID == "" || input.MessageID == "" {
		return errors.New("input, channel ID and message ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", lastSplitKeyPrefix, input.ChannelID)
	if err := r.client.Set(ctx, key, input.MessageID, 0).Err(); err != nil {
		return fmt.Errorf("failed to set last split message: %w", err)
	}

	return nil
}

// GetLastSplitMessage retrieves the most recent split message for a channel
func (r *redisRepository) GetLastSplitMessage(ctx context.Context, input *GetLastSplitMessageInput) (string, error) {
	if input == nil || input.ChannelID == "" {
		return "", errors.New("input and channel ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", lastSplitKeyPrefix, input.ChannelID)
	messageID, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get last split message: %w", err)
	}

	return messageID, nil
}
