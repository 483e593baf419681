package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/roomsplit/internal/models"
	"github.com/KirkDiggler/roomsplit/internal/repositories/session"
)

const (
	roomInfoPrompt = "Please enter the room information in this format: Hotel Name, Dates, Number of Beds, Room Type"
	rosterPrompt   = "Please enter the names of the roommates, separated by commas"
)

// Config holds the configuration for the dialogue service
type Config struct {
	// SessionRepository holds dialogue state, room info and the roster
	SessionRepository session.Repository
}

type service struct {
	sessionRepo session.Repository
}

// New creates a new dialogue service
func New(cfg *Config) (*service, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionRepository == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	return &service{
		sessionRepo: cfg.SessionRepository,
	}, nil
}

// BeginRoomInfo starts the room info dialogue, superseding any pending
// dialogue for the channel
func (s *service) BeginRoomInfo(ctx context.Context, input *BeginRoomInfoInput) (*BeginRoomInfoOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	if err := s.sessionRepo.SetActiveDialogue(ctx, &session.SetActiveDialogueInput{
		ChannelID: input.ChannelID,
		State:     models.DialogueStateAwaitingRoomInfo,
	}); err != nil {
		return nil, fmt.Errorf("failed to start room info dialogue: %w", err)
	}

	return &BeginRoomInfoOutput{Prompt: roomInfoPrompt}, nil
}

// BeginRoster starts the roommates dialogue, superseding any pending
// dialogue for the channel
func (s *service) BeginRoster(ctx context.Context, input *BeginRosterInput) (*BeginRosterOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	if err := s.sessionRepo.SetActiveDialogue(ctx, &session.SetActiveDialogueInput{
		ChannelID: input.ChannelID,
		State:     models.DialogueStateAwaitingRoommates,
	}); err != nil {
		return nil, fmt.Errorf("failed to start roommates dialogue: %w", err)
	}

	return &BeginRosterOutput{Prompt: rosterPrompt}, nil
}

// HandleReply consumes a freeform message for the channel's pending
// dialogue. The pending dialogue ends whether the reply validates or
// not; a failed reply never touches previously stored records.
func (s *service) HandleReply(ctx context.Context, input *HandleReplyInput) (*HandleReplyOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	state, err := s.sessionRepo.GetActiveDialogue(ctx, &session.GetActiveDialogueInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get active dialogue: %w", err)
	}

	switch state {
	case models.DialogueStateAwaitingRoomInfo:
		return s.handleRoomInfoReply(ctx, input)
	case models.DialogueStateAwaitingRoommates:
		return s.handleRosterReply(ctx, input)
	default:
		return &HandleReplyOutput{Handled: false}, nil
	}
}

func (s *service) handleRoomInfoReply(ctx context.Context, input *HandleReplyInput) (*HandleReplyOutput, error) {
	if err := s.endDialogue(ctx, input.ChannelID); err != nil {
		return nil, err
	}

	fields := splitAndTrim(input.Text)
	if len(fields) != 4 {
		return nil, ErrRoomInfoFormat
	}

	roomInfo := &models.RoomInfo{
		HotelName: fields[0],
		Dates:     fields[1],
		Beds:      fields[2],
		RoomType:  fields[3],
	}

	if err := s.sessionRepo.SaveRoomInfo(ctx, &session.SaveRoomInfoInput{
		ChannelID: input.ChannelID,
		RoomInfo:  roomInfo,
	}); err != nil {
		return nil, fmt.Errorf("failed to save room info: %w", err)
	}

	return &HandleReplyOutput{
		Handled: true,
		Reply:   "Room information saved!",
	}, nil
}

func (s *service) handleRosterReply(ctx context.Context, input *HandleReplyInput) (*HandleReplyOutput, error) {
	if err := s.endDialogue(ctx, input.ChannelID); err != nil {
		return nil, err
	}

	names := splitAndTrim(input.Text)
	if len(names) == 0 {
		return nil, ErrEmptyRoster
	}

	if err := s.sessionRepo.SaveRoster(ctx, &session.SaveRosterInput{
		ChannelID: input.ChannelID,
		Names:     names,
	}); err != nil {
		return nil, fmt.Errorf("failed to save roster: %w", err)
	}

	return &HandleReplyOutput{
		Handled: true,
		Reply:   fmt.Sprintf("Roommates saved: %s", strings.Join(names, ", ")),
	}, nil
}

// GetRoomInfo retrieves the stored room info for a channel
func (s *service) GetRoomInfo(ctx context.Context, input *GetRoomInfoInput) (*GetRoomInfoOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	roomInfo, err := s.sessionRepo.GetRoomInfo(ctx, &session.GetRoomInfoInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrNoRoomInfo
		}
		return nil, fmt.Errorf("failed to get room info: %w", err)
	}

	return &GetRoomInfoOutput{RoomInfo: roomInfo}, nil
}

// GetRoster retrieves the stored roommate roster for a channel
func (s *service) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	names, err := s.sessionRepo.GetRoster(ctx, &session.GetRosterInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrNoRoster
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	return &GetRosterOutput{Names: names}, nil
}

// endDialogue returns the channel to the no-dialogue state
func (s *service) endDialogue(ctx context.Context, channelID string) error {
	if err := s.sessionRepo.ClearActiveDialogue(ctx, &session.ClearActiveDialogueInput{
		ChannelID: channelID,
	}); err != nil {
		return fmt.Errorf("failed to clear active dialogue: %w", err)
	}
	return nil
}

// splitAndTrim splits text on commas and trims each field, dropping
// empty fields
func splitAndTrim(text string) []string {
	parts := strings.Split(text, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}
