package ack

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/roomsplit/internal/common/clock"
	"github.com/KirkDiggler/roomsplit/internal/models"
	ackrepo "github.com/KirkDiggler/roomsplit/internal/repositories/ack"
	"github.com/KirkDiggler/roomsplit/internal/repositories/session"
)

// ackFooterPrefix marks the acknowledgment footer appended to a split
// message. Re-renders strip everything from this marker on.
const ackFooterPrefix = "\n\nAcknowledged by: "

// Config holds the configuration for the acknowledgment service
type Config struct {
	// AckRepository holds per-message acknowledgment sets
	AckRepository ackrepo.Repository

	// SessionRepository tracks each channel's latest split message
	SessionRepository session.Repository

	// Clock provides the current time
	Clock clock.Clock
}

type service struct {
	ackRepo     ackrepo.Repository
	sessionRepo session.Repository
	clock       clock.Clock
}

// New creates a new acknowledgment service
func New(cfg *Config) (*service, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.AckRepository == nil {
		return nil, errors.New("ack repository cannot be nil")
	}

	if cfg.SessionRepository == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		ackRepo:     cfg.AckRepository,
		sessionRepo: cfg.SessionRepository,
		clock:       cfg.Clock,
	}, nil
}

// RegisterSplitMessage starts acknowledgment tracking for a sent split
// message and records it as the channel's latest split. Registration
// always precedes any acknowledgment of the message.
func (s *service) RegisterSplitMessage(ctx context.Context, input *RegisterSplitMessageInput) error {
	if input == nil || input.ChannelID == "" || input.MessageID == "" {
		return errors.New("input, channel ID and message ID cannot be empty")
	}

	if err := s.ackRepo.RegisterMessage(ctx, &ackrepo.RegisterMessageInput{
		ChannelID: input.ChannelID,
		MessageID: input.MessageID,
		SplitID:   input.SplitID,
		BaseText:  stripFooter(input.BaseText),
		CreatedAt: s.clock.Now(),
	}); err != nil {
		return fmt.Errorf("failed to register split message: %w", err)
	}

	if err := s.sessionRepo.SetLastSplitMessage(ctx, &session.SetLastSplitMessageInput{
		ChannelID: input.ChannelID,
		MessageID: input.MessageID,
	}); err != nil {
		return fmt.Errorf("failed to record last split message: %w", err)
	}

	return nil
}

// Acknowledge records a user's acknowledgment of a split message. On a
// first acknowledgment it returns the re-rendered message text with the
// footer listing all acknowledgers in insertion order.
func (s *service) Acknowledge(ctx context.Context, input *AcknowledgeInput) (*AcknowledgeOutput, error) {
	if input == nil || input.MessageID == "" || input.UserID == "" {
		return nil, errors.New("input, message ID and user ID cannot be empty")
	}

	added, err := s.ackRepo.AddAcknowledger(ctx, &ackrepo.AddAcknowledgerInput{
		MessageID:   input.MessageID,
		UserID:      input.UserID,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		return nil, err
	}

	if !added.Added {
		return &AcknowledgeOutput{
			Added:             false,
			AcknowledgerCount: len(added.Acknowledgers),
		}, nil
	}

	message, err := s.ackRepo.GetMessage(ctx, &ackrepo.GetMessageInput{
		MessageID: input.MessageID,
	})
	if err != nil {
		return nil, err
	}

	return &AcknowledgeOutput{
		Added:             true,
		UpdatedText:       renderWithFooter(message.BaseText, added.Acknowledgers),
		AcknowledgerCount: len(added.Acknowledgers),
	}, nil
}

// GetReminder builds a settle-up reminder for a channel. When the
// channel has a tracked split, the reminder includes how many roommates
// have acknowledged it so far.
func (s *service) GetReminder(ctx context.Context, input *GetReminderInput) (*GetReminderOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	reminder := "Friendly reminder to settle up the room cost!"

	messageID, err := s.sessionRepo.GetLastSplitMessage(ctx, &session.GetLastSplitMessageInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return &GetReminderOutput{Reminder: reminder}, nil
		}
		return nil, fmt.Errorf("failed to get last split message: %w", err)
	}

	message, err := s.ackRepo.GetMessage(ctx, &ackrepo.GetMessageInput{
		MessageID: messageID,
	})
	if err != nil {
		if errors.Is(err, ackrepo.ErrMessageNotFound) {
			return &GetReminderOutput{Reminder: reminder}, nil
		}
		return nil, err
	}

	return &GetReminderOutput{
		Reminder: fmt.Sprintf("%s\nAcknowledged so far: %d", reminder, len(message.Acknowledgers)),
	}, nil
}

// renderWithFooter appends the acknowledgment footer to the base text
func renderWithFooter(baseText string, acknowledgers []models.Acknowledger) string {
	names := make([]string, 0, len(acknowledgers))
	for _, a := range acknowledgers {
		names = append(names, a.DisplayName)
	}
	return stripFooter(baseText) + ackFooterPrefix + strings.Join(names, ", ")
}

// stripFooter removes any acknowledgment footer from a message text
func stripFooter(text string) string {
	if idx := strings.Index(text, ackFooterPrefix); idx >= 0 {
		return text[:idx]
	}
	return text
}
