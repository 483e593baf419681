package ack

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roomsplit/internal/services/ack Service

import "context"

// Service defines the interface for tracking split acknowledgments
type Service interface {
	// RegisterSplitMessage starts acknowledgment tracking for a sent
	// split message and records it as the channel's latest split
	RegisterSplitMessage(ctx context.Context, input *RegisterSplitMessageInput) error

	// Acknowledge records a user's acknowledgment of a split message.
	// Acknowledging twice is a no-op reported through Added.
	Acknowledge(ctx context.Context, input *AcknowledgeInput) (*AcknowledgeOutput, error)

	// GetReminder builds a settle-up reminder for a channel, including
	// the acknowledged count when the channel has a tracked split
	GetReminder(ctx context.Context, input *GetReminderInput) (*GetReminderOutput, error)
}
