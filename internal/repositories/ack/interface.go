package ack

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roomsplit/internal/repositories/ack Repository

import (
	"context"

	"github.com/KirkDiggler/roomsplit/internal/models"
)

// Repository defines the interface for per-message acknowledgment state.
// All mutation is serialized per message key by Redis, so concurrent
// acknowledgers can never double-add.
type Repository interface {
	// RegisterMessage creates an empty acknowledgment set for a message,
	// resetting any prior set registered under the same ID
	RegisterMessage(ctx context.Context, input *RegisterMessageInput) error

	// AddAcknowledger records a user's acknowledgment exactly once
	AddAcknowledger(ctx context.Context, input *AddAcknowledgerInput) (*AddAcknowledgerOutput, error)

	// GetMessage retrieves a registered message with its acknowledgers
	GetMessage(ctx context.Context, input *GetMessageInput) (*models.AckMessage, error)
}
