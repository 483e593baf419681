package dialogue

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roomsplit/internal/services/dialogue Service

import "context"

// Service defines the interface for per-channel conversation dialogues.
// A channel has at most one pending dialogue; beginning a new one
// supersedes whatever was pending.
type Service interface {
	// BeginRoomInfo starts the room info dialogue and returns the prompt
	// to show the user
	BeginRoomInfo(ctx context.Context, input *BeginRoomInfoInput) (*BeginRoomInfoOutput, error)

	// BeginRoster starts the roommates dialogue and returns the prompt
	// to show the user
	BeginRoster(ctx context.Context, input *BeginRosterInput) (*BeginRosterOutput, error)

	// HandleReply consumes a freeform message for the channel's pending
	// dialogue, if any. The pending dialogue ends whether the reply
	// validates or not.
	HandleReply(ctx context.Context, input *HandleReplyInput) (*HandleReplyOutput, error)

	// GetRoomInfo retrieves the stored room info for a channel
	GetRoomInfo(ctx context.Context, input *GetRoomInfoInput) (*GetRoomInfoOutput, error)

	// GetRoster retrieves the stored roommate roster for a channel
	GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error)
}
