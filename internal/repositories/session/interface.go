package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/roomsplit/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/roomsplit/internal/models"
)

// Repository defines the interface for per-channel session records:
// room info, roommate roster, currency symbol, pending dialogue and the
// last split message. Each record is owned wholesale by this store.
type Repository interface {
	// SaveRoomInfo persists room info for a channel, overwriting any
	// prior value
	SaveRoomInfo(ctx context.Context, input *SaveRoomInfoInput) error

	// GetRoomInfo retrieves the stored room info for a channel
	GetRoomInfo(ctx context.Context, input *GetRoomInfoInput) (*models.RoomInfo, error)

	// SaveRoster persists the roommate roster for a channel, overwriting
	// any prior value
	SaveRoster(ctx context.Context, input *SaveRosterInput) error

	// GetRoster retrieves the stored roommate roster for a channel
	GetRoster(ctx context.Context, input *GetRosterInput) ([]string, error)

	// SetCurrency stores the currency symbol for a channel
	SetCurrency(ctx context.Context, input *SetCurrencyInput) error

	// GetCurrency retrieves the currency symbol for a channel
	GetCurrency(ctx context.Context, input *GetCurrencyInput) (string, error)

	// SetActiveDialogue records which dialogue is awaiting input
	SetActiveDialogue(ctx context.Context, input *SetActiveDialogueInput) error

	// GetActiveDialogue retrieves the pending dialogue for a channel
	GetActiveDialogue(ctx context.Context, input *GetActiveDialogueInput) (models.DialogueState, error)

	// ClearActiveDialogue resets the pending dialogue for a channel
	ClearActiveDialogue(ctx context.Context, input *ClearActiveDialogueInput) error

	// SetLastSplitMessage records the most recent split message sent in
	// a channel
	SetLastSplitMessage(ctx context.Context, input *SetLastSplitMessageInput) error

	// GetLastSplitMessage retrieves the most recent split message for a
	// channel
	GetLastSplitMessage(ctx context.Context, input *GetLastSplitMessageInput) (string, error)
}
