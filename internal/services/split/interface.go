package split

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/roomsplit/internal/services/split Service

import "context"

// Service defines the interface for orchestrating split requests
type Service interface {
	// HandleSplit parses a raw split request, resolves participant
	// names, computes shares and returns a structured summary
	HandleSplit(ctx context.Context, input *HandleSplitInput) (*HandleSplitOutput, error)

	// SetCurrency stores the channel's currency symbol
	SetCurrency(ctx context.Context, input *SetCurrencyInput) (*SetCurrencyOutput, error)

	// GetCurrency retrieves the channel's currency symbol
	GetCurrency(ctx context.Context, input *GetCurrencyInput) (*GetCurrencyOutput, error)
}
