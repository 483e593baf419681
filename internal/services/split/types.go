package split

import "github.com/KirkDiggler/roomsplit/internal/models"

type HandleSplitInput struct {
	// ChannelID is the channel the request came from
	ChannelID string

	// Args are the raw whitespace-split arguments: total cost, roommate
	// count, then optional names followed by optional nights
	Args []string
}

type HandleSplitOutput struct {
	Summary *models.SplitSummary
}

type SetCurrencyInput struct {
	ChannelID string
	Symbol    string
}

type SetCurrencyOutput struct {
	Symbol string
}

type GetCurrencyInput struct {
	ChannelID string
}

type GetCurrencyOutput struct {
	Symbol string
}
