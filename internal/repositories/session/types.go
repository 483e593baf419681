package session

import "github.com/KirkDiggler/roomsplit/internal/models"

type SaveRoomInfoInput struct {
	ChannelID string
	RoomInfo  *models.RoomInfo
}

type GetRoomInfoInput struct {
	ChannelID string
}

type SaveRosterInput struct {
	ChannelID string
	Names     []string
}

type GetRosterInput struct {
	ChannelID string
}

type SetCurrencyInput struct {
	ChannelID string
	Symbol    string
}

type GetCurrencyInput struct {
	ChannelID string
}

type SetActiveDialogueInput struct {
	ChannelID string
	State     models.DialogueState
}

type GetActiveDialogueInput struct {
	ChannelID string
}

type ClearActiveDialogueInput struct {
	ChannelID string
}

type SetLastSplitMessageInput struct {
	ChannelID string
	MessageID string
}

type GetLastSplitMessageInput struct {
	ChannelID string
}
