package dialogue

import "github.com/KirkDiggler/roomsplit/internal/models"

type BeginRoomInfoInput struct {
	ChannelID string
}

type BeginRoomInfoOutput struct {
	// Prompt is the text to show the user
	Prompt string
}

type BeginRosterInput struct {
	ChannelID string
}

type BeginRosterOutput struct {
	// Prompt is the text to show the user
	Prompt string
}

type HandleReplyInput struct {
	ChannelID string
	Text      string
}

type HandleReplyOutput struct {
	// Handled is false when no dialogue was pending and the message
	// should be ignored
	Handled bool

	// Reply is the confirmation to show the user when Handled is true
	Reply string
}

type GetRoomInfoInput struct {
	ChannelID string
}

type GetRoomInfoOutput struct {
	RoomInfo *models.RoomInfo
}

type GetRosterInput struct {
	ChannelID string
}

type GetRosterOutput struct {
	Names []string
}
