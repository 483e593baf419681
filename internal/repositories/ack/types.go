package ack

import (
	"time"

	"github.com/KirkDiggler/roomsplit/internal/models"
)

type RegisterMessageInput struct {
	ChannelID string
	MessageID string
	SplitID   string
	BaseText  string
	CreatedAt time.Time
}

type AddAcknowledgerInput struct {
	MessageID   string
	UserID      string
	DisplayName string
}

type AddAcknowledgerOutput struct {
	// Added is false when the user had already acknowledged
	Added bool

	// Acknowledgers lists all acknowledgers in insertion order,
	// including the one just added
	Acknowledgers []models.Acknowledger
}

type GetMessageInput struct {
	MessageID string
}
