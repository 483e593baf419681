package models

import (
	"time"
)

// Acknowledger is one user who acknowledged a split message
type Acknowledger struct {
	// UserID is the chat user ID of the acknowledger
	UserID string

	// DisplayName is the name captured when the user acknowledged
	DisplayName string
}

// AckMessage tracks acknowledgments for one rendered split message
type AckMessage struct {
	// ChannelID is the channel the message was sent in
	ChannelID string

	// MessageID is the chat message ID the acknowledgments belong to
	MessageID string

	// SplitID is the split this message rendered
	SplitID string

	// BaseText is the summary text without any acknowledgment footer
	BaseText string

	// Acknowledgers lists the users who acknowledged, in the order
	// they first acknowledged
	Acknowledgers []Acknowledger

	// CreatedAt is when the message was registered
	CreatedAt time.Time
}
