package ack

type RegisterSplitMessageInput struct {
	ChannelID string
	MessageID string
	SplitID   string

	// BaseText is the rendered summary without any acknowledgment footer
	BaseText string
}

type AcknowledgeInput struct {
	MessageID   string
	UserID      string
	DisplayName string
}

type AcknowledgeOutput struct {
	// Added is false when the user had already acknowledged; the message
	// text is unchanged in that case
	Added bool

	// UpdatedText is the full message text with the acknowledgment
	// footer. Only meaningful when Added is true.
	UpdatedText string

	// AcknowledgerCount is the size of the acknowledgment set
	AcknowledgerCount int
}

type GetReminderInput struct {
	ChannelID string
}

type GetReminderOutput struct {
	// Reminder is the text to post in the channel
	Reminder string
}
