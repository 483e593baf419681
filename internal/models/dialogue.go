package models

// DialogueState represents the pending data-collection dialogue for a
// channel. A channel holds at most one pending dialogue at a time;
// entering a second dialogue supersedes the first.
type DialogueState string

const (
	// DialogueStateNone indicates no dialogue is awaiting input
	DialogueStateNone DialogueState = "none"

	// DialogueStateAwaitingRoomInfo indicates the next freeform message
	// is consumed as the room details answer
	DialogueStateAwaitingRoomInfo DialogueState = "awaiting_room_info"

	// DialogueStateAwaitingRoommates indicates the next freeform message
	// is consumed as the roommate list answer
	DialogueStateAwaitingRoommates DialogueState = "awaiting_roommates"
)
