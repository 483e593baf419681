package dialogue

import "errors"

// Define errors
var (
	// ErrRoomInfoFormat is returned when a room info reply does not have
	// exactly four comma-separated fields
	ErrRoomInfoFormat = errors.New("room info must have exactly 4 comma-separated fields: hotel name, dates, beds, room type")

	// ErrEmptyRoster is returned when a roommates reply contains no names
	ErrEmptyRoster = errors.New("at least one roommate name is required")

	// ErrNoRoomInfo is returned when no room info has been stored for the
	// channel
	ErrNoRoomInfo = errors.New("no room information has been set for this channel")

	// ErrNoRoster is returned when no roommates have been stored for the
	// channel
	ErrNoRoster = errors.New("no roommates have been set for this channel")
)
