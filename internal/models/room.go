package models

// RoomInfo holds the details of the shared room as captured by the
// set-room dialogue. A new capture overwrites the whole record.
type RoomInfo struct {
	// HotelName is the name of the hotel or lodging
	HotelName string

	// Dates is the free-form stay date range (e.g. "June 1-3")
	Dates string

	// Beds describes the bed setup (e.g. "2 Queens")
	Beds string

	// RoomType is the type of room (e.g. "Suite")
	RoomType string
}
