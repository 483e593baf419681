package models

import (
	"github.com/shopspring/decimal"
)

// SplitPolicy represents how a total cost is allocated across roommates
type SplitPolicy string

const (
	// SplitPolicyEqual divides the total cost evenly across all roommates
	SplitPolicyEqual SplitPolicy = "equal"

	// SplitPolicyNightsWeighted allocates cost proportionally to each
	// roommate's nights stayed
	SplitPolicyNightsWeighted SplitPolicy = "nights_weighted"
)

// ShareLine is one roommate's share of a split
type ShareLine struct {
	// Name is the roommate's display name
	Name string

	// Amount is the roommate's share of the total cost
	Amount decimal.Decimal

	// Nights is the number of nights the roommate stayed. Only
	// meaningful under the nights-weighted policy.
	Nights int
}

// SplitSummary is the structured result of a split request. The
// transport layer renders it into chat markup.
type SplitSummary struct {
	// SplitID is the unique identifier for this split
	SplitID string

	// ChannelID is the channel the split was requested in
	ChannelID string

	// Policy is the allocation policy that was applied
	Policy SplitPolicy

	// TotalCost is the total cost being split
	TotalCost decimal.Decimal

	// TotalNights is the sum of all nights stayed (weighted policy only)
	TotalNights int

	// ParticipantCount is the number of roommates in the split
	ParticipantCount int

	// Currency is the currency symbol used for rendering amounts
	Currency string

	// RoomInfo is the stored room information, if any
	RoomInfo *RoomInfo

	// Shares contains one line per roommate, in roster order
	Shares []ShareLine
}
