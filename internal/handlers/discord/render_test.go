package discord

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/roomsplit/internal/models"
)

func TestRenderSplitSummaryEqualShare(t *testing.T) {
	summary := &models.SplitSummary{
		SplitID:          "split-1",
		ChannelID:        "channel-1",
		Policy:           models.SplitPolicyEqual,
		TotalCost:        decimal.NewFromInt(300),
		ParticipantCount: 3,
		Currency:         "$",
		Shares: []models.ShareLine{
			{Name: "Person 1", Amount: decimal.NewFromInt(100)},
			{Name: "Person 2", Amount: decimal.NewFromInt(100)},
			{Name: "Person 3", Amount: decimal.NewFromInt(100)},
		},
	}

	rendered := RenderSplitSummary(summary)

	expected := "**Room Cost Split (Equal Share):**\n" +
		"Total Cost: $300.00\n" +
		"Number of Roommates: 3\n" +
		"Person 1: **$100.00**\n" +
		"Person 2: **$100.00**\n" +
		"Person 3: **$100.00**"
	assert.Equal(t, expected, rendered)
}

func TestRenderSplitSummaryWeightedByNights(t *testing.T) {
	summary := &models.SplitSummary{
		SplitID:          "split-2",
		ChannelID:        "channel-1",
		Policy:           models.SplitPolicyNightsWeighted,
		TotalCost:        decimal.NewFromInt(300),
		TotalNights:      3,
		ParticipantCount: 2,
		Currency:         "$",
		Shares: []models.ShareLine{
			{Name: "Alice", Amount: decimal.NewFromInt(100), Nights: 1},
			{Name: "Bob", Amount: decimal.NewFromInt(200), Nights: 2},
		},
	}

	rendered := RenderSplitSummary(summary)

	expected := "**Room Cost Split (Based on Nights Stayed):**\n" +
		"Total Cost: $300.00\n" +
		"Total Nights: 3\n" +
		"Alice (1 nights): **$100.00**\n" +
		"Bob (2 nights): **$200.00**"
	assert.Equal(t, expected, rendered)
}

func TestRenderSplitSummaryIncludesRoomInfo(t *testing.T) {
	summary := &models.SplitSummary{
		Policy:           models.SplitPolicyEqual,
		TotalCost:        decimal.NewFromInt(100),
		ParticipantCount: 1,
		Currency:         "€",
		RoomInfo: &models.RoomInfo{
			HotelName: "Grand Hotel",
			Dates:     "June 1-3",
			Beds:      "2 Queens",
			RoomType:  "Suite",
		},
		Shares: []models.ShareLine{
			{Name: "Alice", Amount: decimal.NewFromInt(100)},
		},
	}

	rendered := RenderSplitSummary(summary)

	assert.Contains(t, rendered, "**Room Information:**")
	assert.Contains(t, rendered, "Hotel: Grand Hotel")
	assert.Contains(t, rendered, "Dates: June 1-3")
	assert.Contains(t, rendered, "Beds: 2 Queens")
	assert.Contains(t, rendered, "Room Type: Suite")
	assert.Contains(t, rendered, "Alice: **€100.00**")
}

func TestRenderSplitSummaryUnevenAmountsRoundAtRender(t *testing.T) {
	third := decimal.NewFromInt(100).Div(decimal.NewFromInt(3))
	summary := &models.SplitSummary{
		Policy:           models.SplitPolicyEqual,
		TotalCost:        decimal.NewFromInt(100),
		ParticipantCount: 3,
		Currency:         "$",
		Shares: []models.ShareLine{
			{Name: "Person 1", Amount: third},
			{Name: "Person 2", Amount: third},
			{Name: "Person 3", Amount: third},
		},
	}

	rendered := RenderSplitSummary(summary)

	assert.Contains(t, rendered, "Person 1: **$33.33**")
}

func TestRenderRoster(t *testing.T) {
	assert.Equal(t, "**Roommates:** Alice, Bob", RenderRoster([]string{"Alice", "Bob"}))
}
