package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/roomsplit/internal/models"
)

// RenderSplitSummary converts a split summary into Discord markdown.
// Amounts are rounded to 2 decimal places here and nowhere earlier.
func RenderSplitSummary(summary *models.SplitSummary) string {
	var sb strings.Builder

	if summary.RoomInfo != nil {
		sb.WriteString(RenderRoomInfo(summary.RoomInfo))
		sb.WriteString("\n")
	}

	if summary.Policy == models.SplitPolicyNightsWeighted {
		sb.WriteString("**Room Cost Split (Based on Nights Stayed):**\n")
		sb.WriteString(fmt.Sprintf("Total Cost: %s%s\n", summary.Currency, summary.TotalCost.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("Total Nights: %d\n", summary.TotalNights))

		for _, share := range summary.Shares {
			sb.WriteString(fmt.Sprintf("%s (%d nights): **%s%s**\n",
				share.Name, share.Nights, summary.Currency, share.Amount.StringFixed(2)))
		}
	} else {
		sb.WriteString("**Room Cost Split (Equal Share):**\n")
		sb.WriteString(fmt.Sprintf("Total Cost: %s%s\n", summary.Currency, summary.TotalCost.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("Number of Roommates: %d\n", summary.ParticipantCount))

		for _, share := range summary.Shares {
			sb.WriteString(fmt.Sprintf("%s: **%s%s**\n",
				share.Name, summary.Currency, share.Amount.StringFixed(2)))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// RenderRoomInfo converts stored room info into Discord markdown
func RenderRoomInfo(roomInfo *models.RoomInfo) string {
	return fmt.Sprintf("**Room Information:**\n```\nHotel: %s\nDates: %s\nBeds: %s\nRoom Type: %s\n```",
		roomInfo.HotelName, roomInfo.Dates, roomInfo.Beds, roomInfo.RoomType)
}

// RenderRoster converts a roommate roster into a display line
func RenderRoster(names []string) string {
	return fmt.Sprintf("**Roommates:** %s", strings.Join(names, ", "))
}
