package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/roomsplit/internal/allocation"
	ackservice "github.com/KirkDiggler/roomsplit/internal/services/ack"
	"github.com/KirkDiggler/roomsplit/internal/services/dialogue"
	"github.com/KirkDiggler/roomsplit/internal/services/split"
)

const helpText = "`/roomsplit split <total> <count> [names...] [nights...]` — split the room cost\n" +
	"`/roomsplit setroom` — store room information\n" +
	"`/roomsplit getroom` — show stored room information\n" +
	"`/roomsplit setroommates` — store the roommate roster\n" +
	"`/roomsplit getroommates` — show the stored roster\n" +
	"`/roomsplit currency [symbol]` — show or set the currency symbol\n" +
	"`/roomsplit remind` — post a settle-up reminder\n\n" +
	"Without names, the stored roster is used; without a roster, roommates " +
	"are numbered. Add one nights value per roommate to weight the split by " +
	"nights stayed."

// RoomSplitCommand handles the /roomsplit command
type RoomSplitCommand struct {
	BaseCommand
	splitService    split.Service
	dialogueService dialogue.Service
	ackService      ackservice.Service
}

// NewRoomSplitCommand creates a new roomsplit command handler
func NewRoomSplitCommand(splitService split.Service, dialogueService dialogue.Service, ackService ackservice.Service) *RoomSplitCommand {
	return &RoomSplitCommand{
		BaseCommand: BaseCommand{
			Name:        "roomsplit",
			Description: "Room cost splitting commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "split",
					Description: "Split the room cost among roommates",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "request",
							Description: "total cost, roommate count, then optional names and nights",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "setroom",
					Description: "Store room information",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "getroom",
					Description: "Show stored room information",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "setroommates",
					Description: "Store the roommate roster",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "getroommates",
					Description: "Show the stored roommate roster",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "currency",
					Description: "Show or set the currency symbol",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "symbol",
							Description: "currency symbol to use, e.g. $ or €",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remind",
					Description: "Post a settle-up reminder",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "help",
					Description: "Show usage help",
				},
			},
		},
		splitService:    splitService,
		dialogueService: dialogueService,
		ackService:      ackService,
	}
}

// Handle processes a Discord interaction for the roomsplit command
func (c *RoomSplitCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	channelID := i.ChannelID

	switch data.Options[0].Name {
	case "split":
		return c.handleSplit(s, i, channelID, data.Options[0].Options)
	case "setroom":
		return c.handleSetRoom(s, i, channelID)
	case "getroom":
		return c.handleGetRoom(s, i, channelID)
	case "setroommates":
		return c.handleSetRoommates(s, i, channelID)
	case "getroommates":
		return c.handleGetRoommates(s, i, channelID)
	case "currency":
		return c.handleCurrency(s, i, channelID, data.Options[0].Options)
	case "remind":
		return c.handleRemind(s, i, channelID)
	case "help":
		return RespondWithEmbed(s, i, "Room Cost Split", helpText)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleSplit handles the split subcommand: compute the shares, post
// the summary with an acknowledge button, and start tracking it
func (c *RoomSplitCommand) handleSplit(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	request := ""
	if len(options) > 0 {
		request = options[0].StringValue()
	}

	output, err := c.splitService.HandleSplit(ctx, &split.HandleSplitInput{
		ChannelID: channelID,
		Args:      strings.Fields(request),
	})
	if err != nil {
		if isSplitUserError(err) {
			return RespondWithError(s, i, err.Error())
		}
		log.Error().Err(err).Str("channel_id", channelID).Msg("Error handling split")
		return RespondWithError(s, i, "Something went wrong computing the split.")
	}

	baseText := RenderSplitSummary(output.Summary)

	// Send the summary as a regular channel message so we get a message
	// ID to track acknowledgments against
	msg, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    baseText,
		Components: []discordgo.MessageComponent{acknowledgeButtonRow()},
	})
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Error sending split message")
		return RespondWithError(s, i, "Failed to post the split message.")
	}

	// Registration precedes any acknowledgment of the message
	if err := c.ackService.RegisterSplitMessage(ctx, &ackservice.RegisterSplitMessageInput{
		ChannelID: channelID,
		MessageID: msg.ID,
		SplitID:   output.Summary.SplitID,
		BaseText:  baseText,
	}); err != nil {
		log.Error().Err(err).Str("message_id", msg.ID).Msg("Error registering split message")
		return RespondWithError(s, i, "Split posted, but acknowledgment tracking failed.")
	}

	return RespondWithEphemeralMessage(s, i, "Split posted!")
}

// handleSetRoom starts the room info dialogue
func (c *RoomSplitCommand) handleSetRoom(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.dialogueService.BeginRoomInfo(context.Background(), &dialogue.BeginRoomInfoInput{
		ChannelID: channelID,
	})
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Error starting room info dialogue")
		return RespondWithError(s, i, "Failed to start the room info dialogue.")
	}

	return RespondWithMessage(s, i, output.Prompt)
}

// handleGetRoom shows the stored room information
func (c *RoomSplitCommand) handleGetRoom(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.dialogueService.GetRoomInfo(context.Background(), &dialogue.GetRoomInfoInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, dialogue.ErrNoRoomInfo) {
			return RespondWithMessage(s, i, "No room information has been set. Use `/roomsplit setroom` first.")
		}
		log.Error().Err(err).Str("channel_id", channelID).Msg("Error getting room info")
		return RespondWithError(s, i, "Failed to load the room information.")
	}

	return RespondWithMessage(s, i, RenderRoomInfo(output.RoomInfo))
}

// handleSetRoommates starts the roommates dialogue
func (c *RoomSplitCommand) handleSetRoommates(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.dialogueService.BeginRoster(context.Background(), &dialogue.BeginRosterInput{
		ChannelID: channelID,
	})
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Error starting roommates dialogue")
		return RespondWithError(s, i, "Failed to start the roommates dialogue.")
	}

	return RespondWithMessage(s, i, output.Prompt)
}

// handleGetRoommates shows the stored roommate roster
func (c *RoomSplitCommand) handleGetRoommates(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.dialogueService.GetRoster(context.Background(), &dialogue.GetRosterInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, dialogue.ErrNoRoster) {
			return RespondWithMessage(s, i, "No roommates have been set. Use `/roomsplit setroommates` first.")
		}
		log.Error().Err(err).Str("channel_id", channelID).Msg("Error getting roster")
		return RespondWithError(s, i, "Failed to load the roommate roster.")
	}

	return RespondWithMessage(s, i, RenderRoster(output.Names))
}

// handleCurrency shows the currency symbol, or sets it when one was
// provided
func (c *RoomSplitCommand) handleCurrency(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	if len(options) > 0 {
		symbol := strings.TrimSpace(options[0].StringValue())
		if symbol == "" {
			return RespondWithError(s, i, "Currency symbol cannot be empty.")
		}

		output, err := c.splitService.SetCurrency(ctx, &split.SetCurrencyInput{
			ChannelID: channelID,
			Symbol:    symbol,
		})
		if err != nil {
			log.Error().Err(err).Str("channel_id", channelID).Msg("Error setting currency")
			return RespondWithError(s, i, "Failed to set the currency symbol.")
		}

		return RespondWithMessage(s, i, "Currency symbol set to "+output.Symbol)
	}

	output, err := c.splitService.GetCurrency(ctx, &split.GetCurrencyInput{
		ChannelID: channelID,
	})
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Error getting currency")
		return RespondWithError(s, i, "Failed to load the currency symbol.")
	}

	return RespondWithMessage(s, i, "Current currency symbol: "+output.Symbol)
}

// handleRemind posts a settle-up reminder
func (c *RoomSplitCommand) handleRemind(s *discordgo.Session, i *discordgo.InteractionCreate, channelID string) error {
	output, err := c.ackService.GetReminder(context.Background(), &ackservice.GetReminderInput{
		ChannelID: channelID,
	})
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Error building reminder")
		return RespondWithError(s, i, "Failed to build the reminder.")
	}

	return RespondWithMessage(s, i, output.Reminder)
}

// isSplitUserError reports whether a split error is the user's to fix
func isSplitUserError(err error) bool {
	for _, userErr := range []error{
		split.ErrUsage,
		split.ErrParse,
		split.ErrNameCountMismatch,
		split.ErrNightsCountMismatch,
		split.ErrRosterMismatch,
	} {
		if errors.Is(err, userErr) {
			return true
		}
	}
	// Calculator validation errors carry user-appropriate messages too
	return isAllocationError(err)
}

// isAllocationError reports whether an error is a calculator validation
// error
func isAllocationError(err error) bool {
	for _, allocErr := range []error{
		allocation.ErrInvalidTotalCost,
		allocation.ErrInvalidParticipantCount,
		allocation.ErrNightsMismatch,
		allocation.ErrNegativeNights,
		allocation.ErrZeroTotalNights,
	} {
		if errors.Is(err, allocErr) {
			return true
		}
	}
	return false
}
