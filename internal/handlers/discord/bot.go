package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	ackservice "github.com/KirkDiggler/roomsplit/internal/services/ack"
	"github.com/KirkDiggler/roomsplit/internal/services/dialogue"
	"github.com/KirkDiggler/roomsplit/internal/services/split"
)

// Button IDs
const (
	ButtonAcknowledgeSplit = "acknowledge_split"
)

// Bot represents the Discord bot instance
type Bot struct {
	session         *discordgo.Session
	commands        map[string]CommandHandler
	commandIDs      map[string]string // Maps command name to command ID
	splitService    split.Service
	dialogueService dialogue.Service
	ackService      ackservice.Service
	config          *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Split service
	SplitService split.Service

	// Dialogue service
	DialogueService dialogue.Service

	// Acknowledgment service
	AckService ackservice.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.SplitService == nil {
		return nil, errors.New("split service cannot be nil")
	}

	if cfg.DialogueService == nil {
		return nil, errors.New("dialogue service cannot be nil")
	}

	if cfg.AckService == nil {
		return nil, errors.New("ack service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Dialogue replies arrive as plain messages
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	bot := &Bot{
		session:         session,
		commands:        make(map[string]CommandHandler),
		commandIDs:      make(map[string]string),
		splitService:    cfg.SplitService,
		dialogueService: cfg.DialogueService,
		ackService:      cfg.AckService,
		config:          cfg,
	}

	session.AddHandler(bot.handleInteraction)
	session.AddHandler(bot.handleMessageCreate)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	// Register the roomsplit command
	roomSplitCmd := NewRoomSplitCommand(b.splitService, b.dialogueService, b.ackService)
	if err := b.RegisterCommand(roomSplitCmd); err != nil {
		return fmt.Errorf("failed to register roomsplit command: %w", err)
	}

	log.Info().Msg("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Error().Err(err).Str("command", cmdName).Msg("Failed to delete command")
		} else {
			log.Info().Str("command", cmdName).Msg("Deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		log.Info().Str("command", cmd.GetName()).Str("guild", b.config.GuildID).Msg("Registering guild command")
	} else {
		log.Info().Str("command", cmd.GetName()).Msg("Registering global command")
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Error().Err(err).Str("command", i.ApplicationCommandData().Name).Msg("Error handling command")
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and other components
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Error().Err(err).Msg("Error handling component interaction")
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	switch customID {
	case ButtonAcknowledgeSplit:
		return b.handleAcknowledgeButton(s, i)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
}

// handleAcknowledgeButton handles a tap on the acknowledge button. A
// first tap re-renders the split message with the updated footer; a
// repeat tap gets an ephemeral notice and leaves the message alone.
func (b *Bot) handleAcknowledgeButton(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	userID := i.Member.User.ID
	displayName := i.Member.User.Username
	if i.Member.Nick != "" {
		displayName = i.Member.Nick
	}

	output, err := b.ackService.Acknowledge(ctx, &ackservice.AcknowledgeInput{
		MessageID:   i.Message.ID,
		UserID:      userID,
		DisplayName: displayName,
	})
	if err != nil {
		log.Error().Err(err).Str("message_id", i.Message.ID).Msg("Error acknowledging split")
		return RespondWithEphemeralMessage(s, i, "Failed to record your acknowledgment. Please try again.")
	}

	if !output.Added {
		return RespondWithEphemeralMessage(s, i, "You've already acknowledged this split.")
	}

	// Re-render the split message in place, keeping the button
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    output.UpdatedText,
			Components: []discordgo.MessageComponent{acknowledgeButtonRow()},
		},
	})
}

// handleMessageCreate feeds freeform channel messages to any pending
// dialogue. Messages are ignored when nothing is pending.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore our own messages
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	ctx := context.Background()

	output, err := b.dialogueService.HandleReply(ctx, &dialogue.HandleReplyInput{
		ChannelID: m.ChannelID,
		Text:      m.Content,
	})
	if err != nil {
		if errors.Is(err, dialogue.ErrRoomInfoFormat) || errors.Is(err, dialogue.ErrEmptyRoster) {
			if _, sendErr := s.ChannelMessageSend(m.ChannelID, err.Error()); sendErr != nil {
				log.Error().Err(sendErr).Str("channel_id", m.ChannelID).Msg("Error sending dialogue reply")
			}
			return
		}
		log.Error().Err(err).Str("channel_id", m.ChannelID).Msg("Error handling dialogue reply")
		return
	}

	if !output.Handled {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, output.Reply); err != nil {
		log.Error().Err(err).Str("channel_id", m.ChannelID).Msg("Error sending dialogue confirmation")
	}
}

// acknowledgeButtonRow builds the action row attached to every split
// summary message
func acknowledgeButtonRow() discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Acknowledge",
				Style:    discordgo.SuccessButton,
				CustomID: ButtonAcknowledgeSplit,
				Emoji: &discordgo.ComponentEmoji{
					Name: "✅",
				},
			},
		},
	}
}
