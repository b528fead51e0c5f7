package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/strike/internal/services/game"
	"github.com/KirkDiggler/strike/internal/services/messaging"
	"github.com/KirkDiggler/strike/internal/services/stats"
	"github.com/bwmarrin/discordgo"
)

var _ game.Announcer = (*Bot)(nil)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	gameService      game.Service
	messagingService messaging.Service
	tracker          *stats.Tracker
	admins           adminSet
	config           *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// AdminIDs are the users allowed to run admin subcommands
	AdminIDs []string

	// Optional channel where round openings are posted
	AnnounceChannelID string

	// Service dependencies
	GameService      game.Service
	MessagingService messaging.Service
	Tracker          *stats.Tracker
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Tracker == nil {
		return nil, errors.New("tracker cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

	bot := &Bot{
		session:          session,
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		tracker:          cfg.Tracker,
		admins:           newAdminSet(cfg.AdminIDs),
		config:           cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	bowlingCmd := NewBowlingCommand(&BowlingCommandConfig{
		GameService:      b.gameService,
		MessagingService: b.messagingService,
		Tracker:          b.tracker,
		AdminIDs:         b.config.AdminIDs,
		Send:             b.sendDirectText,
	})
	if err := b.RegisterCommand(bowlingCmd); err != nil {
		return fmt.Errorf("failed to register bowling command: %w", err)
	}

	b.gameService.RegisterAnnouncer(b)

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.applicationID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.applicationID()

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
		}
	}
}

// AnnounceRoundOpened posts the opening to the announce channel
func (b *Bot) AnnounceRoundOpened(ctx context.Context, opening *game.RoundOpening) error {
	if opening == nil {
		return errors.New("opening cannot be nil")
	}

	if b.config.AnnounceChannelID == "" {
		log.Printf("Round %s opened, no announce channel configured", opening.RoundID)
		return nil
	}

	msg, err := b.messagingService.GetRoundOpenedMessage(ctx, &messaging.GetRoundOpenedMessageInput{
		OpenedAt:  opening.OpenedAt,
		Deadline:  opening.Deadline,
		Scheduled: opening.Scheduled,
	})
	if err != nil {
		return fmt.Errorf("failed to build round opened message: %w", err)
	}

	_, err = b.session.ChannelMessageSendEmbed(b.config.AnnounceChannelID, &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Message,
		Color:       colorSuccess,
	})
	if err != nil {
		return fmt.Errorf("failed to post round opening: %w", err)
	}

	return nil
}

// AnnounceRoundResults sends every participant the final standings and
// congratulates the winners. Delivery runs in the background and failures
// for one user do not stop the others.
func (b *Bot) AnnounceRoundResults(ctx context.Context, results *game.RoundResults) error {
	messages, err := resultMessages(ctx, b.messagingService, results)
	if err != nil {
		return err
	}

	go func() {
		for _, msg := range messages {
			if err := b.sendDirectEmbed(msg.UserID, msg.Embed); err != nil {
				log.Printf("Failed to message %s about round %s: %v", msg.UserID, results.Round.ID, err)
			}
		}
	}()

	return nil
}

func (b *Bot) sendDirectEmbed(userID string, embed *discordgo.MessageEmbed) error {
	channel, err := b.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	if _, err := b.session.ChannelMessageSendEmbed(channel.ID, embed); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}

	return nil
}

func (b *Bot) sendDirectText(userID, text string) error {
	channel, err := b.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	if _, err := b.session.ChannelMessageSend(channel.ID, text); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}

	return nil
}
