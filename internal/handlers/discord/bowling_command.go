package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/strike/internal/services/game"
	"github.com/KirkDiggler/strike/internal/services/messaging"
	"github.com/KirkDiggler/strike/internal/services/stats"
	"github.com/bwmarrin/discordgo"
)

// Subcommand names
const (
	subcommandRoll    = "roll"
	subcommandRound   = "round"
	subcommandLeaders = "leaders"
	subcommandHelp    = "help"
	subcommandAsk     = "ask"
	subcommandWhoami  = "whoami"
	subcommandLaunch  = "launch"
	subcommandWindow  = "window"
	subcommandCancel  = "cancel"
	subcommandPrize   = "prize"
	subcommandClose   = "close"
	subcommandStats   = "stats"
)

// BowlingCommandConfig holds the dependencies of the bowling command
type BowlingCommandConfig struct {
	GameService      game.Service
	MessagingService messaging.Service
	Tracker          *stats.Tracker

	// AdminIDs are the users allowed to run admin subcommands
	AdminIDs []string

	// Send delivers a direct text message to a user
	Send func(userID, text string) error
}

// BowlingCommand handles the /bowling command
type BowlingCommand struct {
	BaseCommand
	gameService      game.Service
	messagingService messaging.Service
	tracker          *stats.Tracker
	admins           adminSet
	send             func(userID, text string) error
}

// NewBowlingCommand creates a new bowling command handler
func NewBowlingCommand(cfg *BowlingCommandConfig) *BowlingCommand {
	minSeconds := 1.0
	minPrizes := 0.0

	return &BowlingCommand{
		BaseCommand: BaseCommand{
			Name:        "bowling",
			Description: "Roll three balls, the product of the pins is your score",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandRoll,
					Description: "Throw the balls, once per round",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandRound,
					Description: "Show the results of the current round",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandLeaders,
					Description: "Show the best results of the day",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandHelp,
					Description: "List the available commands",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandAsk,
					Description: "Send a question to the admins",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "question",
							Description: "Your question",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandWhoami,
					Description: "Show your account (admin)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandLaunch,
					Description: "Open a round for a number of seconds (admin)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "seconds",
							Description: "How long the round stays open",
							Required:    true,
							MinValue:    &minSeconds,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandWindow,
					Description: "Open a round from HH:MM to HH:MM today (admin)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "window",
							Description: "For example 18:00-20:30",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandCancel,
					Description: "Drop a scheduled window (admin)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandPrize,
					Description: "Set the number of prize places (admin)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "count",
							Description: "Number of prize places",
							Required:    true,
							MinValue:    &minPrizes,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandClose,
					Description: "Close the open round now (admin)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandStats,
					Description: "Show bot statistics (admin)",
				},
			},
		},
		gameService:      cfg.GameService,
		messagingService: cfg.MessagingService,
		tracker:          cfg.Tracker,
		admins:           newAdminSet(cfg.AdminIDs),
		send:             cfg.Send,
	}
}

// isAdminOnly reports whether a subcommand needs admin rights
func isAdminOnly(subcommand string) bool {
	switch subcommand {
	case subcommandWhoami, subcommandLaunch, subcommandWindow, subcommandCancel,
		subcommandPrize, subcommandClose, subcommandStats:
		return true
	}
	return false
}

// Handle processes a Discord interaction for the bowling command
func (c *BowlingCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, username := interactionUser(i)
	sub := data.Options[0]

	done := c.tracker.Track(sub.Name, userID)
	defer done()

	ctx := context.Background()

	if isAdminOnly(sub.Name) && !c.admins.has(userID) {
		return c.respondError(ctx, s, i, messaging.ErrorTypeNotAdmin, username)
	}

	switch sub.Name {
	case subcommandRoll:
		return c.handleRoll(ctx, s, i, userID, username)
	case subcommandRound:
		return c.handleRound(ctx, s, i, userID)
	case subcommandLeaders:
		return c.handleLeaders(ctx, s, i, userID)
	case subcommandHelp:
		return RespondWithEphemeralEmbed(s, i, "Help", renderHelp(c.admins.has(userID)))
	case subcommandAsk:
		return c.handleAsk(s, i, userID, username, optionString(sub, "question"))
	case subcommandWhoami:
		return c.handleWhoami(s, i, userID, username)
	case subcommandLaunch:
		return c.handleLaunch(ctx, s, i, username, optionInt(sub, "seconds"))
	case subcommandWindow:
		return c.handleWindow(ctx, s, i, username, optionString(sub, "window"))
	case subcommandCancel:
		return c.handleCancel(ctx, s, i)
	case subcommandPrize:
		return c.handlePrize(ctx, s, i, username, optionInt(sub, "count"))
	case subcommandClose:
		return c.handleClose(ctx, s, i)
	case subcommandStats:
		return RespondWithEphemeralEmbed(s, i, "Bot statistics", renderStats(c.tracker.Summary()))
	default:
		return errors.New("unknown subcommand")
	}
}

// handleRoll handles the roll subcommand
func (c *BowlingCommand) handleRoll(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	output, err := c.gameService.Roll(ctx, &game.RollInput{
		PlayerID:   userID,
		PlayerName: username,
	})
	if err != nil {
		return c.respondGameError(ctx, s, i, err, username)
	}

	msg, err := c.messagingService.GetRollResultMessage(ctx, &messaging.GetRollResultMessageInput{
		PlayerName: username,
		Throws:     output.Throws,
		Score:      output.Score,
		Rank:       output.Rank,
	})
	if err != nil {
		log.Printf("Failed to build roll message: %v", err)
		return RespondWithMessage(s, i, fmt.Sprintf("Your score: %d", output.Score))
	}

	return RespondWithEmbed(s, i, msg.Title, msg.Message+"\n\nSee the round results: `/bowling round`", nil)
}

// handleRound handles the round subcommand
func (c *BowlingCommand) handleRound(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.gameService.GetRoundLeaders(ctx, &game.GetRoundLeadersInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondGameError(ctx, s, i, err, "")
	}

	if !output.Active {
		return c.respondError(ctx, s, i, messaging.ErrorTypeRoundNotActive, "")
	}

	msg, err := c.messagingService.GetLeaderboardMessage(ctx, &messaging.GetLeaderboardMessageInput{
		Kind:   messaging.LeaderboardKindRound,
		Lines:  roundLines(output.Entries, output.Own),
		EndsIn: endsIn(output.TimeLeft),
	})
	if err != nil {
		return fmt.Errorf("failed to build leaderboard: %w", err)
	}

	return RespondWithEmbed(s, i, msg.Title, msg.Message, nil)
}

// handleLeaders handles the leaders subcommand
func (c *BowlingCommand) handleLeaders(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.gameService.GetDailyLeaders(ctx, &game.GetDailyLeadersInput{
		PlayerID: userID,
	})
	if err != nil {
		return c.respondGameError(ctx, s, i, err, "")
	}

	msg, err := c.messagingService.GetLeaderboardMessage(ctx, &messaging.GetLeaderboardMessageInput{
		Kind:   messaging.LeaderboardKindDaily,
		Lines:  dailyLines(output.Standings, output.Own),
		EndsIn: endsIn(output.TimeLeft),
	})
	if err != nil {
		return fmt.Errorf("failed to build leaderboard: %w", err)
	}

	return RespondWithEmbed(s, i, msg.Title, msg.Message, nil)
}

// handleAsk forwards a question to every admin
func (c *BowlingCommand) handleAsk(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username, question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return RespondWithEphemeralMessage(s, i, "Type your question after the command: `/bowling ask question: ...`")
	}

	if err := RespondWithEphemeralMessage(s, i, "Your question was passed to the admins, expect an answer!"); err != nil {
		return err
	}

	text := fmt.Sprintf("Question from %s (%s): %s", username, userID, question)
	for _, adminID := range c.admins.list() {
		if err := c.send(adminID, text); err != nil {
			log.Printf("Failed to forward question to admin %s: %v", adminID, err)
		}
	}

	return nil
}

// handleWhoami handles the whoami subcommand
func (c *BowlingCommand) handleWhoami(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	lines := []string{
		fmt.Sprintf("Name: `%s`", username),
		fmt.Sprintf("User ID: `%s`", userID),
		fmt.Sprintf("Channel ID: `%s`", i.ChannelID),
	}
	return RespondWithEphemeralEmbed(s, i, "Account info", strings.Join(lines, "\n"))
}

// handleLaunch opens a round for a number of seconds
func (c *BowlingCommand) handleLaunch(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, username string, seconds int64) error {
	output, err := c.gameService.StartRound(ctx, &game.StartRoundInput{
		Duration: time.Duration(seconds) * time.Second,
	})
	if err != nil {
		return c.respondGameError(ctx, s, i, err, username)
	}

	return RespondWithEmbed(s, i, "Round started",
		fmt.Sprintf("The round is open for %s.", messaging.PrettyDuration(output.Deadline.Sub(output.OpenedAt))), nil)
}

// handleWindow schedules a round for an HH:MM-HH:MM window
func (c *BowlingCommand) handleWindow(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, username, window string) error {
	output, err := c.gameService.ScheduleRound(ctx, &game.ScheduleRoundInput{
		Window: window,
	})
	if err != nil {
		return c.respondGameError(ctx, s, i, err, username)
	}

	var message string
	if output.OpenedNow {
		message = fmt.Sprintf("The round is open until %s.", output.Stop.Format("15:04"))
	} else {
		message = fmt.Sprintf("The round will run from %s to %s.", output.Start.Format("15:04"), output.Stop.Format("15:04"))
		if output.Replaced {
			message += "\nThe previously scheduled window was dropped."
		}
	}

	return RespondWithEmbed(s, i, "Round scheduled", message, nil)
}

// handleCancel drops a scheduled window
func (c *BowlingCommand) handleCancel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.gameService.CancelSchedule(ctx, &game.CancelScheduleInput{})
	if err != nil {
		return c.respondGameError(ctx, s, i, err, "")
	}

	if !output.Cancelled {
		return RespondWithEphemeralMessage(s, i, "No window was scheduled.")
	}
	return RespondWithMessage(s, i, "The scheduled window was cancelled.")
}

// handlePrize sets the number of prize places
func (c *BowlingCommand) handlePrize(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, username string, count int64) error {
	output, err := c.gameService.SetPrizeCount(ctx, &game.SetPrizeCountInput{
		Count: int(count),
	})
	if err != nil {
		return c.respondGameError(ctx, s, i, err, username)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Prize places: %d", output.Count))
}

// handleClose closes the open round early
func (c *BowlingCommand) handleClose(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.gameService.CloseRound(ctx, &game.CloseRoundInput{})
	if err != nil {
		return c.respondGameError(ctx, s, i, err, "")
	}

	if output.AlreadyClosed {
		return RespondWithEphemeralMessage(s, i, "No round is open.")
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Round closed with %d participants. Results are on their way.",
		len(output.Round.Entries)))
}

// respondGameError renders a game error for the player
func (c *BowlingCommand) respondGameError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error, username string) error {
	kind := errorType(err)
	if kind == messaging.ErrorTypeUnknown {
		log.Printf("Error handling bowling command: %v", err)
	}
	return c.respondError(ctx, s, i, kind, username)
}

func (c *BowlingCommand) respondError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, kind messaging.ErrorType, username string) error {
	msg, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		ErrorType:  kind,
		PlayerName: username,
	})
	if err != nil {
		return RespondWithError(s, i, "", "Something went wrong.")
	}
	return RespondWithError(s, i, msg.Title, msg.Message)
}

func optionString(sub *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

func optionInt(sub *discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	for _, opt := range sub.Options {
		if opt.Name == name {
			return opt.IntValue()
		}
	}
	return 0
}
