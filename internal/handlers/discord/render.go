package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/strike/internal/models"
	"github.com/KirkDiggler/strike/internal/services/game"
	"github.com/KirkDiggler/strike/internal/services/messaging"
	"github.com/KirkDiggler/strike/internal/services/round"
	"github.com/KirkDiggler/strike/internal/services/stats"
	"github.com/bwmarrin/discordgo"
)

// leaderboardSize is how many rows a ranking shows before the caller's own row
const leaderboardSize = 10

// Embed colors
const (
	colorSuccess = 0x00ff00
	colorError   = 0xff0000
	colorInfo    = 0x3498db
)

// roundLines converts round entries into leaderboard rows, adding the caller's
// row when it falls below the visible part
func roundLines(entries []*models.RankedEntry, own *models.RankedEntry) []*messaging.LeaderboardLine {
	lines := make([]*messaging.LeaderboardLine, 0, leaderboardSize+1)
	ownShown := false
	for _, entry := range entries {
		if len(lines) == leaderboardSize {
			break
		}
		highlight := own != nil && entry.ID == own.ID
		ownShown = ownShown || highlight
		lines = append(lines, &messaging.LeaderboardLine{
			Rank:      entry.Rank,
			Name:      entry.Name,
			Score:     entry.Score,
			Highlight: highlight,
		})
	}

	if own != nil && !ownShown {
		lines = append(lines, &messaging.LeaderboardLine{
			Rank:      own.Rank,
			Name:      own.Name,
			Score:     own.Score,
			Highlight: true,
		})
	}

	return lines
}

// dailyLines converts cumulative standings into leaderboard rows
func dailyLines(standings []*models.RankedStanding, own *models.RankedStanding) []*messaging.LeaderboardLine {
	lines := make([]*messaging.LeaderboardLine, 0, leaderboardSize+1)
	ownShown := false
	for _, standing := range standings {
		if len(lines) == leaderboardSize {
			break
		}
		highlight := own != nil && standing.PlayerID == own.PlayerID
		ownShown = ownShown || highlight
		lines = append(lines, &messaging.LeaderboardLine{
			Rank:      standing.Rank,
			Name:      standing.PlayerName,
			Score:     standing.BestScore,
			Highlight: highlight,
		})
	}

	if own != nil && !ownShown {
		lines = append(lines, &messaging.LeaderboardLine{
			Rank:      own.Rank,
			Name:      own.PlayerName,
			Score:     own.BestScore,
			Highlight: true,
		})
	}

	return lines
}

// endsIn turns a time-left value into something a leaderboard can print
func endsIn(left time.Duration) time.Duration {
	if left == round.Unbounded || left == round.NoRoundOpen || left < 0 {
		return 0
	}
	return left
}

// errorType maps a game error to the message shown to the player
func errorType(err error) messaging.ErrorType {
	switch {
	case errors.Is(err, game.ErrRoundNotActive):
		return messaging.ErrorTypeRoundNotActive
	case errors.Is(err, game.ErrRoundOver):
		return messaging.ErrorTypeRoundOver
	case errors.Is(err, game.ErrAlreadyParticipated):
		return messaging.ErrorTypeAlreadyParticipated
	case errors.Is(err, game.ErrRoundAlreadyActive):
		return messaging.ErrorTypeRoundAlreadyActive
	case errors.Is(err, game.ErrInvalidWindow):
		return messaging.ErrorTypeInvalidWindow
	case errors.Is(err, game.ErrWindowPassed):
		return messaging.ErrorTypeWindowPassed
	case errors.Is(err, game.ErrInvalidDuration):
		return messaging.ErrorTypeInvalidDuration
	case errors.Is(err, game.ErrInvalidPrizeCount):
		return messaging.ErrorTypeInvalidPrizeCount
	default:
		return messaging.ErrorTypeUnknown
	}
}

// renderHelp lists the subcommands, including admin ones for admins
func renderHelp(admin bool) string {
	lines := []string{
		"**Bowling**",
		"",
		"`/bowling roll`: throw the balls.",
		"`/bowling round`: results of the current round.",
		"`/bowling leaders`: best results of the day.",
		"",
		"**Help**",
		"",
		"`/bowling help`: show this message again.",
		"`/bowling ask`: send a question to the admins.",
	}

	if admin {
		lines = append(lines,
			"",
			"**Admin commands**",
			"",
			"`/bowling launch`: open a round for a number of seconds.",
			"`/bowling window`: open a round from HH:MM to HH:MM today.",
			"`/bowling cancel`: drop a scheduled window.",
			"`/bowling close`: close the open round now.",
			"`/bowling prize`: set the number of prize places (default 5).",
			"`/bowling whoami`: show your account.",
			"`/bowling stats`: show bot statistics.",
		)
	}

	return strings.Join(lines, "\n")
}

// renderStats formats the runtime counters
func renderStats(summary *stats.Summary) string {
	if summary == nil || len(summary.Commands) == 0 {
		return "Nothing here yet."
	}

	lines := []string{
		fmt.Sprintf("- Requests since start: **%d**", summary.Requests),
		fmt.Sprintf("- Average response time: **%d** (ms)", summary.AverageResponse.Milliseconds()),
		fmt.Sprintf("- Users since start: **%d**", summary.UniqueUsers),
		fmt.Sprintf("- Uptime: %s", messaging.PrettyDuration(summary.Uptime)),
		"",
		"**Per command**",
		"",
	}

	for _, command := range summary.Commands {
		lines = append(lines,
			fmt.Sprintf("`%s`", command.Name),
			fmt.Sprintf("%d requests, %d avg resp time (ms)", command.Requests, command.AverageResponse.Milliseconds()),
			"",
		)
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// directMessage is one embed addressed to a user
type directMessage struct {
	UserID string
	Embed  *discordgo.MessageEmbed
}

// resultMessages builds the end-of-round messages: every participant gets
// the round-over text with the final ranking, winners also get their prize.
func resultMessages(ctx context.Context, messagingService messaging.Service, results *game.RoundResults) ([]*directMessage, error) {
	if results == nil || results.Round == nil {
		return nil, errors.New("results cannot be nil")
	}

	var messages []*directMessage
	total := len(results.Round.Entries)
	for _, entry := range results.Round.Entries {
		over, err := messagingService.GetRoundOverMessage(ctx, &messaging.GetRoundOverMessageInput{
			PlayerName:   entry.Name,
			Rank:         entry.Rank,
			Score:        entry.Score,
			Participants: total,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build round over message: %w", err)
		}

		board, err := messagingService.GetLeaderboardMessage(ctx, &messaging.GetLeaderboardMessageInput{
			Kind:  messaging.LeaderboardKindRound,
			Lines: roundLines(results.Round.Entries, entry),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build leaderboard message: %w", err)
		}

		messages = append(messages, &directMessage{
			UserID: entry.ID,
			Embed: &discordgo.MessageEmbed{
				Title:       over.Title,
				Description: over.Message,
				Color:       colorInfo,
				Fields: []*discordgo.MessageEmbedField{
					{Name: board.Title, Value: board.Message},
				},
			},
		})
	}

	for i, winner := range results.Winners {
		prize, err := messagingService.GetPrizeMessage(ctx, &messaging.GetPrizeMessageInput{
			PlayerName: winner.Name,
			Place:      i + 1,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build prize message: %w", err)
		}

		messages = append(messages, &directMessage{
			UserID: winner.ID,
			Embed: &discordgo.MessageEmbed{
				Title:       prize.Title,
				Description: prize.Message,
				Color:       colorSuccess,
			},
		})
	}

	return messages, nil
}
