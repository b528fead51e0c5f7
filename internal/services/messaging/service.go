package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// perfectScore is three strikes of six pins
const perfectScore = 216

// service implements the Service interface
type service struct {
	location *time.Location

	// Random number generator for selecting random messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	location := config.Location
	if location == nil {
		location = time.Local
	}

	return &service{
		location: location,
		rand:     rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetRollResultMessage returns a message for a player's roll
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	throws := make([]string, 0, len(input.Throws))
	for _, pins := range input.Throws {
		throws = append(throws, strconv.Itoa(pins))
	}

	var comments []string
	switch {
	case input.Score >= perfectScore:
		comments = []string{
			"Three strikes! The lane is still shaking.",
			"Perfect game energy. Nobody is touching that.",
			"STRIKE, STRIKE, STRIKE! Frame it and hang it on the wall.",
		}
	case input.Score >= 100:
		comments = []string{
			"Big numbers! The pins never stood a chance.",
			"That's a serious throw. Keep an eye on the leaderboard.",
			"Now we're bowling!",
		}
	case input.Score <= 8:
		comments = []string{
			"Gutter vibes. There's always the next round.",
			"The pins are laughing, but only a little.",
			"Well, at least the ball reached the end of the lane.",
		}
	default:
		comments = []string{
			"Solid roll. Let's see if it holds up.",
			"Not bad at all! The round isn't over yet.",
			"Respectable. The pins felt that one.",
		}
	}

	lines := []string{
		fmt.Sprintf("🎳 %s = **%d**", strings.Join(throws, " × "), input.Score),
		s.pick(comments),
		"",
		fmt.Sprintf("Right now you are in position **%d**.", input.Rank),
		"See the round standings with `/bowling round`.",
	}

	return &GetRollResultMessageOutput{
		Title:   fmt.Sprintf("Your score: %d", input.Score),
		Message: strings.Join(lines, "\n"),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var title string
	var messages []string

	// Select messages based on error type
	switch input.ErrorType {
	case ErrorTypeRoundNotActive:
		title = "The game hasn't started yet!"
		messages = []string{
			"No round is open right now. Wait for an admin to open the lanes.",
			"The lanes are closed. Keep your bowling shoes on and check back soon.",
		}
	case ErrorTypeRoundOver:
		title = "Round over!"
		messages = []string{
			"Unfortunately you didn't make it in time for this round.",
			"The buzzer already went off. Catch the next round!",
		}
	case ErrorTypeAlreadyParticipated:
		title = "You already took part!"
		messages = []string{
			"One roll per round. Your score is locked in.",
			"Nice try, but the pins remember you. One roll per round.",
		}
	case ErrorTypeRoundAlreadyActive:
		title = "A round is already running"
		messages = []string{
			"Close the current round before opening another one.",
		}
	case ErrorTypeInvalidWindow:
		title = "Invalid window"
		messages = []string{
			"Use the format `HH:MM-HH:MM`, for example `18:00-20:30`. The end must come after the start.",
		}
	case ErrorTypeWindowPassed:
		title = "Window already over"
		messages = []string{
			"That window already ended today. Pick a later one.",
		}
	case ErrorTypeInvalidDuration:
		title = "Invalid duration"
		messages = []string{
			"The round needs to last at least one second.",
		}
	case ErrorTypeInvalidPrizeCount:
		title = "Invalid prize count"
		messages = []string{
			"The number of prize places cannot be negative.",
		}
	case ErrorTypeNotAdmin:
		title = "Admins only"
		messages = []string{
			"This command is reserved for the bowling alley staff.",
		}
	default:
		title = "Something went wrong"
		messages = []string{
			"The pinsetter jammed. Please try again in a moment.",
			"Something went wrong on our side. Try again shortly.",
		}
	}

	message := s.pick(messages)
	if input.PlayerName != "" && input.ErrorType != ErrorTypeUnknown {
		message = fmt.Sprintf("%s, %s", input.PlayerName, lowerFirst(message))
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetRoundOpenedMessage returns the announcement of a new round
func (s *service) GetRoundOpenedMessage(ctx context.Context, input *GetRoundOpenedMessageInput) (*GetRoundOpenedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var when string
	switch {
	case input.Deadline.IsZero():
		when = "The round stays open until an admin closes it."
	case input.Scheduled:
		when = fmt.Sprintf("The round runs from %s to %s.",
			input.OpenedAt.In(s.location).Format("15:04"),
			input.Deadline.In(s.location).Format("15:04"))
	default:
		when = fmt.Sprintf("The round is open for %s.", PrettyDuration(input.Deadline.Sub(input.OpenedAt)))
	}

	lines := []string{
		when,
		"Every player gets one roll. The higher the **product** of your pins, the better.",
		"Roll with `/bowling roll`.",
	}

	return &GetRoundOpenedMessageOutput{
		Title:   "🎳 The lanes are open!",
		Message: strings.Join(lines, "\n"),
	}, nil
}

// GetRoundOverMessage returns the message sent to each participant when a round ends
func (s *service) GetRoundOverMessage(ctx context.Context, input *GetRoundOverMessageInput) (*GetRoundOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lines := []string{"Thanks for playing!"}
	if input.Rank > 0 {
		lines = append(lines, fmt.Sprintf("You finished **%d** of %d with a score of **%d**.",
			input.Rank, input.Participants, input.Score))
	}

	return &GetRoundOverMessageOutput{
		Title:   "Round over!",
		Message: strings.Join(lines, "\n"),
	}, nil
}

// GetPrizeMessage returns the congratulation sent to a prize winner
func (s *service) GetPrizeMessage(ctx context.Context, input *GetPrizeMessageInput) (*GetPrizeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Place < 1 {
		return nil, fmt.Errorf("invalid prize place %d", input.Place)
	}

	return &GetPrizeMessageOutput{
		Title: fmt.Sprintf("Congratulations! You took place %d!", input.Place),
		Message: s.pick([]string{
			"To claim your prize, contact a community administrator.",
			"Your prize is waiting. Contact a community administrator to claim it.",
		}),
	}, nil
}

// GetLeaderboardMessage returns a rendered ranking. The top three are bold.
func (s *service) GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title := "Round results"
	if input.Kind == LeaderboardKindDaily {
		title = "Best results of the day"
	}

	if len(input.Lines) == 0 {
		return &GetLeaderboardMessageOutput{
			Title:   title,
			Message: "Nothing here yet.",
		}, nil
	}

	lines := make([]string, 0, len(input.Lines)+2)
	for _, line := range input.Lines {
		rank := strconv.Itoa(line.Rank)
		if line.Rank <= 3 {
			rank = "**" + rank + "**"
		}

		row := fmt.Sprintf("%s. %s: %d", rank, line.Name, line.Score)
		if line.Highlight {
			row += " ⬅️"
		}
		lines = append(lines, row)
	}

	if input.EndsIn > 0 {
		lines = append(lines, "", fmt.Sprintf("The round ends in: %s", PrettyDuration(input.EndsIn)))
	}

	return &GetLeaderboardMessageOutput{
		Title:   title,
		Message: strings.Join(lines, "\n"),
	}, nil
}

func lowerFirst(message string) string {
	if message == "" {
		return message
	}
	return strings.ToLower(message[:1]) + message[1:]
}
