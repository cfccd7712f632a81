package messaging

import (
	"github.com/KirkDiggler/shipcaptaincrew/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// Config contains configuration for the messaging service
type Config struct {
	// Seed picks messages deterministically; zero seeds from the clock
	Seed int64
}

// GetRollResultMessageInput contains the input for GetRollResultMessage
type GetRollResultMessageInput struct {
	PlayerNumber int

	// ShipCaptainCrewHeld is how many of ship, captain and crew are held
	ShipCaptainCrewHeld int

	// PotentialScore is what ending the turn now would add
	PotentialScore int

	RollsRemaining int
}

// GetRollResultMessageOutput contains the output for GetRollResultMessage
type GetRollResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetTurnResultMessageInput contains the input for GetTurnResultMessage
type GetTurnResultMessageInput struct {
	PlayerNumber int
	Points       int
}

// GetTurnResultMessageOutput contains the output for GetTurnResultMessage
type GetTurnResultMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetRoundResultMessageInput contains the input for GetRoundResultMessage
type GetRoundResultMessageInput struct {
	Result *models.RoundResult
}

// GetRoundResultMessageOutput contains the output for GetRoundResultMessage
type GetRoundResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the game service
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}
