package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Player names are an allow-list: letters, digits, underscores and spaces,
// 1-50 characters. Anything else is rejected rather than rewritten.
var playerNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_ ]+$`)

const maxPlayerNameLength = 50

func ValidatePlayerName(name string) error {
	if name == "" || len(name) > maxPlayerNameLength {
		return ErrInvalidPlayerName
	}
	if !playerNamePattern.MatchString(name) {
		return ErrInvalidPlayerName
	}
	return nil
}

func ValidateScore(score int64) error {
	if score < 0 {
		return ErrInvalidScore
	}
	return nil
}

type PlayerScore struct {
	ID         uuid.UUID `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	PlayerName string    `json:"player_name"`
	Score      int64     `json:"score"`
}
