package types

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// Error tags classify failures so the HTTP layer can map them to status codes
var (
	ErrTagValidation = goerr.NewTag("validation")
	ErrTagAuth       = goerr.NewTag("auth")
	ErrTagDelivery   = goerr.NewTag("delivery")
	ErrTagTransport  = goerr.NewTag("transport")
)

// snowflakePattern matches Discord's 17-19 digit numeric identifiers
var snowflakePattern = regexp.MustCompile(`^\d{17,19}$`)

// Snowflake represents a Discord user, guild or channel identifier
type Snowflake string

// String returns the string representation
func (s Snowflake) String() string {
	return string(s)
}

// Validate checks the 17-19 digit numeric shape
func (s Snowflake) Validate() error {
	if !snowflakePattern.MatchString(string(s)) {
		return goerr.New("invalid snowflake format",
			goerr.V("id", string(s)),
			goerr.T(ErrTagValidation))
	}
	return nil
}

// BotToken represents a Discord bot token
type BotToken string

// String returns the string representation
func (t BotToken) String() string {
	return string(t)
}

// LogValue masks the token in structured logs
func (t BotToken) LogValue() slog.Value {
	return slog.StringValue(fmt.Sprintf("[redacted:%d]", len(t)))
}

// Validate checks the token length bounds. Whether Discord actually
// accepts the token is the gateway client's job.
func (t BotToken) Validate() error {
	if len(t) < 50 || len(t) > 100 {
		return goerr.New("invalid bot token format",
			goerr.V("length", len(t)),
			goerr.T(ErrTagValidation))
	}
	return nil
}

// AttemptID represents a delivery attempt identifier
type AttemptID string

// String returns the string representation
func (id AttemptID) String() string {
	return string(id)
}

// NewAttemptID creates a new AttemptID
func NewAttemptID() AttemptID {
	return AttemptID(fmt.Sprintf("att-%s", uuid.New().String()))
}

// Outcome represents the result of a delivery attempt
type Outcome string

const (
	OutcomeSuccess Outcome = "sent"
	OutcomeFailure Outcome = "failed"
)

// String returns the string representation
func (o Outcome) String() string {
	return string(o)
}
