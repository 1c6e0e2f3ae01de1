package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/notify-lab/herald/pkg/domain/types"
)

// Request payload bounds, mirroring the Discord API limits
const (
	MaxMessageLength = 2000
	MaxDelaySeconds  = 10
)

// ValidateTokenRequest is the payload for token validation, guild
// listing and history queries
type ValidateTokenRequest struct {
	Token types.BotToken `json:"token"`
}

// Validate checks the token shape
func (r *ValidateTokenRequest) Validate() error {
	return r.Token.Validate()
}

// DMRequest is the payload for a single direct message send
type DMRequest struct {
	Token   types.BotToken  `json:"token"`
	UserID  types.Snowflake `json:"userId"`
	Message string          `json:"message"`
}

// Validate checks all fields before any network activity
func (r *DMRequest) Validate() error {
	if err := r.Token.Validate(); err != nil {
		return err
	}
	if err := r.UserID.Validate(); err != nil {
		return err
	}
	return validateMessage(r.Message)
}

// BulkDMRequest is the payload for a bulk send job
type BulkDMRequest struct {
	Token   types.BotToken    `json:"token"`
	UserIDs []types.Snowflake `json:"userIds"`
	Message string            `json:"message"`
	Delay   int               `json:"delay"`
}

// Validate checks every field, including every recipient ID. A single
// malformed ID rejects the whole job before any attempt is made.
func (r *BulkDMRequest) Validate() error {
	if err := r.Token.Validate(); err != nil {
		return err
	}
	if len(r.UserIDs) == 0 {
		return goerr.New("at least one recipient is required",
			goerr.T(types.ErrTagValidation))
	}
	for _, id := range r.UserIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	if err := validateMessage(r.Message); err != nil {
		return err
	}
	if r.Delay < 0 || r.Delay > MaxDelaySeconds {
		return goerr.New("delay out of range",
			goerr.V("delay", r.Delay),
			goerr.V("max", MaxDelaySeconds),
			goerr.T(types.ErrTagValidation))
	}
	return nil
}

// GuildMembersRequest is the payload for listing members of one guild
type GuildMembersRequest struct {
	Token   types.BotToken  `json:"token"`
	GuildID types.Snowflake `json:"guildId"`
}

// Validate checks the token and guild ID shapes
func (r *GuildMembersRequest) Validate() error {
	if err := r.Token.Validate(); err != nil {
		return err
	}
	return r.GuildID.Validate()
}

// HistoryRequest is the payload for querying logged attempts of one recipient
type HistoryRequest struct {
	Token  types.BotToken  `json:"token"`
	UserID types.Snowflake `json:"userId"`
}

// Validate checks the token and user ID shapes
func (r *HistoryRequest) Validate() error {
	if err := r.Token.Validate(); err != nil {
		return err
	}
	return r.UserID.Validate()
}

func validateMessage(msg string) error {
	if msg == "" {
		return goerr.New("message must not be empty",
			goerr.T(types.ErrTagValidation))
	}
	if len([]rune(msg)) > MaxMessageLength {
		return goerr.New("message exceeds maximum length",
			goerr.V("length", len([]rune(msg))),
			goerr.V("max", MaxMessageLength),
			goerr.T(types.ErrTagValidation))
	}
	return nil
}
