package usecase

import (
	"context"

	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
)

// EmitFunc receives one delivery attempt as soon as it is produced.
// Returning an error signals that the consumer is gone and the job
// should be abandoned.
type EmitFunc func(attempt *model.DeliveryAttempt) error

// SendUseCase defines the interface for message delivery operations
type SendUseCase interface {
	// ValidateToken checks the token against the Discord API
	ValidateToken(ctx context.Context, token types.BotToken) (bool, error)

	// SendDirect delivers one message to one recipient and returns the
	// recorded attempt. The returned error is non-nil only for
	// validation and authentication failures.
	SendDirect(ctx context.Context, req *model.DMRequest) (*model.DeliveryAttempt, error)

	// SendBulk runs the sequential bulk pipeline, emitting one attempt
	// per recipient in input order
	SendBulk(ctx context.Context, req *model.BulkDMRequest, emit EmitFunc) error
}

// DirectoryUseCase defines the interface for read-only projections used
// by the recipient picker and the history view
type DirectoryUseCase interface {
	// ListGuilds returns the guilds the bot belongs to
	ListGuilds(ctx context.Context, token types.BotToken) ([]*model.Guild, error)

	// ListGuildMembers returns non-bot members of one guild
	ListGuildMembers(ctx context.Context, token types.BotToken, guildID types.Snowflake) ([]*model.GuildMember, error)

	// History returns logged attempts for one recipient, newest first
	History(ctx context.Context, token types.BotToken, userID types.Snowflake, limit int) ([]*model.DeliveryAttempt, error)
}
