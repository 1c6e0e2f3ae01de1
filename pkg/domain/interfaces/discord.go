package interfaces

//go:generate moq -out mocks/discord_mock.go -pkg mocks . DiscordClient

import (
	"context"

	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
)

// DiscordClient wraps the outbound Discord REST API calls. Every
// operation takes the bot token explicitly; no client-side state is
// kept between calls and nothing retries internally.
type DiscordClient interface {
	// ValidateToken returns true only when Discord accepts the token
	// and the account is flagged as a bot. Network errors and non-bot
	// accounts yield (false, nil), never an error.
	ValidateToken(ctx context.Context, token types.BotToken) (bool, error)

	// ResolveUser returns (nil, nil) when Discord reports the user as
	// not found. Any other failure is returned as an error.
	ResolveUser(ctx context.Context, token types.BotToken, userID types.Snowflake) (*model.UserInfo, error)

	// SendDirectMessage opens a DM channel for the recipient and posts
	// the content to it. The returned error carries the Discord API
	// message text when available, the HTTP status line otherwise.
	SendDirectMessage(ctx context.Context, token types.BotToken, userID types.Snowflake, content string) error

	// ListGuilds returns the guilds the bot is a member of
	ListGuilds(ctx context.Context, token types.BotToken) ([]*model.Guild, error)

	// ListGuildMembers returns non-bot members of a guild
	ListGuildMembers(ctx context.Context, token types.BotToken, guildID types.Snowflake) ([]*model.GuildMember, error)
}
