package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/notify-lab/herald/pkg/domain/interfaces"
	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
)

const defaultHistoryLimit = 100

// Directory implements DirectoryUseCase
type Directory struct {
	client interfaces.DiscordClient
	repo   interfaces.Repository
}

// NewDirectory creates a new Directory use case
func NewDirectory(client interfaces.DiscordClient, repo interfaces.Repository) DirectoryUseCase {
	return &Directory{
		client: client,
		repo:   repo,
	}
}

// ListGuilds returns the guilds the bot belongs to
func (d *Directory) ListGuilds(ctx context.Context, token types.BotToken) ([]*model.Guild, error) {
	if err := d.authorize(ctx, token); err != nil {
		return nil, err
	}
	return d.client.ListGuilds(ctx, token)
}

// ListGuildMembers returns non-bot members of one guild
func (d *Directory) ListGuildMembers(ctx context.Context, token types.BotToken, guildID types.Snowflake) ([]*model.GuildMember, error) {
	if err := d.authorize(ctx, token); err != nil {
		return nil, err
	}
	if err := guildID.Validate(); err != nil {
		return nil, err
	}
	return d.client.ListGuildMembers(ctx, token, guildID)
}

// History returns logged attempts for one recipient, newest first
func (d *Directory) History(ctx context.Context, token types.BotToken, userID types.Snowflake, limit int) ([]*model.DeliveryAttempt, error) {
	if err := d.authorize(ctx, token); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return d.repo.ListAttempts(ctx, userID, limit)
}

// authorize checks the token shape and confirms it with Discord
func (d *Directory) authorize(ctx context.Context, token types.BotToken) error {
	if err := token.Validate(); err != nil {
		return err
	}
	valid, err := d.client.ValidateToken(ctx, token)
	if err != nil {
		return goerr.Wrap(err, "token validation failed",
			goerr.T(types.ErrTagTransport))
	}
	if !valid {
		return goerr.Wrap(model.ErrInvalidToken, "request rejected")
	}
	return nil
}
