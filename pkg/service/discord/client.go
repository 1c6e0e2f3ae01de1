// Package discord wraps the outbound Discord REST API calls behind the
// interfaces.DiscordClient contract. A short-lived REST-only session is
// built per call from the request's bot token; the websocket gateway is
// never opened.
package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/notify-lab/herald/pkg/domain/interfaces"
	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
)

const (
	defaultTimeout  = 30 * time.Second
	guildPageSize   = 200
	memberPageLimit = 1000
)

// Client implements interfaces.DiscordClient on top of discordgo
type Client struct {
	timeout time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// New creates a new Discord gateway client
func New(opts ...Option) interfaces.DiscordClient {
	c := &Client{
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// session builds a REST-only discordgo session for one token
func (c *Client) session(token types.BotToken) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create discord session",
			goerr.T(types.ErrTagTransport))
	}
	s.Client = &http.Client{Timeout: c.timeout}
	return s, nil
}

// ValidateToken checks the token against /users/@me and confirms the
// account is a bot. Any failure yields false, never an error.
func (c *Client) ValidateToken(ctx context.Context, token types.BotToken) (bool, error) {
	s, err := c.session(token)
	if err != nil {
		return false, nil
	}

	me, err := s.User("@me", discordgo.WithContext(ctx))
	if err != nil {
		ctxlog.From(ctx).Debug("token validation rejected", "error", err)
		return false, nil
	}

	return me.Bot, nil
}

// ResolveUser fetches a user profile. Returns (nil, nil) when Discord
// reports the user as not found.
func (c *Client) ResolveUser(ctx context.Context, token types.BotToken, userID types.Snowflake) (*model.UserInfo, error) {
	s, err := c.session(token)
	if err != nil {
		return nil, err
	}

	u, err := s.User(userID.String(), discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to fetch discord user",
			goerr.V("userID", userID),
			goerr.T(types.ErrTagTransport))
	}

	return &model.UserInfo{
		ID:            types.Snowflake(u.ID),
		Username:      u.Username,
		Discriminator: u.Discriminator,
		Bot:           u.Bot,
	}, nil
}

// SendDirectMessage opens a DM channel for the recipient and posts the
// content. The error text follows what the Discord API reported.
func (c *Client) SendDirectMessage(ctx context.Context, token types.BotToken, userID types.Snowflake, content string) error {
	s, err := c.session(token)
	if err != nil {
		return err
	}

	channel, err := s.UserChannelCreate(userID.String(), discordgo.WithContext(ctx))
	if err != nil {
		return goerr.New(fmt.Sprintf("Failed to create DM channel: %s", restReason(err)),
			goerr.V("userID", userID),
			goerr.T(types.ErrTagDelivery))
	}

	if _, err := s.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		return goerr.New(fmt.Sprintf("Failed to send message: %s", restReason(err)),
			goerr.V("userID", userID),
			goerr.V("channelID", channel.ID),
			goerr.T(types.ErrTagDelivery))
	}

	return nil
}

// ListGuilds returns the guilds the bot account belongs to
func (c *Client) ListGuilds(ctx context.Context, token types.BotToken) ([]*model.Guild, error) {
	s, err := c.session(token)
	if err != nil {
		return nil, err
	}

	userGuilds, err := s.UserGuilds(guildPageSize, "", "", false, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch guilds",
			goerr.T(types.ErrTagTransport))
	}

	guilds := make([]*model.Guild, 0, len(userGuilds))
	for _, g := range userGuilds {
		guilds = append(guilds, &model.Guild{
			ID:          types.Snowflake(g.ID),
			Name:        g.Name,
			Icon:        g.Icon,
			Permissions: strconv.FormatInt(g.Permissions, 10),
			Features:    featureStrings(g.Features),
		})
	}

	return guilds, nil
}

// ListGuildMembers returns the guild's members with bot accounts excluded
func (c *Client) ListGuildMembers(ctx context.Context, token types.BotToken, guildID types.Snowflake) ([]*model.GuildMember, error) {
	s, err := c.session(token)
	if err != nil {
		return nil, err
	}

	members, err := s.GuildMembers(guildID.String(), "", memberPageLimit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch guild members",
			goerr.V("guildID", guildID),
			goerr.T(types.ErrTagTransport))
	}

	result := make([]*model.GuildMember, 0, len(members))
	for _, m := range members {
		if m.User == nil || m.User.Bot {
			continue
		}
		result = append(result, &model.GuildMember{
			ID:            types.Snowflake(m.User.ID),
			Username:      m.User.Username,
			Discriminator: m.User.Discriminator,
			Avatar:        m.User.Avatar,
			Nickname:      m.Nick,
			Roles:         m.Roles,
			JoinedAt:      m.JoinedAt.Format(time.RFC3339),
		})
	}

	return result, nil
}

// featureStrings converts discordgo guild feature flags to plain strings
func featureStrings(features []discordgo.GuildFeature) []string {
	if len(features) == 0 {
		return nil
	}
	out := make([]string, 0, len(features))
	for _, f := range features {
		out = append(out, string(f))
	}
	return out
}

// restReason extracts the Discord API error message when present, and
// falls back to the HTTP status line
func restReason(err error) string {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		if restErr.Message != nil && restErr.Message.Message != "" {
			return restErr.Message.Message
		}
		if restErr.Response != nil {
			return restErr.Response.Status
		}
	}
	return err.Error()
}

// isNotFound reports whether the error is a Discord 404 response
func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) &&
		restErr.Response != nil &&
		restErr.Response.StatusCode == http.StatusNotFound
}
