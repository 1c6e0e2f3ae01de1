package model

import "github.com/notify-lab/herald/pkg/domain/types"

// Guild is a read-only projection of a Discord server the bot belongs to
type Guild struct {
	ID          types.Snowflake `json:"id"`
	Name        string          `json:"name"`
	Icon        string          `json:"icon,omitempty"`
	Permissions string          `json:"permissions,omitempty"`
	Features    []string        `json:"features,omitempty"`
}

// GuildMember is a read-only projection of a guild member. Bot accounts
// are filtered out before this model is built.
type GuildMember struct {
	ID            types.Snowflake `json:"id"`
	Username      string          `json:"username"`
	Discriminator string          `json:"discriminator,omitempty"`
	Avatar        string          `json:"avatar,omitempty"`
	Nickname      string          `json:"nickname,omitempty"`
	Roles         []string        `json:"roles"`
	JoinedAt      string          `json:"joinedAt"`
}

// UserInfo is the subset of a Discord user profile used for display
// name resolution
type UserInfo struct {
	ID            types.Snowflake `json:"id"`
	Username      string          `json:"username"`
	Discriminator string          `json:"discriminator,omitempty"`
	Bot           bool            `json:"bot,omitempty"`
}

// DisplayName renders the legacy username#discriminator form when a
// discriminator is present, the plain username otherwise
func (u *UserInfo) DisplayName() string {
	if u.Discriminator != "" && u.Discriminator != "0" {
		return u.Username + "#" + u.Discriminator
	}
	return u.Username
}
