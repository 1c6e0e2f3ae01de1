package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/notify-lab/herald/pkg/domain/interfaces"
	"github.com/notify-lab/herald/pkg/service/discord"
)

// Discord holds Discord gateway client configuration
type Discord struct {
	Timeout time.Duration
}

// Flags returns CLI flags for Discord configuration
func (d *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "discord-timeout",
			Usage:       "Per-request timeout for Discord API calls",
			Category:    "Discord",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("HERALD_DISCORD_TIMEOUT"),
			Destination: &d.Timeout,
		},
	}
}

// Configure creates the Discord gateway client
func (d *Discord) Configure() interfaces.DiscordClient {
	return discord.New(discord.WithTimeout(d.Timeout))
}

// LogValue returns structured log value
func (d Discord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("timeout", d.Timeout),
	)
}
