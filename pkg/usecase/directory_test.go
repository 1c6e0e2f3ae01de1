package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
	"github.com/notify-lab/herald/pkg/repository"
	"github.com/notify-lab/herald/pkg/usecase"
)

func TestDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("list guilds requires a valid token", func(t *testing.T) {
		client := newValidClient()
		client.ValidateTokenFunc = func(ctx context.Context, token types.BotToken) (bool, error) {
			return false, nil
		}
		uc := usecase.NewDirectory(client, repository.NewMemory())

		_, err := uc.ListGuilds(ctx, testToken)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagAuth))
	})

	t.Run("list guilds returns the gateway projection", func(t *testing.T) {
		client := newValidClient()
		client.ListGuildsFunc = func(ctx context.Context, token types.BotToken) ([]*model.Guild, error) {
			return []*model.Guild{
				{ID: "987654321098765432", Name: "test server"},
			}, nil
		}
		uc := usecase.NewDirectory(client, repository.NewMemory())

		guilds, err := uc.ListGuilds(ctx, testToken)
		gt.NoError(t, err)
		gt.Equal(t, len(guilds), 1)
		gt.Equal(t, guilds[0].Name, "test server")
	})

	t.Run("guild members rejects malformed guild ID before any listing call", func(t *testing.T) {
		client := newValidClient()
		client.ListGuildMembersFunc = func(ctx context.Context, token types.BotToken, guildID types.Snowflake) ([]*model.GuildMember, error) {
			return nil, nil
		}
		uc := usecase.NewDirectory(client, repository.NewMemory())

		_, err := uc.ListGuildMembers(ctx, testToken, "not-a-guild")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagValidation))
		gt.Equal(t, len(client.ListGuildMembersCalls()), 0)
	})

	t.Run("history returns logged attempts newest first", func(t *testing.T) {
		client := newValidClient()
		repo := repository.NewMemory()
		uc := usecase.NewDirectory(client, repo)

		recipient := types.Snowflake("123456789012345678")
		first := model.NewDeliveryAttempt(recipient, nil, "first", nil)
		second := model.NewDeliveryAttempt(recipient, nil, "second", goerr.New("boom"))
		second.Timestamp = first.Timestamp.Add(1)
		gt.NoError(t, repo.PutAttempt(ctx, first))
		gt.NoError(t, repo.PutAttempt(ctx, second))

		attempts, err := uc.History(ctx, testToken, recipient, 0)
		gt.NoError(t, err)
		gt.Equal(t, len(attempts), 2)
		gt.Equal(t, attempts[0].Message, "second")
		gt.Equal(t, attempts[1].Message, "first")
	})

	t.Run("malformed token shape rejected without gateway call", func(t *testing.T) {
		client := newValidClient()
		uc := usecase.NewDirectory(client, repository.NewMemory())

		_, err := uc.ListGuilds(ctx, "short")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagValidation))
		gt.Equal(t, len(client.ValidateTokenCalls()), 0)
	})
}
