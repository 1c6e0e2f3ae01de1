package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/notify-lab/herald/pkg/domain/interfaces/mocks"
	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
	"github.com/notify-lab/herald/pkg/repository"
	"github.com/notify-lab/herald/pkg/usecase"
)

const testToken = types.BotToken("validbot0123456789.validbot0123456789.validbot0123456789X")

func newValidClient() *mocks.DiscordClientMock {
	return &mocks.DiscordClientMock{
		ValidateTokenFunc: func(ctx context.Context, token types.BotToken) (bool, error) {
			return true, nil
		},
		ResolveUserFunc: func(ctx context.Context, token types.BotToken, userID types.Snowflake) (*model.UserInfo, error) {
			return &model.UserInfo{ID: userID, Username: "someone", Discriminator: "0042"}, nil
		},
		SendDirectMessageFunc: func(ctx context.Context, token types.BotToken, userID types.Snowflake, content string) error {
			return nil
		},
	}
}

func collect(results *[]*model.DeliveryAttempt) usecase.EmitFunc {
	return func(attempt *model.DeliveryAttempt) error {
		*results = append(*results, attempt)
		return nil
	}
}

func TestSendDirect(t *testing.T) {
	ctx := context.Background()

	t.Run("successful send records one attempt", func(t *testing.T) {
		client := newValidClient()
		repo := repository.NewMemory()
		uc := usecase.NewSend(client, repo)

		attempt, err := uc.SendDirect(ctx, &model.DMRequest{
			Token:   testToken,
			UserID:  "123456789012345678",
			Message: "hi",
		})
		gt.NoError(t, err)
		gt.NotNil(t, attempt)
		gt.True(t, attempt.Success)
		gt.NotNil(t, attempt.Username)
		gt.Equal(t, *attempt.Username, "someone#0042")

		logged, err := repo.ListAttempts(ctx, "123456789012345678", 0)
		gt.NoError(t, err)
		gt.Equal(t, len(logged), 1)
		gt.True(t, logged[0].Success)
	})

	t.Run("malformed recipient rejected before any gateway call", func(t *testing.T) {
		client := newValidClient()
		uc := usecase.NewSend(client, repository.NewMemory())

		_, err := uc.SendDirect(ctx, &model.DMRequest{
			Token:   testToken,
			UserID:  "abc",
			Message: "hi",
		})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagValidation))
		gt.Equal(t, len(client.ValidateTokenCalls()), 0)
		gt.Equal(t, len(client.SendDirectMessageCalls()), 0)
	})

	t.Run("empty message rejected", func(t *testing.T) {
		client := newValidClient()
		uc := usecase.NewSend(client, repository.NewMemory())

		_, err := uc.SendDirect(ctx, &model.DMRequest{
			Token:  testToken,
			UserID: "123456789012345678",
		})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagValidation))
		gt.Equal(t, len(client.SendDirectMessageCalls()), 0)
	})

	t.Run("invalid token produces a failed attempt without delivery", func(t *testing.T) {
		client := newValidClient()
		client.ValidateTokenFunc = func(ctx context.Context, token types.BotToken) (bool, error) {
			return false, nil
		}
		repo := repository.NewMemory()
		uc := usecase.NewSend(client, repo)

		attempt, err := uc.SendDirect(ctx, &model.DMRequest{
			Token:   testToken,
			UserID:  "123456789012345678",
			Message: "hi",
		})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagAuth))
		gt.NotNil(t, attempt)
		gt.False(t, attempt.Success)
		gt.Equal(t, attempt.Error, "Invalid bot token")
		gt.Equal(t, len(client.SendDirectMessageCalls()), 0)

		// The rejected attempt is still logged
		logged, err := repo.ListAttempts(ctx, "123456789012345678", 0)
		gt.NoError(t, err)
		gt.Equal(t, len(logged), 1)
	})

	t.Run("name resolution failure degrades to nil username", func(t *testing.T) {
		client := newValidClient()
		client.ResolveUserFunc = func(ctx context.Context, token types.BotToken, userID types.Snowflake) (*model.UserInfo, error) {
			return nil, goerr.New("discord is down")
		}
		uc := usecase.NewSend(client, repository.NewMemory())

		attempt, err := uc.SendDirect(ctx, &model.DMRequest{
			Token:   testToken,
			UserID:  "123456789012345678",
			Message: "hi",
		})
		gt.NoError(t, err)
		gt.True(t, attempt.Success)
		gt.Nil(t, attempt.Username)
	})

	t.Run("delivery failure recorded with the gateway error text", func(t *testing.T) {
		client := newValidClient()
		client.SendDirectMessageFunc = func(ctx context.Context, token types.BotToken, userID types.Snowflake, content string) error {
			return goerr.New("Failed to create DM channel: Cannot send messages to this user")
		}
		repo := repository.NewMemory()
		uc := usecase.NewSend(client, repo)

		attempt, err := uc.SendDirect(ctx, &model.DMRequest{
			Token:   testToken,
			UserID:  "123456789012345678",
			Message: "hi",
		})
		gt.NoError(t, err)
		gt.False(t, attempt.Success)
		gt.Equal(t, attempt.Error, "Failed to create DM channel: Cannot send messages to this user")
	})
}

func TestSendBulk(t *testing.T) {
	ctx := context.Background()

	t.Run("n recipients produce n attempts in input order", func(t *testing.T) {
		client := newValidClient()
		repo := repository.NewMemory()
		uc := usecase.NewSend(client, repo)

		userIDs := []types.Snowflake{
			"111111111111111111",
			"222222222222222222",
			"333333333333333333",
		}
		var results []*model.DeliveryAttempt
		err := uc.SendBulk(ctx, &model.BulkDMRequest{
			Token:   testToken,
			UserIDs: userIDs,
			Message: "hello",
		}, collect(&results))
		gt.NoError(t, err)
		gt.Equal(t, len(results), len(userIDs))
		for i, attempt := range results {
			gt.Equal(t, attempt.RecipientID, userIDs[i])
			gt.True(t, attempt.Success)
		}

		// Every attempt is also appended to the delivery log
		for _, id := range userIDs {
			logged, err := repo.ListAttempts(ctx, id, 0)
			gt.NoError(t, err)
			gt.Equal(t, len(logged), 1)
		}

		// Token validated once for the whole batch
		gt.Equal(t, len(client.ValidateTokenCalls()), 1)
		gt.Equal(t, len(client.SendDirectMessageCalls()), 3)
	})

	t.Run("one malformed recipient rejects the whole job before any call", func(t *testing.T) {
		client := newValidClient()
		uc := usecase.NewSend(client, repository.NewMemory())

		var results []*model.DeliveryAttempt
		err := uc.SendBulk(ctx, &model.BulkDMRequest{
			Token:   testToken,
			UserIDs: []types.Snowflake{"111111111111111111", "abc"},
			Message: "hello",
		}, collect(&results))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagValidation))
		gt.Equal(t, len(results), 0)
		gt.Equal(t, len(client.ValidateTokenCalls()), 0)
		gt.Equal(t, len(client.SendDirectMessageCalls()), 0)
	})

	t.Run("invalid token aborts the whole job with zero attempts", func(t *testing.T) {
		client := newValidClient()
		client.ValidateTokenFunc = func(ctx context.Context, token types.BotToken) (bool, error) {
			return false, nil
		}
		repo := repository.NewMemory()
		uc := usecase.NewSend(client, repo)

		var results []*model.DeliveryAttempt
		err := uc.SendBulk(ctx, &model.BulkDMRequest{
			Token:   testToken,
			UserIDs: []types.Snowflake{"111111111111111111", "222222222222222222"},
			Message: "hello",
		}, collect(&results))
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagAuth))
		gt.Equal(t, len(results), 0)
		gt.Equal(t, len(client.SendDirectMessageCalls()), 0)
	})

	t.Run("failure for one recipient does not abort the rest", func(t *testing.T) {
		client := newValidClient()
		client.SendDirectMessageFunc = func(ctx context.Context, token types.BotToken, userID types.Snowflake, content string) error {
			if userID == "222222222222222222" {
				return goerr.New("Failed to send message: Cannot send messages to this user")
			}
			return nil
		}
		uc := usecase.NewSend(client, repository.NewMemory())

		var results []*model.DeliveryAttempt
		err := uc.SendBulk(ctx, &model.BulkDMRequest{
			Token:   testToken,
			UserIDs: []types.Snowflake{"111111111111111111", "222222222222222222", "333333333333333333"},
			Message: "hello",
		}, collect(&results))
		gt.NoError(t, err)
		gt.Equal(t, len(results), 3)
		gt.True(t, results[0].Success)
		gt.False(t, results[1].Success)
		gt.Equal(t, results[1].Error, "Failed to send message: Cannot send messages to this user")
		gt.True(t, results[2].Success)
	})

	t.Run("per-id configured outcomes arrive in order", func(t *testing.T) {
		outcomes := map[types.Snowflake]error{
			"123456789012345678": nil,
			"223456789012345679": goerr.New("Failed to create DM channel: Unknown User"),
		}
		client := newValidClient()
		client.SendDirectMessageFunc = func(ctx context.Context, token types.BotToken, userID types.Snowflake, content string) error {
			return outcomes[userID]
		}
		uc := usecase.NewSend(client, repository.NewMemory())

		var results []*model.DeliveryAttempt
		err := uc.SendBulk(ctx, &model.BulkDMRequest{
			Token:   testToken,
			UserIDs: []types.Snowflake{"123456789012345678", "223456789012345679"},
			Message: "hi",
		}, collect(&results))
		gt.NoError(t, err)
		gt.Equal(t, len(results), 2)
		gt.Equal(t, results[0].RecipientID, types.Snowflake("123456789012345678"))
		gt.True(t, results[0].Success)
		gt.Equal(t, results[1].RecipientID, types.Snowflake("223456789012345679"))
		gt.False(t, results[1].Success)
	})

	t.Run("delay is applied between attempts but not after the last", func(t *testing.T) {
		unit := 20 * time.Millisecond
		client := newValidClient()
		uc := usecase.NewSend(client, repository.NewMemory(), usecase.WithDelayUnit(unit))

		start := time.Now()
		var results []*model.DeliveryAttempt
		err := uc.SendBulk(ctx, &model.BulkDMRequest{
			Token: testToken,
			UserIDs: []types.Snowflake{
				"111111111111111111",
				"222222222222222222",
				"333333333333333333",
			},
			Message: "hello",
			Delay:   2,
		}, collect(&results))
		gt.NoError(t, err)
		gt.Equal(t, len(results), 3)

		// (n-1) * delay must elapse between first and last emission
		gt.True(t, time.Since(start) >= 2*2*unit)
	})

	t.Run("zero delay completes without suspension", func(t *testing.T) {
		client := newValidClient()
		uc := usecase.NewSend(client, repository.NewMemory(), usecase.WithDelayUnit(time.Hour))

		done := make(chan struct{})
		go func() {
			defer close(done)
			var results []*model.DeliveryAttempt
			err := uc.SendBulk(ctx, &model.BulkDMRequest{
				Token:   testToken,
				UserIDs: []types.Snowflake{"111111111111111111", "222222222222222222"},
				Message: "hello",
			}, collect(&results))
			gt.NoError(t, err)
			gt.Equal(t, len(results), 2)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("bulk job with zero delay did not complete promptly")
		}
	})

	t.Run("consumer disconnect abandons remaining recipients", func(t *testing.T) {
		client := newValidClient()
		uc := usecase.NewSend(client, repository.NewMemory())

		emitted := 0
		err := uc.SendBulk(ctx, &model.BulkDMRequest{
			Token:   testToken,
			UserIDs: []types.Snowflake{"111111111111111111", "222222222222222222", "333333333333333333"},
			Message: "hello",
		}, func(attempt *model.DeliveryAttempt) error {
			emitted++
			return goerr.New("connection reset")
		})
		gt.NoError(t, err)
		gt.Equal(t, emitted, 1)
		gt.Equal(t, len(client.SendDirectMessageCalls()), 1)
	})

	t.Run("cancelled context stops before the next recipient", func(t *testing.T) {
		client := newValidClient()
		uc := usecase.NewSend(client, repository.NewMemory())

		cancelCtx, cancel := context.WithCancel(ctx)
		var results []*model.DeliveryAttempt
		err := uc.SendBulk(cancelCtx, &model.BulkDMRequest{
			Token:   testToken,
			UserIDs: []types.Snowflake{"111111111111111111", "222222222222222222"},
			Message: "hello",
		}, func(attempt *model.DeliveryAttempt) error {
			results = append(results, attempt)
			cancel()
			return nil
		})
		gt.Error(t, err)
		gt.Equal(t, len(results), 1)
		gt.Equal(t, len(client.SendDirectMessageCalls()), 1)
	})

	t.Run("attempt logged even when repository write fails", func(t *testing.T) {
		client := newValidClient()
		repo := &mocks.RepositoryMock{
			PutAttemptFunc: func(ctx context.Context, attempt *model.DeliveryAttempt) error {
				return goerr.New("disk full")
			},
		}
		uc := usecase.NewSend(client, repo)

		var results []*model.DeliveryAttempt
		err := uc.SendBulk(ctx, &model.BulkDMRequest{
			Token:   testToken,
			UserIDs: []types.Snowflake{"111111111111111111"},
			Message: "hello",
		}, collect(&results))
		gt.NoError(t, err)
		gt.Equal(t, len(results), 1)
		gt.Equal(t, len(repo.PutAttemptCalls()), 1)
	})
}
