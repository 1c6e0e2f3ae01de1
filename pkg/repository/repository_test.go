package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/notify-lab/herald/pkg/domain/interfaces"
	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
	"github.com/notify-lab/herald/pkg/repository"
)

func testRepositories(t *testing.T) map[string]interfaces.Repository {
	t.Helper()

	sqlite, err := repository.NewSQLite(context.Background(),
		filepath.Join(t.TempDir(), "herald.db"))
	gt.NoError(t, err).Required()

	return map[string]interfaces.Repository{
		"memory": repository.NewMemory(),
		"sqlite": sqlite,
	}
}

func TestRepositoryPutAndList(t *testing.T) {
	ctx := context.Background()

	for name, repo := range testRepositories(t) {
		t.Run(name, func(t *testing.T) {
			defer repo.Close()

			recipient := types.Snowflake("123456789012345678")
			other := types.Snowflake("223456789012345679")

			username := "someone#0042"
			older := model.NewDeliveryAttempt(recipient, &username, "first", nil)
			newer := model.NewDeliveryAttempt(recipient, nil, "second",
				goerr.New("Failed to send message: Missing Access"))
			newer.Timestamp = older.Timestamp.Add(time.Second)
			unrelated := model.NewDeliveryAttempt(other, nil, "elsewhere", nil)

			gt.NoError(t, repo.PutAttempt(ctx, older))
			gt.NoError(t, repo.PutAttempt(ctx, newer))
			gt.NoError(t, repo.PutAttempt(ctx, unrelated))

			attempts, err := repo.ListAttempts(ctx, recipient, 0)
			gt.NoError(t, err)
			gt.Equal(t, len(attempts), 2)

			// Newest first
			gt.Equal(t, attempts[0].Message, "second")
			gt.False(t, attempts[0].Success)
			gt.Equal(t, attempts[0].Error, "Failed to send message: Missing Access")
			gt.Equal(t, attempts[1].Message, "first")
			gt.True(t, attempts[1].Success)
			gt.NotNil(t, attempts[1].Username)
			gt.Equal(t, *attempts[1].Username, "someone#0042")
		})
	}
}

func TestRepositoryListLimit(t *testing.T) {
	ctx := context.Background()

	for name, repo := range testRepositories(t) {
		t.Run(name, func(t *testing.T) {
			defer repo.Close()

			recipient := types.Snowflake("123456789012345678")
			base := time.Now().UTC()
			for i := 0; i < 5; i++ {
				attempt := model.NewDeliveryAttempt(recipient, nil,
					fmt.Sprintf("msg-%d", i), nil)
				attempt.Timestamp = base.Add(time.Duration(i) * time.Second)
				gt.NoError(t, repo.PutAttempt(ctx, attempt))
			}

			attempts, err := repo.ListAttempts(ctx, recipient, 3)
			gt.NoError(t, err)
			gt.Equal(t, len(attempts), 3)
			gt.Equal(t, attempts[0].Message, "msg-4")
		})
	}
}

func TestRepositoryRejectsInvalidAttempt(t *testing.T) {
	ctx := context.Background()

	for name, repo := range testRepositories(t) {
		t.Run(name, func(t *testing.T) {
			defer repo.Close()

			gt.Error(t, repo.PutAttempt(ctx, nil))
			gt.Error(t, repo.PutAttempt(ctx, &model.DeliveryAttempt{}))

			_, err := repo.ListAttempts(ctx, "", 0)
			gt.Error(t, err)
		})
	}
}

func TestRepositoryConcurrentAppends(t *testing.T) {
	ctx := context.Background()

	for name, repo := range testRepositories(t) {
		t.Run(name, func(t *testing.T) {
			defer repo.Close()

			recipient := types.Snowflake("123456789012345678")
			const writers = 8
			const perWriter = 20

			var wg sync.WaitGroup
			for w := 0; w < writers; w++ {
				wg.Add(1)
				go func(w int) {
					defer wg.Done()
					for i := 0; i < perWriter; i++ {
						attempt := model.NewDeliveryAttempt(recipient, nil,
							fmt.Sprintf("w%d-%d", w, i), nil)
						gt.NoError(t, repo.PutAttempt(ctx, attempt))
					}
				}(w)
			}
			wg.Wait()

			attempts, err := repo.ListAttempts(ctx, recipient, writers*perWriter)
			gt.NoError(t, err)
			gt.Equal(t, len(attempts), writers*perWriter)
		})
	}
}
