package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/notify-lab/herald/pkg/domain/interfaces"
	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	attempts map[types.AttemptID]*model.DeliveryAttempt
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		attempts: make(map[types.AttemptID]*model.DeliveryAttempt),
	}
}

// PutAttempt appends a delivery attempt to memory
func (m *Memory) PutAttempt(ctx context.Context, attempt *model.DeliveryAttempt) error {
	if attempt == nil {
		return goerr.New("attempt is nil")
	}
	if attempt.ID == "" {
		return goerr.New("attempt ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Store a copy to keep the log immutable from the caller's side
	attemptCopy := *attempt
	m.attempts[attempt.ID] = &attemptCopy
	return nil
}

// ListAttempts lists attempts for a recipient, newest first
func (m *Memory) ListAttempts(ctx context.Context, recipientID types.Snowflake, limit int) ([]*model.DeliveryAttempt, error) {
	if recipientID == "" {
		return nil, goerr.New("recipient ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var attempts []*model.DeliveryAttempt
	for _, attempt := range m.attempts {
		if attempt.RecipientID == recipientID {
			attemptCopy := *attempt
			attempts = append(attempts, &attemptCopy)
		}
	}

	sort.Slice(attempts, func(i, j int) bool {
		return attempts[i].Timestamp.After(attempts[j].Timestamp)
	})

	if limit > 0 && len(attempts) > limit {
		attempts = attempts[:limit]
	}

	return attempts, nil
}

// Close is a no-op for the memory repository
func (m *Memory) Close() error {
	return nil
}
