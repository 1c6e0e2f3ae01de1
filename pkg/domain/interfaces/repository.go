package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
)

// Repository defines the interface for the delivery log. The send
// pipeline only ever appends; reads exist for the history endpoint.
type Repository interface {
	// PutAttempt appends one delivery attempt record
	PutAttempt(ctx context.Context, attempt *model.DeliveryAttempt) error

	// ListAttempts returns logged attempts for one recipient, newest first
	ListAttempts(ctx context.Context, recipientID types.Snowflake, limit int) ([]*model.DeliveryAttempt, error)

	// Close closes the repository connection
	Close() error
}
