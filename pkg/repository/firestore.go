package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/notify-lab/herald/pkg/domain/interfaces"
	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
)

const (
	attemptsCollection = "attempts"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Probe the collection so invalid projects or missing permissions
	// fail at startup rather than on the first send
	_, err = client.Collection(attemptsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutAttempt appends a delivery attempt document
func (f *Firestore) PutAttempt(ctx context.Context, attempt *model.DeliveryAttempt) error {
	if attempt == nil {
		return goerr.New("attempt is nil")
	}
	if attempt.ID == "" {
		return goerr.New("attempt ID is empty")
	}

	_, err := f.client.Collection(attemptsCollection).Doc(attempt.ID.String()).Set(ctx, attempt)
	if err != nil {
		return goerr.Wrap(err, "failed to save attempt to firestore")
	}

	return nil
}

// ListAttempts lists attempts for a recipient, newest first
func (f *Firestore) ListAttempts(ctx context.Context, recipientID types.Snowflake, limit int) ([]*model.DeliveryAttempt, error) {
	if recipientID == "" {
		return nil, goerr.New("recipient ID is empty")
	}

	// Query without OrderBy to avoid requiring a composite index;
	// sort in memory instead
	query := f.client.Collection(attemptsCollection).
		Where("recipient_id", "==", recipientID.String())

	iter := query.Documents(ctx)
	defer iter.Stop()

	var attempts []*model.DeliveryAttempt
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate attempts")
		}

		var attempt model.DeliveryAttempt
		if err := doc.DataTo(&attempt); err != nil {
			return nil, goerr.Wrap(err, "failed to decode attempt")
		}

		attempts = append(attempts, &attempt)
	}

	sort.Slice(attempts, func(i, j int) bool {
		return attempts[i].Timestamp.After(attempts[j].Timestamp)
	})

	if limit > 0 && len(attempts) > limit {
		attempts = attempts[:limit]
	}

	return attempts, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}
