package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/notify-lab/herald/pkg/domain/interfaces"
	"github.com/notify-lab/herald/pkg/domain/model"
	"github.com/notify-lab/herald/pkg/domain/types"
)

// Send implements SendUseCase. One instance serves all jobs; each
// invocation is self-contained and strictly sequential, so concurrent
// jobs share nothing but the delivery log.
type Send struct {
	client    interfaces.DiscordClient
	repo      interfaces.Repository
	delayUnit time.Duration
}

// SendOption configures the Send use case
type SendOption func(*Send)

// WithDelayUnit overrides the unit used to interpret the request delay
// value. The default is one second.
func WithDelayUnit(unit time.Duration) SendOption {
	return func(s *Send) {
		s.delayUnit = unit
	}
}

// NewSend creates a new Send use case
func NewSend(client interfaces.DiscordClient, repo interfaces.Repository, opts ...SendOption) SendUseCase {
	s := &Send{
		client:    client,
		repo:      repo,
		delayUnit: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateToken checks the token shape and then asks Discord whether it
// belongs to a bot account
func (s *Send) ValidateToken(ctx context.Context, token types.BotToken) (bool, error) {
	if err := token.Validate(); err != nil {
		return false, err
	}
	return s.client.ValidateToken(ctx, token)
}

// SendDirect delivers one message to one recipient. Exactly one attempt
// is recorded and logged once validation passes, whichever stage fails.
func (s *Send) SendDirect(ctx context.Context, req *model.DMRequest) (*model.DeliveryAttempt, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	valid, err := s.client.ValidateToken(ctx, req.Token)
	if err != nil {
		return nil, goerr.Wrap(err, "token validation failed",
			goerr.T(types.ErrTagTransport))
	}
	if !valid {
		attempt := model.NewDeliveryAttempt(req.UserID, nil, req.Message, model.ErrInvalidToken)
		s.record(ctx, attempt)
		return attempt, goerr.Wrap(model.ErrInvalidToken, "rejected before delivery")
	}

	username := s.resolveUsername(ctx, req.Token, req.UserID)
	sendErr := s.client.SendDirectMessage(ctx, req.Token, req.UserID, req.Message)

	attempt := model.NewDeliveryAttempt(req.UserID, username, req.Message, sendErr)
	s.record(ctx, attempt)

	return attempt, nil
}

// SendBulk runs the bulk pipeline: one-time token validation, then a
// strictly sequential loop over the recipients. A failure for one
// recipient never aborts the job; only an invalid token does.
func (s *Send) SendBulk(ctx context.Context, req *model.BulkDMRequest, emit EmitFunc) error {
	logger := ctxlog.From(ctx)

	if err := req.Validate(); err != nil {
		return err
	}

	valid, err := s.client.ValidateToken(ctx, req.Token)
	if err != nil {
		return goerr.Wrap(err, "token validation failed",
			goerr.T(types.ErrTagTransport))
	}
	if !valid {
		return goerr.Wrap(model.ErrInvalidToken, "bulk job aborted")
	}

	total := len(req.UserIDs)
	logger.Info("bulk send started",
		"recipients", total,
		"delaySeconds", req.Delay,
	)

	for i, userID := range req.UserIDs {
		if err := ctx.Err(); err != nil {
			logger.Info("bulk send abandoned",
				"completed", i,
				"total", total,
			)
			return goerr.Wrap(err, "bulk job interrupted")
		}

		username := s.resolveUsername(ctx, req.Token, userID)
		sendErr := s.client.SendDirectMessage(ctx, req.Token, userID, req.Message)

		attempt := model.NewDeliveryAttempt(userID, username, req.Message, sendErr)
		s.record(ctx, attempt)

		if err := emit(attempt); err != nil {
			// Consumer is gone; attempts already produced stay logged
			logger.Info("bulk send consumer disconnected",
				"completed", i+1,
				"total", total,
				"error", err,
			)
			return nil
		}

		if req.Delay > 0 && i < total-1 {
			if err := s.pause(ctx, time.Duration(req.Delay)*s.delayUnit); err != nil {
				return err
			}
		}
	}

	logger.Info("bulk send completed", "recipients", total)
	return nil
}

// resolveUsername fetches the recipient's display name best-effort.
// Lookup failures degrade to a nil name and are never surfaced.
func (s *Send) resolveUsername(ctx context.Context, token types.BotToken, userID types.Snowflake) *string {
	info, err := s.client.ResolveUser(ctx, token, userID)
	if err != nil {
		ctxlog.From(ctx).Debug("failed to resolve recipient name",
			"userID", userID,
			"error", err,
		)
		return nil
	}
	if info == nil {
		return nil
	}
	name := info.DisplayName()
	return &name
}

// record appends the attempt to the delivery log. Log durability is
// best-effort relative to the user-facing result: a write failure must
// not abort the send.
func (s *Send) record(ctx context.Context, attempt *model.DeliveryAttempt) {
	if err := s.repo.PutAttempt(ctx, attempt); err != nil {
		ctxlog.From(ctx).Warn("failed to persist delivery attempt",
			"attemptID", attempt.ID,
			"recipientID", attempt.RecipientID,
			"error", err,
		)
	}
}

// pause waits for the inter-message delay, honoring cancellation
func (s *Send) pause(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "bulk job interrupted during delay")
	case <-timer.C:
		return nil
	}
}
