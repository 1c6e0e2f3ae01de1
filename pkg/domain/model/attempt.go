package model

import (
	"time"

	"github.com/notify-lab/herald/pkg/domain/types"
)

// DeliveryAttempt is one recorded outcome of trying to deliver a message
// to one recipient. The JSON shape is the wire format streamed to the
// browser; the ID is internal to the delivery log.
type DeliveryAttempt struct {
	ID          types.AttemptID `json:"-" firestore:"id"`
	RecipientID types.Snowflake `json:"userId" firestore:"recipient_id"`
	Username    *string         `json:"username" firestore:"username"`
	Message     string          `json:"message" firestore:"message"`
	Success     bool            `json:"success" firestore:"success"`
	Error       string          `json:"error,omitempty" firestore:"error,omitempty"`
	Timestamp   time.Time       `json:"timestamp" firestore:"timestamp"`
}

// NewDeliveryAttempt creates an attempt record for one recipient.
// A nil sendErr marks the attempt as delivered; otherwise the error
// text becomes the recorded failure reason.
func NewDeliveryAttempt(recipientID types.Snowflake, username *string, message string, sendErr error) *DeliveryAttempt {
	attempt := &DeliveryAttempt{
		ID:          types.NewAttemptID(),
		RecipientID: recipientID,
		Username:    username,
		Message:     message,
		Success:     sendErr == nil,
		Timestamp:   time.Now().UTC(),
	}
	if sendErr != nil {
		attempt.Error = sendErr.Error()
	}
	return attempt
}

// Outcome returns the attempt result as a typed value
func (a *DeliveryAttempt) Outcome() types.Outcome {
	if a.Success {
		return types.OutcomeSuccess
	}
	return types.OutcomeFailure
}
