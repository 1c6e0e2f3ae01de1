package model

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/notify-lab/herald/pkg/domain/types"
)

// Sentinel errors for delivery operations
var (
	// ErrInvalidToken is returned when Discord rejects the token or the
	// account behind it is not a bot. The message text is part of the
	// wire contract: it appears verbatim in failed attempt records.
	ErrInvalidToken = goerr.New("Invalid bot token", goerr.T(types.ErrTagAuth))
)
