// Package apperr is the top-level error reporter for fatal failures.
package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle reports a fatal error before the process exits. Attached goerr
// values and stack traces are expanded by the log handler.
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("herald terminated", "error", err)
}
