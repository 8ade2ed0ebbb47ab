package queries

import (
	"context"
	"errors"

	"restaurant/internal/pkg/errs"
)

// classifyStoreError maps driver failures onto the application's transient
// StoreUnavailable kind, mirroring the repository's write path, so a store
// outage looks the same to callers whether it hit a read or a write.
// Context cancellation is passed through untouched.
func classifyStoreError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errs.NewStoreUnavailableError(err)
}
