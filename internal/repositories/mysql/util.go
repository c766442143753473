// internal/repositories/mysql/util.go
package mysql

import (
	"context"
	"time"
)

// withTimeout: pembungkus context timeout default repo.
// Deadline caller (jika ada) tidak ditimpa.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
