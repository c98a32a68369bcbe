// Package dbctx carries the per-request database scope through the repo
// layer.
package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// Repos fall back to their own connection when Tx is nil; the test harness
// threads its rollback transaction through here instead.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
