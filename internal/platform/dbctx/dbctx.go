package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// Every repo and service call takes one; there is no ambient global session.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
