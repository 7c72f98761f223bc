package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/gyansetu/gyansetu-backend/internal/platform/dbctx"
)

// inTx runs fn inside dbc.Tx when the caller already holds one, otherwise in a
// new transaction on db.
func inTx(db *gorm.DB, dbc dbctx.Context, fn func(dbctx.Context) error) error {
	if dbc.Tx != nil {
		return fn(dbc)
	}
	ctx := dbc.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
