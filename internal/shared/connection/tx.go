package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Session returns a gorm handle bound to ctx that runs on tx when one is
// given, so repositories share the transaction their service opened.
func Session(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	s := db.WithContext(ctx)
	if tx != nil {
		s.Statement.ConnPool = tx
	}
	return s
}
