package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GormTx returns a gorm handle whose statements run on tx.
// Services own the *sql.Tx; repositories only borrow it.
func GormTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	// Context forces a private Statement so the root handle keeps its pool.
	txDB := db.Session(&gorm.Session{
		NewDB:                  true,
		SkipDefaultTransaction: true,
		Context:                context.Background(),
	})
	txDB.Statement.ConnPool = tx
	return txDB
}
