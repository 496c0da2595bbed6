package database

import (
	"fmt"
	"sync/atomic"

	"ajcc-portal/tools"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var testDBSeq atomic.Int64

// InitTest swaps the shared handle for a fresh in-memory SQLite database with
// the same schema. Handler tests call this instead of Init. Each call gets
// its own named memory database so tests do not see each other's rows.
func InitTest() {
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Discard,
	})
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(DB.AutoMigrate(autoMigrateModels...))
}
