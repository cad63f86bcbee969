package gormstore_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/silfira/realty/api/internal/repository"
	"github.com/silfira/realty/api/internal/repository/gormstore"
	"github.com/silfira/realty/api/internal/repository/storetest"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newSQLiteStore opens a fresh in-memory database per test. The shared-cache
// DSN keeps one named database alive across the single pooled connection.
func newSQLiteStore(t *testing.T) *repository.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store, err := gormstore.New(db)
	require.NoError(t, err)
	return store
}

func TestGormStore(t *testing.T) {
	storetest.Run(t, newSQLiteStore)
}
