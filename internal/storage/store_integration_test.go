package storage

import (
	"context"
	"testing"

	"directory/internal/database"
	. "directory/internal/models"
	"directory/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (Store, *gorm.DB) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(&Employee{}, &storeMeta{}))

	// No cache client: view state degrades to defaults, which the durable
	// collection paths never touch.
	db := database.DB{SQL: gormDB}
	return New(db, services.NewTransactionService(db)), gormDB
}

func TestStore_FirstLoadSeeds(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	employees := store.Load(ctx)
	require.Len(t, employees, len(DefaultEmployees()))
	assert.Equal(t, "1", employees[0].ID)

	// The seed is persisted, not just returned.
	assert.Len(t, store.Load(ctx), len(DefaultEmployees()))
}

func TestStore_SaveReplacesCollection(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.Load(ctx)

	replacement := DefaultEmployees()[:3]
	require.NoError(t, store.Save(ctx, replacement))

	loaded := store.Load(ctx)
	require.Len(t, loaded, 3)
	assert.Equal(t, replacement, loaded)
}

// Emptying the directory must stick: the seed runs once, not whenever the
// collection happens to be empty.
func TestStore_EmptySaveDoesNotReseed(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.Load(ctx)

	require.NoError(t, store.Save(ctx, nil))
	assert.Empty(t, store.Load(ctx))
}

// Ids order numerically, not lexically: "10" sorts after "2".
func TestStore_LoadOrdersByNumericID(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	store.Load(ctx)

	defaults := DefaultEmployees()
	out := []Employee{defaults[9], defaults[1]} // ids "10", "2"
	require.NoError(t, store.Save(ctx, out))

	loaded := store.Load(ctx)
	require.Len(t, loaded, 2)
	assert.Equal(t, "2", loaded[0].ID)
	assert.Equal(t, "10", loaded[1].ID)
}

// A failing query degrades to an empty collection; it must not trigger the
// first-run seed.
func TestStore_LoadFailsSoftToEmpty(t *testing.T) {
	ctx := context.Background()
	store, gormDB := newTestStore(t)

	require.NoError(t, gormDB.Migrator().DropTable(&Employee{}))

	assert.Empty(t, store.Load(ctx))

	var meta storeMeta
	err := gormDB.First(&meta, "key = ?", metaSeeded).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestStore_SaveErrorSurfaces(t *testing.T) {
	ctx := context.Background()
	store, gormDB := newTestStore(t)
	store.Load(ctx)

	require.NoError(t, gormDB.Migrator().DropTable(&Employee{}))

	assert.Error(t, store.Save(ctx, DefaultEmployees()[:1]))
}

func TestStore_ViewStateWithoutCacheDefaults(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	assert.Equal(t, DefaultViewState(), store.ViewState(ctx))

	// With no cache tier the write is a no-op, never a failure.
	store.SetViewState(ctx, ViewState{View: ViewCards, PageIndex: 3})
	assert.Equal(t, DefaultViewState(), store.ViewState(ctx))
}
