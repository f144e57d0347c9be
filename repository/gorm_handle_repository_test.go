package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newGormStore(t *testing.T) HandleStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "handles.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	store, err := NewGormHandleStore(db)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestGormHandleStoreEmptyTableIsAbsent(t *testing.T) {
	store := newGormStore(t)
	if pid, ok := store.Load(context.Background()); ok {
		t.Errorf("Load() on empty table = %d, true", pid)
	}
}

func TestGormHandleStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newGormStore(t)

	for _, pid := range []int{4242, 7, 0} {
		if err := store.Save(ctx, pid); err != nil {
			t.Fatalf("Save(%d): %v", pid, err)
		}
		got, ok := store.Load(ctx)
		if !ok || got != pid {
			t.Errorf("Load() after Save(%d) = %d, %v", pid, got, ok)
		}
	}
}

func TestGormHandleStoreClear(t *testing.T) {
	ctx := context.Background()
	store := newGormStore(t)

	if err := store.Save(ctx, 123); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if pid, ok := store.Load(ctx); ok {
		t.Errorf("Load() after Clear = %d, true", pid)
	}
	if err := store.Save(ctx, 456); err != nil {
		t.Fatal(err)
	}
	if pid, ok := store.Load(ctx); !ok || pid != 456 {
		t.Errorf("Load() after Clear and Save = %d, %v", pid, ok)
	}
}
