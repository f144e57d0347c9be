package repository

import (
	"context"
	"fmt"

	"AmbientFM/logger"
	"AmbientFM/model"

	"gorm.io/gorm"
)

// handleRowID is the primary key of the only row in player_handles.
const handleRowID = 1

// gormHandleStore keeps the pid in a single-row table.
type gormHandleStore struct {
	db *gorm.DB
}

// NewGormHandleStore migrates player_handles and returns a HandleStore on it.
func NewGormHandleStore(db *gorm.DB) (HandleStore, error) {
	if err := db.AutoMigrate(&model.PlayerHandle{}); err != nil {
		return nil, fmt.Errorf("failed to migrate player_handles: %w", err)
	}
	return &gormHandleStore{db: db}, nil
}

func (s *gormHandleStore) Save(ctx context.Context, pid int) error {
	row := model.PlayerHandle{ID: handleRowID, PID: &pid}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to store pid in database: %w", err)
	}
	return nil
}

func (s *gormHandleStore) Load(ctx context.Context) (int, bool) {
	var row model.PlayerHandle
	if err := s.db.WithContext(ctx).Limit(1).Find(&row, handleRowID).Error; err != nil {
		logger.Debug("[HandleStore] failed to read pid from database", logger.ErrorField(err))
		return 0, false
	}
	if row.PID == nil {
		return 0, false
	}
	return *row.PID, true
}

func (s *gormHandleStore) Clear(ctx context.Context) error {
	row := model.PlayerHandle{ID: handleRowID}
	if err := s.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("failed to clear pid in database: %w", err)
	}
	return nil
}
