package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"AmbientFM/logger"
)

// HandleStore persists the pid of the last started player so that a later
// invocation (or another process) can find and stop it.
// There is exactly one handle per store; it is shared without locking.
type HandleStore interface {
	// Save overwrites the stored handle.
	Save(ctx context.Context, pid int) error
	// Load returns false when nothing usable is stored. Read failures and
	// malformed content count as absent.
	Load(ctx context.Context) (int, bool)
	// Clear empties the stored handle.
	Clear(ctx context.Context) error
}

// fileHandleStore keeps the pid as decimal text in a single file.
type fileHandleStore struct {
	path string
}

// NewFileHandleStore creates a HandleStore backed by the file at path.
func NewFileHandleStore(path string) HandleStore {
	return &fileHandleStore{path: path}
}

// Save 写入 pid 并同步到磁盘
func (s *fileHandleStore) Save(_ context.Context, pid int) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create pid directory: %w", err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open pid file %s: %w", s.path, err)
	}
	if _, err := f.WriteString(strconv.Itoa(pid)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write pid file %s: %w", s.path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync pid file %s: %w", s.path, err)
	}
	return f.Close()
}

// Load 读取 pid，文件不存在、为空或内容非法时返回 false
func (s *fileHandleStore) Load(_ context.Context) (int, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debug("[HandleStore] failed to read pid file",
				logger.String("path", s.path), logger.ErrorField(err))
		}
		return 0, false
	}
	line, _, _ := strings.Cut(string(data), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	pid, err := strconv.Atoi(line)
	if err != nil {
		logger.Debug("[HandleStore] malformed pid file content",
			logger.String("path", s.path), logger.String("content", line))
		return 0, false
	}
	return pid, true
}

// Clear 清空 pid 文件
func (s *fileHandleStore) Clear(_ context.Context) error {
	if err := os.WriteFile(s.path, nil, 0644); err != nil {
		return fmt.Errorf("failed to clean pid file %s: %w", s.path, err)
	}
	return nil
}
