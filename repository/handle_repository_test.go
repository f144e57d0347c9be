package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileHandleStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewFileHandleStore(filepath.Join(t.TempDir(), "pid.txt"))

	for _, pid := range []int{1, 4242, 2147483647, 0, -7} {
		if err := store.Save(ctx, pid); err != nil {
			t.Fatalf("Save(%d): %v", pid, err)
		}
		got, ok := store.Load(ctx)
		if !ok || got != pid {
			t.Errorf("Load() after Save(%d) = %d, %v", pid, got, ok)
		}
	}
}

func TestFileHandleStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pid.txt")
	store := NewFileHandleStore(path)

	if err := store.Save(ctx, 123456); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, 7); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "7" {
		t.Errorf("file content = %q, want %q", data, "7")
	}
}

func TestFileHandleStoreClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pid.txt")
	store := NewFileHandleStore(path)

	if err := store.Save(ctx, 99); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if pid, ok := store.Load(ctx); ok {
		t.Errorf("Load() after Clear = %d, want absent", pid)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("pid file should still exist after Clear: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("pid file size = %d, want 0", info.Size())
	}
}

func TestFileHandleStoreLoadAbsent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name    string
		content *string
	}{
		{"missing file", nil},
		{"empty", ptr("")},
		{"whitespace", ptr("  \n")},
		{"text", ptr("mplayer")},
		{"float", ptr("12.5")},
		{"trailing garbage", ptr("12abc")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".pid")
			if tt.content != nil {
				if err := os.WriteFile(path, []byte(*tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			if pid, ok := NewFileHandleStore(path).Load(ctx); ok {
				t.Errorf("Load() = %d, want absent", pid)
			}
		})
	}
}

func TestFileHandleStoreLoadFirstLine(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pid.txt")
	if err := os.WriteFile(path, []byte("321\nleftover"), 0644); err != nil {
		t.Fatal(err)
	}
	pid, ok := NewFileHandleStore(path).Load(ctx)
	if !ok || pid != 321 {
		t.Errorf("Load() = %d, %v; want 321, true", pid, ok)
	}
}

func TestFileHandleStoreSaveError(t *testing.T) {
	ctx := context.Background()
	// the pid path is a directory, so opening it for write fails
	store := NewFileHandleStore(t.TempDir())
	if err := store.Save(ctx, 1); err == nil {
		t.Error("expected Save to fail when the path is a directory")
	}
	if err := store.Clear(ctx); err == nil {
		t.Error("expected Clear to fail when the path is a directory")
	}
}

func ptr(s string) *string { return &s }
