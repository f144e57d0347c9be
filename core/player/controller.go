package player

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"AmbientFM/logger"
	"AmbientFM/repository"
)

// ErrProcessNotFound means the stored pid does not name a live process.
var ErrProcessNotFound = errors.New("process not found")

// DefaultPlayerPath is used when the caller does not name a player binary.
const DefaultPlayerPath = "/usr/bin/mplayer"

// Spawner launches a detached process and returns its pid without waiting for it.
type Spawner interface {
	Spawn(argv []string) (int, error)
}

// Killer terminates a process by pid. It returns ErrProcessNotFound when there is nothing to kill.
type Killer interface {
	Kill(pid int) error
}

// Controller starts and stops the external player, tracking it through a HandleStore.
type Controller struct {
	handles repository.HandleStore
	spawner Spawner
	killer  Killer
}

// Option customises a Controller.
type Option func(*Controller)

// WithSpawner replaces the os/exec based spawner.
func WithSpawner(s Spawner) Option {
	return func(c *Controller) { c.spawner = s }
}

// WithKiller replaces the signal based killer.
func WithKiller(k Killer) Option {
	return func(c *Controller) { c.killer = k }
}

// NewController creates a Controller persisting pids in handles.
func NewController(handles repository.HandleStore, opts ...Option) *Controller {
	c := &Controller{
		handles: handles,
		spawner: execSpawner{},
		killer:  signalKiller{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Command builds the player command line for the given file.
func Command(playerPath, file string) []string {
	if playerPath == "" {
		playerPath = DefaultPlayerPath
	}
	return []string{playerPath, "-slave", "-quiet", "-loop", "0", file}
}

// StopPrevious 停止上一次启动的播放器进程
// It never fails: a missing handle or an already exited process are both fine,
// other errors are logged. It reports whether a process was actually killed.
func (c *Controller) StopPrevious(ctx context.Context) bool {
	pid, ok := c.handles.Load(ctx)
	if !ok {
		logger.Debug("[Player] no stored pid, player already stopped")
		return false
	}
	logger.Debug("[Player] loaded pid", logger.Pid(pid))

	if err := c.killer.Kill(pid); err != nil {
		if errors.Is(err, ErrProcessNotFound) {
			logger.Debug("[Player] stored pid does not exist", logger.Pid(pid))
		} else {
			logger.Warn("[Player] failed to kill player", logger.Pid(pid), logger.ErrorField(err))
		}
		return false
	}
	logger.Info("[Player] player process killed", logger.Pid(pid))
	return true
}

// Start launches the player looping file and records its pid.
// A failure to persist the pid is logged and does not stop playback.
func (c *Controller) Start(ctx context.Context, file, playerPath string) (int, error) {
	argv := Command(playerPath, file)
	logger.Debug("[Player] player command", logger.String("cmd", strings.Join(argv, " ")))

	pid, err := c.spawner.Spawn(argv)
	if err != nil {
		return 0, fmt.Errorf("failed to start player %s: %w", argv[0], err)
	}

	if err := c.handles.Save(ctx, pid); err != nil {
		logger.Error("[Player] failed to store pid, the player will not be stopped automatically",
			logger.Pid(pid), logger.ErrorField(err))
	}
	logger.Info("[Player] player started", logger.Pid(pid), logger.String("file", file))
	return pid, nil
}

// Clear forgets the stored handle.
func (c *Controller) Clear(ctx context.Context) error {
	if err := c.handles.Clear(ctx); err != nil {
		return err
	}
	logger.Debug("[Player] pid handle cleaned")
	return nil
}
