package cmd

import (
	"fmt"

	"AmbientFM/config"
	"AmbientFM/core/ambient"
	"AmbientFM/core/autostop"
	"AmbientFM/core/player"
	"AmbientFM/db"
	"AmbientFM/logger"
	"AmbientFM/repository"
)

// app bundles what the on/off/serve commands share.
type app struct {
	orchestrator *ambient.Orchestrator
	timer        *autostop.Timer
	close        func()
}

// newHandleStore opens the configured pid backend.
func newHandleStore(c *config.Config) (repository.HandleStore, func(), error) {
	switch c.HandleBackend {
	case config.HandleBackendFile, "":
		return repository.NewFileHandleStore(c.PIDFile), func() {}, nil

	case config.HandleBackendRedis:
		client, err := db.ConnectRedis(c)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisHandleStore(client, c.RedisHandleKey), func() {
			if err := client.Close(); err != nil {
				logger.Warn("关闭Redis连接时发生错误", logger.ErrorField(err))
			}
		}, nil

	case config.HandleBackendMySQL:
		gdb, err := db.ConnectGormDB(c)
		if err != nil {
			return nil, nil, err
		}
		store, err := repository.NewGormHandleStore(gdb)
		if err != nil {
			db.CloseGormDB(gdb)
			return nil, nil, err
		}
		return store, func() {
			if err := db.CloseGormDB(gdb); err != nil {
				logger.Warn("关闭数据库连接时发生错误", logger.ErrorField(err))
			}
		}, nil

	default:
		return nil, nil, fmt.Errorf("unknown handle backend %q", c.HandleBackend)
	}
}

func newApp(c *config.Config) (*app, error) {
	handles, closeHandles, err := newHandleStore(c)
	if err != nil {
		return nil, err
	}
	timer := autostop.New()
	controller := player.NewController(handles)
	return &app{
		orchestrator: ambient.NewOrchestrator(c.SoundDir, c.PlayerPath, controller, timer),
		timer:        timer,
		close:        closeHandles,
	}, nil
}
