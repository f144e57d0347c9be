package ambient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"AmbientFM/core/catalog"
	"AmbientFM/logger"
	"AmbientFM/model"

	"github.com/google/uuid"
)

// maxAutoStopMinutes keeps the auto-stop delay within time.Duration.
const maxAutoStopMinutes = int64(math.MaxInt64 / int64(time.Minute))

// ErrInvalidParameter is returned for requests rejected before any side effect.
var ErrInvalidParameter = errors.New("invalid parameter")

// Controller drives the external player.
type Controller interface {
	StopPrevious(ctx context.Context) bool
	Start(ctx context.Context, file, playerPath string) (int, error)
	Clear(ctx context.Context) error
}

// Scheduler runs a callback after a delay without blocking.
type Scheduler interface {
	Schedule(d time.Duration, onElapsed func())
}

// Orchestrator handles one on/off request at a time against the sound directory.
type Orchestrator struct {
	soundDir   string
	playerPath string
	controller Controller
	scheduler  Scheduler
}

// NewOrchestrator creates an Orchestrator. playerPath is used when a request does not name one.
func NewOrchestrator(soundDir, playerPath string, controller Controller, scheduler Scheduler) *Orchestrator {
	return &Orchestrator{
		soundDir:   soundDir,
		playerPath: playerPath,
		controller: controller,
		scheduler:  scheduler,
	}
}

// Stop kills the current player without touching the stored handle.
func (o *Orchestrator) Stop(ctx context.Context) bool {
	return o.controller.StopPrevious(ctx)
}

// plan is a validated request.
type plan struct {
	command    string
	asset      *model.AudioAsset
	autoStop   time.Duration
	playerPath string
}

// Catalog scans the sound directory. A missing or unreadable directory yields an empty catalog.
func (o *Orchestrator) Catalog() *catalog.Catalog {
	c, err := catalog.Scan(o.soundDir)
	if err != nil {
		logger.Warn("[Ambient] sound directory unavailable", logger.ErrorField(err))
		return catalog.New(o.soundDir, nil)
	}
	return c
}

// Run validates req and then turns playback on or off.
func (o *Orchestrator) Run(ctx context.Context, req model.Request) (*model.Response, error) {
	sessionID := uuid.New().String()
	cat := o.Catalog()

	p, err := o.validate(req, cat)
	if err != nil {
		logger.Warn("[Ambient] request rejected", logger.Session(sessionID), logger.ErrorField(err))
		return nil, err
	}

	// the player outlives the caller, so its handle must be kept in step even if the caller goes away
	ctx = context.WithoutCancel(ctx)

	resp := &model.Response{
		SessionID:       sessionID,
		State:           model.StatePending,
		AvailableSounds: cat.Names(),
	}

	if p.command == model.CommandOff {
		o.controller.StopPrevious(ctx)
		if err := o.controller.Clear(ctx); err != nil {
			logger.Error("[Ambient] failed to clean pid handle", logger.Session(sessionID), logger.ErrorField(err))
		}
		resp.State = model.StateStopped
		logger.Info("[Ambient] ambient sound stopped", logger.Session(sessionID))
		return resp, nil
	}

	// always stop the previous player, even if nothing is running
	o.controller.StopPrevious(ctx)

	asset := p.asset
	if asset == nil {
		picked, err := cat.PickRandom()
		if err != nil {
			return nil, fmt.Errorf("no sound found in %s: %w", o.soundDir, err)
		}
		asset = &picked
		logger.Debug("[Ambient] random ambient sound selected",
			logger.Session(sessionID), logger.String("sound", picked.Name))
	}

	if _, err := o.controller.Start(ctx, cat.Path(*asset), p.playerPath); err != nil {
		return nil, err
	}
	resp.State = model.StatePlaying
	resp.PlayingSound = asset.Name

	if p.autoStop > 0 {
		resp.AutoStopMinutes = int(p.autoStop / time.Minute)
		o.scheduler.Schedule(p.autoStop, func() {
			o.controller.StopPrevious(ctx)
		})
	}

	logger.Info("[Ambient] ambient sound playing",
		logger.Session(sessionID),
		logger.String("sound", asset.Name),
		logger.Duration("auto_stop", p.autoStop))
	return resp, nil
}

func (o *Orchestrator) validate(req model.Request, cat *catalog.Catalog) (plan, error) {
	p := plan{command: req.State, playerPath: req.PlayerPath}
	if p.playerPath == "" {
		p.playerPath = o.playerPath
	}

	if req.State != model.CommandOn && req.State != model.CommandOff {
		return plan{}, fmt.Errorf("%w: state must be 'on' or 'off'", ErrInvalidParameter)
	}

	if req.SoundName != nil {
		asset, ok := cat.FindByName(*req.SoundName)
		if !ok {
			return plan{}, fmt.Errorf("%w: sound name %q does not exist", ErrInvalidParameter, *req.SoundName)
		}
		p.asset = &asset
	}

	if req.AutoStopMinutes != "" {
		minutes, err := strconv.Atoi(strings.TrimSpace(string(req.AutoStopMinutes)))
		if err != nil {
			return plan{}, fmt.Errorf("%w: auto_stop_minutes must be an integer", ErrInvalidParameter)
		}
		if minutes < 1 {
			return plan{}, fmt.Errorf("%w: auto_stop_minutes must be set at least to 1 minute", ErrInvalidParameter)
		}
		if int64(minutes) > maxAutoStopMinutes {
			return plan{}, fmt.Errorf("%w: auto_stop_minutes is too large", ErrInvalidParameter)
		}
		p.autoStop = time.Duration(minutes) * time.Minute
	}
	return p, nil
}
