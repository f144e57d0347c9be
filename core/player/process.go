package player

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"AmbientFM/logger"
)

// execSpawner starts the player with its standard streams discarded, in its own session.
type execSpawner struct{}

func (execSpawner) Spawn(argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, errors.New("empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	// nil Stdin/Stdout/Stderr are connected to the null device
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil
	cmd.SysProcAttr = detachedAttr()

	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid

	// reap the child when it exits so long-running hosts do not collect zombies
	go func() {
		err := cmd.Wait()
		logger.Debug("[Player] player process exited", logger.Pid(pid), logger.ErrorField(err))
	}()
	return pid, nil
}

// signalKiller sends SIGKILL (TerminateProcess on Windows).
type signalKiller struct{}

func (signalKiller) Kill(pid int) error {
	// pid 0 and negative pids address process groups on unix
	if pid <= 0 {
		return fmt.Errorf("%w: invalid pid %d", ErrProcessNotFound, pid)
	}
	p, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProcessNotFound, err)
	}
	defer p.Release()

	if err := p.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) || errors.Is(err, syscall.ESRCH) {
			return fmt.Errorf("%w: pid %d", ErrProcessNotFound, pid)
		}
		return err
	}
	return nil
}
