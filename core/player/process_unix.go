//go:build unix

package player

import "syscall"

// detachedAttr puts the player in a new session without a controlling terminal.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
